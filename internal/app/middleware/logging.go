package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"stress-detection/pkg/logger"
)

// RequestIDKey 请求ID在Context中的键名
const RequestIDKey = "request_id"

// LoggingConfig 日志中间件配置
type LoggingConfig struct {
	// SkipPaths 跳过日志记录的路径（如健康检查接口）
	SkipPaths []string
	// Logger 日志器实例
	Logger logger.Logger
}

// LoggingMiddleware 返回HTTP日志记录中间件
// config: 中间件配置，如果为nil则使用默认配置
func LoggingMiddleware(config *LoggingConfig) gin.HandlerFunc {
	// 使用默认配置
	if config == nil {
		config = &LoggingConfig{
			SkipPaths: []string{"/health"},
			Logger:    logger.GetDefault(),
		}
	}

	// 如果没有指定Logger，使用默认Logger
	if config.Logger == nil {
		config.Logger = logger.GetDefault()
	}

	return func(c *gin.Context) {
		// 生成请求ID
		requestID := uuid.New().String()
		c.Set(RequestIDKey, requestID)

		// 检查是否需要跳过日志记录
		if shouldSkipPath(c.Request.URL.Path, config.SkipPaths) {
			c.Next()
			return
		}

		// 记录请求开始时间
		startTime := time.Now()

		// 创建带有请求ID的context
		ctx := context.WithValue(c.Request.Context(), RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)

		// 记录请求开始日志
		config.Logger.InfoContext(ctx, "HTTP请求开始",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
			"user_agent", c.GetHeader("User-Agent"),
			"content_length", c.Request.ContentLength,
		)

		// 执行请求处理
		c.Next()

		// 计算处理时间
		duration := time.Since(startTime)

		config.Logger.InfoContext(ctx, "HTTP请求完成",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"duration_ms", float64(duration.Nanoseconds())/1e6,
			"response_size", c.Writer.Size(),
			"client_ip", c.ClientIP(),
		)

		// 如果有错误，记录详细错误信息
		if len(c.Errors) > 0 {
			for _, err := range c.Errors {
				config.Logger.ErrorContext(ctx, "HTTP请求处理错误",
					"request_id", requestID,
					"error", err.Error(),
					"error_type", err.Type,
				)
			}
		}
	}
}

// shouldSkipPath 检查是否应该跳过某个路径的日志记录
func shouldSkipPath(path string, skipPaths []string) bool {
	for _, skipPath := range skipPaths {
		if strings.HasPrefix(path, skipPath) {
			return true
		}
	}
	return false
}

// GetRequestID 从Context中获取请求ID
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		return requestID.(string)
	}
	return ""
}
