package server

import (
	"github.com/gin-gonic/gin"

	"stress-detection/configs"
	"stress-detection/internal/app/handlers"
	"stress-detection/internal/app/middleware"
	"stress-detection/pkg/logger"
)

// SetupRoutes 配置并注册 HTTP 服务器的所有路由规则。
// 它负责加载中间件，并将 URL 路径映射到相应的处理函数。
// 参数 engine: Gin 引擎实例。
// 参数 predictHandler: 业务逻辑处理器。
// 参数 corsCfg: 跨域配置。
// 参数 log: 日志记录器。
func SetupRoutes(engine *gin.Engine, predictHandler *handlers.PredictHandler, corsCfg *configs.CORSConfig, log logger.Logger) {
	// 应用全局中间件
	setupMiddleware(engine, corsCfg, log)

	// 健康检查 - 报告工件加载状态（healthy/degraded）
	engine.GET("/health", predictHandler.Health)
	// 模型元信息 - 特征名、标签名与当前生效的阈值
	engine.GET("/model_info", predictHandler.ModelInfo)
	// 文档示例 - 字面的示例请求/响应对
	engine.GET("/example", predictHandler.Example)
	// 预测 - 对五维特征向量执行验证、缩放与规则分类
	engine.POST("/predict", predictHandler.Predict)
}

// setupMiddleware 设置全局中间件
func setupMiddleware(engine *gin.Engine, corsCfg *configs.CORSConfig, log logger.Logger) {
	// 设置恢复中间件 - 捕获panic并返回500错误
	engine.Use(gin.Recovery())

	// 设置跨域中间件 - 原服务允许任意来源访问
	engine.Use(middleware.CORSMiddleware(corsCfg))

	// 设置日志中间件 - 记录请求日志并生成请求ID
	loggingConfig := &middleware.LoggingConfig{
		// 跳过健康检查路径的日志记录，减少日志噪音
		SkipPaths: []string{
			"/health",
		},
		Logger: log,
	}
	engine.Use(middleware.LoggingMiddleware(loggingConfig))
}
