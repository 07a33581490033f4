package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stress-detection/internal/app/middleware"
	"stress-detection/internal/domain/models"
	"stress-detection/internal/domain/services"
	"stress-detection/pkg/logger"
	"stress-detection/pkg/status"
)

// PredictHandler 预测处理器
// 传输层唯一的业务处理器，将HTTP请求转发给预测服务
type PredictHandler struct {
	service services.PredictionService
	logger  logger.Logger
}

// NewPredictHandler 创建预测处理器
func NewPredictHandler(service services.PredictionService, log logger.Logger) *PredictHandler {
	return &PredictHandler{
		service: service,
		logger:  log,
	}
}

// ErrorResponse 错误响应结构
// 客户端输入错误与服务端错误均以该扁平结构返回，配合相应的HTTP状态码
type ErrorResponse struct {
	Error string `json:"error"`
}

// Predict 执行预测
// POST /predict
func (h *PredictHandler) Predict(c *gin.Context) {
	ctx := c.Request.Context()
	requestID := middleware.GetRequestID(c)

	h.logger.InfoContext(ctx, "开始处理预测请求", "request_id", requestID)

	// 解析为原始映射而非绑定结构体：
	// 验证器需要枚举全部缺失特征并逐个检查值类型
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.ErrorContext(ctx, "预测请求体解析失败",
			"request_id", requestID,
			"error", err.Error())
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid JSON body"})
		return
	}

	if len(payload) == 0 {
		h.logger.ErrorContext(ctx, "预测请求体为空", "request_id", requestID)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no data provided"})
		return
	}

	// 调用预测服务
	startTime := time.Now()
	result, code, err := h.service.Predict(ctx, payload)
	duration := time.Since(startTime).Milliseconds()

	if err != nil {
		h.logger.ErrorContext(ctx, "预测服务调用失败",
			"request_id", requestID,
			"code", code.String(),
			"duration_ms", duration,
			"error", err.Error())
		c.JSON(code.HTTPStatus(), ErrorResponse{Error: errorMessage(code, err)})
		return
	}

	h.logger.InfoContext(ctx, "预测请求处理完成",
		"request_id", requestID,
		"duration_ms", duration,
		"prediction", result.Prediction)

	c.JSON(http.StatusOK, result)
}

// Health 健康检查
// GET /health
// 工件加载失败时报告degraded状态而非崩溃，状态码保持200
func (h *PredictHandler) Health(c *gin.Context) {
	if !h.service.Loaded() {
		c.JSON(http.StatusOK, gin.H{
			"status":    "degraded",
			"message":   "Stress Detection API is running without loaded artifacts",
			"timestamp": time.Now().Unix(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"message":   "Stress Detection API is running",
		"timestamp": time.Now().Unix(),
	})
}

// ModelInfo 模型元信息
// GET /model_info
func (h *PredictHandler) ModelInfo(c *gin.Context) {
	if !h.service.Loaded() {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "model not loaded"})
		return
	}

	c.JSON(http.StatusOK, h.service.ModelInfo())
}

// Example 示例请求/响应对
// GET /example
func (h *PredictHandler) Example(c *gin.Context) {
	exampleBody := gin.H{
		models.FeaturePSDTheta: 80.5,
		models.FeaturePSDAlpha: 6.355,
		models.FeaturePSDBeta:  8.08897,
		models.FeatureEDA:      80.054613,
		models.FeatureHRV:      7.03,
	}

	c.JSON(http.StatusOK, gin.H{
		"single_prediction": gin.H{
			"url":    "/predict",
			"method": http.MethodPost,
			"body":   exampleBody,
			"response": gin.H{
				"prediction": models.LabelStressed,
				"confidence_scores": gin.H{
					models.LabelStressed: 0.8,
					models.LabelNormal:   0.067,
					models.LabelAnxious:  0.067,
					models.LabelPTSD:     0.067,
				},
				"method": models.MethodScalerBased,
			},
		},
	})
}

// errorMessage 构造面向客户端的错误消息
// 已分类错误直接使用错误文本（包含具体的特征名）；
// 未知内部错误返回通用消息，不泄露内部细节
func errorMessage(code status.StatusCode, err error) string {
	if code == status.ErrCodeInternal {
		return "prediction error"
	}
	return err.Error()
}
