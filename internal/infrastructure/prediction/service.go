// Package prediction 实现预测服务：串联验证、缩放与分类
package prediction

import (
	"context"
	"errors"

	"stress-detection/configs"
	"stress-detection/internal/domain/models"
	"stress-detection/internal/infrastructure/artifacts"
	"stress-detection/internal/infrastructure/classification"
	"stress-detection/internal/infrastructure/scaling"
	"stress-detection/internal/infrastructure/validation"
	"stress-detection/pkg/logger"
	"stress-detection/pkg/status"
)

// Service 预测服务
// 构造后内部状态只读，可被任意并发请求无锁访问
// 工件加载失败时以降级模式构造（store为nil），预测请求返回ScalerNotLoadedError
type Service struct {
	validator  *validation.Validator
	scaler     *scaling.Scaler
	classifier *classification.Classifier
	cfg        *configs.ClassifierConfig
	logger     logger.Logger
	loaded     bool
}

// NewService 创建预测服务
// store: 工件存储，加载失败时传nil进入降级模式
// cfg: 分类器策略配置
// log: 日志器
func NewService(store *artifacts.Store, cfg *configs.ClassifierConfig, log logger.Logger) *Service {
	s := &Service{
		validator: validation.NewValidator(),
		cfg:       cfg,
		logger:    log,
	}

	if store != nil {
		s.scaler = scaling.NewScaler(store.Scaler())
		s.classifier = classification.NewClassifier(cfg, store.Labels())
		s.loaded = true
	}

	return s
}

// Predict 执行完整预测流水线：验证 → 缩放 → 分类
func (s *Service) Predict(ctx context.Context, payload map[string]interface{}) (*models.PredictionResult, status.StatusCode, error) {
	// 降级状态：工件未加载
	if !s.loaded {
		return nil, status.ErrCodeScalerNotLoaded, &models.ScalerNotLoadedError{}
	}

	// 1. 验证输入
	vector, err := s.validator.Validate(payload)
	if err != nil {
		return nil, classifyError(err), err
	}

	// 2. 标准化
	scaled, err := s.scaler.Scale(vector)
	if err != nil {
		return nil, classifyError(err), err
	}

	// 3. 规则分类
	label, confidences := s.classifier.Classify(scaled)

	s.logger.DebugContext(ctx, "预测完成",
		"prediction", label,
		"scaled_features", scaled)

	return &models.PredictionResult{
		Prediction:       label,
		ConfidenceScores: confidences,
		InputFeatures:    vector.ToMap(),
		ScaledFeatures:   scaled,
		Method:           models.MethodScalerBased,
	}, status.CodeOK, nil
}

// ModelInfo 返回已加载工件的静态元信息
func (s *Service) ModelInfo() *models.ModelInfo {
	info := &models.ModelInfo{
		ModelType:   "Scaler-based Classification",
		Features:    models.FeatureNames[:],
		Classes:     models.ExpectedLabels[:],
		ModelLoaded: s.loaded,
		Method:      "Rule-based classification using scaled features",
	}

	if s.loaded {
		info.Thresholds = s.classifier.Thresholds()
	}

	return info
}

// Loaded 返回启动工件是否加载成功
func (s *Service) Loaded() bool {
	return s.loaded
}

// classifyError 将错误分类中的具体错误映射为业务状态码
func classifyError(err error) status.StatusCode {
	var missingErr *models.MissingFeatureError
	var typeErr *models.InvalidTypeError
	var notLoadedErr *models.ScalerNotLoadedError
	var degenerateErr *models.DegenerateScaleError

	switch {
	case errors.As(err, &missingErr):
		return status.ErrCodeMissingFeature
	case errors.As(err, &typeErr):
		return status.ErrCodeInvalidType
	case errors.As(err, &notLoadedErr):
		return status.ErrCodeScalerNotLoaded
	case errors.As(err, &degenerateErr):
		return status.ErrCodeDegenerateScale
	default:
		return status.ErrCodeInternal
	}
}
