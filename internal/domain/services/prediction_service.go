package services

import (
	"context"

	"stress-detection/internal/domain/models"
	"stress-detection/pkg/status"
)

// FeatureValidator 特征验证服务接口
// 负责检查原始输入中五个必需特征的存在性与数值类型，构造特征向量
type FeatureValidator interface {
	// Validate 验证原始输入映射
	// 收集全部缺失的特征名；对已存在但非有限数值的特征报告类型错误
	//
	// 参数:
	//   payload: 反序列化后的原始JSON对象
	//
	// 返回:
	//   *models.FeatureVector: 验证成功时的特征向量（值已转为float64）
	//   error: MissingFeatureError 或 InvalidTypeError
	Validate(payload map[string]interface{}) (*models.FeatureVector, error)
}

// FeatureScaler 特征缩放服务接口
// 对特征向量应用仿射标准化变换（减均值除以标准差）
type FeatureScaler interface {
	// Scale 按固定特征顺序逐项计算 (raw - mean) / scale
	// scale恰好为0时显式返回DegenerateScaleError，绝不产生无穷大
	//
	// 参数:
	//   vector: 已验证的特征向量
	//
	// 返回:
	//   models.ScaledVector: 标准化后的五维向量
	//   error: DegenerateScaleError
	Scale(vector *models.FeatureVector) (models.ScaledVector, error)
}

// StateClassifier 状态分类服务接口
// 对标准化特征向量应用有序阈值规则，给出标签与置信度分布
type StateClassifier interface {
	// Classify 执行规则分类
	// 对良构的标准化向量该操作永不失败（全函数）
	//
	// 参数:
	//   scaled: 标准化后的五维特征向量
	//
	// 返回:
	//   string: 预测标签，取值为标签集合中的一个
	//   map[string]float64: 各标签的置信度分布，总和为1.0
	Classify(scaled models.ScaledVector) (string, map[string]float64)
}

// PredictionService 预测服务接口
// 串联验证、缩放与分类，是传输层唯一依赖的业务入口
type PredictionService interface {
	// Predict 执行完整预测流水线
	//
	// 参数:
	//   ctx: 上下文，用于传递请求追踪信息
	//   payload: 反序列化后的原始JSON对象
	//
	// 返回:
	//   *models.PredictionResult: 预测结果
	//   status.StatusCode: 业务状态码
	//   error: 错误分类中的具体错误
	Predict(ctx context.Context, payload map[string]interface{}) (*models.PredictionResult, status.StatusCode, error)

	// ModelInfo 返回已加载工件的静态元信息
	ModelInfo() *models.ModelInfo

	// Loaded 返回启动工件是否加载成功
	Loaded() bool
}
