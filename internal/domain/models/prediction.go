package models

// 分类标签常量，顺序固定：normal, anxious, stressed, ptsd
const (
	LabelNormal   = "normal"
	LabelAnxious  = "anxious"
	LabelStressed = "stressed"
	LabelPTSD     = "ptsd"
)

// LabelCount 标签数量
const LabelCount = 4

// ExpectedLabels 固定顺序的标签集合
// 标签表工件必须与该集合完全一致
var ExpectedLabels = [LabelCount]string{
	LabelNormal,
	LabelAnxious,
	LabelStressed,
	LabelPTSD,
}

// LabelSet 有序标签集合，进程启动时从标签表工件加载，此后只读
type LabelSet [LabelCount]string

// MethodScalerBased 分类方法标识，随预测结果返回
const MethodScalerBased = "scaler_based_classification"

// PredictionResult 预测结果
// POST /predict 成功响应的完整序列化结构
type PredictionResult struct {
	// Prediction 预测标签，取值为LabelSet中的一个
	Prediction string `json:"prediction"`

	// ConfidenceScores 各标签的置信度分布，总和为1.0（±1e-6）
	ConfidenceScores map[string]float64 `json:"confidence_scores"`

	// InputFeatures 回显的输入特征
	InputFeatures map[string]float64 `json:"input_features"`

	// ScaledFeatures 标准化后的特征向量
	ScaledFeatures ScaledVector `json:"scaled_features"`

	// Method 分类方法标识
	Method string `json:"method"`
}

// ModelInfo 模型元信息
// GET /model_info 响应结构
type ModelInfo struct {
	// ModelType 模型类型描述
	ModelType string `json:"model_type"`

	// Features 输入特征名称列表
	Features []string `json:"features"`

	// Classes 输出标签名称列表
	Classes []string `json:"classes"`

	// ModelLoaded 工件是否加载成功
	ModelLoaded bool `json:"model_loaded"`

	// Method 分类方法描述
	Method string `json:"method"`

	// Thresholds 当前生效的规则阈值
	Thresholds map[string]float64 `json:"thresholds"`
}
