package models

// 特征顺序固定：psd_theta, psd_alpha, psd_beta, eda, hrv
// 缩放器参数表与特征向量必须严格遵守该顺序

// FeatureCount 特征数量
const FeatureCount = 5

// 特征名称常量
const (
	FeaturePSDTheta = "psd_theta"
	FeaturePSDAlpha = "psd_alpha"
	FeaturePSDBeta  = "psd_beta"
	FeatureEDA      = "eda"
	FeatureHRV      = "hrv"
)

// FeatureNames 固定顺序的特征名称列表
var FeatureNames = [FeatureCount]string{
	FeaturePSDTheta,
	FeaturePSDAlpha,
	FeaturePSDBeta,
	FeatureEDA,
	FeatureHRV,
}

// FeatureVector 五维生理特征向量
// 由验证器从原始JSON输入构造，所有值均为有限浮点数
type FeatureVector struct {
	// PSDTheta EEG theta频段功率谱密度
	PSDTheta float64 `json:"psd_theta"`

	// PSDAlpha EEG alpha频段功率谱密度
	PSDAlpha float64 `json:"psd_alpha"`

	// PSDBeta EEG beta频段功率谱密度
	PSDBeta float64 `json:"psd_beta"`

	// EDA 皮肤电活动
	EDA float64 `json:"eda"`

	// HRV 心率变异性
	HRV float64 `json:"hrv"`
}

// Values 按固定特征顺序返回向量值
func (v *FeatureVector) Values() [FeatureCount]float64 {
	return [FeatureCount]float64{v.PSDTheta, v.PSDAlpha, v.PSDBeta, v.EDA, v.HRV}
}

// ToMap 转换为特征名到值的映射（用于响应中回显输入）
func (v *FeatureVector) ToMap() map[string]float64 {
	values := v.Values()
	m := make(map[string]float64, FeatureCount)
	for i, name := range FeatureNames {
		m[name] = values[i]
	}
	return m
}

// ScaledVector 标准化后的特征向量，顺序与FeatureNames一致
type ScaledVector []float64

// ScalerParameter 单个特征的缩放参数
type ScalerParameter struct {
	// Name 特征名称
	Name string `yaml:"name"`

	// Mean 训练集均值
	Mean float64 `yaml:"mean"`

	// Scale 训练集标准差
	Scale float64 `yaml:"scale"`
}

// ScalerParameters 全部五个特征的缩放参数，按固定特征顺序排列
// 进程启动时加载一次，此后只读
type ScalerParameters [FeatureCount]ScalerParameter
