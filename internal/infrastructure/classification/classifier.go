// Package classification 实现基于阈值规则的状态分类器
package classification

import (
	"stress-detection/configs"
	"stress-detection/internal/domain/models"
)

// 标准化向量中各特征的下标，顺序与models.FeatureNames一致
const (
	idxTheta = 0
	idxAlpha = 1
	idxBeta  = 2
	idxEDA   = 3
	idxHRV   = 4
)

// Classifier 规则分类器
// 阈值来自配置中的策略表，标签来自启动时加载的标签集合
// 对良构输入永不失败，O(1)完成分类
type Classifier struct {
	cfg    *configs.ClassifierConfig
	labels models.LabelSet
}

// NewClassifier 创建规则分类器
// cfg: 策略阈值配置
// labels: 有序标签集合
func NewClassifier(cfg *configs.ClassifierConfig, labels models.LabelSet) *Classifier {
	return &Classifier{cfg: cfg, labels: labels}
}

// Classify 对标准化特征向量应用有序阈值规则
// 规则按序匹配，首个命中的规则决定标签；全部未命中时回落到normal
func (c *Classifier) Classify(scaled models.ScaledVector) (string, map[string]float64) {
	// 复合指标：
	// 唤醒度 = 标准化EDA - 标准化HRV（高EDA低HRV表示交感唤醒）
	// theta功率单独作为焦虑指标
	arousal := scaled[idxEDA] - scaled[idxHRV]

	var label string
	switch {
	case scaled[idxHRV] < c.cfg.HRVPTSDMax:
		// HRV严重受抑制
		label = models.LabelPTSD
	case arousal >= c.cfg.ArousalStressedMin || scaled[idxBeta] > c.cfg.BetaStressedMin:
		// 唤醒度升高或beta功率过高
		label = models.LabelStressed
	case scaled[idxTheta] > c.cfg.ThetaAnxiousMin:
		// theta功率升高
		label = models.LabelAnxious
	default:
		label = models.LabelNormal
	}

	return label, c.confidences(label)
}

// confidences 构造置信度分布
// 预测标签获得配置的权重，剩余权重在其他标签间均分，总和为1.0
func (c *Classifier) confidences(predicted string) map[string]float64 {
	scores := make(map[string]float64, models.LabelCount)
	rest := (1.0 - c.cfg.PredictedWeight) / float64(models.LabelCount-1)

	for _, name := range c.labels {
		if name == predicted {
			scores[name] = c.cfg.PredictedWeight
		} else {
			scores[name] = rest
		}
	}

	return scores
}

// Thresholds 返回当前生效的规则阈值，用于模型元信息接口
func (c *Classifier) Thresholds() map[string]float64 {
	return map[string]float64{
		"hrv_ptsd_max":         c.cfg.HRVPTSDMax,
		"arousal_stressed_min": c.cfg.ArousalStressedMin,
		"beta_stressed_min":    c.cfg.BetaStressedMin,
		"theta_anxious_min":    c.cfg.ThetaAnxiousMin,
	}
}
