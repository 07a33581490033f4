// Package validation 实现特征向量验证器
package validation

import (
	"math"

	"stress-detection/internal/domain/models"
)

// Validator 特征验证器
// 无内部状态，纯函数式校验
type Validator struct{}

// NewValidator 创建特征验证器
func NewValidator() *Validator {
	return &Validator{}
}

// Validate 验证原始输入映射并构造特征向量
// 先收集全部缺失特征（而非仅第一个），再逐个检查数值类型
func (v *Validator) Validate(payload map[string]interface{}) (*models.FeatureVector, error) {
	// 1. 收集全部缺失的特征
	var missing []string
	for _, name := range models.FeatureNames {
		if _, ok := payload[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return nil, &models.MissingFeatureError{Features: missing}
	}

	// 2. 逐个检查数值类型并转为float64
	var values [models.FeatureCount]float64
	for i, name := range models.FeatureNames {
		value, ok := toFiniteFloat(payload[name])
		if !ok {
			return nil, &models.InvalidTypeError{Feature: name}
		}
		values[i] = value
	}

	return &models.FeatureVector{
		PSDTheta: values[0],
		PSDAlpha: values[1],
		PSDBeta:  values[2],
		EDA:      values[3],
		HRV:      values[4],
	}, nil
}

// toFiniteFloat 将任意JSON值转换为有限浮点数
// encoding/json 将所有数值解码为float64；json.Number以外的整型分支
// 用于覆盖直接以Go值调用验证器的场景
func toFiniteFloat(value interface{}) (float64, bool) {
	var f float64

	switch n := value.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, false
	}

	// NaN与无穷均视为无效输入
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}
