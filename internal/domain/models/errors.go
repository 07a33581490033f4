package models

import (
	"fmt"
	"strings"
)

// 错误分类：
//   MissingFeatureError / InvalidTypeError —— 客户端输入错误，映射到400
//   ScalerNotLoadedError / DegenerateScaleError —— 启动/配置错误，映射到500

// MissingFeatureError 缺少必需特征错误
// Features 包含全部缺失的特征名，而非仅第一个
type MissingFeatureError struct {
	// Features 缺失的特征名称列表
	Features []string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("missing features: [%s]", strings.Join(e.Features, ", "))
}

// InvalidTypeError 特征值类型错误
// 特征值非数值或非有限（NaN/Inf）时返回
type InvalidTypeError struct {
	// Feature 无效的特征名称
	Feature string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("feature %q is not a finite number", e.Feature)
}

// ScalerNotLoadedError 缩放器参数未加载错误
// 启动时工件加载失败后，预测请求返回该错误
type ScalerNotLoadedError struct{}

func (e *ScalerNotLoadedError) Error() string {
	return "scaler parameters are not loaded"
}

// DegenerateScaleError 缩放参数退化错误
// 某特征的scale恰好为0时返回，避免产生无穷大的缩放值
type DegenerateScaleError struct {
	// Feature scale为0的特征名称
	Feature string
}

func (e *DegenerateScaleError) Error() string {
	return fmt.Sprintf("degenerate scale (zero) for feature %q", e.Feature)
}
