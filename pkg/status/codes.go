package status

import "net/http"

// StatusCode 统一的业务状态码类型
// 说明：尽量保持简单以满足当前项目使用场景
// 0 表示成功，其余为错误状态

type StatusCode int

const (
	// CodeOK 成功
	CodeOK StatusCode = 0

	// ErrCodeMissingFeature 缺少必需特征
	ErrCodeMissingFeature StatusCode = 1001
	// ErrCodeInvalidType 特征值类型错误
	ErrCodeInvalidType StatusCode = 1002
	// ErrCodeScalerNotLoaded 缩放器参数未加载
	ErrCodeScalerNotLoaded StatusCode = 1003
	// ErrCodeDegenerateScale 缩放参数退化
	ErrCodeDegenerateScale StatusCode = 1004
	// ErrCodeInternal 内部错误
	ErrCodeInternal StatusCode = 1005
)

// String 将状态码转换为字符串标识
func (c StatusCode) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case ErrCodeMissingFeature:
		return "MISSING_FEATURE"
	case ErrCodeInvalidType:
		return "INVALID_TYPE"
	case ErrCodeScalerNotLoaded:
		return "SCALER_NOT_LOADED"
	case ErrCodeDegenerateScale:
		return "DEGENERATE_SCALE"
	case ErrCodeInternal:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// HTTPStatus 将业务状态码映射为HTTP状态码
// 客户端输入错误映射到400，启动/配置错误及未知错误映射到500
func (c StatusCode) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case ErrCodeMissingFeature, ErrCodeInvalidType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
