// Package scaling 实现特征的仿射标准化变换
package scaling

import (
	"stress-detection/internal/domain/models"
)

// Scaler 特征缩放器
// 持有启动时加载的只读缩放参数表，可被并发请求无锁访问
type Scaler struct {
	params models.ScalerParameters
}

// NewScaler 创建特征缩放器
// params: 启动时从工件加载的缩放参数表
func NewScaler(params models.ScalerParameters) *Scaler {
	return &Scaler{params: params}
}

// Scale 按固定特征顺序逐项计算 (raw - mean) / scale
// scale恰好为0时返回DegenerateScaleError，避免无穷大传播到客户端
func (s *Scaler) Scale(vector *models.FeatureVector) (models.ScaledVector, error) {
	values := vector.Values()
	scaled := make(models.ScaledVector, models.FeatureCount)

	for i, p := range s.params {
		if p.Scale == 0 {
			return nil, &models.DegenerateScaleError{Feature: p.Name}
		}
		scaled[i] = (values[i] - p.Mean) / p.Scale
	}

	return scaled, nil
}
