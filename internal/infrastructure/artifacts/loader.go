// Package artifacts 负责加载启动时的两个只读工件：缩放器参数表与标签表
package artifacts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"stress-detection/internal/domain/models"
	"stress-detection/pkg/logger"
)

// Store 工件存储
// 进程启动时构造一次，此后只读，可被任意并发请求无锁访问
type Store struct {
	scaler models.ScalerParameters
	labels models.LabelSet
}

// NewStore 直接以给定参数构造工件存储
// 供测试与嵌入场景使用，绕过文件加载
func NewStore(scaler models.ScalerParameters, labels models.LabelSet) *Store {
	return &Store{scaler: scaler, labels: labels}
}

// Scaler 返回缩放器参数表
func (s *Store) Scaler() models.ScalerParameters {
	return s.scaler
}

// Labels 返回有序标签集合
func (s *Store) Labels() models.LabelSet {
	return s.labels
}

// scalerFile 缩放器参数表工件的文件结构
type scalerFile struct {
	Features []models.ScalerParameter `yaml:"features"`
}

// labelsFile 标签表工件的文件结构
type labelsFile struct {
	Labels []string `yaml:"labels"`
}

// Load 从两个YAML工件文件加载并校验工件存储。
// 任一文件缺失、格式错误或内容与固定特征/标签顺序不符时返回错误；
// 调用方据此进入降级状态而非退出进程。
//
// 参数:
//   scalerPath: 缩放器参数表文件路径
//   labelsPath: 标签表文件路径
//   log: 日志器，用于记录加载告警
//
// 返回:
//   *Store: 加载成功的工件存储
//   error: 加载或校验错误
func Load(scalerPath, labelsPath string, log logger.Logger) (*Store, error) {
	scaler, err := loadScaler(scalerPath, log)
	if err != nil {
		return nil, fmt.Errorf("load scaler artifact: %w", err)
	}

	labels, err := loadLabels(labelsPath)
	if err != nil {
		return nil, fmt.Errorf("load labels artifact: %w", err)
	}

	return &Store{scaler: scaler, labels: labels}, nil
}

// loadScaler 加载缩放器参数表
// 校验特征数量与名称顺序；scale为0仅告警，由缩放服务在请求时显式拒绝
func loadScaler(path string, log logger.Logger) (models.ScalerParameters, error) {
	var params models.ScalerParameters

	data, err := os.ReadFile(path)
	if err != nil {
		return params, err
	}

	var file scalerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return params, err
	}

	if len(file.Features) != models.FeatureCount {
		return params, fmt.Errorf("expected %d features, got %d", models.FeatureCount, len(file.Features))
	}

	for i, p := range file.Features {
		if p.Name != models.FeatureNames[i] {
			return params, fmt.Errorf("feature %d: expected name %q, got %q", i, models.FeatureNames[i], p.Name)
		}

		if p.Scale == 0 {
			log.Warn("缩放器参数表中存在scale为0的特征，对应预测请求将被拒绝", "feature", p.Name)
		}

		params[i] = p
	}

	return params, nil
}

// loadLabels 加载标签表
// 标签必须与固定标签集合完全一致（数量、名称与顺序）
func loadLabels(path string) (models.LabelSet, error) {
	var labels models.LabelSet

	data, err := os.ReadFile(path)
	if err != nil {
		return labels, err
	}

	var file labelsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return labels, err
	}

	if len(file.Labels) != models.LabelCount {
		return labels, fmt.Errorf("expected %d labels, got %d", models.LabelCount, len(file.Labels))
	}

	for i, name := range file.Labels {
		if name != models.ExpectedLabels[i] {
			return labels, fmt.Errorf("label %d: expected %q, got %q", i, models.ExpectedLabels[i], name)
		}
		labels[i] = name
	}

	return labels, nil
}
