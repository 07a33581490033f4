package configs

import (
	"fmt"
	"time"
)

// Config 主配置结构体，定义了应用程序的所有配置项。
// 包含服务器、日志、工件路径、分类策略和跨域等模块的配置信息。
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Artifacts  ArtifactsConfig  `yaml:"artifacts"`
	Classifier ClassifierConfig `yaml:"classifier"`
	CORS       CORSConfig       `yaml:"cors"`
}

// ServerConfig 定义服务器相关的配置参数。
// 包含监听地址、端口、超时设置等。
type ServerConfig struct {
	Host                    string        `yaml:"host"`
	Port                    int           `yaml:"port"`
	ReadTimeout             time.Duration `yaml:"read_timeout"`
	WriteTimeout            time.Duration `yaml:"write_timeout"`
	IdleTimeout             time.Duration `yaml:"idle_timeout"`
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// LoggingConfig 定义日志系统的配置参数。
// 包含日志级别、输出目标（stdout/stderr/file）和格式（text/json）等。
type LoggingConfig struct {
	Level    string `yaml:"level"`
	Output   string `yaml:"output"`
	Format   string `yaml:"format"`
	FilePath string `yaml:"file_path"`
}

// ArtifactsConfig 定义启动时加载的静态工件路径。
// 包含缩放器参数表和标签表两个只读工件。
type ArtifactsConfig struct {
	ScalerPath string `yaml:"scaler_path"`
	LabelsPath string `yaml:"labels_path"`
}

// ClassifierConfig 定义规则分类器的策略参数。
// 阈值属于可配置策略而非固定科学常数，默认值用于复现文档化示例。
type ClassifierConfig struct {
	// PredictedWeight 预测标签获得的置信度权重，剩余权重均分给其他标签
	PredictedWeight float64 `yaml:"predicted_weight"`

	// HRVPTSDMax 标准化HRV低于该值时判定为ptsd
	HRVPTSDMax float64 `yaml:"hrv_ptsd_max"`

	// ArousalStressedMin 唤醒度指标（标准化EDA减标准化HRV）达到该值时判定为stressed
	ArousalStressedMin float64 `yaml:"arousal_stressed_min"`

	// BetaStressedMin 标准化beta功率超过该值时判定为stressed
	BetaStressedMin float64 `yaml:"beta_stressed_min"`

	// ThetaAnxiousMin 标准化theta功率超过该值时判定为anxious
	ThetaAnxiousMin float64 `yaml:"theta_anxious_min"`
}

// CORSConfig 定义跨域访问配置。
// AllowOrigins 为空时允许所有来源（与原服务的宽松跨域行为一致）。
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Validate 检查 Config 配置结构体的有效性。
// 依次调用各个子配置项的 Validate 方法，如果发现无效配置，返回相应的错误。
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := c.Artifacts.Validate(); err != nil {
		return fmt.Errorf("artifacts config validation failed: %w", err)
	}

	if err := c.Classifier.Validate(); err != nil {
		return fmt.Errorf("classifier config validation failed: %w", err)
	}

	return nil
}

// Validate 检查 ServerConfig 配置的有效性。
// 确保端口号在有效范围内，且超时设置为正数。
func (s *ServerConfig) Validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("invalid port: %d", s.Port)
	}

	if s.ReadTimeout <= 0 {
		return fmt.Errorf("read_timeout must be positive")
	}

	if s.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be positive")
	}

	return nil
}

// Validate 检查 LoggingConfig 配置的有效性。
// 确保日志级别、输出目标和格式有效，如果输出到文件，确保文件路径已指定。
func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}

	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s", l.Level)
	}

	validOutputs := map[string]bool{
		"stdout": true, "stderr": true, "file": true,
	}

	if !validOutputs[l.Output] {
		return fmt.Errorf("invalid log output: %s", l.Output)
	}

	if l.Output == "file" && l.FilePath == "" {
		return fmt.Errorf("file path is required when output is file")
	}

	// 验证日志格式，空值默认为 text
	validFormats := map[string]bool{
		"text": true, "json": true, "": true,
	}

	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s", l.Format)
	}

	return nil
}

// Validate 检查 ArtifactsConfig 配置的有效性。
// 确保两个工件路径均已指定。
func (a *ArtifactsConfig) Validate() error {
	if a.ScalerPath == "" {
		return fmt.Errorf("scaler artifact path is required")
	}

	if a.LabelsPath == "" {
		return fmt.Errorf("labels artifact path is required")
	}

	return nil
}

// Validate 检查 ClassifierConfig 配置的有效性。
// 确保置信度权重在(0,1]区间内，保证预测标签的置信度不低于其他标签。
func (c *ClassifierConfig) Validate() error {
	if c.PredictedWeight <= 0 || c.PredictedWeight > 1 {
		return fmt.Errorf("predicted_weight must be in (0, 1]")
	}

	// 权重低于0.25时预测标签的置信度会低于其他标签，违反分布单调性
	if c.PredictedWeight < 0.25 {
		return fmt.Errorf("predicted_weight must be at least 0.25")
	}

	return nil
}

// GetAddr 获取服务器的完整监听地址。
// 返回格式为 "Host:Port" 的字符串。
func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
