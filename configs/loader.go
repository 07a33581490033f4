package configs

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load 加载并验证应用程序配置。
// 它按照以下优先级顺序加载配置：
// 1. 默认配置
// 2. 配置文件（config.yaml，支持多个搜索路径）
// 3. 环境变量（覆盖配置文件中的值）
//
// 参数 ctx: 上下文对象。
// 返回加载并验证后的 Config 指针，如果出错则返回 error。
func Load(ctx context.Context) (*Config, error) {
	// 加载 .env 文件（如果存在）
	// 忽略错误，因为 .env 文件是可选的
	_ = godotenv.Load()

	config := DefaultConfig()

	// 尝试加载配置文件
	configPaths := []string{
		"configs/config.yaml",
		"config.yaml",
		"/etc/stress-detection/config.yaml",
	}

	for _, path := range configPaths {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, err
			}
			break
		}
	}

	// 从环境变量覆盖配置
	loadFromEnv(config)

	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig 创建并返回一个包含默认值的 Config 对象。
// 分类器阈值的默认值与随仓库发布的缩放器参数表配合，可复现文档化示例。
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:                    "0.0.0.0",
			Port:                    8080,
			ReadTimeout:             30 * time.Second,
			WriteTimeout:            30 * time.Second,
			IdleTimeout:             60 * time.Second,
			GracefulShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: "stdout",
			Format: "text",
		},
		Artifacts: ArtifactsConfig{
			ScalerPath: "artifacts/scaler.yaml",
			LabelsPath: "artifacts/labels.yaml",
		},
		Classifier: ClassifierConfig{
			PredictedWeight:    0.8,
			HRVPTSDMax:         -1.0,
			ArousalStressedMin: 1.0,
			BetaStressedMin:    1.5,
			ThetaAnxiousMin:    1.0,
		},
		CORS: CORSConfig{},
	}
}

// loadFromEnv 从环境变量中读取配置并覆盖 Config 中的值。
// 支持 STRESS_API_PORT, STRESS_SCALER_PATH, STRESS_LABELS_PATH, LOG_LEVEL 等环境变量。
func loadFromEnv(config *Config) {
	// Server 配置
	if port := os.Getenv("STRESS_API_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 && p <= 65535 {
			config.Server.Port = p
		}
	}

	if host := os.Getenv("STRESS_API_HOST"); host != "" {
		config.Server.Host = host
	}

	// 工件路径配置
	if path := os.Getenv("STRESS_SCALER_PATH"); path != "" {
		config.Artifacts.ScalerPath = path
	}

	if path := os.Getenv("STRESS_LABELS_PATH"); path != "" {
		config.Artifacts.LabelsPath = path
	}

	// 日志配置
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}
