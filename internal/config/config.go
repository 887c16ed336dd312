package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/gasparl/openai-translation/pkg/translation"
)

// Config 保存翻译器的所有配置
type Config struct {
	APIKey              string  `mapstructure:"api_key"`               // OpenAI API密钥
	BaseURL             string  `mapstructure:"base_url"`              // 自定义API地址（可选）
	Model               string  `mapstructure:"model"`                 // 模型标识
	SourceLang          string  `mapstructure:"source_lang"`           // 源语言
	TargetLang          string  `mapstructure:"target_lang"`           // 目标语言
	SamplePath          string  `mapstructure:"sample_path"`           // 风格样例译文路径（可选）
	MaxTokensPerChunk   int     `mapstructure:"max_tokens_per_chunk"`  // 分块token上限
	MaxPreviousSegments int     `mapstructure:"max_previous_segments"` // 上下文窗口片段数
	MaxRetries          int     `mapstructure:"max_retries"`           // 最大重试次数
	Temperature         float64 `mapstructure:"temperature"`           // 补全温度
	MaxCompletionTokens int     `mapstructure:"max_completion_tokens"` // 补全输出预留token数
	RequestTimeout      int     `mapstructure:"request_timeout"`       // 请求超时时间（秒）
	Debug               bool    `mapstructure:"debug"`                 // 调试日志
}

// LoadConfig 从文件加载配置
// 未找到配置文件时使用默认值，凭证可通过环境变量提供
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// 查找家目录和当前目录中的配置文件
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName(".translator")
		v.SetConfigType("yaml")
	}

	// 读取环境变量
	v.AutomaticEnv()
	v.SetEnvPrefix("TRANSLATOR")
	_ = v.BindEnv("api_key", "TRANSLATOR_API_KEY", "OPENAI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		// 找不到配置文件时使用默认值；其余错误（格式损坏等）在启动时即失败
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath == "" {
				return nil, err
			}
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("model", "gpt-4")
	v.SetDefault("source_lang", "English")
	v.SetDefault("target_lang", "Hungarian")
	v.SetDefault("max_tokens_per_chunk", translation.DefaultChunkTokenCeiling)
	v.SetDefault("max_previous_segments", translation.DefaultMaxPreviousSegments)
	v.SetDefault("max_retries", translation.DefaultMaxRetries)
	v.SetDefault("temperature", translation.DefaultTemperature)
	v.SetDefault("max_completion_tokens", translation.DefaultMaxCompletionTokens)
	v.SetDefault("request_timeout", 300)
	v.SetDefault("debug", false)
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (set TRANSLATOR_API_KEY or OPENAI_API_KEY)")
	}
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.SourceLang == "" || c.TargetLang == "" {
		return fmt.Errorf("source_lang and target_lang are required")
	}
	if c.MaxTokensPerChunk <= 0 {
		return fmt.Errorf("max_tokens_per_chunk must be positive")
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("max_retries must be positive")
	}
	return nil
}
