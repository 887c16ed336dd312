package translation

import "fmt"

// 默认配置值
const (
	// DefaultChunkTokenCeiling 单个块的token上限
	DefaultChunkTokenCeiling = 2048

	// DefaultMaxPreviousSegments 上下文窗口保留的历史片段数
	DefaultMaxPreviousSegments = 5

	// DefaultMaxRetries 远程调用的最大尝试次数
	DefaultMaxRetries = 5

	// DefaultTemperature 补全温度
	DefaultTemperature = 0.3

	// DefaultMaxCompletionTokens 为补全输出预留的token数
	DefaultMaxCompletionTokens = 1024
)

// Config 翻译管道配置
// 显式构造并传入，不依赖任何进程级全局状态
type Config struct {
	// SourceLang 源语言名称
	SourceLang string
	// TargetLang 目标语言名称
	TargetLang string
	// Model 模型标识
	Model string
	// ChunkTokenCeiling 分块token上限
	ChunkTokenCeiling int
	// MaxPreviousSegments 上下文窗口的最大片段数
	MaxPreviousSegments int
	// MaxRetries 远程调用的最大尝试次数
	MaxRetries int
	// Temperature 补全温度
	Temperature float32
	// MaxCompletionTokens 为补全输出预留的token数
	MaxCompletionTokens int
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		SourceLang:          "English",
		TargetLang:          "Hungarian",
		Model:               "gpt-4",
		ChunkTokenCeiling:   DefaultChunkTokenCeiling,
		MaxPreviousSegments: DefaultMaxPreviousSegments,
		MaxRetries:          DefaultMaxRetries,
		Temperature:         DefaultTemperature,
		MaxCompletionTokens: DefaultMaxCompletionTokens,
	}
}

// Validate 验证配置
func (c *Config) Validate() error {
	if c.SourceLang == "" || c.TargetLang == "" {
		return fmt.Errorf("%w: source and target languages are required", ErrInvalidConfig)
	}
	if c.Model == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidConfig)
	}
	if c.ChunkTokenCeiling <= 0 {
		return fmt.Errorf("%w: chunk token ceiling must be positive", ErrInvalidConfig)
	}
	if c.MaxPreviousSegments < 0 {
		return fmt.Errorf("%w: max previous segments must not be negative", ErrInvalidConfig)
	}
	if c.MaxRetries <= 0 {
		return fmt.Errorf("%w: max retries must be positive", ErrInvalidConfig)
	}
	if c.MaxCompletionTokens <= 0 {
		return fmt.Errorf("%w: max completion tokens must be positive", ErrInvalidConfig)
	}
	return nil
}

// Clone 返回配置的副本
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
