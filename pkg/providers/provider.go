package providers

import "time"

// BaseConfig 提供商基础配置
type BaseConfig struct {
	// API配置
	APIKey      string `json:"api_key,omitempty"`
	APIEndpoint string `json:"api_endpoint,omitempty"`

	// 请求超时
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() BaseConfig {
	return BaseConfig{
		Timeout: 5 * time.Minute, // 支持长时间的LLM请求
	}
}
