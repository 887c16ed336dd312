package openai

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/gasparl/openai-translation/pkg/providers"
	"github.com/gasparl/openai-translation/pkg/translation"
)

// Config OpenAI配置
type Config struct {
	providers.BaseConfig
	Model string `json:"model"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		BaseConfig: providers.DefaultConfig(),
		Model:      "gpt-4",
	}
}

// Provider OpenAI提供商，实现translation.Completer
type Provider struct {
	config Config
	client *openai.Client
	logger *zap.Logger
}

// New 创建新的OpenAI提供商
func New(config Config, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.APIEndpoint != "" {
		// go-openai 的 API 后缀以斜杠开头，去掉结尾斜杠避免双斜杠
		clientConfig.BaseURL = strings.TrimSuffix(config.APIEndpoint, "/")
	}
	if config.Timeout > 0 {
		clientConfig.HTTPClient.Timeout = config.Timeout
	}

	logger.Debug("creating OpenAI client",
		zap.String("model", config.Model),
		zap.String("base_url", clientConfig.BaseURL),
		zap.String("api_key_masked", maskAuthToken(config.APIKey)),
		zap.Duration("timeout", config.Timeout))

	return &Provider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
		logger: logger,
	}
}

// Complete 发送聊天补全请求并返回补全文本
// OpenAI API层面的错误（限流、超时、5xx等）被标记为可重试的服务错误，
// 其余错误原样上抛，由调用方视为不可重试
func (p *Provider) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	p.logger.Debug("sending completion request",
		zap.String("model", p.config.Model),
		zap.Int("max_tokens", maxTokens),
		zap.Float32("temperature", temperature),
		zap.Int("system_prompt_length", len(system)),
		zap.Int("user_prompt_length", len(user)))

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", translation.NewRetryableError(translation.ErrCodeService,
			"completion returned no choices", nil)
	}

	return resp.Choices[0].Message.Content, nil
}

// Model 返回配置的模型标识
func (p *Provider) Model() string {
	return p.config.Model
}

// classifyError 区分服务级错误与其余故障
// API层错误与网络瞬时故障均视为可重试，其余原样上抛
func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return translation.NewRetryableError(translation.ErrCodeService, "OpenAI API error", err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return translation.NewRetryableError(translation.ErrCodeService, "OpenAI request error", err)
	}

	if isNetworkError(err) {
		return translation.NewRetryableError(translation.ErrCodeService, "network error", err)
	}

	return err
}

// isNetworkError 判断是否为网络瞬时错误（超时、连接失败等）
func isNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// maskAuthToken 遮蔽认证令牌，只显示前4位和后4位
func maskAuthToken(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
