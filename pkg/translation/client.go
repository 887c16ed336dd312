package translation

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client 带重试与指数退避的翻译客户端
// 退避等待通过注入的sleep函数执行，测试中可替换为虚拟时钟
type Client struct {
	completer   Completer
	maxRetries  int
	maxTokens   int
	temperature float32
	sleep       func(time.Duration)
	logger      *zap.Logger
}

// NewClient 创建翻译客户端
func NewClient(completer Completer, maxRetries, maxTokens int, temperature float32, sleep func(time.Duration), logger *zap.Logger) *Client {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		completer:   completer,
		maxRetries:  maxRetries,
		maxTokens:   maxTokens,
		temperature: temperature,
		sleep:       sleep,
		logger:      logger,
	}
}

// Translate 调用远程补全并返回去除首尾空白的译文
// 可重试的服务错误按 2^attempt 秒指数退避，最多尝试maxRetries次；
// 其余错误视为程序或环境故障，立即失败不重试
func (c *Client) Translate(ctx context.Context, prompt Prompt) (string, error) {
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		result, err := c.completer.Complete(ctx, prompt.System, prompt.User, c.maxTokens, c.temperature)
		if err == nil {
			return strings.TrimSpace(result), nil
		}

		if !IsRetryable(err) {
			c.logger.Error("unexpected completion error, not retrying", zap.Error(err))
			return "", NewTranslationError(ErrCodeUnknown, "completion failed", err)
		}

		lastErr = err
		c.logger.Error("completion service error", zap.Int("attempt", attempt+1), zap.Error(err))

		if attempt < c.maxRetries-1 {
			wait := time.Duration(1<<uint(attempt)) * time.Second
			c.logger.Info("retrying after backoff", zap.Duration("wait", wait))
			c.sleep(wait)
		}
	}

	return "", NewTranslationError(ErrCodeLLM, "retries exhausted", lastErr)
}
