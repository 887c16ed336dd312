package translation

import (
	"errors"
	"fmt"
)

// 预定义错误
var (
	// ErrNoCompleter 补全客户端未设置
	ErrNoCompleter = errors.New("completion client not configured")

	// ErrNoTokenCounter token计数器未设置
	ErrNoTokenCounter = errors.New("token counter not configured")

	// ErrEmptyDocument 空文档错误
	ErrEmptyDocument = errors.New("no paragraphs provided")

	// ErrInvalidConfig 无效配置
	ErrInvalidConfig = errors.New("invalid configuration")
)

// 错误代码常量
const (
	ErrCodeConfig       = "CONFIG_ERROR"
	ErrCodeService      = "SERVICE_ERROR"
	ErrCodeLLM          = "LLM_ERROR"
	ErrCodePromptBudget = "PROMPT_BUDGET_ERROR"
	ErrCodeUnknown      = "UNKNOWN_ERROR"
)

// TranslationError 翻译错误
type TranslationError struct {
	Code    string // 错误代码
	Message string // 错误消息
	Cause   error  // 原因
	Retry   bool   // 是否可重试
}

// Error 实现error接口
func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回原因错误
func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// IsRetryable 是否可重试
func (e *TranslationError) IsRetryable() bool {
	return e.Retry
}

// NewTranslationError 创建不可重试的翻译错误
func NewTranslationError(code, message string, cause error) *TranslationError {
	return &TranslationError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Retry:   false,
	}
}

// NewRetryableError 创建可重试错误（瞬时的服务端故障）
func NewRetryableError(code, message string, cause error) *TranslationError {
	return &TranslationError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Retry:   true,
	}
}

// IsRetryable 判断任意错误是否属于可重试的服务错误
// 未被标记为可重试的错误一律视为程序或环境故障，不再重试
func IsRetryable(err error) bool {
	var te *TranslationError
	if errors.As(err, &te) {
		return te.IsRetryable()
	}
	return false
}

// PromptTooLargeError 待翻译文本在清空上下文并最大限度截断后仍超出提示词预算
type PromptTooLargeError struct {
	TextTokens      int // 待翻译文本的token数
	MaxPromptTokens int // 提示词预算
}

// Error 实现error接口
func (e *PromptTooLargeError) Error() string {
	return fmt.Sprintf("[%s] text of %d tokens cannot fit prompt budget of %d tokens",
		ErrCodePromptBudget, e.TextTokens, e.MaxPromptTokens)
}
