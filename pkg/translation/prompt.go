package translation

import (
	"fmt"
	"strings"

	"github.com/gasparl/openai-translation/pkg/tokenizer"
)

// 模型上下文长度
const (
	defaultModelTokens = 8192
	largeModelTokens   = 32768
)

// maxModelTokens 根据模型标识返回上下文长度
// 大上下文变体（如 gpt-4-32k）使用更大的上限
func maxModelTokens(model string) int {
	if strings.Contains(model, "32k") {
		return largeModelTokens
	}
	return defaultModelTokens
}

// PromptBuilder 在token预算内组装提示词
// 预算不足时优先丢弃最旧的上下文片段，其次才截断当前文本
type PromptBuilder struct {
	counter             tokenizer.Counter
	sourceLang          string
	targetLang          string
	model               string
	maxCompletionTokens int
}

// NewPromptBuilder 创建提示词构建器
func NewPromptBuilder(counter tokenizer.Counter, sourceLang, targetLang, model string, maxCompletionTokens int) *PromptBuilder {
	return &PromptBuilder{
		counter:             counter,
		sourceLang:          sourceLang,
		targetLang:          targetLang,
		model:               model,
		maxCompletionTokens: maxCompletionTokens,
	}
}

// MaxPromptTokens 返回提示词的token预算
func (pb *PromptBuilder) MaxPromptTokens() int {
	return maxModelTokens(pb.model) - pb.maxCompletionTokens
}

// buildSystemPrompt 组装系统提示词
// sampleStyle非空时原样注入，永不截断
func (pb *PromptBuilder) buildSystemPrompt(sampleStyle string) string {
	prompt := fmt.Sprintf(
		"You are a professional translator proficient in %s and %s."+
			" Your task is to translate the text with an emphasis on formal equivalence."+
			" Please preserve the original meaning, style, and sentence structure as closely as possible.",
		pb.sourceLang, pb.targetLang)

	if sampleStyle != "" {
		prompt += fmt.Sprintf("\n\nUse the following sample translation as a style guide:\n\n%s\n\n", sampleStyle)
	}

	return prompt
}

// buildUserPrompt 组装用户提示词
func (pb *PromptBuilder) buildUserPrompt(text string, window *ContextWindow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Translate the following text from %s to %s with emphasis on formal equivalence.",
		pb.sourceLang, pb.targetLang)

	if window != nil && window.Len() > 0 {
		b.WriteString("\n\nPrevious segments for context (original and translation):\n")
		for _, pair := range window.Pairs() {
			fmt.Fprintf(&b, "\nOriginal: %s\nTranslation: %s\n", pair.Original, pair.Translated)
		}
	}

	fmt.Fprintf(&b, "\n\nText to translate:\n\n%s", text)
	return b.String()
}

// Build 构建满足token预算的提示词
// 超出预算时先逐对丢弃窗口中最旧的上下文，窗口清空后对text做token级截断，
// 截断余量不足时返回PromptTooLargeError
func (pb *PromptBuilder) Build(text string, window *ContextWindow, sampleStyle string) (Prompt, error) {
	maxPromptTokens := pb.MaxPromptTokens()

	systemPrompt := pb.buildSystemPrompt(sampleStyle)
	systemTokens := pb.counter.Count(systemPrompt)

	userPrompt := pb.buildUserPrompt(text, window)
	totalTokens := systemTokens + pb.counter.Count(userPrompt)

	for totalTokens > maxPromptTokens {
		if window != nil && window.Len() > 0 {
			// 先牺牲最旧的上下文，保住当前块的完整性
			window.DropOldest(1)
			userPrompt = pb.buildUserPrompt(text, window)
			totalTokens = systemTokens + pb.counter.Count(userPrompt)
			continue
		}

		// 上下文已空，只能截断待翻译文本本身
		skeleton := pb.buildUserPrompt("", window)
		allowedTextTokens := maxPromptTokens - systemTokens - pb.counter.Count(skeleton)
		if allowedTextTokens <= 0 {
			return Prompt{}, &PromptTooLargeError{
				TextTokens:      pb.counter.Count(text),
				MaxPromptTokens: maxPromptTokens,
			}
		}

		text = pb.counter.Truncate(text, allowedTextTokens)
		userPrompt = pb.buildUserPrompt(text, window)
		totalTokens = systemTokens + pb.counter.Count(userPrompt)

		// 截断是终态：余量计算已保证结果可容纳，再超出即失败
		if totalTokens > maxPromptTokens {
			return Prompt{}, &PromptTooLargeError{
				TextTokens:      pb.counter.Count(text),
				MaxPromptTokens: maxPromptTokens,
			}
		}
	}

	return Prompt{System: systemPrompt, User: userPrompt}, nil
}
