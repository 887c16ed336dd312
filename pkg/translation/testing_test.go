package translation

import (
	"context"
	"strings"
	"time"
)

// wordCounter 按空白分词计数的确定性计数器，测试专用
type wordCounter struct{}

func (wordCounter) Count(text string) int {
	return len(strings.Fields(text))
}

func (wordCounter) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	words := strings.Fields(text)
	if len(words) <= maxTokens {
		return text
	}
	return strings.Join(words[:maxTokens], " ")
}

// scriptedCompleter 按调用顺序返回预设结果的补全器
type scriptedCompleter struct {
	results []completionResult
	calls   int
	prompts []Prompt
}

type completionResult struct {
	text string
	err  error
}

func (c *scriptedCompleter) Complete(_ context.Context, system, user string, _ int, _ float32) (string, error) {
	c.prompts = append(c.prompts, Prompt{System: system, User: user})
	if c.calls >= len(c.results) {
		c.calls++
		return "", NewTranslationError(ErrCodeUnknown, "no scripted result", nil)
	}
	result := c.results[c.calls]
	c.calls++
	return result.text, result.err
}

// fakeSleep 记录退避等待时长而不真正等待
type fakeSleep struct {
	waits []time.Duration
}

func (s *fakeSleep) Sleep(d time.Duration) {
	s.waits = append(s.waits, d)
}
