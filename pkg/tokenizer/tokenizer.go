package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Counter 计数器接口，供翻译核心注入使用
type Counter interface {
	// Count 返回文本的token数量
	Count(text string) int

	// Truncate 将文本截断到最多maxTokens个token
	Truncate(text string, maxTokens int) string
}

// TiktokenCounter 基于tiktoken的token计数器
type TiktokenCounter struct {
	model    string
	encoding *tiktoken.Tiktoken
}

// New 根据模型名称创建token计数器
// 未知模型回退到cl100k_base编码
func New(model string) (*TiktokenCounter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			return nil, fmt.Errorf("failed to load tokenizer encoding: %w", err)
		}
	}

	return &TiktokenCounter{
		model:    model,
		encoding: encoding,
	}, nil
}

// Count 返回文本的token数量
func (c *TiktokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(c.encoding.Encode(text, nil, nil))
}

// Truncate 在token级别截断文本
// 先编码再按token切片后解码，保证截断结果可以重新编码回同样的token序列
func (c *TiktokenCounter) Truncate(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}

	tokens := c.encoding.Encode(text, nil, nil)
	if len(tokens) <= maxTokens {
		return text
	}

	return c.encoding.Decode(tokens[:maxTokens])
}

// Model 返回计数器绑定的模型名称
func (c *TiktokenCounter) Model() string {
	return c.model
}
