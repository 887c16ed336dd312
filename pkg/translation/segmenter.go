package translation

import (
	"strings"

	"github.com/gasparl/openai-translation/pkg/tokenizer"
)

// Segmenter 按token上限将段落贪心打包成块
type Segmenter struct {
	counter tokenizer.Counter
}

// NewSegmenter 创建分块器
func NewSegmenter(counter tokenizer.Counter) *Segmenter {
	return &Segmenter{counter: counter}
}

// Segment 将段落序列切分为token数不超过ceiling的块
// 空白段落被跳过，段落顺序保持不变，相邻段落以换行符连接
// 单个段落超过上限时自成一块，该块的token数可能超过ceiling
func (s *Segmenter) Segment(paragraphs []string, ceiling int) []string {
	var chunks []string
	current := ""

	for _, paragraph := range paragraphs {
		if strings.TrimSpace(paragraph) == "" {
			continue
		}

		tentative := current + paragraph + "\n"
		if s.counter.Count(tentative) > ceiling && current != "" {
			chunks = append(chunks, strings.TrimSpace(current))
			current = paragraph + "\n"
		} else {
			current = tentative
		}
	}

	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}
