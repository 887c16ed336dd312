package translation

import (
	"context"
	"time"
)

// Prompt 一次补全请求的完整提示词
type Prompt struct {
	// System 系统提示词（角色说明与可选的风格样例）
	System string
	// User 用户提示词（翻译指令、上下文片段与待翻译文本）
	User string
}

// ContextPair 一对已翻译的原文与译文片段
// 以块为单位配对，两侧始终同步增删
type ContextPair struct {
	Original   string
	Translated string
}

// Completer 远程补全能力
type Completer interface {
	// Complete 发送系统与用户提示词并返回补全文本
	Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error)
}

// Progress 翻译进度
type Progress struct {
	Total     int     // 总块数
	Completed int     // 已处理块数
	Current   string  // 当前处理的块
	Percent   float64 // 完成百分比
}

// Result 一次完整运行的结果
type Result struct {
	ID         string        // 运行标识
	Paragraphs []string      // 翻译后的段落
	ChunkCount int           // 总块数
	Succeeded  int           // 成功翻译的块数
	Skipped    []int         // 被跳过的块序号（从0开始）
	Duration   time.Duration // 运行耗时
}
