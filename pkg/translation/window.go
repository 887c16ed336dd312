package translation

// ContextWindow 有界的翻译历史窗口
// 按先进先出淘汰，原文侧与译文侧始终同步增删
type ContextWindow struct {
	pairs []ContextPair
}

// NewContextWindow 创建空的上下文窗口
func NewContextWindow() *ContextWindow {
	return &ContextWindow{}
}

// Append 在窗口末尾追加一对片段
func (w *ContextWindow) Append(pair ContextPair) {
	w.pairs = append(w.pairs, pair)
}

// Prune 只保留最近的maxPairs对片段
func (w *ContextWindow) Prune(maxPairs int) {
	if maxPairs < 0 {
		maxPairs = 0
	}
	if len(w.pairs) > maxPairs {
		w.pairs = w.pairs[len(w.pairs)-maxPairs:]
	}
}

// DropOldest 移除最早的n对片段
// 窗口已空时不做任何事，不报错
func (w *ContextWindow) DropOldest(n int) {
	if n <= 0 || len(w.pairs) == 0 {
		return
	}
	if n >= len(w.pairs) {
		w.pairs = w.pairs[:0]
		return
	}
	w.pairs = w.pairs[n:]
}

// Pairs 按时间顺序返回窗口中的片段对
func (w *ContextWindow) Pairs() []ContextPair {
	return w.pairs
}

// Len 返回窗口中的片段对数量
func (w *ContextWindow) Len() int {
	return len(w.pairs)
}
