package translation

import (
	"time"

	"go.uber.org/zap"

	"github.com/gasparl/openai-translation/pkg/tokenizer"
)

// Option 管道配置选项函数
type Option func(*pipelineOptions)

// pipelineOptions 管道内部选项
type pipelineOptions struct {
	completer        Completer
	counter          tokenizer.Counter
	logger           *zap.Logger
	sleep            func(time.Duration)
	progressCallback func(*Progress)
}

// WithCompleter 设置远程补全客户端
func WithCompleter(completer Completer) Option {
	return func(o *pipelineOptions) {
		o.completer = completer
	}
}

// WithTokenCounter 设置token计数器
func WithTokenCounter(counter tokenizer.Counter) Option {
	return func(o *pipelineOptions) {
		o.counter = counter
	}
}

// WithLogger 设置logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *pipelineOptions) {
		o.logger = logger
	}
}

// WithSleep 设置退避等待函数（测试中注入虚拟时钟）
func WithSleep(sleep func(time.Duration)) Option {
	return func(o *pipelineOptions) {
		o.sleep = sleep
	}
}

// WithProgressCallback 设置进度回调函数
func WithProgressCallback(callback func(*Progress)) Option {
	return func(o *pipelineOptions) {
		o.progressCallback = callback
	}
}
