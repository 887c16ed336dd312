package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Pipeline 翻译管道
// 严格顺序执行：每个块的提示词依赖之前块产生的上下文窗口状态，
// 窗口与累积输出只在单一控制流中被修改
type Pipeline struct {
	config    *Config
	options   pipelineOptions
	segmenter *Segmenter
	builder   *PromptBuilder
	client    *Client
	logger    *zap.Logger
}

// New 创建翻译管道
func New(config *Config, opts ...Option) (*Pipeline, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	options := pipelineOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if options.completer == nil {
		return nil, ErrNoCompleter
	}
	if options.counter == nil {
		return nil, ErrNoTokenCounter
	}
	if options.logger == nil {
		options.logger = zap.NewNop()
	}

	config = config.Clone()

	return &Pipeline{
		config:    config,
		options:   options,
		segmenter: NewSegmenter(options.counter),
		builder: NewPromptBuilder(options.counter,
			config.SourceLang, config.TargetLang, config.Model, config.MaxCompletionTokens),
		client: NewClient(options.completer,
			config.MaxRetries, config.MaxCompletionTokens, config.Temperature,
			options.sleep, options.logger),
		logger: options.logger,
	}, nil
}

// Run 翻译整篇文档
// 块级失败（重试耗尽或提示词超预算）被记录并跳过，该块不进入输出
// 也不进入上下文窗口，运行整体不中止
func (p *Pipeline) Run(ctx context.Context, paragraphs []string, sampleStyle string) (*Result, error) {
	if len(paragraphs) == 0 {
		return nil, ErrEmptyDocument
	}

	startTime := time.Now()
	result := &Result{
		ID: uuid.New().String(),
	}

	p.logger.Info("splitting document into chunks",
		zap.Int("paragraphs", len(paragraphs)),
		zap.Int("chunk_token_ceiling", p.config.ChunkTokenCeiling))
	chunks := p.segmenter.Segment(paragraphs, p.config.ChunkTokenCeiling)
	result.ChunkCount = len(chunks)

	// 窗口属于单次运行，运行结束即丢弃
	window := NewContextWindow()

	for i, chunk := range chunks {
		p.reportProgress(i, len(chunks))
		p.logger.Info("translating chunk",
			zap.Int("chunk", i+1),
			zap.Int("total", len(chunks)))

		translated, err := p.translateChunk(ctx, chunk, window, sampleStyle)
		if err != nil {
			p.logger.Error("failed to translate chunk, skipping",
				zap.Int("chunk", i+1),
				zap.Error(err))
			result.Skipped = append(result.Skipped, i)
			continue
		}

		window.Append(ContextPair{Original: chunk, Translated: translated})
		window.Prune(p.config.MaxPreviousSegments)

		result.Paragraphs = append(result.Paragraphs, strings.Split(translated, "\n")...)
		result.Succeeded++
	}

	p.reportProgress(len(chunks), len(chunks))
	result.Duration = time.Since(startTime)

	p.logger.Info("translation run completed",
		zap.String("run_id", result.ID),
		zap.Int("chunks", result.ChunkCount),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("skipped", len(result.Skipped)),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// translateChunk 翻译单个块
func (p *Pipeline) translateChunk(ctx context.Context, chunk string, window *ContextWindow, sampleStyle string) (string, error) {
	prompt, err := p.builder.Build(chunk, window, sampleStyle)
	if err != nil {
		return "", err
	}
	return p.client.Translate(ctx, prompt)
}

// reportProgress 上报进度
func (p *Pipeline) reportProgress(completed, total int) {
	if p.options.progressCallback == nil || total == 0 {
		return
	}
	progress := &Progress{
		Total:     total,
		Completed: completed,
		Percent:   float64(completed) / float64(total) * 100,
	}
	if completed < total {
		progress.Current = fmt.Sprintf("chunk_%d", completed+1)
	} else {
		progress.Current = "completed"
	}
	p.options.progressCallback(progress)
}

// GetConfig 获取当前配置
func (p *Pipeline) GetConfig() *Config {
	return p.config.Clone()
}
