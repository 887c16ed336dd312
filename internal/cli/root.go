package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gasparl/openai-translation/internal/config"
	"github.com/gasparl/openai-translation/internal/document"
	"github.com/gasparl/openai-translation/internal/logger"
	"github.com/gasparl/openai-translation/pkg/providers"
	openaiprovider "github.com/gasparl/openai-translation/pkg/providers/openai"
	"github.com/gasparl/openai-translation/pkg/tokenizer"
	"github.com/gasparl/openai-translation/pkg/translation"
)

var (
	// 命令行标志变量
	cfgFile    string
	sourceLang string
	targetLang string
	modelName  string
	samplePath string
	debugMode  bool
	noProgress bool // 禁用进度条（脚本或CI环境）
)

// NewRootCommand 创建根命令
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "translator [flags] input_file output_file",
		Short: "Token-budgeted document translator with sliding context",
		Long: `Translates a long plain-text document chunk by chunk through the OpenAI API.
Each chunk is sent together with a bounded window of previously translated
segments so the translation stays consistent across chunk boundaries, and
every prompt is adaptively shrunk to fit the model's token budget.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, buildDate),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslation(args[0], args[1])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.translator.yaml)")
	rootCmd.PersistentFlags().StringVarP(&sourceLang, "source", "s", "", "source language")
	rootCmd.PersistentFlags().StringVarP(&targetLang, "target", "t", "", "target language")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "model name")
	rootCmd.PersistentFlags().StringVar(&samplePath, "sample", "", "sample translation file used as a style guide")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")

	return rootCmd
}

// runTranslation 执行完整的翻译流程
func runTranslation(inputPath, outputPath string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewLogger(cfg.Debug)
	defer func() {
		_ = log.Sync()
	}()

	counter, err := tokenizer.New(cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to initialize tokenizer: %w", err)
	}

	provider := openaiprovider.New(openaiprovider.Config{
		BaseConfig: providers.BaseConfig{
			APIKey:      cfg.APIKey,
			APIEndpoint: cfg.BaseURL,
			Timeout:     time.Duration(cfg.RequestTimeout) * time.Second,
		},
		Model: cfg.Model,
	}, log)

	opts := []translation.Option{
		translation.WithCompleter(provider),
		translation.WithTokenCounter(counter),
		translation.WithLogger(log),
	}

	var bar *pterm.ProgressbarPrinter
	if !noProgress {
		opts = append(opts, translation.WithProgressCallback(func(p *translation.Progress) {
			if bar == nil {
				bar, _ = pterm.DefaultProgressbar.
					WithTotal(p.Total).
					WithTitle("Translating").
					Start()
			}
			if p.Completed > bar.Current {
				bar.Add(p.Completed - bar.Current)
			}
			bar.UpdateTitle(p.Current)
			if p.Completed >= p.Total {
				_, _ = bar.Stop()
			}
		}))
	}

	pipeline, err := translation.New(&translation.Config{
		SourceLang:          cfg.SourceLang,
		TargetLang:          cfg.TargetLang,
		Model:               cfg.Model,
		ChunkTokenCeiling:   cfg.MaxTokensPerChunk,
		MaxPreviousSegments: cfg.MaxPreviousSegments,
		MaxRetries:          cfg.MaxRetries,
		Temperature:         float32(cfg.Temperature),
		MaxCompletionTokens: cfg.MaxCompletionTokens,
	}, opts...)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	log.Info("reading input file", zap.String("path", inputPath))
	paragraphs, err := document.ReadParagraphs(inputPath)
	if err != nil {
		return err
	}

	sampleStyle, err := loadSampleStyle(cfg.SamplePath, log)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(context.Background(), paragraphs, sampleStyle)
	if err != nil {
		return fmt.Errorf("translation run failed: %w", err)
	}

	log.Info("writing output file", zap.String("path", outputPath))
	if err := document.WriteParagraphs(result.Paragraphs, outputPath); err != nil {
		return err
	}

	log.Info("translation completed",
		zap.String("output", outputPath),
		zap.Int("chunks", result.ChunkCount),
		zap.Int("skipped", len(result.Skipped)))
	return nil
}

// applyFlagOverrides 用命令行标志覆盖配置文件的值
func applyFlagOverrides(cfg *config.Config) {
	if sourceLang != "" {
		cfg.SourceLang = sourceLang
	}
	if targetLang != "" {
		cfg.TargetLang = targetLang
	}
	if modelName != "" {
		cfg.Model = modelName
	}
	if samplePath != "" {
		cfg.SamplePath = samplePath
	}
	if debugMode {
		cfg.Debug = true
	}
}

// loadSampleStyle 读取可选的风格样例译文
func loadSampleStyle(path string, log *zap.Logger) (string, error) {
	if path == "" {
		return "", nil
	}
	log.Info("reading sample translation file", zap.String("path", path))
	paragraphs, err := document.ReadParagraphs(path)
	if err != nil {
		return "", err
	}
	return strings.Join(paragraphs, "\n"), nil
}
