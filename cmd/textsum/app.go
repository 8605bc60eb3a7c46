package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"textsum/internal/config"
	"textsum/internal/domain"
	"textsum/internal/logging"
	"textsum/internal/segmenter"
	"textsum/internal/service"
	"textsum/internal/summarizer"
)

const logLevelEnv = "TEXTSUM_LOG_LEVEL"

// appFlags are shared by every command that summarizes.
type appFlags struct {
	cfgPath      string
	detector     string
	preset       string
	format       string
	ratio        float64
	minSentences int
}

func (f *appFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.cfgPath, "config", "c", "", "config file (default ./textsum.yaml or ~/.config/textsum/config.yaml)")
	cmd.Flags().StringVar(&f.detector, "detector", "", "sentence detector: rule or punkt")
	cmd.Flags().StringVar(&f.preset, "preset", "", "scoring preset: rich or basic")
	cmd.Flags().Float64Var(&f.ratio, "ratio", 0, "fraction of sentences to keep, in (0, 1]")
	cmd.Flags().IntVar(&f.minSentences, "min-sentences", 0, "minimum number of sentences to keep")
}

// loadConfig reads the config file and applies flags the user set.
func (f *appFlags) loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	var cfg *config.AppConfig
	var err error
	if f.cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(f.cfgPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("detector") {
		cfg.Segmenter.Type = f.detector
	}
	if flags.Changed("preset") {
		cfg.Summarizer.Preset = f.preset
	}
	if flags.Changed("ratio") {
		cfg.Summarizer.Ratio = &f.ratio
	}
	if flags.Changed("min-sentences") {
		cfg.Summarizer.MinSentences = &f.minSentences
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Output.Format = f.format
	}
	if lvl := os.Getenv(logLevelEnv); lvl != "" {
		cfg.Log.Level = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) *logging.Logger {
	return logging.NewWithWriters(level, os.Stderr, os.Stderr)
}

// buildService assembles the detector, summarizer and service from cfg.
func buildService(cfg *config.AppConfig, notice service.NoticeFunc, logger *logging.Logger) (*service.SummaryServiceImpl, error) {
	detector, err := segmenter.New(cfg.Segmenter.Type)
	if err != nil {
		return nil, err
	}
	preset, err := summarizer.PresetByName(cfg.Summarizer.Preset)
	if err != nil {
		return nil, err
	}
	opts := cfg.Summarizer.Options(preset.Options)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("detector=%s preset=%s ratio=%.2f min=%d", detector.Name(), preset.Name, opts.Ratio, opts.MinSentences)
	engine := summarizer.NewFrequencySummarizer(detector, preset)
	return service.NewSummaryService(engine, opts, cfg.Batch.Concurrency, notice, logger), nil
}

// loadInputs reads files matched by args. No args, or "-", reads stdin.
func loadInputs(svc *service.SummaryServiceImpl, args []string, stdin io.Reader) ([]domain.Document, error) {
	var paths []string
	var docs []domain.Document
	readStdin := len(args) == 0
	for _, a := range args {
		if a == "-" {
			readStdin = true
			continue
		}
		paths = append(paths, a)
	}
	if readStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		docs = append(docs, service.NewDocument("-", string(data)))
	}
	if len(paths) > 0 {
		fileDocs, err := svc.LoadDocuments(paths)
		if err != nil {
			return nil, err
		}
		docs = append(docs, fileDocs...)
	}
	return docs, nil
}
