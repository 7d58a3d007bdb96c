package config

import (
	"strings"

	"github.com/filetug/kupo/pkg/klog"
	"github.com/filetug/kupo/pkg/preview"
)

const DefaultStyle = "dracula"

// ApplyDefaults fills zero values and normalizes case. Explicit values are kept.
func ApplyDefaults(cfg *Config) {
	applyPreviewDefaults(&cfg.Preview)
	applyFilterDefaults(&cfg.Filter)
	applyLoggingDefaults(&cfg.Logging)
}

func applyPreviewDefaults(cfg *PreviewConfig) {
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = preview.DefaultMaxBytes
	}
	if cfg.Style == "" {
		cfg.Style = DefaultStyle
	}
}

func applyFilterDefaults(cfg *FilterConfig) {
	if cfg.Syntax == "" {
		cfg.Syntax = "regex"
	}
	cfg.Syntax = strings.ToLower(cfg.Syntax)
}

func applyLoggingDefaults(cfg *LoggingConfig) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	cfg.Level = strings.ToLower(cfg.Level)
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Output == "" {
		cfg.Output = klog.DiscardOutput
	}
}
