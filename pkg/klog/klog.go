// Package klog sets up the logrus logger shared by kupo packages.
// The terminal belongs to the UI, so logs go to a file or nowhere.
package klog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DiscardOutput disables logging when used as the output.
const DiscardOutput = "-"

var osOpenFile = os.OpenFile
var osMkdirAll = os.MkdirAll

// New creates a logger writing to output with the given level and format.
// The returned closer releases the log file.
func New(level, format, output string) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("invalid log format %q", format)
	}

	if output == "" || output == DiscardOutput {
		logger.SetOutput(io.Discard)
		return logger, io.NopCloser(nil), nil
	}
	if err = osMkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := osOpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return Discard()
	}
	return l
}
