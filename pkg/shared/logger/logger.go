package logger

import (
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/scan-io-git/scanio-shellcheck/pkg/shared/config"
)

// NewLogger creates a named logger writing to stderr, so stdout stays free for lint results.
func NewLogger(config *config.Config, name string) hclog.Logger {
	return NewLoggerWithOutput(config, name, os.Stderr)
}

// NewLoggerWithOutput creates a named logger writing to output.
func NewLoggerWithOutput(config *config.Config, name string, output io.Writer) hclog.Logger {
	var logLevel hclog.Level

	if config != nil && config.Logger.Level != "" {
		logLevel = getLogLevel(strings.ToUpper(config.Logger.Level))
	} else {
		// env variables has the second priority
		logLevelEnv := os.Getenv("SCANIO_SHELLCHECK_LOG_LEVEL")
		logLevel = getLogLevel(strings.ToUpper(logLevelEnv))
	}

	opts := &hclog.LoggerOptions{
		Name:        name,
		DisableTime: true,
		Output:      output,
		Level:       logLevel,
	}
	if config != nil {
		opts.JSONFormat = config.Logger.JSONFormat
		opts.IncludeLocation = config.Logger.IncludeLocation
	}

	logger := hclog.New(opts)

	return logger
}

func getLogLevel(levelStr string) hclog.Level {
	switch levelStr {
	case "TRACE":
		return hclog.Trace
	case "DEBUG":
		return hclog.Debug
	case "INFO":
		return hclog.Info
	case "WARN":
		return hclog.Warn
	case "ERROR":
		return hclog.Error
	default:
		return hclog.Info
	}
}
