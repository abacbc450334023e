package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chares8191/xrandr-utils/internal/pkg/config"
	"github.com/chares8191/xrandr-utils/internal/pkg/logger"
)

// Environment variable names
const (
	EnvXrandrPath     = "XRANDR_UTILS_XRANDR_PATH"
	EnvEdidDecodePath = "XRANDR_UTILS_EDID_DECODE_PATH"
	EnvLogLevel       = "XRANDR_UTILS_LOG_LEVEL"
	EnvLogType        = "XRANDR_UTILS_LOG_TYPE"
	EnvLogFile        = "XRANDR_UTILS_LOG_FILE"
)

func setupLogger() (logger.Logger, error) {
	settings := readLoggerSettingsFromEnv()

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readLoggerSettingsFromEnv reads logger configuration from environment
// variables. Defaults are error level on the console backend. Setting
// XRANDR_UTILS_LOG_FILE selects file logging with default rotation bounds.
func readLoggerSettingsFromEnv() *config.LoggerSettings {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelError,
		LogType:  config.LogTypeConsole,
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		settings.LogLevel = level
	}
	if logType := os.Getenv(EnvLogType); logType != "" {
		settings.LogType = logType
	}
	if filePath := os.Getenv(EnvLogFile); filePath != "" {
		settings.FilePath = filePath
		settings.LogType = config.LogTypeFile
		settings.MaxSize = config.DefaultLogMaxSize
		settings.MaxBackups = config.DefaultLogMaxBackups
		settings.MaxAge = config.DefaultLogMaxAge
	}

	return settings
}

// ReadToolSettingsFromEnv reads tool locations from environment variables,
// falling back to the default executable names.
func ReadToolSettingsFromEnv() *config.ToolSettings {
	settings := config.NewToolSettings()

	if path := os.Getenv(EnvXrandrPath); path != "" {
		settings.XrandrPath = path
	}
	if path := os.Getenv(EnvEdidDecodePath); path != "" {
		settings.EdidDecodePath = path
	}

	return settings
}

// requireArgs builds a positional argument validator that reports the first
// missing argument by name. Extra arguments are tolerated.
func requireArgs(names ...string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return fmt.Errorf("missing argument: %s", names[len(args)])
		}
		return nil
	}
}

// rejectArgs refuses stray positional arguments on commands that only take flags.
func rejectArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unknown option: %s", args[0])
	}
	return nil
}

// shouldSkipMapValue reports whether a map entry is dropped under --filtered.
func shouldSkipMapValue(value string, filtered bool) bool {
	if !filtered {
		return false
	}
	return strings.TrimSpace(value) == ""
}
