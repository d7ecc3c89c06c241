package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// FetchConfig holds the ambient settings for a sound fetch run.
// The note list, URL template and target directory are fixed and live in
// the downloader package; nothing here changes what gets fetched or where.
type FetchConfig struct {
	LogLevel     string // Logging level (DEBUG, INFO, WARN, ERROR)
	ShowProgress bool   // Render a progress bar on stderr while bodies download
}

// LoadConfig loads the configuration from the environment, reading a .env
// file first if one is present.
func LoadConfig() (*FetchConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	validator := NewEnvValidator()

	showProgress, err := validator.GetShowProgress()
	if err != nil {
		return nil, fmt.Errorf("environment validation failed: %w", err)
	}

	config := &FetchConfig{
		LogLevel:     validator.GetLogLevel(),
		ShowProgress: showProgress,
	}

	return config, nil
}

// Validate performs additional validation on the loaded configuration
func (c *FetchConfig) Validate() error {
	validLogLevels := map[string]bool{
		"DEBUG": true,
		"INFO":  true,
		"WARN":  true,
		"ERROR": true,
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s. Valid levels are: DEBUG, INFO, WARN, ERROR", c.LogLevel)
	}

	return nil
}

// ZapLevel maps LogLevel onto the zap level. Unknown values fall back to info.
func (c *FetchConfig) ZapLevel() zapcore.Level {
	switch c.LogLevel {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
