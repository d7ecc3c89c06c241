package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	envLogLevel     = "LOG_LEVEL"
	envShowProgress = "SHOW_PROGRESS"

	defaultLogLevel = "INFO"
)

// EnvValidator reads and checks the optional environment variables
type EnvValidator struct{}

// NewEnvValidator creates a new environment validator instance
func NewEnvValidator() *EnvValidator {
	return &EnvValidator{}
}

// GetLogLevel returns LOG_LEVEL upper-cased, or INFO when unset
func (e *EnvValidator) GetLogLevel() string {
	level := strings.ToUpper(strings.TrimSpace(os.Getenv(envLogLevel)))
	if level == "" {
		return defaultLogLevel
	}
	return level
}

// GetShowProgress parses SHOW_PROGRESS. An unset variable means false.
func (e *EnvValidator) GetShowProgress() (bool, error) {
	raw := strings.TrimSpace(os.Getenv(envShowProgress))
	if raw == "" {
		return false, nil
	}

	show, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got: %s", envShowProgress, raw)
	}

	return show, nil
}
