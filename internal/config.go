package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const historyFile = ".golox_history"

// Config holds driver settings. Defaults come from the environment and
// are overridden by command line flags.
type Config struct {
	LogLevel string
	Color    bool
	History  string
}

// ConfigFromEnv reads GOLOX_LOG_LEVEL, NO_COLOR and GOLOX_HISTORY
func ConfigFromEnv() Config {
	cfg := Config{
		LogLevel: "warn",
		Color:    true,
	}
	if level, ok := os.LookupEnv("GOLOX_LOG_LEVEL"); ok && level != "" {
		cfg.LogLevel = level
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = false
	}
	if history, ok := os.LookupEnv("GOLOX_HISTORY"); ok {
		cfg.History = history
	} else if home, err := os.UserHomeDir(); err == nil {
		cfg.History = filepath.Join(home, historyFile)
	}
	return cfg
}

// Logger builds a stderr logger at the configured level
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: !c.Color,
	})
	return logger, nil
}

// Options converts the config into interpreter options
func (c Config) Options() ([]Option, error) {
	logger, err := c.Logger()
	if err != nil {
		return nil, err
	}
	return []Option{WithLogger(logger)}, nil
}
