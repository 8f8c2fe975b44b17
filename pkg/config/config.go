package config

import (
	"fmt"
	"time"

	"github.com/mcuadros/go-defaults"
	"github.com/sirupsen/logrus"
)

// ReportFormats lists the accepted values for Config.ReportFormat.
var ReportFormats = []string{"table", "json", "yaml"}

// Config holds registry and tooling configuration
type Config struct {
	LogLevel        string `json:"log_level" default:"info"`
	JournalCapacity int    `json:"journal_capacity" default:"256"`
	ReportFormat    string `json:"report_format" default:"table"`
}

// DefaultConfig returns default configuration values
func DefaultConfig() *Config {
	cfg := &Config{}
	defaults.SetDefaults(cfg)
	return cfg
}

// Level parses LogLevel. An empty level maps to logrus.PanicLevel, which keeps
// the logger silent during normal operation.
func (c *Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.PanicLevel, nil
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.PanicLevel, fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return lvl, nil
}

// Validate checks that every field holds an accepted value.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.JournalCapacity < 0 {
		return fmt.Errorf("journal capacity must be >= 0, got %d", c.JournalCapacity)
	}
	for _, f := range ReportFormats {
		if c.ReportFormat == f {
			return nil
		}
	}
	return fmt.Errorf("invalid report format '%s': must be one of %v", c.ReportFormat, ReportFormats)
}

// NewLogger creates a configured logger instance.
// An unparsable level falls back to PanicLevel; call Validate first to surface it.
func (c *Config) NewLogger() *logrus.Logger {
	lvl, _ := c.Level()

	logger := logrus.New()
	logger.SetLevel(lvl)

	// Use structured logging format
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	return logger
}
