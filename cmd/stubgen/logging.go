package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/srg/btmock/pkg/config"
)

// configureLogger creates a logger with the appropriate log level based on flags.
// It respects both --log-level and --verbose flags, with --log-level taking precedence.
// Returns a configured logger or error if the log-level is invalid.
func configureLogger(cmd *cobra.Command, verboseFlagName string) (*logrus.Logger, error) {
	cfg := &config.Config{}

	logLevelStr, _ := cmd.Flags().GetString("log-level")
	switch logLevelStr {
	case "":
		// Fall back to --verbose flag if no --log-level specified
		if verbose, _ := cmd.Flags().GetBool(verboseFlagName); verbose {
			cfg.LogLevel = "debug"
		}
	case "debug", "info", "warn", "error":
		cfg.LogLevel = logLevelStr
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", logLevelStr)
	}

	logger := cfg.NewLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	return logger, nil
}
