package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 256, cfg.JournalCapacity)
	assert.Equal(t, "table", cfg.ReportFormat)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_NewLogger(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     logrus.Level
	}{
		{name: "creates logger with debug level", logLevel: "debug", want: logrus.DebugLevel},
		{name: "creates logger with info level", logLevel: "info", want: logrus.InfoLevel},
		{name: "creates logger with warn level", logLevel: "warn", want: logrus.WarnLevel},
		{name: "creates logger with error level", logLevel: "error", want: logrus.ErrorLevel},
		{name: "empty level stays silent", logLevel: "", want: logrus.PanicLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}

			logger := cfg.NewLogger()

			assert.NotNil(t, logger)
			assert.Equal(t, tt.want, logger.GetLevel())

			formatter, ok := logger.Formatter.(*logrus.TextFormatter)
			assert.True(t, ok)
			assert.True(t, formatter.FullTimestamp)
			assert.Equal(t, time.RFC3339, formatter.TimestampFormat)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "table format is valid",
			cfg:  Config{LogLevel: "info", ReportFormat: "table"},
		},
		{
			name: "json format is valid",
			cfg:  Config{LogLevel: "debug", ReportFormat: "json"},
		},
		{
			name: "yaml format is valid with disabled journal",
			cfg:  Config{ReportFormat: "yaml", JournalCapacity: 0},
		},
		{
			name:    "unknown format",
			cfg:     Config{ReportFormat: "xml"},
			wantErr: "invalid report format 'xml'",
		},
		{
			name:    "unknown log level",
			cfg:     Config{LogLevel: "loud", ReportFormat: "table"},
			wantErr: "invalid log level: loud",
		},
		{
			name:    "negative journal capacity",
			cfg:     Config{ReportFormat: "table", JournalCapacity: -1},
			wantErr: "journal capacity must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ZeroValues(t *testing.T) {
	cfg := &Config{}

	logger := cfg.NewLogger()
	assert.NotNil(t, logger)
	assert.Equal(t, logrus.PanicLevel, logger.GetLevel())
	assert.Equal(t, 0, cfg.JournalCapacity)
	assert.Equal(t, "", cfg.ReportFormat)
}

func BenchmarkDefaultConfig(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = DefaultConfig()
	}
}
