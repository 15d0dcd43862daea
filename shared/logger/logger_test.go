package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"summitbooking/config"
	"summitbooking/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat to be %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.InfoLevel, zerolog.GlobalLevel())
	}
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{
			name:     "debug level",
			logLevel: "debug",
			expected: zerolog.DebugLevel,
		},
		{
			name:     "warn level",
			logLevel: "warn",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "invalid level falls back to info",
			logLevel: "loud",
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expected {
				t.Errorf("expected global level %s, got %s", tt.expected, zerolog.GlobalLevel())
			}
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	// Must not panic on nil or concrete errors.
	logger.ErrorWithStack(nil)
}
