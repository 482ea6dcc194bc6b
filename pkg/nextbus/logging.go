package nextbus

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogFormat = "NEXTBUS_LOG_FORMAT"
	EnvDebug     = "NEXTBUS_DEBUG"
)

// NewLogger builds the diagnostics logger. Output is human readable unless
// NEXTBUS_LOG_FORMAT=JSON and stays quiet below warn unless debugging.
func NewLogger(out io.Writer, env map[string]string, debug bool) zerolog.Logger {
	var logger zerolog.Logger

	if env[EnvLogFormat] != "JSON" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(out)
	}
	logger = logger.With().Timestamp().Logger()

	if debug || env[EnvDebug] == "YES" {
		return logger.Level(zerolog.DebugLevel)
	}

	return logger.Level(zerolog.WarnLevel)
}
