package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service-wide logger. Output is the console writer in
// every environment; production drops colors and the debug level.
func New(environment string) zerolog.Logger {
	level := zerolog.DebugLevel
	if environment == "production" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    environment == "production",
	}

	return zerolog.New(output).With().
		Timestamp().
		Str("service", "vneshtata-api").
		Str("env", environment).
		Logger()
}
