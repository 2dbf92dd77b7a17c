package cli

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger builds the diagnostic logger. Results go to stdout; logs always go
// to w so they never mix with command output.
func newLogger(w io.Writer, verbose bool, format string) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	var zl zerolog.Logger
	if format == "json" {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true})
	}
	return zl.Level(level).With().Timestamp().Logger()
}
