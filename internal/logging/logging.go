package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. Debug output is only shown
// when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isColorWriter(w)}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

type fdWriter interface {
	Fd() uintptr
}

func isColorWriter(w io.Writer) bool {
	_, ok := w.(fdWriter)
	return ok
}
