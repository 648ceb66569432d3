// Package logging builds the slog logger shared by the binaries.
package logging

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// New returns a colourised debug logger in development and a JSON logger
// otherwise.
func New(w io.Writer, development bool) *slog.Logger {
	if development {
		return slog.New(tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}
