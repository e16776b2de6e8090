package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// cliLogger implements colorextractor.Logger with colored terminal output.
type cliLogger struct {
	w io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
}

// jsonLogger implements colorextractor.Logger with one JSON object per line,
// for CI logs and other machine consumers.
type jsonLogger struct {
	log zerolog.Logger
}

func newJSONLogger(w io.Writer) *jsonLogger {
	return &jsonLogger{
		log: zerolog.New(w).With().Timestamp().Str("app", "color-extractor").Logger(),
	}
}

func (l *jsonLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *jsonLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *jsonLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
