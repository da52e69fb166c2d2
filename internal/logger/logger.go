// Package logger configures structured logging for the server.
//
// All log output goes to stderr: in MCP stdio mode stdout carries the
// JSON-RPC stream and must stay clean. Output is human-readable when stderr
// is a terminal and JSON otherwise; LOG_FORMAT=console|json forces either.
// The level comes from LOG_LEVEL (or the --verbose flag, which wins).
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Setup configures the global zerolog logger. When verbose is true the
// level is debug regardless of LOG_LEVEL.
func Setup(verbose bool) {
	log.Logger = New(os.Stderr, verbose)
}

// SetOutput replaces the global logger's writer. Useful for tests.
func SetOutput(w io.Writer) {
	log.Logger = log.Logger.Output(w)
}

// New builds a logger writing to w at the configured level and format.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	if useConsole(w) {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// useConsole decides between console and JSON rendering: LOG_FORMAT wins,
// otherwise console only when writing to a terminal.
func useConsole(w io.Writer) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_FORMAT"))) {
	case "console":
		return true
	case "json":
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Debug logs a formatted debug message via the global logger.
func Debug(format string, args ...any) {
	log.Debug().Msgf(format, args...)
}

// Info logs a formatted informational message via the global logger.
func Info(format string, args ...any) {
	log.Info().Msgf(format, args...)
}

// Warn logs a formatted warning message via the global logger.
func Warn(format string, args ...any) {
	log.Warn().Msgf(format, args...)
}
