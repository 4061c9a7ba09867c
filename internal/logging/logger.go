// Package logging owns the structured logger shared by the strawman packages.
//
// The library logs very little: only the auto-selected seed of a generator
// call, at debug level, so a failing fixture can be replayed. The level is read
// once from STRAWMAN_LOG_LEVEL (debug|info|warn|error, default info).
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// LevelEnv is the environment variable consulted by Default.
const LevelEnv = "STRAWMAN_LOG_LEVEL"

// Prefix is attached to every record written by the default logger.
const Prefix = "strawman"

var (
	defaultOnce   sync.Once
	defaultLogger *log.Logger
)

// Default returns the process-wide logger, creating it on first use.
func Default() *log.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, ParseLevel(os.Getenv(LevelEnv)))
	})
	return defaultLogger
}

// New builds a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  level,
	})
}

// ParseLevel maps a level name to a log.Level. Unknown or empty names yield
// log.InfoLevel.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// WithComponent returns a child of l tagged with the component name.
// A nil l falls back to Default.
func WithComponent(l *log.Logger, component string) *log.Logger {
	if l == nil {
		l = Default()
	}
	return l.With("component", component)
}
