// Package logging provides a zerolog-backed implementation of the agentmesh
// Logger interface, so chatmesh engines and the framework they wrap share
// one structured logging pipeline. Engines default to the framework's no-op
// logger; verbose mode swaps in a console logger from this package.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	meshlogging "github.com/hupe1980/agentmesh/logging"
	"github.com/rs/zerolog"
)

// Options configure a zerolog Logger.
type Options struct {
	// Level is the minimum emitted level.
	Level zerolog.Level
	// Output is the destination writer. Defaults to stderr.
	Output io.Writer
	// Pretty enables the human-readable console writer instead of JSON.
	Pretty bool
}

// Logger adapts zerolog to the agentmesh Logger interface. Variadic args are
// interpreted as alternating key/value pairs, the convention used throughout
// the wrapped framework.
type Logger struct {
	logger zerolog.Logger
}

var _ meshlogging.Logger = (*Logger)(nil)

// New creates a zerolog-backed Logger.
func New(optFns ...func(o *Options)) *Logger {
	opts := Options{
		Level:  zerolog.InfoLevel,
		Output: os.Stderr,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	out := opts.Output
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: opts.Output, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(opts.Level).With().Timestamp().Logger()
	return &Logger{logger: logger}
}

// NewVerbose creates a pretty debug-level console logger, the configuration
// engines use for their verbose flag.
func NewVerbose() *Logger {
	return New(func(o *Options) {
		o.Level = zerolog.DebugLevel
		o.Pretty = true
	})
}

// FromZerolog wraps an existing zerolog logger.
func FromZerolog(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger}
}

// Debug implements meshlogging.Logger.
func (l *Logger) Debug(msg string, args ...any) { l.emit(l.logger.Debug(), msg, args) }

// Info implements meshlogging.Logger.
func (l *Logger) Info(msg string, args ...any) { l.emit(l.logger.Info(), msg, args) }

// Warn implements meshlogging.Logger.
func (l *Logger) Warn(msg string, args ...any) { l.emit(l.logger.Warn(), msg, args) }

// Error implements meshlogging.Logger.
func (l *Logger) Error(msg string, args ...any) { l.emit(l.logger.Error(), msg, args) }

func (l *Logger) emit(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		ev = ev.Interface(key, args[i+1])
	}
	if len(args)%2 != 0 {
		ev = ev.Interface("arg", args[len(args)-1])
	}
	ev.Msg(msg)
}
