// Package logger configures the process-wide zerolog sink: console output on
// stderr plus an optional size-rotated file. Commands keep stdout clean for
// structured results, so all logging goes elsewhere.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the sink built by Setup.
type Options struct {
	// Level is the minimum level, one of trace, debug, info, warn, error.
	// Empty or unknown falls back to info.
	Level string

	// File enables a rotating log file at the given path in addition to
	// the console. Empty disables the file sink.
	File string

	// Console disables the stderr writer when false. The viewer process
	// runs detached from a terminal and logs to file only.
	Console bool
}

// New builds a logger per opts. It never fails: a logger with no sinks is
// returned when everything is disabled.
func New(opts Options) zerolog.Logger {
	var writers []io.Writer

	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.TimeOnly,
		})
	}
	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     14, // days
		})
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		out = io.Discard
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	return zerolog.New(out).Level(parseLevel(opts.Level)).With().Timestamp().Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
