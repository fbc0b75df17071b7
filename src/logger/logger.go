package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05.000"

var (
	once sync.Once
	Log  zerolog.Logger
)

func configure(w io.Writer) {
	zerolog.TimeFieldFormat = timeFormat
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: timeFormat,
		NoColor:    w != os.Stdout && w != os.Stderr,
	}
	Log = zerolog.New(output).With().Timestamp().Logger()
}

// Init replaces the package logger. Every line carries the run identifier.
func Init(level zerolog.Level, w io.Writer, runID string) *zerolog.Logger {
	// Marks the default setup as done so GetLogger keeps this output.
	once.Do(func() {})
	configure(w)
	Log = Log.With().Str("run", runID).Logger()
	zerolog.SetGlobalLevel(level)
	return &Log
}

// OpenRunFile opens elevsim-<runID>.log, truncating any previous run with the same identifier.
func OpenRunFile(runID string) (*os.File, error) {
	name := fmt.Sprintf("elevsim-%s.log", runID)
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return file, nil
}

func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		configure(os.Stderr)
	})
	zerolog.SetGlobalLevel(level)
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(func() {
		configure(os.Stderr)
	})
	return &Log
}
