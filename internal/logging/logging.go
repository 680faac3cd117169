package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how verbosely the application logs.
type Options struct {
	// FilePath enables a rotating log file. Empty logs to stderr.
	FilePath   string
	Level      slog.Leveler
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Result holds the configured logger and the writer to close on exit.
type Result struct {
	Logger *slog.Logger
	closer io.Closer
}

// Close closes the log file if one was opened.
func (result *Result) Close() error {
	if result.closer != nil {
		return result.closer.Close()
	}
	return nil
}

// Setup builds a JSON slog logger. File output is rotated with lumberjack.
func Setup(options Options) *Result {
	level := options.Level
	if level == nil {
		level = slog.LevelInfo
	}
	if options.FilePath == "" {
		return &Result{Logger: NewWithWriter(os.Stderr, level)}
	}

	writer := &lumberjack.Logger{
		Filename:   options.FilePath,
		MaxSize:    orDefault(options.MaxSizeMB, 5),
		MaxBackups: orDefault(options.MaxBackups, 3),
		MaxAge:     orDefault(options.MaxAgeDays, 14),
	}
	return &Result{
		Logger: NewWithWriter(writer, level),
		closer: writer,
	}
}

// NewWithWriter creates a JSON logger writing to w.
func NewWithWriter(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}
