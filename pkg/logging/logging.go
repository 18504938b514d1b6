// Package logging builds the mipsdis structured logger.
//
// Logs always go to a human readable terminal handler, and optionally to a JSON log file.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/utils"
	charmlog "github.com/charmbracelet/log"
	slogmulti "github.com/samber/slog-multi"
)

var ErrUnknownLevel = errors.New("unknown log level")

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Returns the log level with the given name (debug, info, warn or error)
func ParseLevel(name string) (slog.Level, error) {
	if level, ok := levels[strings.ToLower(name)]; ok {
		return level, nil
	}

	return 0, utils.MakeError(ErrUnknownLevel, "'%v', expected one of %v", name, utils.FormatSlice(utils.SortedKeys(levels), ", "))
}

type Options struct {
	// Minimum level of the terminal handler
	Level slog.Level
	// Path of a JSON log file. Empty disables file logging
	File string
}

// Logger writing to a terminal and optionally to a log file. Close() must be called to flush the file
type Logger struct {
	*slog.Logger
	file io.Closer
}

// Closes the log file, if any
func (l *Logger) Close() error {
	if l != nil && l.file != nil {
		return l.file.Close()
	}

	return nil
}

// Creates a logger writing to the given terminal writer
//
// The log file, if any, receives all records from debug level upwards regardless of the terminal level.
func New(terminal io.Writer, options Options) (*Logger, error) {
	console := charmlog.NewWithOptions(terminal, charmlog.Options{
		Prefix: "mipsdis",
		Level:  charmlog.Level(options.Level),
	})

	if options.File == "" {
		return &Logger{Logger: slog.New(console)}, nil
	}

	file, err := os.OpenFile(options.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slogmulti.Fanout(
		console,
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	return &Logger{
		Logger: slog.New(handler),
		file:   file,
	}, nil
}

// Returns a logger that discards everything
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}
