package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// toneKey is the record attribute the console handler uses to pick a color
const toneKey = "tone"

type tone string

const (
	tonePlain   tone = "plain"
	toneStatus  tone = "status"
	toneSuccess tone = "success"
	toneWarn    tone = "warn"
	toneError   tone = "error"
)

// simpleHandler is a custom slog handler that writes messages without timestamps or level prefixes
type simpleHandler struct {
	writer    io.Writer
	style     *Style
	debugMode bool
	quiet     *bool // Pointer to quiet flag so it can be changed dynamically
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	// Debug messages only enabled in debug mode
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *simpleHandler) Handle(_ context.Context, record slog.Record) error {
	if *h.quiet {
		return nil
	}

	t := tonePlain
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == toneKey {
			t = tone(a.Value.String())
			return false
		}
		return true
	})

	_, err := fmt.Fprintln(h.writer, h.colorize(t, record.Message))
	return err
}

func (h *simpleHandler) colorize(t tone, msg string) string {
	switch t {
	case toneStatus:
		return h.style.Blue(msg)
	case toneSuccess:
		return h.style.Green(msg)
	case toneWarn:
		return h.style.Yellow(msg)
	case toneError:
		return h.style.Red(msg)
	default:
		return msg
	}
}

func (h *simpleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *simpleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// createLumberjackLogger creates a lumberjack logger with configuration from environment variables
func createLumberjackLogger(logFilePath string) *lumberjack.Logger {
	config := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}

	if maxSizeStr := os.Getenv("ZERO_LOG_MAX_SIZE"); maxSizeStr != "" {
		if maxSize, err := strconv.Atoi(maxSizeStr); err == nil && maxSize > 0 {
			config.MaxSize = maxSize
		}
	}

	if maxBackupsStr := os.Getenv("ZERO_LOG_MAX_BACKUPS"); maxBackupsStr != "" {
		if maxBackups, err := strconv.Atoi(maxBackupsStr); err == nil && maxBackups >= 0 {
			config.MaxBackups = maxBackups
		}
	}

	if maxAgeStr := os.Getenv("ZERO_LOG_MAX_AGE"); maxAgeStr != "" {
		if maxAge, err := strconv.Atoi(maxAgeStr); err == nil && maxAge > 0 {
			config.MaxAge = maxAge
		}
	}

	return config
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}

// Splog provides structured logging and console output
type Splog struct {
	logger    *slog.Logger
	writer    io.Writer
	style     *Style
	logWriter io.WriteCloser // Lumberjack logger for file logging
	quiet     bool
}

// NewSplog creates a new splog instance with console-only logging on stdout.
// Debug messages are enabled when the DEBUG environment variable is set
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig("", os.Getenv("DEBUG") != "")
	return splog
}

// NewSplogWithConfig creates a new splog instance on stdout with optional file logging
func NewSplogWithConfig(logFilePath string, debug bool) (*Splog, error) {
	return newSplog(os.Stdout, NewStyle(os.Stdout), logFilePath, debug)
}

// NewSplogWithWriter creates a console-only splog writing plain text to w
func NewSplogWithWriter(w io.Writer, debug bool) *Splog {
	splog, _ := newSplog(w, PlainStyle(), "", debug)
	return splog
}

func newSplog(w io.Writer, style *Style, logFilePath string, debug bool) (*Splog, error) {
	splog := &Splog{
		writer: w,
		style:  style,
	}

	handlers := []slog.Handler{&simpleHandler{
		writer:    w,
		style:     style,
		debugMode: debug,
		quiet:     &splog.quiet,
	}}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		lumberjackLogger := createLumberjackLogger(logFilePath)
		splog.logWriter = lumberjackLogger

		handlers = append(handlers, slog.NewTextHandler(lumberjackLogger, &slog.HandlerOptions{
			Level: slog.LevelDebug, // Always log everything to file
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		}))
	}

	splog.logger = slog.New(&multiHandler{handlers: handlers})
	return splog, nil
}

// SetQuiet suppresses console output while quiet is true
func (s *Splog) SetQuiet(quiet bool) {
	s.quiet = quiet
}

// Style returns the formatter used for console output
func (s *Splog) Style() *Style {
	return s.style
}

// Writer returns the console writer, used as the sink for streamed output
func (s *Splog) Writer() io.Writer {
	return s.writer
}

func (s *Splog) logMessage(level slog.Level, t tone, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg, slog.String(toneKey, string(t)))
}

// Info writes an uncolored message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Info(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, tonePlain, format, args)
}

// Status writes a progress message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Status(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, toneStatus, format, args)
}

// Success writes a success message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Success(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, toneSuccess, format, args)
}

// Warn writes a warning message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Warn(format string, args ...interface{}) {
	s.logMessage(slog.LevelWarn, toneWarn, format, args)
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.logMessage(slog.LevelError, toneError, format, args)
}

// Tip writes a hint shown below an error
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Tip(format string, args ...interface{}) {
	s.logMessage(slog.LevelInfo, toneWarn, format, args)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.logMessage(slog.LevelDebug, tonePlain, format, args)
}

// Page writes content as-is, without a trailing newline
func (s *Splog) Page(content string) {
	if s.quiet {
		return
	}
	_, _ = io.WriteString(s.writer, content)
}

// Newline writes a newline
func (s *Splog) Newline() {
	s.Page("\n")
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logWriter != nil {
		return s.logWriter.Close()
	}
	return nil
}
