package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string // "console" or "json"

	// FilePath appends log lines to the given file in addition to stderr.
	// Empty disables file output.
	FilePath string

	// Quiet suppresses stderr output, leaving only the file sink. Used by
	// the generate command so P5's error stream stays uncluttered.
	Quiet bool
}

// New constructs a slog logger. Failures to open the log file are
// tolerated: the logger falls back to stderr so a broken log sink never
// aborts a run.
func New(opts Options) *slog.Logger {
	level := parseLevel(opts.Level)

	var writers []io.Writer
	if !opts.Quiet {
		writers = append(writers, os.Stderr)
	}
	if path := strings.TrimSpace(opts.FilePath); path != "" {
		if file, err := openLogFile(path); err == nil {
			writers = append(writers, file)
		} else if !opts.Quiet {
			fmt.Fprintf(os.Stderr, "warn: unable to open log file %s: %v\n", path, err)
		}
	}

	var out io.Writer
	switch len(writers) {
	case 0:
		return NewNop()
	case 1:
		out = writers[0]
	default:
		out = io.MultiWriter(writers...)
	}

	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		return slog.New(newJSONHandler(out, level))
	}
	return slog.New(newTextHandler(out, level))
}

func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o664)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newJSONHandler(w io.Writer, level slog.Level) slog.Handler {
	opts := slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				if attr.Value.Kind() == slog.KindTime {
					attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
				}
			case slog.LevelKey:
				attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
			}
			return attr
		},
	}
	return slog.NewJSONHandler(w, &opts)
}

// textHandler renders "<timestamp> LEVEL message key=value" lines, the
// same shape the rest of the P5 script logs use.
type textHandler struct {
	mu     sync.Mutex
	writer io.Writer
	level  slog.Level
	attrs  []slog.Attr
}

func newTextHandler(w io.Writer, level slog.Level) slog.Handler {
	return &textHandler{writer: w, level: level}
}

func (h *textHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *textHandler) Handle(_ context.Context, record slog.Record) error {
	timestamp := record.Time
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.WriteString(timestamp.Format("2006-01-02 15:04:05"))
	buf.WriteString("] ")
	buf.WriteString(levelLabel(record.Level))
	buf.WriteByte(' ')
	buf.WriteString(record.Message)

	for _, attr := range h.attrs {
		writeAttr(&buf, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&buf, attr)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := &textHandler{writer: h.writer, level: h.level}
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return clone
}

func (h *textHandler) WithGroup(string) slog.Handler { return h }

func writeAttr(buf *bytes.Buffer, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(attr.Key)
	buf.WriteByte('=')
	value := attr.Value.String()
	if strings.ContainsAny(value, " \t\"=") || value == "" {
		value = strconv.Quote(value)
	}
	buf.WriteString(value)
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
