package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// PrettyHandler is a slog.Handler that formats records with colors for CLI
// output: [TIME] LEVEL message key=value ...
type PrettyHandler struct {
	w     io.Writer
	level slog.Level
	mu    *sync.Mutex
	group string
	attrs []slog.Attr
}

// NewPrettyHandler creates a PrettyHandler writing to w at the given minimum
// level.
func NewPrettyHandler(w io.Writer, level slog.Level) *PrettyHandler {
	return &PrettyHandler{
		w:     w,
		level: level,
		mu:    &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a log record.
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	sb.WriteString(colorGray)
	sb.WriteByte('[')
	sb.WriteString(r.Time.Format(time.DateTime))
	sb.WriteByte(']')
	sb.WriteString(colorReset)
	sb.WriteByte(' ')

	sb.WriteString(levelColor(r.Level))
	sb.WriteString(colorBold)
	sb.WriteString(r.Level.String())
	sb.WriteString(colorReset)
	sb.WriteByte(' ')

	sb.WriteString(r.Message)

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	if len(attrs) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(colorCyan)
		for i, a := range attrs {
			if i > 0 {
				sb.WriteByte(' ')
			}
			appendAttr(&sb, a, h.group)
		}
		sb.WriteString(colorReset)
	}
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs returns a new handler with additional attributes.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PrettyHandler{
		w:     h.w,
		level: h.level,
		mu:    h.mu,
		group: h.group,
		attrs: merged,
	}
}

// WithGroup returns a handler that prefixes attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &PrettyHandler{
		w:     h.w,
		level: h.level,
		mu:    h.mu,
		group: group,
		attrs: h.attrs,
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return colorRed
	case level >= slog.LevelWarn:
		return colorYellow
	case level >= slog.LevelInfo:
		return colorBlue
	default:
		return colorGray
	}
}

func appendAttr(sb *strings.Builder, attr slog.Attr, group string) {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	sb.WriteString(key)
	sb.WriteByte('=')

	switch attr.Value.Kind() {
	case slog.KindString:
		s := attr.Value.String()
		if needsQuoting(s) {
			sb.WriteByte('"')
			sb.WriteString(s)
			sb.WriteByte('"')
		} else {
			sb.WriteString(s)
		}
	case slog.KindTime:
		sb.WriteString(attr.Value.Time().Format(time.RFC3339))
	case slog.KindGroup:
		sb.WriteByte('{')
		for i, a := range attr.Value.Group() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			appendAttr(sb, a, "")
		}
		sb.WriteByte('}')
	default:
		fmt.Fprint(sb, attr.Value.Any())
	}
}

func needsQuoting(s string) bool {
	for _, c := range s {
		if c == ' ' || c == '\t' || c == '\n' || c == '"' {
			return true
		}
	}
	return false
}
