package logger

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/toolres/internal/ui/output"
	"go.trai.ch/toolres/internal/ui/style"
)

type levelMark struct {
	min    slog.Level
	symbol string
	color  lipgloss.Color
}

// levelMarks is ordered from the highest level down; the first entry whose min
// is at or below the record level wins.
var levelMarks = []levelMark{
	{min: slog.LevelError, symbol: style.Cross, color: style.Red},
	{min: slog.LevelWarn, symbol: style.Warning, color: style.Yellow},
	{min: slog.LevelInfo, color: style.Slate},
	{min: slog.Level(math.MinInt), symbol: style.Dot, color: style.Slate},
}

// ConsoleHandler writes one colored line per record: a level marker, the
// message, then key=value pairs. Values containing whitespace are quoted so
// package and tool paths stay readable.
type ConsoleHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewConsoleHandler returns a ConsoleHandler writing to w, or to stderr when w is nil.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &ConsoleHandler{out: output.New(w), level: level}
}

// Enabled implements slog.Handler.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	mark := markFor(r.Level)

	var line strings.Builder
	if mark.symbol != "" {
		line.WriteString(mark.symbol)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)

	for _, a := range h.attrs {
		line.WriteByte(' ')
		line.WriteString(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		for _, s := range appendAttr(nil, h.prefix, a) {
			line.WriteByte(' ')
			line.WriteString(s)
		}
		return true
	})

	styled := h.out.String(line.String()).Foreground(termenv.RGBColor(string(mark.color)))
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs implements slog.Handler. Attributes are rendered once, up front.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, a)
	}
	return &next
}

// WithGroup implements slog.Handler. Groups nest as dotted key prefixes.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func markFor(level slog.Level) levelMark {
	for _, m := range levelMarks {
		if level >= m.min {
			return m
		}
	}
	return levelMarks[len(levelMarks)-1]
}

func appendAttr(dst []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := prefix
		if a.Key != "" {
			inner += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, inner, ga)
		}
		return dst
	}

	return append(dst, prefix+a.Key+"="+quoteValue(a.Value.String()))
}

func quoteValue(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\n\"") {
		return strconv.Quote(v)
	}
	return v
}
