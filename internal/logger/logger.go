// Package logger builds the slog.Logger used across jump.
//
// Records are written one per line:
//
//	2006-01-02T15:04:05.000Z [LEVEL] message | key=value, key2=value2
//
// Output goes to a rotating file (lumberjack) and, with --verbose, to stderr.
// Nothing is ever written to stdout, which carries the `get` result.
package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel은 "debug", "info", "warn", "error"를 slog.Level로 변환한다.
// 알 수 없는 값은 LevelInfo다.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Handler는 한 줄 포맷으로 기록하는 slog.Handler다.
type Handler struct {
	w     io.Writer
	mu    *sync.Mutex
	level slog.Level
	attrs []slog.Attr
	group string
}

// NewHandler는 level 미만을 버리고 w에 기록하는 Handler를 생성한다.
func NewHandler(w io.Writer, level slog.Level) *Handler {
	return &Handler{w: w, mu: &sync.Mutex{}, level: level}
}

// Enabled는 level이 기록 대상인지 반환한다.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle은 레코드 하나를 기록한다.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.UTC().Format("2006-01-02T15:04:05.000Z"))
	b.WriteString(" [")
	b.WriteString(r.Level.String())
	b.WriteString("] ")
	b.WriteString(r.Message)

	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	for i, a := range attrs {
		if i == 0 {
			b.WriteString(" | ")
		} else {
			b.WriteString(", ")
		}
		if h.group != "" {
			b.WriteString(h.group)
			b.WriteByte('.')
		}
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Value.String())
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// WithAttrs는 attrs가 미리 붙은 Handler를 반환한다.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{w: h.w, mu: h.mu, level: h.level, attrs: merged, group: h.group}
}

// WithGroup은 키 앞에 name을 붙이는 Handler를 반환한다.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	g := name
	if h.group != "" {
		g = h.group + "." + name
	}
	return &Handler{w: h.w, mu: h.mu, level: h.level, attrs: h.attrs, group: g}
}

// Options는 New의 설정이다.
type Options struct {
	// File이 비어 있지 않으면 lumberjack으로 회전하는 파일에 기록한다.
	File      string
	MaxSizeMB int
	Level     slog.Level
	// Verbose면 Stderr에도 debug 레벨부터 기록한다.
	Verbose bool
	Stderr  io.Writer
}

// New는 Options에 맞는 logger를 만든다. 반환된 io.Closer는 종료 시 닫아야 한다.
// 파일과 stderr는 각자의 레벨을 가진 Handler로 기록한다.
func New(opts Options) (*slog.Logger, io.Closer) {
	var handlers []slog.Handler
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 5
		}
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: 3,
			MaxAge:     28,
		}
		handlers = append(handlers, NewHandler(lj, opts.Level))
		closer = lj
	}
	if opts.Verbose && opts.Stderr != nil {
		handlers = append(handlers, NewHandler(opts.Stderr, slog.LevelDebug))
	}

	switch len(handlers) {
	case 0:
		return Discard(), closer
	case 1:
		return slog.New(handlers[0]), closer
	default:
		return slog.New(fanout(handlers)), closer
	}
}

// fanout은 레코드를 그 레벨을 받는 모든 Handler에 전달한다.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// Discard는 아무것도 기록하지 않는 logger다.
func Discard() *slog.Logger {
	return slog.New(NewHandler(io.Discard, slog.LevelError+1))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
