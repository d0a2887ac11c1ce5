package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles used by prettyHandler, bound to one output's
// color profile. Writers that are not terminals get unstyled text.
type palette struct {
	key, str, num, on, off, other lipgloss.Style
	trace, debug, info, warn, err lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		on:    fg("2"),
		off:   fg("1"),
		other: fg("5"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2").Bold(true),
		warn:  fg("3").Bold(true),
		err:   fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

// prettyHandler writes one styled line per record: key=value pairs with
// unquoted strings and attribute groups flattened to dotted keys.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	pal    palette
	prefix []byte // pre-rendered attrs from WithAttrs
	group  string // dotted group prefix from WithGroup
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
		pal:  newPalette(w),
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeBuiltin(buf, slog.Time(slog.TimeKey, r.Time))
	}

	if a := h.replace(slog.Any(slog.LevelKey, r.Level)); a.Key != "" {
		sep(buf)
		buf.WriteString(h.pal.level(r.Level).Render(a.Value.String()))
	}

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			h.writeBuiltin(buf,
				slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	sep(buf)
	buf.WriteString(r.Message)

	if len(h.prefix) > 0 {
		sep(buf)
		buf.Write(h.prefix)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.group, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	buf := bytes.NewBuffer(bytes.Clone(h.prefix))
	for _, a := range attrs {
		h.writeAttr(buf, h.group, a)
	}

	h2 := *h
	h2.prefix = buf.Bytes()

	return &h2
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	h2 := *h
	h2.group = h.group + name + "."

	return &h2
}

func sep(buf *bytes.Buffer) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}
}

// replace applies the configured ReplaceAttr to a top-level builtin attr.
func (h *prettyHandler) replace(a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(nil, a)
}

func (h *prettyHandler) writeBuiltin(buf *bytes.Buffer, a slog.Attr) {
	a = h.replace(a)
	if a.Key == "" {
		return
	}

	sep(buf)
	buf.WriteString(h.pal.key.Render(a.Value.String()))
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		inner := group
		if a.Key != "" {
			inner += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, inner, ga)
		}

		return
	}

	sep(buf)
	buf.WriteString(h.pal.key.Render(group + a.Key + "="))
	buf.WriteString(h.value(a.Value))
}

func (h *prettyHandler) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return h.pal.str.Render(v.String())

	case slog.KindInt64:
		return h.pal.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return h.pal.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return h.pal.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		if v.Bool() {
			return h.pal.on.Render("true")
		}

		return h.pal.off.Render("false")

	case slog.KindDuration:
		return h.pal.other.Render(v.Duration().String())

	case slog.KindTime:
		return h.pal.other.Render(v.Time().Format(time.RFC3339))

	default:
		if err, ok := v.Any().(error); ok {
			return h.pal.off.Render(err.Error())
		}

		return h.pal.str.Render(v.String())
	}
}
