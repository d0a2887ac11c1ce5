package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/psplibdoc/log"
	"github.com/ardnew/psplibdoc/prx"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	documentKey struct{}
	outputKey   struct{}
)

// WithDocument returns a new context.Context naming the document path that
// commands load their table from.
func WithDocument(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, documentKey{}, path)
}

func documentFrom(ctx context.Context) string {
	path, _ := ctx.Value(documentKey{}).(string)

	return path
}

// WithOutput returns a new context.Context directing command output to w.
func WithOutput(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, outputKey{}, w)
}

// outputFrom returns the writer stored by WithOutput, or else the kong
// context's stdout, or else os.Stdout.
func outputFrom(ctx context.Context) io.Writer {
	if w, ok := ctx.Value(outputKey{}).(io.Writer); ok && w != nil {
		return w
	}

	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// loadTable opens the document named in ctx and builds its table.
func loadTable(ctx context.Context) (*prx.Table, error) {
	path := documentFrom(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenDocument.Wrap(err).
			With(slog.String("path", path))
	}
	defer f.Close()

	log.DebugContext(ctx, "open document", slog.String("path", path))

	tbl, err := prx.Load(ctx, f, prx.WithLogger(log.Default()))
	if err != nil {
		return nil, ErrOpenDocument.Wrap(err).
			With(slog.String("path", path))
	}

	return tbl, nil
}
