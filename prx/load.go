package prx

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"

	"github.com/ardnew/psplibdoc/log"
)

// registry holds one *entry per distinct document, keyed by content hash.
var registry sync.Map

type entry struct {
	once  sync.Once
	table *Table
}

// Option configures [Load].
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger used to report loading.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Load reads a document from r and returns its [Table].
//
// Tables are memoized by content: loading identical text twice returns the
// same *Table, built exactly once.
func Load(ctx context.Context, r io.Reader, opts ...Option) (*Table, error) {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	// Read ahead asynchronously while earlier chunks are consumed.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	o.logger.TraceContext(ctx, "read document",
		slog.Int("source_bytes", len(data)),
	)

	return loadString(ctx, string(data), o), nil
}

// LoadString returns the [Table] for text, memoized like [Load].
func LoadString(ctx context.Context, text string, opts ...Option) *Table {
	var o options

	for _, opt := range opts {
		opt(&o)
	}

	return loadString(ctx, text, o)
}

func loadString(ctx context.Context, text string, o options) *Table {
	key := strconv.FormatUint(xxh3.HashString(text), 36)

	value, cached := registry.LoadOrStore(key, new(entry))
	ent := value.(*entry)

	ent.once.Do(func() {
		ent.table = Build(text)

		o.logger.TraceContext(ctx, "table built",
			slog.String("source_hash", key),
		)
	})

	o.logger.DebugContext(ctx, "table loaded",
		slog.String("source_hash", key),
		slog.Bool("cache_hit", cached),
		slog.Any("stats", ent.table.Stats()),
	)

	return ent.table
}
