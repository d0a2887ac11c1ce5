package cmd

import (
	"bufio"
	"context"
	"log/slog"

	"github.com/ardnew/psplibdoc/log"
	"github.com/ardnew/psplibdoc/prx"
)

// suggestLimit is the most candidates printed after a not-found line.
const suggestLimit = 3

// Query resolves module file identifiers, NIDs, and symbol names.
type Query struct {
	Queries []string `arg:"" help:"Module file id, NID, or symbol name" name:"query" optional:""`

	List    bool   `aliases:"listprx" help:"List every module and ignore queries" short:"l"`
	Where   string `help:"Only list modules matching expression (implies --list)" placeholder:"EXPR"`
	Suggest bool   `default:"true" help:"Suggest similar names for unknown queries" negatable:""`
}

// Run executes the query command.
func (q *Query) Run(ctx context.Context) error {
	tbl, err := loadTable(ctx)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(outputFrom(ctx))

	if q.List || q.Where != "" {
		if err := q.list(ctx, out, tbl); err != nil {
			return err
		}

		return out.Flush()
	}

	if len(q.Queries) == 0 {
		if ktx := kongContextFrom(ctx); ktx != nil {
			_ = ktx.PrintUsage(false)
		}

		return ErrNoQuery
	}

	for _, query := range q.Queries {
		q.resolve(ctx, out, tbl, query)
	}

	return out.Flush()
}

func (q *Query) list(ctx context.Context, out *bufio.Writer, tbl *prx.Table) error {
	filter, err := prx.CompileFilter(q.Where)
	if err != nil {
		return ErrFilter.Wrap(err)
	}

	mods, err := tbl.Where(filter)
	if err != nil {
		return ErrFilter.Wrap(err).
			With(slog.String("where", q.Where))
	}

	log.DebugContext(ctx, "list modules",
		slog.Int("listed", len(mods)),
		slog.Int("total", len(tbl.Modules)),
	)

	writeList(out, mods)

	return nil
}

func (q *Query) resolve(
	ctx context.Context,
	out *bufio.Writer,
	tbl *prx.Table,
	query string,
) {
	res := tbl.Resolve(query)

	writeResult(out, res)

	switch {
	case res.Module != nil:
		log.DebugContext(ctx, "query resolved",
			slog.String("query", query),
			slog.String("as", "module"),
		)

	case res.Match != nil:
		log.DebugContext(ctx, "query resolved",
			slog.String("query", query),
			slog.String("as", res.Match.Kind.String()),
			slog.String("module", res.Match.Module.FileID),
			slog.String("library", res.Match.Library.Name),
		)

	default:
		log.DebugContext(ctx, "query failed",
			slog.Any("error", prx.ErrNotFound.With(slog.String("query", query))),
		)

		if q.Suggest {
			writeSuggestions(out, tbl.Suggest(query, suggestLimit))
		}
	}
}
