package cmd

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/psplibdoc/log"
	"github.com/ardnew/psplibdoc/prx"
)

// Dump writes the table as a structured document.
type Dump struct {
	Modules []string `arg:"" help:"Only dump modules with these file ids" name:"module" optional:""`

	Format string `default:"yaml" enum:"yaml,json" help:"Output format" short:"f"`
	Indent int    `default:"2"    help:"Spaces per indentation level"`
}

// Run executes the dump command.
func (d *Dump) Run(ctx context.Context) error {
	tbl, err := loadTable(ctx)
	if err != nil {
		return err
	}

	sub := d.subset(ctx, tbl)

	log.DebugContext(ctx, "dump table",
		slog.String("format", d.Format),
		slog.Int("modules", len(sub.Modules)),
	)

	return d.encode(ctx, outputFrom(ctx), sub)
}

// subset returns tbl restricted to the requested modules, in the order they
// were requested. Unknown file ids are logged and skipped.
func (d *Dump) subset(ctx context.Context, tbl *prx.Table) *prx.Table {
	if len(d.Modules) == 0 {
		return tbl
	}

	var sub prx.Table

	for _, id := range d.Modules {
		mod, ok := tbl.FindModule(id)
		if !ok {
			log.WarnContext(ctx, "skip module",
				slog.Any("error", prx.ErrNotFound.With(slog.String("module", id))),
			)

			continue
		}

		sub.Modules = append(sub.Modules, *mod)
	}

	return &sub
}

func (d *Dump) encode(ctx context.Context, w io.Writer, tbl *prx.Table) error {
	var (
		data []byte
		err  error
	)

	switch d.Format {
	case "json":
		data, err = json.MarshalIndent(tbl, "", strings.Repeat(" ", max(d.Indent, 0)))

	default:
		var opts []yaml.EncodeOption
		if d.Indent > 0 {
			opts = append(opts, yaml.Indent(d.Indent), yaml.IndentSequence(true))
		} else {
			opts = append(opts, yaml.Flow(true))
		}

		data, err = yaml.MarshalContext(ctx, tbl, opts...)
	}

	if err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", d.Format))
	}

	if d.Format == "json" {
		data = append(data, '\n')
	}

	if _, err := w.Write(data); err != nil {
		return ErrEncode.Wrap(err).With(slog.String("format", d.Format))
	}

	return nil
}
