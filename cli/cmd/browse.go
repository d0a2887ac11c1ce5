package cmd

import (
	"context"

	"github.com/ardnew/psplibdoc/cli/cmd/browse"
	"github.com/ardnew/psplibdoc/log"
)

// Browse opens an interactive fuzzy symbol browser.
type Browse struct {
	Limit int `default:"${browseLimit}" help:"Maximum results shown" short:"n"`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) error {
	tbl, err := loadTable(ctx)
	if err != nil {
		return err
	}

	return browse.Run(ctx, tbl, b.Limit, log.Default())
}
