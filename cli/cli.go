package cli

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/psplibdoc/cli/cmd"
	"github.com/ardnew/psplibdoc/cli/cmd/browse"
	"github.com/ardnew/psplibdoc/pkg"
)

// CLI is the top-level command-line interface for psplibdoc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Doc     string           `default:"${document}" help:"PSP library document to read (also settable as doc in ${config})" short:"d" type:"path"`
	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Query  cmd.Query  `cmd:"" default:"withargs" help:"Look up module file ids, NIDs, and symbol names (use 'query dump' to look up a name that matches a command)"`
	Dump   cmd.Dump   `cmd:""                    help:"Write the table as YAML or JSON"`
	Browse cmd.Browse `cmd:""                    help:"Search symbols interactively"`
}

// Run executes the psplibdoc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code when parsing
// terminates early (for example, after printing help).
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, os.Stdout, configPath(baseConfig), args)
}

func run(
	ctx context.Context,
	exit func(code int),
	stdout io.Writer,
	configFile string,
	args []string,
) error {
	var cli CLI

	vars := kong.Vars{
		cmd.ConfigIdentifier:   configFile,
		cmd.CacheIdentifier:    cacheDir(),
		cmd.DocumentIdentifier: pkg.DefaultDocument,
		"browseLimit":          strconv.Itoa(browse.DefaultLimit),
		"version":              pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags so the logger is configured before Kong
	// reports any parse error.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(stdout, os.Stderr),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configFile),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize logger configuration with all parsed values, including those
	// that only came from the configuration file.
	cli.Log.start(ctx)

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithDocument(ctx, cli.Doc)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	ktx.BindTo(ctx, (*context.Context)(nil))

	return ktx.Run()
}
