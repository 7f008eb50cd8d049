package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff/renderer"
)

// previewCmd holds the flags for the 'preview' subcommand.
type previewCmd struct {
	dir  string
	year int
}

func (*previewCmd) Name() string     { return "preview" }
func (*previewCmd) Synopsis() string { return "display the raw records of the loaded years" }
func (*previewCmd) Usage() string {
	return `chipdiff preview [-dir <dir>] [-y <year>]

  Displays the records loaded for one year, or for every year when -y is
  omitted.
`
}

func (c *previewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "directory of the CSV exports (defaults to the configured data dir)")
	f.IntVar(&c.year, "y", 0, "year to preview (defaults to all years)")
}

func (c *previewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := loadRegistry(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.year != 0 {
		printMarkdown(renderer.PreviewMarkdown(c.year, g.Get(c.year)))
	} else {
		printMarkdown(renderer.RegistryMarkdown(g))
	}
	return subcommands.ExitSuccess
}
