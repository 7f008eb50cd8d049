package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff/renderer"
)

// yearsCmd holds the flags for the 'years' subcommand.
type yearsCmd struct {
	dir string
}

func (*yearsCmd) Name() string     { return "years" }
func (*yearsCmd) Synopsis() string { return "list the loaded years and their record counts" }
func (*yearsCmd) Usage() string {
	return `chipdiff years [-dir <dir>]

  Lists every fiscal year found in the directory, with the number of chipset
  records loaded for each.
`
}

func (c *yearsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "directory of the CSV exports (defaults to the configured data dir)")
}

func (c *yearsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := loadRegistry(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.YearsMarkdown(g))
	return subcommands.ExitSuccess
}
