package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff"
	"github.com/sgopal/chipdiff/renderer"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	dir  string
	year int
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "classify chipsets as added, removed or reappeared" }
func (*compareCmd) Usage() string {
	return `chipdiff compare [-dir <dir>] [-y <year>]

  Loads every fiscal-year CSV export under the directory and displays, for
  the target year (defaults to the latest loaded year), which chipsets were
  added, removed, or reappeared relative to the preceding years.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "directory of the CSV exports (defaults to the configured data dir)")
	f.IntVar(&c.year, "y", 0, "target year (defaults to the latest loaded year)")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	g, err := loadRegistry(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	target := targetYear(g, c.year)
	if target == 0 {
		fmt.Fprintln(os.Stderr, "Error: no years loaded, nothing to compare")
		return subcommands.ExitFailure
	}

	classification := chipdiff.Classify(g, target)
	printMarkdown(renderer.ClassificationMarkdown(classification))
	return subcommands.ExitSuccess
}

// targetYear resolves the year to compare: the explicit flag when given, the
// latest loaded year otherwise.
func targetYear(g *chipdiff.Registry, flagYear int) int {
	if flagYear != 0 {
		return flagYear
	}
	return g.Latest()
}
