package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	dir      string
	year     int
	id       string
	customer string
	pdm      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "manually add a chipset record to a year" }
func (*addCmd) Usage() string {
	return `chipdiff add -y <year> -id <chipset> [-customer <name>] [-pdm <name>] [-dir <dir>]

  Appends a manual chipset record to the manual entries file of that year
  (manual_<year>.csv in the data directory). Manual entries are merged on
  every load through the same path as uploaded rows, and win over the export
  on duplicate ids.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "directory of the CSV exports (defaults to the configured data dir)")
	f.IntVar(&c.year, "y", 0, "fiscal year of the record")
	f.StringVar(&c.id, "id", "", "chipset SP code")
	f.StringVar(&c.customer, "customer", "", "customer details")
	f.StringVar(&c.pdm, "pdm", "", "PDM name")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.year == 0 || c.id == "" {
		fmt.Fprintln(os.Stderr, "both -y and -id must be provided")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	dir := c.dir
	if dir == "" {
		dir = cfg.Data.Dir
	}

	record := chipdiff.NewRecord(c.id, c.customer, c.pdm)
	if err := chipdiff.AppendManual(dir, c.year, record); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s to %s\n", record.ID, chipdiff.ManualFile(dir, c.year))
	return subcommands.ExitSuccess
}
