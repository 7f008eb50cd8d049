package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff"
	"github.com/sgopal/chipdiff/renderer"
)

// pullCmd holds the flags for the 'pull' subcommand.
type pullCmd struct {
	addr string
	year int
	path string
}

func (*pullCmd) Name() string     { return "pull" }
func (*pullCmd) Synopsis() string { return "fetch a classification from a running chipdiff server" }
func (*pullCmd) Usage() string {
	return `chipdiff pull -addr <url> -y <year> [-path <jsonpath>]

  Fetches the classification of a year from a running 'chipdiff serve'
  instance and displays it. With -path, evaluates a JSONPath expression
  against the classification JSON and prints the result instead, e.g.
  -path '$.added[*].id'. Responses are cached on disk for the day.
`
}

func (c *pullCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "http://localhost:8696", "base URL of the running server")
	f.IntVar(&c.year, "y", 0, "target year to fetch")
	f.StringVar(&c.path, "path", "", "JSONPath expression to evaluate against the classification")
}

func (c *pullCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.year == 0 {
		fmt.Fprintln(os.Stderr, "-y must be provided")
		return subcommands.ExitUsageError
	}

	client := chipdiff.DailyClient()

	if c.path != "" {
		jobj, err := chipdiff.FetchJSON(client, c.addr, c.year)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		jval, err := jsonpath.Get(c.path, jobj)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", c.path, err)
			return subcommands.ExitFailure
		}
		out, err := json.Marshal(jval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(out))
		return subcommands.ExitSuccess
	}

	classification, err := chipdiff.FetchClassification(client, c.addr, c.year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ClassificationMarkdown(classification))
	return subcommands.ExitSuccess
}
