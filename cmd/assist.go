package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff"
	"github.com/sgopal/chipdiff/agent"
	"github.com/sgopal/chipdiff/renderer"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the AI assistant.
type assistCmd struct {
	dir string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `chipdiff assist [-dir <dir>] [question...]

  Starts an interactive session with the AI assistant, grounded on the
  loaded exports and their classification. An optional question on the
  command line is answered first.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "directory of the CSV exports (defaults to the configured data dir)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	g, err := loadRegistry(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin)
	if err := a.Run(ctx, client, sessionReport(g), initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// sessionReport renders the whole session as the assistant's grounding
// context: every year's preview and every year's classification.
func sessionReport(g *chipdiff.Registry) string {
	var b strings.Builder
	b.WriteString(renderer.RegistryMarkdown(g))
	for year := range g.Years() {
		b.WriteString("\n")
		b.WriteString(renderer.ClassificationMarkdown(chipdiff.Classify(g, year)))
	}
	return b.String()
}
