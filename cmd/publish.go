package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff"
	"github.com/sgopal/chipdiff/renderer"
)

// publishCmd holds the flags for the 'publish' subcommand.
type publishCmd struct {
	dir            string
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "generate the comparison reports for every year" }

func (*publishCmd) Usage() string {
	return `chipdiff publish [-dir <dir>] [-o <out>] [-frontmatter <file>]

  Generates the preview and classification report of every loaded year and
  saves them to a directory tree (<out>/<year>/preview.md and report.md).
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "directory of the CSV exports (defaults to the configured data dir)")
	f.StringVar(&c.outputDir, "o", "reports", "root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "path to a Go template file for the report front matter")
}

// frontMatterData is the data handed to the front matter template.
type frontMatterData struct {
	Year  int
	Title string
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatter *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatter, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to parse front matter template: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	g, err := loadRegistry(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if g.Len() == 0 {
		fmt.Println("No years loaded, nothing to publish.")
		return subcommands.ExitSuccess
	}

	for year := range g.Years() {
		yearDir := filepath.Join(c.outputDir, fmt.Sprintf("%d", year))
		if err := os.MkdirAll(yearDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create %q: %v\n", yearDir, err)
			return subcommands.ExitFailure
		}

		preview := renderer.PreviewMarkdown(year, g.Get(year))
		report := renderer.ClassificationMarkdown(chipdiff.Classify(g, year))

		pages := map[string]struct {
			title   string
			content string
		}{
			"preview.md": {fmt.Sprintf("%d Data", year), preview},
			"report.md":  {fmt.Sprintf("Chipset Changes for %d", year), report},
		}
		for name, page := range pages {
			var buf bytes.Buffer
			if frontMatter != nil {
				data := frontMatterData{Year: year, Title: page.title}
				if err := frontMatter.Execute(&buf, data); err != nil {
					fmt.Fprintf(os.Stderr, "failed to render front matter for %d: %v\n", year, err)
					return subcommands.ExitFailure
				}
			}
			buf.WriteString(page.content)

			path := filepath.Join(yearDir, name)
			if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write %q: %v\n", path, err)
				return subcommands.ExitFailure
			}
		}
	}

	fmt.Printf("Successfully published reports to %s\n", c.outputDir)
	return subcommands.ExitSuccess
}
