// Package cmd implements the CLI application to compare chipset rosters.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff"
)

// Commands is the list of all subcommands, in the order they show in help.
var Commands = []subcommands.Command{
	&compareCmd{},
	&previewCmd{},
	&yearsCmd{},
	&addCmd{},
	&publishCmd{},
	&serveCmd{},
	&pullCmd{},
	&assistCmd{},
	&topicCmd{},
}

// configFile is where the optional configuration is looked up. As a CLI
// application with a very short lived lifecycle, reading it per command is
// fine.
const configFile = "chipdiff.toml"

// loadConfig reads the optional chipdiff.toml from the working directory.
func loadConfig() (*chipdiff.Config, error) {
	return chipdiff.LoadConfig(configFile)
}

// loadRegistry loads every CSV export under dir into a fresh registry,
// reporting rejected files on stderr without failing the whole load.
func loadRegistry(dir string) (*chipdiff.Registry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		dir = cfg.Data.Dir
	}

	g, reports, err := chipdiff.LoadDir(dir, cfg.Aliases())
	if err != nil && g == nil {
		return nil, err
	}
	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", r.Err)
		}
	}
	return g, nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot handle it.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
