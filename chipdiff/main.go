package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sgopal/chipdiff/cmd"
)

// completion describes the command line for shell completion. Install it
// with COMP_INSTALL=1 chipdiff.
var completion = &complete.Command{
	Sub: map[string]*complete.Command{
		"compare": {Flags: map[string]complete.Predictor{
			"dir": predict.Dirs("*"),
			"y":   predict.Something,
		}},
		"preview": {Flags: map[string]complete.Predictor{
			"dir": predict.Dirs("*"),
			"y":   predict.Something,
		}},
		"years": {Flags: map[string]complete.Predictor{
			"dir": predict.Dirs("*"),
		}},
		"add": {Flags: map[string]complete.Predictor{
			"dir":      predict.Dirs("*"),
			"y":        predict.Something,
			"id":       predict.Something,
			"customer": predict.Something,
			"pdm":      predict.Something,
		}},
		"publish": {Flags: map[string]complete.Predictor{
			"dir":         predict.Dirs("*"),
			"o":           predict.Dirs("*"),
			"frontmatter": predict.Files("*"),
		}},
		"serve": {Flags: map[string]complete.Predictor{
			"port": predict.Something,
		}},
		"pull": {Flags: map[string]complete.Predictor{
			"addr": predict.Something,
			"y":    predict.Something,
			"path": predict.Something,
		}},
		"assist": {Flags: map[string]complete.Predictor{
			"dir": predict.Dirs("*"),
		}},
		"topic": {Args: predict.Something},
	},
}

func main() {
	completion.Complete("chipdiff")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
