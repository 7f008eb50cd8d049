package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgopal/chipdiff/server"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the upload server and web frontend" }
func (*serveCmd) Usage() string {
	return `chipdiff serve [-port <port>]

  Runs a local web server holding one in-memory comparison session: upload
  CSV exports, add manual records, and read the previews and classification
  over HTTP. The session is lost when the server stops.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.port, "port", 0, "port to listen on (defaults to the configured port)")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	port := c.port
	if port == 0 {
		port = cfg.Server.Port
	}

	srv := server.New(cfg.Aliases())
	if err := srv.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
