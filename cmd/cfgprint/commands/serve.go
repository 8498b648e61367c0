package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/cfgprint/internal/cliutil"
	"github.com/erraggy/cfgprint/internal/mcpserver"
	"github.com/erraggy/cfgprint/variables"
)

// SetupServeFlags creates the FlagSet for the serve command.
func SetupServeFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: cfgprint serve\n\n")
		cliutil.Writef(fs.Output(), "Run the MCP server on stdin/stdout. Tools: print, references.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  CFGPRINT_MAX_DEPTH          substitution limit per value (default %d)\n", variables.DefaultMaxDepth)
		cliutil.Writef(fs.Output(), "  CFGPRINT_DEFAULT_FORMAT     output format when a call sets none (default yaml)\n")
		cliutil.Writef(fs.Output(), "  CFGPRINT_MAX_INLINE_SIZE    largest inline content in bytes\n")
		cliutil.Writef(fs.Output(), "  CFGPRINT_ALLOW_PRIVATE_IPS  allow url inputs on private networks\n")
	}
	return fs
}

// HandleServe executes the serve command and blocks until the client disconnects.
func HandleServe(ctx context.Context, args []string, streams IO) error {
	fs := SetupServeFlags()
	fs.SetOutput(streams.Err)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("serve command takes no arguments")
	}
	return mcpserver.Run(ctx)
}
