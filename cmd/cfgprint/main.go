package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/cfgprint"
	"github.com/erraggy/cfgprint/cmd/cfgprint/commands"
	"github.com/erraggy/cfgprint/internal/cliutil"
)

// command is one cfgprint subcommand.
type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string, streams commands.IO) error
}

var commandList = []command{
	{name: "print", summary: "Resolve variables in a config and print it", run: commands.HandlePrint},
	{name: "serve", summary: "Run the MCP server on stdio", run: commands.HandleServe},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], commands.StdIO())
	stop()
	os.Exit(code)
}

// run dispatches args to a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, streams commands.IO) int {
	if len(args) < 1 {
		printUsage(streams.Err)
		return 1
	}

	switch name := args[0]; name {
	case "version", "-v", "--version":
		cliutil.Writef(streams.Out, "cfgprint v%s\n", cfgprint.Version())
		return 0
	case "help", "-h", "--help":
		printUsage(streams.Out)
		return 0
	default:
		for _, c := range commandList {
			if c.name != name {
				continue
			}
			if err := c.run(ctx, args[1:], streams); err != nil {
				cliutil.Errorf(streams.Err, "%v", err)
				return 1
			}
			return 0
		}
		cliutil.Errorf(streams.Err, "unknown command: %s", name)
		if suggestion := suggestCommand(name); suggestion != "" {
			cliutil.Writef(streams.Err, "Did you mean '%s'?\n", suggestion)
		}
		cliutil.Writef(streams.Err, "\n")
		printUsage(streams.Err)
		return 1
	}
}

func printUsage(w io.Writer) {
	styles := cliutil.NewStyles(w)
	cliutil.Writef(w, "cfgprint - print configuration files with variables resolved\n\n")
	cliutil.Writef(w, "Usage:\n  cfgprint <command> [flags]\n\n")
	cliutil.Writef(w, "Commands:\n")
	for _, c := range commandList {
		cliutil.Writef(w, "  %s%s\n", cliutil.PadRight(c.name, 10), c.summary)
	}
	cliutil.Writef(w, "  %s%s\n", cliutil.PadRight("version", 10), "Show version information")
	cliutil.Writef(w, "  %s%s\n", cliutil.PadRight("help", 10), "Show this help message")
	cliutil.Writef(w, "\n%s\n", styles.Muted("Run 'cfgprint <command> --help' for more information on a command."))
}

// suggestCommand returns the command name closest to input within an edit
// distance of 2, or "" if none is that close.
func suggestCommand(input string) string {
	names := []string{"version", "help"}
	for _, c := range commandList {
		names = append(names, c.name)
	}
	best, bestDist := "", 3
	for _, name := range names {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
