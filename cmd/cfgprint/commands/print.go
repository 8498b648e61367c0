package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/erraggy/cfgprint/internal/cliutil"
	"github.com/erraggy/cfgprint/loader"
	"github.com/erraggy/cfgprint/printer"
	"github.com/erraggy/cfgprint/variables"
)

// PrintFlags contains flags for the print command
type PrintFlags struct {
	Path      string
	Format    string
	Transform string
	Options   *optionFlag
	Stage     string
	Region    string
	Syntax    string
	MaxDepth  int
	Output    string
	Debug     bool
	Quiet     bool
}

// SetupPrintFlags creates and configures a FlagSet for the print command.
// Returns the FlagSet and a PrintFlags struct with bound flag variables.
func SetupPrintFlags() (*flag.FlagSet, *PrintFlags) {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	flags := &PrintFlags{Options: newOptionFlag()}

	fs.StringVar(&flags.Path, "path", "", "dot-separated path of the value to print (e.g. provider.stage, functions.0.name)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: yaml, json, or text")
	fs.StringVar(&flags.Transform, "transform", "", "transform applied after --path: keys")
	fs.Var(flags.Options, "opt", "option value for opt: references as key=value (repeatable)")
	fs.StringVar(&flags.Stage, "stage", "", "shortcut for --opt stage=<value>")
	fs.StringVar(&flags.Stage, "s", "", "shortcut for --opt stage=<value>")
	fs.StringVar(&flags.Region, "region", "", "shortcut for --opt region=<value>")
	fs.StringVar(&flags.Region, "r", "", "shortcut for --opt region=<value>")
	fs.StringVar(&flags.Syntax, "syntax", "", "reference pattern used when the config declares none (default "+variables.DefaultPattern+")")
	fs.IntVar(&flags.MaxDepth, "max-depth", variables.DefaultMaxDepth, "substitutions allowed per value before a reference is reported as circular")
	fs.StringVar(&flags.Output, "output", "", "write output to file instead of stdout")
	fs.StringVar(&flags.Output, "o", "", "write output to file instead of stdout")
	fs.BoolVar(&flags.Debug, "debug", false, "log each resolved reference to stderr")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress warnings")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress warnings")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: cfgprint print [flags] <file|url|->\n\n")
		cliutil.Writef(fs.Output(), "Resolve ${...} variable references in a YAML or JSON config and print the result.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nReference Sources:\n")
		cliutil.Writef(fs.Output(), "  ${self:a.b}          value at path a.b in the same config\n")
		cliutil.Writef(fs.Output(), "  ${opt:name}          value of --opt name=...\n")
		cliutil.Writef(fs.Output(), "  ${opt:x, 'default'}  fallbacks are tried left to right\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  cfgprint print serverless.yml\n")
		cliutil.Writef(fs.Output(), "  cfgprint print --stage prod --region eu-west-1 serverless.yml\n")
		cliutil.Writef(fs.Output(), "  cfgprint print --path provider --transform keys serverless.yml\n")
		cliutil.Writef(fs.Output(), "  cfgprint print --path functions.0.name --format text serverless.yml\n")
		cliutil.Writef(fs.Output(), "  cat serverless.yml | cfgprint print --format json -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Config printed\n")
		cliutil.Writef(fs.Output(), "  1    Load, resolution, or output failed\n")
	}

	return fs, flags
}

// optionValues returns the collected --opt values with the shortcut flags applied.
func (f *PrintFlags) optionValues() variables.Options {
	opts := make(variables.Options, len(f.Options.values)+2)
	for k, v := range f.Options.values {
		opts[k] = v
	}
	if f.Stage != "" {
		opts["stage"] = f.Stage
	}
	if f.Region != "" {
		opts["region"] = f.Region
	}
	return opts
}

// HandlePrint executes the print command
func HandlePrint(ctx context.Context, args []string, streams IO) error {
	fs, flags := SetupPrintFlags()
	fs.SetOutput(streams.Err)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("print command requires exactly one file path, URL, or '-' for stdin")
	}

	// Fail fast before reading the config
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	configPath := fs.Arg(0)
	opts := []printer.Option{
		printer.WithPath(flags.Path),
		printer.WithFormat(flags.Format),
		printer.WithTransform(flags.Transform),
		printer.WithOptions(flags.optionValues()),
		printer.WithMaxDepth(flags.MaxDepth),
	}
	if flags.Syntax != "" {
		opts = append(opts, printer.WithSyntax(flags.Syntax))
	}
	if flags.Debug {
		handler := slog.NewTextHandler(streams.Err, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, printer.WithLogger(variables.NewSlogAdapter(slog.New(handler))))
	}

	l := loader.FileLoader{Path: configPath, Stdin: streams.In}
	out, err := printer.Print(ctx, l, opts...)
	if err != nil {
		return fmt.Errorf("printing %s: %w", FormatConfigPath(configPath), err)
	}

	return WriteOutput(streams, flags.Output, out, flags.Quiet)
}
