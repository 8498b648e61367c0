// Package commands provides CLI command handlers for cfgprint.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/erraggy/cfgprint/internal/cliutil"
	"github.com/erraggy/cfgprint/internal/fileutil"
	"github.com/erraggy/cfgprint/internal/pathutil"
	"github.com/erraggy/cfgprint/loader"
	"github.com/erraggy/cfgprint/printer"
)

// Output format constants
const (
	FormatText = printer.FormatText
	FormatJSON = printer.FormatJSON
	FormatYAML = printer.FormatYAML
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = loader.StdinPath

// IO bundles the streams a command reads and writes.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdIO returns the process's standard streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// FormatConfigPath returns a display-friendly path for the config source.
func FormatConfigPath(configPath string) string {
	if configPath == StdinFilePath {
		return "<stdin>"
	}
	return configPath
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format == "" {
		return fmt.Errorf("format must not be empty. Valid formats: %v", printer.ValidFormats())
	}
	return printer.ValidateFormat(format)
}

// WriteOutput writes payload and a trailing newline to outputPath, or to
// out when outputPath is empty. The payload is written in one call.
func WriteOutput(streams IO, outputPath, payload string, quiet bool) error {
	data := []byte(payload + "\n")
	if outputPath == "" {
		return cliutil.WriteAll(streams.Out, data)
	}

	cleaned, err := pathutil.SanitizeOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if _, err := os.Stat(cleaned); err == nil && !quiet {
		cliutil.Warnf(streams.Err, "output file %s already exists and will be overwritten", outputPath)
	}
	if err := os.WriteFile(cleaned, data, fileutil.OutputFileMode); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
