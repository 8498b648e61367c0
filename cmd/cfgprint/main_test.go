package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/cfgprint/cmd/cfgprint/commands"
	"github.com/erraggy/cfgprint/internal/testutil"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"prnt", "print"},
		{"pirnt", "print"},
		{"serv", "serve"},
		{"sevre", "serve"},
		{"versio", "version"},
		{"hep", "help"},

		{"xyz", ""},
		{"resolveall", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func newStreams(stdin string) (commands.IO, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return commands.IO{In: strings.NewReader(stdin), Out: &out, Err: &errOut}, &out, &errOut
}

func TestRun_NoArgs(t *testing.T) {
	streams, _, errOut := newStreams("")
	assert.Equal(t, 1, run(context.Background(), nil, streams))
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestRun_Version(t *testing.T) {
	streams, out, _ := newStreams("")
	assert.Equal(t, 0, run(context.Background(), []string{"--version"}, streams))
	assert.True(t, strings.HasPrefix(out.String(), "cfgprint v"))
}

func TestRun_Help(t *testing.T) {
	streams, out, _ := newStreams("")
	assert.Equal(t, 0, run(context.Background(), []string{"help"}, streams))
	assert.Contains(t, out.String(), "print     Resolve variables")
	assert.Contains(t, out.String(), "serve     Run the MCP server")
}

func TestRun_UnknownCommand(t *testing.T) {
	streams, _, errOut := newStreams("")
	assert.Equal(t, 1, run(context.Background(), []string{"prnt"}, streams))
	assert.Contains(t, errOut.String(), "Error: unknown command: prnt")
	assert.Contains(t, errOut.String(), "Did you mean 'print'?")
}

func TestRun_PrintStdin(t *testing.T) {
	streams, out, _ := newStreams("service: app\nstage: ${opt:stage, 'dev'}\n")
	code := run(context.Background(), []string{"print", "--stage", "prod", "-"}, streams)
	assert.Equal(t, 0, code)
	assert.Equal(t, "service: app\nstage: prod\n", out.String())
}

func TestRun_PrintError(t *testing.T) {
	streams, out, errOut := newStreams("stage: ${opt:stage}\n")
	code := run(context.Background(), []string{"print", "-"}, streams)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String(), "no partial output on failure")
	assert.Contains(t, errOut.String(), "Error: printing <stdin>:")
	assert.Contains(t, errOut.String(), "opt:stage")
}

func TestRun_PrintFile(t *testing.T) {
	path := testutil.WriteTempConfig(t, "serverless.yml", "provider:\n  name: aws\n  runtime: go\n")

	streams, out, _ := newStreams("")
	code := run(context.Background(), []string{"print", "--path", "provider", "--transform", "keys", "--format", "text", path}, streams)
	assert.Equal(t, 0, code)
	assert.Equal(t, "name\nruntime\n", strings.ReplaceAll(out.String(), "\r\n", "\n"))
}
