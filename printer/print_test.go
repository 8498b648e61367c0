package printer

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
	"github.com/erraggy/cfgprint/loader"
	"github.com/erraggy/cfgprint/variables"
)

const serviceYAML = `service: my-service
provider:
  name: aws
  stage: ${opt:stage}
  region: ${opt:region, 'us-east-1'}
custom:
  regions: [us-east-1, eu-west-1]
`

func yamlLoader(src string) loader.Loader {
	return loader.BytesLoader{Source: "test.yml", Data: []byte(src)}
}

// countingLoader records whether Load was called.
type countingLoader struct {
	calls int
	inner loader.Loader
}

func (c *countingLoader) Load(ctx context.Context) (*document.Node, error) {
	c.calls++
	return c.inner.Load(ctx)
}

func TestPrint_EndToEnd(t *testing.T) {
	src := "service: my-service\nprovider:\n  name: aws\n  stage: ${opt:stage}\n"

	out, err := Print(context.Background(), yamlLoader(src), WithOptions(variables.Options{"stage": "dev"}))
	require.NoError(t, err)

	got, err := document.Decode([]byte(out))
	require.NoError(t, err)
	want := document.Mapping(
		document.Pair{Key: "service", Value: document.Scalar("my-service")},
		document.Pair{Key: "provider", Value: document.Mapping(
			document.Pair{Key: "name", Value: document.Scalar("aws")},
			document.Pair{Key: "stage", Value: document.Scalar("dev")},
		)},
	)
	assert.True(t, want.Equal(got), out)
}

func TestPrint_PathFormatTransform(t *testing.T) {
	opts := WithOptions(variables.Options{"stage": "prod"})

	tests := []struct {
		name string
		opts []Option
		want string
	}{
		{
			name: "scalar path as text",
			opts: []Option{WithPath("provider.stage"), WithFormat(FormatText)},
			want: "prod",
		},
		{
			name: "literal fallback",
			opts: []Option{WithPath("provider.region"), WithFormat(FormatText)},
			want: "us-east-1",
		},
		{
			name: "keys as text",
			opts: []Option{WithTransform(TransformKeys), WithFormat(FormatText)},
			want: "service" + LineSeparator + "provider" + LineSeparator + "custom",
		},
		{
			name: "sequence index",
			opts: []Option{WithPath("custom.regions.1"), WithFormat(FormatText)},
			want: "eu-west-1",
		},
		{
			name: "mapping as json",
			opts: []Option{WithPath("provider"), WithFormat(FormatJSON)},
			want: "{\n  \"name\": \"aws\",\n  \"stage\": \"prod\",\n  \"region\": \"us-east-1\"\n}",
		},
		{
			name: "keys as yaml",
			opts: []Option{WithPath("provider"), WithTransform(TransformKeys)},
			want: "- name\n- stage\n- region",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Print(context.Background(), yamlLoader(serviceYAML), append([]Option{opts}, tt.opts...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestPrint_Errors(t *testing.T) {
	stage := WithOptions(variables.Options{"stage": "dev"})

	t.Run("path not found", func(t *testing.T) {
		out, err := Print(context.Background(), yamlLoader(serviceYAML), stage, WithPath("provider.foobar"))
		assert.Empty(t, out)
		assert.ErrorIs(t, err, cfgerrors.ErrPathNotFound)
	})

	t.Run("text of mapping reports path", func(t *testing.T) {
		_, err := Print(context.Background(), yamlLoader(serviceYAML), stage, WithPath("provider"), WithFormat(FormatText))
		var notScalar *cfgerrors.NotScalarError
		require.True(t, errors.As(err, &notScalar), "got %v", err)
		assert.Equal(t, "provider", notScalar.Path)
	})

	t.Run("unresolved", func(t *testing.T) {
		_, err := Print(context.Background(), yamlLoader(serviceYAML))
		assert.ErrorIs(t, err, cfgerrors.ErrUnresolvedReference)
	})

	t.Run("transform on scalar", func(t *testing.T) {
		_, err := Print(context.Background(), yamlLoader(serviceYAML), stage, WithPath("service"), WithTransform(TransformKeys))
		assert.ErrorIs(t, err, cfgerrors.ErrTransform)
	})

	t.Run("load failure", func(t *testing.T) {
		_, err := Print(context.Background(), yamlLoader("a: ["))
		assert.ErrorIs(t, err, cfgerrors.ErrConfigLoad)
	})

	t.Run("nil loader", func(t *testing.T) {
		_, err := Print(context.Background(), nil)
		assert.ErrorIs(t, err, cfgerrors.ErrConfigLoad)
	})

	t.Run("bad max depth", func(t *testing.T) {
		l := &countingLoader{inner: yamlLoader(serviceYAML)}
		_, err := Print(context.Background(), l, WithMaxDepth(0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "printer: invalid options: max depth must be positive, got 0")
		assert.Zero(t, l.calls)
	})

	t.Run("circular with low depth", func(t *testing.T) {
		_, err := Print(context.Background(), yamlLoader("a: ${self:a}"), WithMaxDepth(4))
		assert.ErrorIs(t, err, cfgerrors.ErrCircularReference)
	})
}

func TestPrint_ValidatesBeforeLoading(t *testing.T) {
	tests := []struct {
		name   string
		opt    Option
		target error
	}{
		{"unknown format", WithFormat("xml"), cfgerrors.ErrFormat},
		{"unknown transform", WithTransform("foobar"), cfgerrors.ErrTransform},
		{"invalid syntax", WithSyntax(`(`), cfgerrors.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &countingLoader{inner: yamlLoader(serviceYAML)}
			_, err := Print(context.Background(), l, tt.opt)
			assert.ErrorIs(t, err, tt.target)
			assert.Zero(t, l.calls)
		})
	}
}

func TestPrint_WithSyntax(t *testing.T) {
	out, err := Print(context.Background(), yamlLoader("stage: '#{opt:stage}'"),
		WithSyntax(`#\{([^{}]+?)\}`),
		WithOptions(variables.Options{"stage": "dev"}),
		WithPath("stage"),
		WithFormat(FormatText),
	)
	require.NoError(t, err)
	assert.Equal(t, "dev", out)
}

func TestPrint_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := variables.NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := Print(context.Background(), yamlLoader(serviceYAML),
		WithOptions(variables.Options{"stage": "dev"}), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `msg="loaded config"`)
	assert.Contains(t, out, `msg="resolved reference"`)
	assert.Contains(t, out, "format=yaml")
}
