package document

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/internal/testutil"
)

const serviceYAML = `service: my-service
provider:
  name: aws
  stage: ${opt:stage}
  memorySize: 512
  timeout: 6.5
  tracing: false
  tags: ~
functions:
  - name: hello
    handler: handler.hello
  - name: world
    handler: handler.world
`

func mustDecode(t *testing.T, src string) *Node {
	t.Helper()
	n, err := Decode([]byte(src))
	require.NoError(t, err)
	return n
}

func TestDecode_PreservesKeyOrderAndTypes(t *testing.T) {
	root := mustDecode(t, serviceYAML)

	require.Equal(t, MappingKind, root.Kind)
	assert.Equal(t, []string{"service", "provider", "functions"}, root.Keys())

	provider, ok := root.Get("provider")
	require.True(t, ok)
	assert.Equal(t, []string{"name", "stage", "memorySize", "timeout", "tracing", "tags"}, provider.Keys())

	memory, _ := provider.Get("memorySize")
	assert.Equal(t, int64(512), memory.Value)
	timeout, _ := provider.Get("timeout")
	assert.Equal(t, 6.5, timeout.Value)
	tracing, _ := provider.Get("tracing")
	assert.Equal(t, false, tracing.Value)
	tags, _ := provider.Get("tags")
	assert.True(t, tags.IsNull())

	stage, _ := provider.Get("stage")
	s, ok := stage.StringValue()
	require.True(t, ok)
	assert.Equal(t, "${opt:stage}", s)

	functions, _ := root.Get("functions")
	require.Equal(t, SequenceKind, functions.Kind)
	assert.Equal(t, 2, functions.Len())
}

func TestDecode_JSONInput(t *testing.T) {
	root := mustDecode(t, `{"zeta": 1, "alpha": {"b": true, "a": "x"}}`)
	assert.Equal(t, []string{"zeta", "alpha"}, root.Keys())

	alpha, _ := root.Get("alpha")
	assert.Equal(t, []string{"b", "a"}, alpha.Keys())
}

func TestDecode_EmptyIsNull(t *testing.T) {
	root := mustDecode(t, "")
	assert.True(t, root.IsNull())
}

func TestDecode_AliasesAndMergeKeys(t *testing.T) {
	root := mustDecode(t, `defaults: &defaults
  runtime: nodejs
  memory: 128
prod:
  <<: *defaults
  memory: 1024
list:
  - *defaults
`)
	prod, ok := root.Get("prod")
	require.True(t, ok)
	assert.Equal(t, []string{"runtime", "memory"}, prod.Keys())

	memory, _ := prod.Get("memory")
	assert.Equal(t, int64(1024), memory.Value, "explicit key must win over merged key")

	list, _ := root.Get("list")
	require.Equal(t, 1, list.Len())
	runtime, ok := list.Items[0].Get("runtime")
	require.True(t, ok)
	assert.Equal(t, "nodejs", runtime.Value)
}

func TestDecode_AliasExpansionLimit(t *testing.T) {
	root, err := Decode([]byte(testutil.NestedAliasYAML(10)))
	require.NoError(t, err, "moderate alias reuse stays within budget")
	a10, ok := root.Get("a10")
	require.True(t, ok)
	assert.Equal(t, 2, a10.Len())

	_, err = Decode([]byte(testutil.NestedAliasYAML(26)))
	require.Error(t, err)
	assert.ErrorIs(t, err, cfgerrors.ErrResourceLimit)
	var limitErr *cfgerrors.ResourceLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, "alias_expansion", limitErr.ResourceType)
}

func TestDecode_MergeKeyRequiresMapping(t *testing.T) {
	_, err := Decode([]byte("a:\n  <<: scalar\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merge key value must be a mapping")
}

func TestMapping_SetReplacesInPlace(t *testing.T) {
	m := Mapping(
		Pair{Key: "a", Value: Scalar(1)},
		Pair{Key: "b", Value: Scalar(2)},
		Pair{Key: "a", Value: Scalar(3)},
	)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	a, _ := m.Get("a")
	assert.Equal(t, int64(3), a.Value)

	m.Set("c", Scalar("new"))
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
}

func TestClone_IsDeep(t *testing.T) {
	root := mustDecode(t, serviceYAML)
	clone := root.Clone()
	require.True(t, root.Equal(clone), spew.Sdump(clone))

	provider, _ := clone.Get("provider")
	provider.Set("name", Scalar("gcp"))

	original, _ := root.Get("provider")
	name, _ := original.Get("name")
	assert.Equal(t, "aws", name.Value)
	assert.False(t, root.Equal(clone))
}

func TestEqual_KeyOrderMatters(t *testing.T) {
	a := Mapping(Pair{Key: "x", Value: Scalar(1)}, Pair{Key: "y", Value: Scalar(2)})
	b := Mapping(Pair{Key: "y", Value: Scalar(2)}, Pair{Key: "x", Value: Scalar(1)})
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.Clone()))
	assert.True(t, (*Node)(nil).Equal(Null()))
}

func TestFromValue(t *testing.T) {
	n, err := FromValue(map[string]any{
		"service":  "s",
		"provider": map[string]any{"name": "aws"},
		"ports":    []any{80, uint8(8), 1.5},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ports", "provider", "service"}, n.Keys())

	ports, _ := n.Get("ports")
	assert.Equal(t, []any{int64(80), int64(8), 1.5}, ports.Interface())

	_, err = FromValue(struct{}{})
	require.Error(t, err)
}

func TestInterface(t *testing.T) {
	root := mustDecode(t, "a: 1\nb: [x, true]\n")
	want := map[string]any{"a": int64(1), "b": []any{"x", true}}
	if diff := cmp.Diff(want, root.Interface()); diff != "" {
		t.Errorf("Interface() mismatch (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
		ok   bool
	}{
		{"string", Scalar("dev"), "dev", true},
		{"int", Scalar(42), "42", true},
		{"float", Scalar(1.25), "1.25", true},
		{"whole float", Scalar(2.0), "2", true},
		{"bool", Scalar(true), "true", true},
		{"null", Null(), "null", true},
		{"mapping", Mapping(), "", false},
		{"sequence", Sequence(), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.node.Text()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "scalar", ScalarKind.String())
	assert.Equal(t, "sequence", SequenceKind.String())
	assert.Equal(t, "mapping", MappingKind.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestJSONString_PreservesOrderAndRoundTrips(t *testing.T) {
	root := mustDecode(t, `service: my-service
provider:
  name: aws
  url: "https://example.com/?a=1&b=<2>"
  count: 3
  ratio: 0.5
  enabled: true
  nothing: null
`)
	out, err := root.JSONString("  ")
	require.NoError(t, err)

	want := `{
  "service": "my-service",
  "provider": {
    "name": "aws",
    "url": "https://example.com/?a=1&b=<2>",
    "count": 3,
    "ratio": 0.5,
    "enabled": true,
    "nothing": null
  }
}`
	assert.Equal(t, want, out)

	var parsed any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	reparsed := mustDecode(t, out)
	assert.True(t, root.Equal(reparsed), spew.Sdump(reparsed))
}

func TestMarshalJSON_WholeFloatsStayFloats(t *testing.T) {
	root := Sequence(Scalar(2.0), Scalar(1e3), Scalar(1e21), Scalar(1.5), Scalar(7))
	out, err := root.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[2.0,1000.0,1e+21,1.5,7]`, string(out))

	back, err := DecodeJSON(out)
	require.NoError(t, err)
	assert.True(t, root.Equal(back), spew.Sdump(back))
}

func TestJSON_RejectsNonFiniteFloats(t *testing.T) {
	_, err := Scalar(.0).MarshalJSON()
	require.NoError(t, err)

	root := mustDecode(t, "x: .inf\n")
	_, err = root.MarshalJSON()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Infinity")
}

func TestYAMLString(t *testing.T) {
	root := mustDecode(t, `service: my-service
provider:
  name: aws
  stage: dev
`)
	out, err := root.YAMLString()
	require.NoError(t, err)
	assert.Equal(t, "service: my-service\nprovider:\n  name: aws\n  stage: dev", out)
}

func TestYAMLString_RoundTripsTypedScalars(t *testing.T) {
	root := Mapping(
		Pair{Key: "stringTrue", Value: Scalar("true")},
		Pair{Key: "stringNumber", Value: Scalar("0123")},
		Pair{Key: "wholeFloat", Value: Scalar(3.0)},
		Pair{Key: "int", Value: Scalar(7)},
		Pair{Key: "empty", Value: Scalar("")},
		Pair{Key: "unicode", Value: Scalar("①⑴⒈⒜Ⓐⓐⓟ ..▉가Ὠ")},
		Pair{Key: "list", Value: Sequence(Scalar("a"), Null())},
	)
	out, err := root.YAMLString()
	require.NoError(t, err)

	reparsed := mustDecode(t, out)
	assert.True(t, root.Equal(reparsed), "yaml:\n%s\nreparsed:\n%s", out, spew.Sdump(reparsed))
}
