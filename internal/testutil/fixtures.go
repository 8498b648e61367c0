// Package testutil provides config fixtures shared by cfgprint tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v4"
)

// ServerlessYAML is a serverless-style config exercising self: and opt:
// references, fallbacks, embedded and whole-value substitution.
const ServerlessYAML = `service: orders
provider:
  name: aws
  stage: ${opt:stage, 'dev'}
  region: ${opt:region, 'us-east-1'}
custom:
  port: 8080
  bucket: ${self:service}-${self:provider.stage}
functions:
  - name: create
    port: ${self:custom.port}
`

// NestedAliasYAML returns a small document where each level aliases the
// previous one twice, so fully expanding it yields 2^(levels+1) leaves.
func NestedAliasYAML(levels int) string {
	var b strings.Builder
	b.WriteString("a0: &a0 [x, x]\n")
	for i := 1; i <= levels; i++ {
		fmt.Fprintf(&b, "a%d: &a%d [*a%d, *a%d]\n", i, i, i-1, i-1)
	}
	return b.String()
}

// WriteTempConfig writes content to a file called name in a fresh temporary
// directory and returns its path.
func WriteTempConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temporary config %s: %v", name, err)
	}
	return path
}

// WriteTempYAML marshals doc to YAML and writes it to a temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}
	return WriteTempConfig(t, "config.yml", string(data))
}
