package linkedin

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// RenderYAML serializes a profile tree as block-style YAML with two-space
// indentation.
func RenderYAML(tree any) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(tree); err != nil {
		return "", fmt.Errorf("encode profile YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode profile YAML: %w", err)
	}

	return buf.String(), nil
}
