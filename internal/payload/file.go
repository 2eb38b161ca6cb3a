// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package payload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/catalog-extractor/pkg/types"
)

// isYAML reports whether path names a YAML document.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Marshal encodes p as indented JSON with non-ASCII text and HTML characters
// left unescaped. The encoding is deterministic: map keys are sorted.
func Marshal(p types.Payload) ([]byte, error) {
	if p.Items == nil {
		p.Items = []types.Product{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes p to path, creating parent directories. Paths ending in
// .yaml or .yml are written as YAML, anything else as JSON.
func WriteFile(path string, p types.Payload) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		if p.Items == nil {
			p.Items = []types.Product{}
		}
		data, err = yaml.Marshal(&p)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	} else {
		data, err = Marshal(p)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadFile loads a payload written by WriteFile. JSON input may also be a
// bare array of records, in which case Source is left empty.
func ReadFile(path string) (types.Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Payload{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var p types.Payload
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &p); err != nil {
			return types.Payload{}, fmt.Errorf("parsing YAML %s: %w", path, err)
		}
		return p, nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &p.Items); err != nil {
			return types.Payload{}, fmt.Errorf("parsing JSON %s: %w", path, err)
		}
		return p, nil
	}

	if err := json.Unmarshal(trimmed, &p); err != nil {
		return types.Payload{}, fmt.Errorf("parsing JSON %s: %w", path, err)
	}
	if p.Items == nil {
		return types.Payload{}, fmt.Errorf("%s must contain an array or an 'items' array", path)
	}
	return p, nil
}
