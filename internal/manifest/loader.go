package manifest

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spf13/afero"
)

// Load reads and validates the manifest at path inside fsys.
func Load(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestNotFound, path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates manifest content.
func Parse(data []byte) (*Manifest, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidManifest, err)
	}

	result, err := validate(doc)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidManifest, result)
	}

	// The schema guarantees an object with a string name.
	raw := doc.(map[string]any)
	m := &Manifest{Name: raw["name"].(string)}
	if v, ok := raw["version"].(string); ok {
		m.Version = v
	}
	if req, ok := raw["require"].(map[string]any); ok {
		if php, ok := req["php"].(string); ok {
			m.PHP = php
		}
	}
	return m, nil
}
