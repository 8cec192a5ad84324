// Package modelio loads Model definitions from YAML and JSON, the two
// wire formats spec section 6.1 documents for model authoring.
package modelio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GoSim-25-26J-441/scm-sim-core/internal/scm/domain"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads and parses a Model from a YAML file on disk.
func LoadYAML(path string) (*domain.Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelio: read %s: %w", path, err)
	}
	return ParseYAML(b)
}

// ParseYAML parses a Model from YAML bytes.
func ParseYAML(b []byte) (*domain.Model, error) {
	var m domain.Model
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("modelio: parse yaml: %w", err)
	}
	m.Index()
	return &m, nil
}

// LoadJSON reads and parses a Model from a JSON file on disk.
func LoadJSON(path string) (*domain.Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelio: read %s: %w", path, err)
	}
	return ParseJSON(b)
}

// ParseJSON parses a Model from JSON bytes.
func ParseJSON(b []byte) (*domain.Model, error) {
	var m domain.Model
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("modelio: parse json: %w", err)
	}
	m.Index()
	return &m, nil
}
