// Package yamlopts provides a ready-made options type for mdtest whose
// option blocks are YAML mappings:
//
//	```options
//	epsilon: 0.001
//	strict: true
//	```
//
// Merging is shallow: a block's top-level keys replace the inherited keys
// of the same name, everything else is carried through unchanged.
package yamlopts

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Map holds effective options as a plain key-value map. The zero value
// (nil) is a valid empty options set.
type Map map[string]any

// MergeSerialized folds one YAML option block into the receiver and
// returns the result as a new map. The receiver is never mutated.
//
// The block must be a single mapping; sequences, scalars, and empty
// documents are rejected.
func (m Map) MergeSerialized(raw string) (Map, error) {
	var overlay map[string]any

	err := yaml.Unmarshal([]byte(raw), &overlay)
	if err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if overlay == nil {
		return nil, errors.New("options block must be a YAML mapping")
	}

	merged := make(Map, len(m)+len(overlay))
	for key, value := range m {
		merged[key] = value
	}

	for key, value := range overlay {
		merged[key] = value
	}

	return merged, nil
}

// GetString returns the string value for key.
// Returns ("", false) if key is missing or not a string.
func (m Map) GetString(key string) (string, bool) {
	s, ok := m[key].(string)

	return s, ok
}

// GetInt returns the integer value for key.
// Returns (0, false) if key is missing or not an integer.
func (m Map) GetInt(key string) (int64, bool) {
	switch n := m[key].(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// GetFloat returns the numeric value for key. Whole numbers, which YAML
// decodes as integers, are widened.
// Returns (0, false) if key is missing or not numeric.
func (m Map) GetFloat(key string) (float64, bool) {
	switch n := m[key].(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// GetBool returns the bool value for key.
// Returns (false, false) if key is missing or not a bool.
func (m Map) GetBool(key string) (bool, bool) {
	b, ok := m[key].(bool)

	return b, ok
}
