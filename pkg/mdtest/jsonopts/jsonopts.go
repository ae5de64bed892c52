// Package jsonopts provides a ready-made options type for mdtest whose
// option blocks are HuJSON objects (JSON with comments and trailing
// commas):
//
//	```options
//	{
//	    // tolerance for float comparison
//	    "epsilon": 0.001,
//	    "strict": true,
//	}
//	```
//
// Merging is shallow: a block's top-level keys replace the inherited keys
// of the same name, everything else is carried through unchanged.
package jsonopts

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/tailscale/hujson"
)

// Map holds effective options as a plain key-value map. The zero value
// (nil) is a valid empty options set.
type Map map[string]any

// MergeSerialized folds one HuJSON option block into the receiver and
// returns the result as a new map. The receiver is never mutated.
//
// The block must be a single object; arrays, scalars, and null are
// rejected.
func (m Map) MergeSerialized(raw string) (Map, error) {
	standardized, err := hujson.Standardize([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var overlay map[string]any

	err = json.Unmarshal(standardized, &overlay)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if overlay == nil {
		return nil, errors.New("options block must be a JSON object")
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
// Returns (0, false) if key is missing, not numeric, or fractional.
func (m Map) GetInt(key string) (int64, bool) {
	f, ok := m[key].(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}

	return int64(f), true
}

// GetFloat returns the numeric value for key.
// Returns (0, false) if key is missing or not numeric.
func (m Map) GetFloat(key string) (float64, bool) {
	f, ok := m[key].(float64)

	return f, ok
}

// GetBool returns the bool value for key.
// Returns (false, false) if key is missing or not a bool.
func (m Map) GetBool(key string) (bool, bool) {
	b, ok := m[key].(bool)

	return b, ok
}
