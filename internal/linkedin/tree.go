package linkedin

import (
	"encoding/json"
	"fmt"
	"math"
)

// DecodeTree turns the scraper's response body into a generic profile
// tree of maps, slices, and scalars. The backend answers with a JSON
// array holding one profile record; the first record is the profile.
// The upstream shape is not contractually stable, so nothing here is
// forced into a struct.
func DecodeTree(raw []byte) (any, error) {
	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("decode profile JSON: %w", err)
	}

	if items, ok := root.([]any); ok {
		if len(items) == 0 {
			return nil, fmt.Errorf("scraper returned no profile data")
		}
		root = items[0]
	}
	if root == nil {
		return nil, fmt.Errorf("scraper returned no profile data")
	}

	return normalizeNumbers(root), nil
}

// normalizeNumbers converts integral float64 values to int64 so follower
// counts and years render as 12345 in YAML instead of scientific
// notation. Only exact integers below 2^53 convert; anything else keeps
// its float value.
func normalizeNumbers(node any) any {
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			v[key] = normalizeNumbers(child)
		}
		return v
	case []any:
		for i, child := range v {
			v[i] = normalizeNumbers(child)
		}
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return int64(v)
		}
		return v
	default:
		return v
	}
}
