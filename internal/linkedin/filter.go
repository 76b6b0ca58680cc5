package linkedin

// FilterTree returns a copy of node with every allow-listed mapping key
// not present in include removed. A nil include set disables filtering
// and returns node as-is. Children of kept keys are filtered recursively,
// so optional sections nested deeper in the tree are pruned too; keys
// outside the allow-list are never removed.
func FilterTree(node any, include IncludeSet) any {
	if include == nil {
		return node
	}

	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			if IsOptionalSection(key) && !include.Has(key) {
				continue
			}
			out[key] = FilterTree(child, include)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = FilterTree(child, include)
		}
		return out
	default:
		return v
	}
}
