package mcp

import (
	"regexp"
)

var reIdentifier = regexp.MustCompile(`^[a-zA-Z0-9_#@$]+$`)

// Validating SQL identifiers to prevent SQL injection.
func isValidIdentifier(name string) bool {
	// It allows letters, numbers, underlining, and some common special characters
	return len(name) > 0 && len(name) < 128 && reIdentifier.MatchString(name)
}

// getArgs normalizes tool arguments; a missing argument object is treated as empty.
func getArgs(arguments any) (map[string]any, bool) {
	switch args := arguments.(type) {
	case nil:
		return map[string]any{}, true
	case map[string]any:
		return args, true
	default:
		return nil, false
	}
}

// Helper for converting string arguments safely
func getStringArg(args map[string]any, key string) (string, bool) {
	val, ok := args[key].(string)
	return val, ok
}

// getStringSliceArg reads an optional array of strings. A missing or null
// value yields an empty slice.
func getStringSliceArg(args map[string]any, key string) ([]string, error) {
	raw, exists := args[key]
	if !exists || raw == nil {
		return nil, nil
	}

	switch vals := raw.(type) {
	case []string:
		return vals, nil
	case []any:
		out := make([]string, 0, len(vals))
		for _, v := range vals {
			s, ok := v.(string)
			if !ok {
				return nil, ErrInvalidParams
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, ErrInvalidParams
	}
}
