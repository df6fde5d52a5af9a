// ABOUTME: Argument extraction helpers for tool invocations.
// ABOUTME: Handles JSON decoding quirks like float64 numbers and []any string arrays.

package tools

import (
	"encoding/json"
	"fmt"
)

// getStringArg extracts a string argument from a map, returning an error if missing or wrong type.
func getStringArg(args map[string]any, key string, required bool) (string, error) {
	val, ok := args[key]
	if !ok || val == nil {
		if required {
			return "", fmt.Errorf("missing required parameter: %s", key)
		}
		return "", nil
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s must be a string, got %T", key, val)
	}
	return s, nil
}

// getIntArg extracts an integer argument from a map, handling JSON float64 encoding.
func getIntArg(args map[string]any, key string, defaultVal int) (int, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return defaultVal, nil
	}
	switch v := val.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("parameter %s must be an integer: %w", key, err)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("parameter %s must be a number, got %T", key, val)
	}
}

// getStringSliceArg extracts an array-of-strings argument. JSON decoding yields
// []any, so both []string and []any element forms are accepted.
func getStringSliceArg(args map[string]any, key string) ([]string, error) {
	val, ok := args[key]
	if !ok || val == nil {
		return nil, nil
	}
	switch v := val.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("parameter %s must contain only strings, got %T", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("parameter %s must be an array of strings, got %T", key, val)
	}
}
