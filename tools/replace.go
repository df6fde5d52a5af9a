// ABOUTME: Single-match replace, full replace, and line-range view over a TextTarget.
// ABOUTME: replaceOnce enforces the exact-one-occurrence precondition before mutating.

package tools

import (
	"fmt"
	"strings"
)

// replaceOnce replaces exactly one occurrence of old with new in the target's
// content. An empty old means create/overwrite: the target's entire content
// becomes new. The mutation is all-or-nothing: on a zero or ambiguous match
// count the target is left byte-identical and an error is returned.
func replaceOnce(target TextTarget, old, new string) (string, error) {
	if old == "" {
		if err := target.Write(new); err != nil {
			return "", err
		}
		return fmt.Sprintf("Created %s", target.Name()), nil
	}

	content, err := target.Read()
	if err != nil {
		return "", err
	}

	count := strings.Count(content, old)
	if count == 0 {
		return "", fmt.Errorf("old_string not found in %s", target.Name())
	}
	if count > 1 {
		return "", fmt.Errorf("old_string appears %d times in %s; provide more context to make it unique", count, target.Name())
	}

	if err := target.Write(strings.Replace(content, old, new, 1)); err != nil {
		return "", err
	}

	return fmt.Sprintf("Made 1 replacement in %s", target.Name()), nil
}

// fullReplace unconditionally overwrites the target's entire content.
func fullReplace(target TextTarget, content string) (string, error) {
	if err := target.Write(content); err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully wrote %d bytes to %s", len(content), target.Name()), nil
}

// viewRange returns up to limit lines of the target's content starting at the
// zero-based line offset. An offset past the end yields an empty result; a
// limit past the end is clamped; limit 0 means the remainder. With no offset
// and no limit the content round-trips unchanged.
func viewRange(target TextTarget, offset, limit int) (string, error) {
	content, err := target.Read()
	if err != nil {
		return "", err
	}

	if offset <= 0 && limit <= 0 {
		return content, nil
	}

	lines := strings.Split(content, "\n")

	start := offset
	if start < 0 {
		start = 0
	}
	if start >= len(lines) {
		return "", nil
	}

	end := len(lines)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	return strings.Join(lines[start:end], "\n"), nil
}
