// ABOUTME: Observation truncation with per-tool character and line limits.
// ABOUTME: Keeps tool output inside the context budget of the consuming agent.

package tools

import (
	"fmt"
	"strings"
)

// defaultToolLimits maps tool names to their default character limits.
var defaultToolLimits = map[string]int{
	"View":       50000,
	"ViewBuffer": 50000,
	"Bash":       30000,
	"GrepTool":   20000,
	"GlobTool":   20000,
	"LS":         20000,
	"Edit":       10000,
	"EditBuffer": 10000,
}

// defaultToolModes maps tool names to their truncation mode ("head_tail" or "tail").
var defaultToolModes = map[string]string{
	"View":       "head_tail",
	"ViewBuffer": "head_tail",
	"Bash":       "head_tail",
	"GrepTool":   "tail",
	"GlobTool":   "tail",
	"LS":         "tail",
}

// defaultCharLimit is used for tools not listed in defaultToolLimits.
const defaultCharLimit = 30000

// DefaultLineLimits maps tool names to their default line-count limits.
// A value of 0 means unlimited (no line-based truncation).
var DefaultLineLimits = map[string]int{
	"Bash":     256,
	"GrepTool": 200,
	"GlobTool": 500,
}

// TruncateLines truncates output that exceeds maxLines using a head/tail split.
// If maxLines is 0 or the output has fewer lines than maxLines, the output is
// returned unchanged. Otherwise the first half and last half of lines are kept
// with an omission marker in between.
func TruncateLines(output string, maxLines int) string {
	if maxLines <= 0 {
		return output
	}

	lines := strings.Split(output, "\n")
	if len(lines) <= maxLines {
		return output
	}

	headCount := maxLines / 2
	tailCount := maxLines - headCount
	omitted := len(lines) - headCount - tailCount

	return strings.Join(lines[:headCount], "\n") +
		fmt.Sprintf("\n[... %d lines omitted ...]\n", omitted) +
		strings.Join(lines[len(lines)-tailCount:], "\n")
}

// TruncateOutput truncates output that exceeds maxChars using the given mode.
// Supported modes: "head_tail" (keep first half + last half) and "tail" (keep last N chars).
// A truncation warning is inserted at the truncation point.
func TruncateOutput(output string, maxChars int, mode string) string {
	if len(output) <= maxChars {
		return output
	}

	removed := len(output) - maxChars

	if mode == "head_tail" {
		half := maxChars / 2
		return output[:half] +
			fmt.Sprintf("\n\n[WARNING: Tool output was truncated. %d characters were removed from the middle. "+
				"If you need to see specific parts, re-run the tool with more targeted parameters.]\n\n", removed) +
			output[len(output)-half:]
	}

	// Default to "tail" mode
	return fmt.Sprintf("[WARNING: Tool output was truncated. First %d characters were removed.]\n\n", removed) +
		output[len(output)-maxChars:]
}

// TruncateToolOutput truncates tool output using per-tool defaults, optionally
// overridden by the limits map. Tools not found in defaults or overrides use
// defaultCharLimit with "tail" mode. Character truncation runs first, then
// line-based truncation is applied for tools that have a configured line limit.
func TruncateToolOutput(output, toolName string, limits map[string]int) string {
	maxChars := defaultCharLimit
	if defaultLimit, ok := defaultToolLimits[toolName]; ok {
		maxChars = defaultLimit
	}
	if limits != nil {
		if override, ok := limits[toolName]; ok {
			maxChars = override
		}
	}

	mode := "tail"
	if m, ok := defaultToolModes[toolName]; ok {
		mode = m
	}

	result := TruncateOutput(output, maxChars, mode)

	if maxLines, ok := DefaultLineLimits[toolName]; ok && maxLines > 0 {
		result = TruncateLines(result, maxLines)
	}

	return result
}
