// ABOUTME: Constructors for the file-side tools (Bash, GlobTool, GrepTool, LS, View, Edit, Replace).
// ABOUTME: Each constructor binds an Environment and returns a Tool with its descriptor and operation.

package tools

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// NewBashTool creates the Bash tool for executing shell commands.
func NewBashTool(env Environment, defaultTimeoutMs int) *Tool {
	if defaultTimeoutMs <= 0 {
		defaultTimeoutMs = 10000
	}
	return &Tool{
		Desc: Descriptor{
			Name:        "Bash",
			Description: "Execute a shell command in the working directory and return its combined output.",
			Args: []Arg{
				{Name: "command", Type: ArgString, Description: "The shell command to run", Required: true},
				{Name: "timeout", Type: ArgNumber, Description: "Command timeout in milliseconds"},
			},
		},
		Run: func(args map[string]any) (string, error) {
			command, err := getStringArg(args, "command", true)
			if err != nil {
				return "", err
			}

			timeoutMs, err := getIntArg(args, "timeout", defaultTimeoutMs)
			if err != nil {
				return "", err
			}

			result, err := env.ExecCommand(command, timeoutMs)
			if err != nil {
				return "", err
			}

			var output strings.Builder
			if result.Stdout != "" {
				output.WriteString(result.Stdout)
			}
			if result.Stderr != "" {
				if output.Len() > 0 {
					output.WriteByte('\n')
				}
				output.WriteString(result.Stderr)
			}

			if output.Len() == 0 && result.ExitCode == 0 && !result.TimedOut {
				return "Command completed successfully (no output).", nil
			}

			if result.ExitCode != 0 {
				if output.Len() > 0 {
					output.WriteByte('\n')
				}
				fmt.Fprintf(&output, "[exit code: %d]", result.ExitCode)
			}
			if result.TimedOut {
				fmt.Fprintf(&output, "\n[ERROR: Command timed out after %dms. Partial output is shown above. "+
					"You can retry with a longer timeout by setting the timeout parameter.]", timeoutMs)
			}

			return output.String(), nil
		},
	}
}

// NewGlobTool creates the GlobTool for finding files by glob pattern.
func NewGlobTool(env Environment) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "GlobTool",
			Description: "Find files matching a glob pattern. Supports ** for recursive matching.",
			Args: []Arg{
				{Name: "pattern", Type: ArgString, Description: "Glob pattern (e.g., '**/*.go')", Required: true},
				{Name: "path", Type: ArgString, Description: "Base directory (default: working directory)"},
			},
		},
		Run: func(args map[string]any) (string, error) {
			pattern, err := getStringArg(args, "pattern", true)
			if err != nil {
				return "", err
			}

			path, err := getStringArg(args, "path", false)
			if err != nil {
				return "", err
			}

			matches, err := env.Glob(pattern, path)
			if err != nil {
				return "", err
			}

			if len(matches) == 0 {
				return "No files matched the pattern.", nil
			}

			return strings.Join(matches, "\n"), nil
		},
	}
}

// NewGrepTool creates the GrepTool for searching file contents by regex.
func NewGrepTool(env Environment) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "GrepTool",
			Description: "Search file contents recursively using regex patterns. Returns matching lines with file:line prefixes.",
			Args: []Arg{
				{Name: "pattern", Type: ArgString, Description: "Regex pattern to search for", Required: true},
				{Name: "include", Type: ArgString, Description: "File pattern filter (e.g., '*.go')"},
				{Name: "path", Type: ArgString, Description: "Directory to search (default: working directory)"},
			},
		},
		Run: func(args map[string]any) (string, error) {
			pattern, err := getStringArg(args, "pattern", true)
			if err != nil {
				return "", err
			}

			include, err := getStringArg(args, "include", false)
			if err != nil {
				return "", err
			}

			path, err := getStringArg(args, "path", false)
			if err != nil {
				return "", err
			}

			result, err := env.Grep(pattern, path, GrepOptions{GlobFilter: include})
			if err != nil {
				return "", err
			}

			if strings.TrimSpace(result) == "" {
				return "No matches found.", nil
			}

			return result, nil
		},
	}
}

// NewLSTool creates the LS tool for listing immediate directory entries.
func NewLSTool(env Environment) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "LS",
			Description: "List the immediate entries of a directory. No recursion.",
			Args: []Arg{
				{Name: "path", Type: ArgString, Description: "Absolute path to the directory to list", Required: true},
				{Name: "ignore", Type: ArgStringArray, Description: "Patterns to exclude; entries whose absolute path matches are omitted"},
			},
		},
		Run: func(args map[string]any) (string, error) {
			path, err := getStringArg(args, "path", true)
			if err != nil {
				return "", err
			}

			ignore, err := getStringSliceArg(args, "ignore")
			if err != nil {
				return "", err
			}

			entries, err := env.ListDirectory(path)
			if err != nil {
				return "", err
			}

			var names []string
			for _, entry := range entries {
				abs, absErr := filepath.Abs(filepath.Join(path, entry.Name))
				if absErr != nil {
					abs = filepath.Join(path, entry.Name)
				}
				if matchesAny(abs, ignore) {
					continue
				}
				names = append(names, filepath.Base(abs))
			}

			return strings.Join(names, "\n"), nil
		},
	}
}

// matchesAny reports whether the path matches any of the patterns. Each
// pattern is tried as a regex; ones that fail to compile fall back to a
// plain substring match.
func matchesAny(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if re, err := regexp.Compile(pattern); err == nil {
			if re.MatchString(path) {
				return true
			}
		} else if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// NewViewTool creates the View tool for reading a line range of a file.
func NewViewTool(env Environment) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "View",
			Description: "View the contents of a file, optionally restricted to a line range.",
			Args: []Arg{
				{Name: "file_path", Type: ArgString, Description: "Absolute path to the file to view", Required: true},
				{Name: "limit", Type: ArgNumber, Description: "Maximum number of lines to return (default: all)"},
				{Name: "offset", Type: ArgNumber, Description: "Zero-based line offset to start from (default: 0)"},
			},
		},
		Run: func(args map[string]any) (string, error) {
			filePath, err := getStringArg(args, "file_path", true)
			if err != nil {
				return "", err
			}

			limit, err := getIntArg(args, "limit", 0)
			if err != nil {
				return "", err
			}

			offset, err := getIntArg(args, "offset", 0)
			if err != nil {
				return "", err
			}

			return viewRange(NewFileTarget(env, filePath), offset, limit)
		},
	}
}

// NewEditTool creates the Edit tool for single-match string replacement in a file.
func NewEditTool(env Environment) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "Edit",
			Description: "Replace exactly one occurrence of old_string with new_string in a file. An empty old_string creates or overwrites the file with new_string.",
			Args: []Arg{
				{Name: "file_path", Type: ArgString, Description: "Absolute path to the file to edit", Required: true},
				{Name: "old_string", Type: ArgString, Description: "Exact text to find; must occur exactly once", Required: true},
				{Name: "new_string", Type: ArgString, Description: "Replacement text", Required: true},
			},
		},
		Run: func(args map[string]any) (string, error) {
			filePath, err := getStringArg(args, "file_path", true)
			if err != nil {
				return "", err
			}

			oldString, err := getStringArg(args, "old_string", true)
			if err != nil {
				return "", err
			}

			newString, err := getStringArg(args, "new_string", true)
			if err != nil {
				return "", err
			}

			return replaceOnce(NewFileTarget(env, filePath), oldString, newString)
		},
	}
}

// NewReplaceTool creates the Replace tool for overwriting a file's full content.
func NewReplaceTool(env Environment) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "Replace",
			Description: "Overwrite a file's entire content with the supplied content, creating it if needed.",
			Args: []Arg{
				{Name: "file_path", Type: ArgString, Description: "Absolute path to the file to write", Required: true},
				{Name: "content", Type: ArgString, Description: "The full file content to write", Required: true},
			},
		},
		Run: func(args map[string]any) (string, error) {
			filePath, err := getStringArg(args, "file_path", true)
			if err != nil {
				return "", err
			}

			content, err := getStringArg(args, "content", true)
			if err != nil {
				return "", err
			}

			return fullReplace(NewFileTarget(env, filePath), content)
		},
	}
}
