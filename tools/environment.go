// ABOUTME: Defines the Environment interface that decouples tool logic from the filesystem and shell.
// ABOUTME: Provides ExecResult, DirEntry, and GrepOptions supporting types.

package tools

// Environment abstracts file, command, and search operations so that tools are
// decoupled from where they run (local machine, container, test double).
type Environment interface {
	// ReadFile returns the full content of a file.
	ReadFile(path string) (string, error)

	// WriteFile writes content to a file, creating parent directories as needed.
	WriteFile(path string, content string) error

	// FileExists checks whether a file or directory exists at the given path.
	FileExists(path string) (bool, error)

	// ListDirectory returns the immediate entries of a directory. No recursion.
	ListDirectory(path string) ([]DirEntry, error)

	// ExecCommand runs a shell command with timeout enforcement.
	ExecCommand(command string, timeoutMs int) (*ExecResult, error)

	// Grep searches file contents by regex pattern. Path defaults to the working directory.
	Grep(pattern, path string, opts GrepOptions) (string, error)

	// Glob finds files matching a glob pattern. Path defaults to the working directory.
	Glob(pattern, path string) ([]string, error)

	// WorkingDirectory returns the root working directory for this environment.
	WorkingDirectory() string

	// Platform returns the OS identifier (e.g., "darwin", "linux", "windows").
	Platform() string
}

// ExecResult holds the outcome of a command execution.
type ExecResult struct {
	Stdout     string
	Stderr     string
	ExitCode   int
	TimedOut   bool
	DurationMs int
}

// DirEntry represents a single entry when listing a directory.
type DirEntry struct {
	Name  string
	IsDir bool
	Size  int64
}

// GrepOptions configures the behavior of a grep search.
type GrepOptions struct {
	GlobFilter      string
	CaseInsensitive bool
	MaxResults      int
}
