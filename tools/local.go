// ABOUTME: LocalEnvironment runs tools on the local machine.
// ABOUTME: Handles file ops, command execution with process groups, env filtering, grep, and glob.

package tools

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"syscall"
	"time"
)

// EnvPolicy controls how environment variables are inherited by child processes.
type EnvPolicy string

const (
	// EnvPolicyInheritCore inherits only safe environment variables (default).
	EnvPolicyInheritCore EnvPolicy = "inherit_core"
	// EnvPolicyInheritAll inherits all environment variables without filtering.
	EnvPolicyInheritAll EnvPolicy = "inherit_all"
	// EnvPolicyInheritNone starts with a clean environment.
	EnvPolicyInheritNone EnvPolicy = "inherit_none"
)

// sensitivePatterns are env var name suffixes that should be excluded under InheritCore.
var sensitivePatterns = []string{
	"_API_KEY",
	"_SECRET",
	"_TOKEN",
	"_PASSWORD",
	"_CREDENTIAL",
}

// safeVarNames are environment variables that are always included under InheritCore.
var safeVarNames = map[string]bool{
	"PATH":       true,
	"HOME":       true,
	"USER":       true,
	"SHELL":      true,
	"LANG":       true,
	"TERM":       true,
	"TMPDIR":     true,
	"GOPATH":     true,
	"GOROOT":     true,
	"CARGO_HOME": true,
	"NVM_DIR":    true,
	"EDITOR":     true,
}

// LocalOption configures a LocalEnvironment.
type LocalOption func(*LocalEnvironment)

// WithEnvPolicy sets the environment variable inheritance policy.
func WithEnvPolicy(policy EnvPolicy) LocalOption {
	return func(e *LocalEnvironment) {
		e.envPolicy = policy
	}
}

// LocalEnvironment implements Environment for the local machine.
type LocalEnvironment struct {
	workDir   string
	envPolicy EnvPolicy
}

// NewLocalEnvironment creates a new local environment rooted at workDir.
func NewLocalEnvironment(workDir string, opts ...LocalOption) *LocalEnvironment {
	env := &LocalEnvironment{
		workDir:   workDir,
		envPolicy: EnvPolicyInheritCore,
	}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// ReadFile returns the full content of a file.
func (e *LocalEnvironment) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile writes content to a file, creating parent directories as needed.
func (e *LocalEnvironment) WriteFile(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directories for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write file %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file or directory exists at the given path.
func (e *LocalEnvironment) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// ListDirectory returns the immediate entries of a directory.
func (e *LocalEnvironment) ListDirectory(path string) ([]DirEntry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list directory %s: %w", path, err)
	}

	var result []DirEntry
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			continue
		}
		result = append(result, DirEntry{
			Name:  de.Name(),
			IsDir: de.IsDir(),
			Size:  info.Size(),
		})
	}
	return result, nil
}

// ExecCommand runs a shell command with timeout enforcement and environment filtering.
func (e *LocalEnvironment) ExecCommand(command string, timeoutMs int) (*ExecResult, error) {
	if timeoutMs <= 0 {
		timeoutMs = 10000
	}

	timeout := time.Duration(timeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "/bin/bash", "-c", command)

	// Set process group so we can kill the entire group on timeout
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Dir = e.workDir
	cmd.Env = e.buildEnv()

	// On deadline, SIGTERM the whole group, not just the shell. WaitDelay
	// forces Wait to return even if a grandchild holds the output pipes open.
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		pgid, err := syscall.Getpgid(cmd.Process.Pid)
		if err != nil {
			return cmd.Process.Kill()
		}
		return syscall.Kill(-pgid, syscall.SIGTERM)
	}
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start command: %w", err)
	}

	pgid, pgErr := syscall.Getpgid(cmd.Process.Pid)

	waitErr := cmd.Wait()
	durationMs := int(time.Since(start).Milliseconds())

	timedOut := ctx.Err() == context.DeadlineExceeded

	if timedOut && pgErr == nil {
		// Reap anything in the group that survived SIGTERM and the wait grace.
		_ = syscall.Kill(-pgid, syscall.SIGKILL)
	}

	exitCode := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else if !timedOut {
			// If it's not an ExitError and not a timeout, it's a real error
			exitCode = -1
		}
	}

	return &ExecResult{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		ExitCode:   exitCode,
		TimedOut:   timedOut,
		DurationMs: durationMs,
	}, nil
}

func (e *LocalEnvironment) buildEnv() []string {
	switch e.envPolicy {
	case EnvPolicyInheritAll:
		return os.Environ()
	case EnvPolicyInheritNone:
		return []string{}
	default:
		return e.buildEnvCore()
	}
}

func (e *LocalEnvironment) buildEnvCore() []string {
	var env []string
	for _, entry := range os.Environ() {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name := parts[0]
		if safeVarNames[name] {
			env = append(env, entry)
		} else if isSensitiveVar(name) {
			continue
		} else {
			env = append(env, entry)
		}
	}
	return env
}

// isSensitiveVar checks if a variable name matches sensitive patterns (case-insensitive).
func isSensitiveVar(name string) bool {
	upper := strings.ToUpper(name)
	for _, pattern := range sensitivePatterns {
		if strings.HasSuffix(upper, pattern) {
			return true
		}
	}
	return false
}

// Grep searches file contents by regex pattern.
func (e *LocalEnvironment) Grep(pattern, path string, opts GrepOptions) (string, error) {
	if path == "" {
		path = e.workDir
	}

	// Try ripgrep first
	if rgPath, err := exec.LookPath("rg"); err == nil {
		return e.grepWithRipgrep(rgPath, pattern, path, opts)
	}

	// Fall back to Go regex
	return e.grepWithRegex(pattern, path, opts)
}

func (e *LocalEnvironment) grepWithRipgrep(rgPath, pattern, path string, opts GrepOptions) (string, error) {
	args := []string{pattern}

	if opts.CaseInsensitive {
		args = append(args, "-i")
	}
	if opts.MaxResults > 0 {
		args = append(args, fmt.Sprintf("--max-count=%d", opts.MaxResults))
	}
	if opts.GlobFilter != "" {
		args = append(args, "--glob", opts.GlobFilter)
	}
	args = append(args, "-n") // line numbers
	args = append(args, path)

	cmd := exec.Command(rgPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// ripgrep exits 1 when no matches found -- that's not an error
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("ripgrep error: %s", stderr.String())
	}

	return stdout.String(), nil
}

func (e *LocalEnvironment) grepWithRegex(pattern, path string, opts GrepOptions) (string, error) {
	flags := ""
	if opts.CaseInsensitive {
		flags = "(?i)"
	}
	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return "", fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}

	var buf strings.Builder
	matchCount := 0
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}

	walkErr := filepath.WalkDir(path, func(fpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip entries we can't access
		}
		if d.IsDir() {
			return nil
		}

		// Apply glob filter
		if opts.GlobFilter != "" {
			matched, matchErr := filepath.Match(opts.GlobFilter, d.Name())
			if matchErr != nil || !matched {
				return nil
			}
		}

		file, openErr := os.Open(fpath)
		if openErr != nil {
			return nil
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := scanner.Text()
			if re.MatchString(line) {
				fmt.Fprintf(&buf, "%s:%d:%s\n", fpath, lineNum, line)
				matchCount++
				if matchCount >= maxResults {
					return filepath.SkipAll
				}
			}
		}
		return nil
	})

	if walkErr != nil {
		return "", fmt.Errorf("grep walk error: %w", walkErr)
	}

	return buf.String(), nil
}

// Glob finds files matching a glob pattern relative to the given path.
func (e *LocalEnvironment) Glob(pattern, path string) ([]string, error) {
	if path == "" {
		path = e.workDir
	}

	// Check if pattern contains ** for recursive matching
	if strings.Contains(pattern, "**") {
		return e.globRecursive(pattern, path)
	}

	fullPattern := filepath.Join(path, pattern)
	matches, err := filepath.Glob(fullPattern)
	if err != nil {
		return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
	}
	return matches, nil
}

func (e *LocalEnvironment) globRecursive(pattern, basePath string) ([]string, error) {
	// For ** patterns, walk the directory tree and match each file.
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimRight(parts[0], string(filepath.Separator))
	suffix := ""
	if len(parts) > 1 {
		suffix = strings.TrimLeft(parts[1], string(filepath.Separator))
	}

	startDir := basePath
	if prefix != "" {
		startDir = filepath.Join(basePath, prefix)
	}

	var matches []string
	walkErr := filepath.WalkDir(startDir, func(fpath string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}

		if suffix == "" {
			matches = append(matches, fpath)
			return nil
		}

		matched, matchErr := filepath.Match(suffix, d.Name())
		if matchErr == nil && matched {
			matches = append(matches, fpath)
		}
		return nil
	})

	if walkErr != nil {
		return nil, fmt.Errorf("recursive glob error: %w", walkErr)
	}
	return matches, nil
}

// WorkingDirectory returns the configured root working directory.
func (e *LocalEnvironment) WorkingDirectory() string {
	return e.workDir
}

// Platform returns the operating system identifier.
func (e *LocalEnvironment) Platform() string {
	return runtime.GOOS
}

// Compile-time interface check
var _ Environment = (*LocalEnvironment)(nil)
