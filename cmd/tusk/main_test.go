// ABOUTME: Tests for CLI flag parsing and registry wiring in the tusk entrypoint.
// ABOUTME: Saves and restores os.Args around parseFlags calls.

package main

import (
	"os"
	"testing"
)

func parseWithArgs(t *testing.T, args ...string) config {
	t.Helper()
	saved := os.Args
	defer func() { os.Args = saved }()
	os.Args = append([]string{"tusk"}, args...)
	return parseFlags()
}

func TestParseFlagsDefaults(t *testing.T) {
	cfg := parseWithArgs(t)

	if cfg.listTools || cfg.mcpMode || cfg.verbose || cfg.showVersion {
		t.Errorf("boolean flags should default to false: %+v", cfg)
	}
	if cfg.callTool != "" || cfg.workDir != "" || cfg.configPath != "" {
		t.Errorf("string flags should default to empty: %+v", cfg)
	}
	if cfg.callArgs != "{}" {
		t.Errorf("callArgs should default to {}, got %q", cfg.callArgs)
	}
}

func TestParseFlagsAllModes(t *testing.T) {
	cfg := parseWithArgs(t, "-list", "-verbose", "-workdir", "/tmp/w", "-config", "/tmp/c.yaml")

	if !cfg.listTools || !cfg.verbose {
		t.Errorf("expected list and verbose set: %+v", cfg)
	}
	if cfg.workDir != "/tmp/w" || cfg.configPath != "/tmp/c.yaml" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
}

func TestParseFlagsCall(t *testing.T) {
	cfg := parseWithArgs(t, "-call", "View", "-args", `{"file_path":"/tmp/f"}`)

	if cfg.callTool != "View" {
		t.Errorf("callTool = %q", cfg.callTool)
	}
	if cfg.callArgs != `{"file_path":"/tmp/f"}` {
		t.Errorf("callArgs = %q", cfg.callArgs)
	}
}

func TestParseFlagsMCP(t *testing.T) {
	cfg := parseWithArgs(t, "-mcp")
	if !cfg.mcpMode {
		t.Error("expected mcpMode set")
	}
}

func TestBuildRegistryWiresAllTools(t *testing.T) {
	registry, store := buildRegistry(t.TempDir(), defaultFileConfig())

	if registry.Count() != 10 {
		t.Errorf("expected 10 tools, got %d", registry.Count())
	}
	if store == nil {
		t.Fatal("expected a buffer store")
	}

	expected := []string{
		"Bash", "GlobTool", "GrepTool", "LS", "View",
		"Edit", "Replace", "ViewBuffer", "EditBuffer", "ReplaceBuffer",
	}
	names := registry.Names()
	if len(names) != len(expected) {
		t.Fatalf("expected %d names, got %d", len(expected), len(names))
	}
	for i, want := range expected {
		if names[i] != want {
			t.Errorf("expected %q at index %d, got %q", want, i, names[i])
		}
	}
}

func TestBuildRegistryInvokesEndToEnd(t *testing.T) {
	dir := t.TempDir()
	registry, _ := buildRegistry(dir, defaultFileConfig())

	out, err := registry.Invoke("Replace", map[string]any{
		"file_path": dir + "/f.txt",
		"content":   "hello",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out == "" {
		t.Error("expected a confirmation observation")
	}

	out, err = registry.Invoke("View", map[string]any{"file_path": dir + "/f.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if out != "hello" {
		t.Errorf("expected round-trip content, got %q", out)
	}
}
