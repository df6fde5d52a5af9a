// ABOUTME: CLI entrypoint for the tusk tool belt with list, call, and MCP server modes.
// ABOUTME: Wires together the local environment, buffer store, registry, journal, and host shims.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/2389-research/tusk/buffer"
	"github.com/2389-research/tusk/host"
	"github.com/2389-research/tusk/journal"
	"github.com/2389-research/tusk/tools"
)

var version = "dev"

// config holds all CLI configuration parsed from flags.
type config struct {
	listTools   bool
	callTool    string
	callArgs    string
	mcpMode     bool
	workDir     string
	configPath  string
	verbose     bool
	showVersion bool
}

func main() {
	loadDotEnv(".env")

	cfg := parseFlags()

	if cfg.showVersion {
		fmt.Printf("tusk %s\n", version)
		os.Exit(0)
	}

	os.Exit(run(cfg))
}

// parseFlags parses command-line flags and returns a populated config.
func parseFlags() config {
	var cfg config

	fs := flag.NewFlagSet("tusk", flag.ContinueOnError)
	fs.BoolVar(&cfg.listTools, "list", false, "Print the tool descriptor table and exit")
	fs.StringVar(&cfg.callTool, "call", "", "Invoke a single tool by name and print its observation")
	fs.StringVar(&cfg.callArgs, "args", "{}", "JSON arguments for -call")
	fs.BoolVar(&cfg.mcpMode, "mcp", false, "Serve the tools over MCP stdio")
	fs.StringVar(&cfg.workDir, "workdir", "", "Working directory for file tools (default: current directory)")
	fs.StringVar(&cfg.configPath, "config", "", "Path to tusk.yaml (default: XDG config dir)")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Log each tool invocation")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	return cfg
}

// run executes the selected mode and returns the process exit code.
func run(cfg config) int {
	fileCfg, err := resolveFileConfig(cfg)
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	workDir := cfg.workDir
	if workDir == "" {
		workDir = fileCfg.WorkDir
	}
	if workDir == "" {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			log.Printf("resolve working directory: %v", cwdErr)
			return 1
		}
		workDir = cwd
	}

	registry, store := buildRegistry(workDir, fileCfg)
	stopCleanup := store.StartCleanup(fileCfg.bufferTTL() / 4)
	defer stopCleanup()

	jnl := journal.New(256)
	registry.SetJournal(jnl)

	switch {
	case cfg.listTools:
		printToolTable(registry)
		return 0
	case cfg.callTool != "":
		return runCall(registry, jnl, cfg)
	case cfg.mcpMode:
		return runMCP(registry)
	default:
		printToolTable(registry)
		return 0
	}
}

// resolveFileConfig loads tusk.yaml from the -config path or the XDG config dir.
func resolveFileConfig(cfg config) (fileConfig, error) {
	path := cfg.configPath
	if path == "" {
		dir, err := defaultConfigDir()
		if err != nil {
			return defaultFileConfig(), nil
		}
		path = filepath.Join(dir, "tusk.yaml")
	}
	return loadFileConfig(path)
}

// buildRegistry constructs the environment, buffer store, and tool registry.
func buildRegistry(workDir string, fileCfg fileConfig) (*tools.Registry, *buffer.Store) {
	env := tools.NewLocalEnvironment(workDir, tools.WithEnvPolicy(tools.EnvPolicy(fileCfg.EnvPolicy)))
	store := buffer.NewStore(fileCfg.MaxBuffers, fileCfg.bufferTTL())

	registry := tools.NewRegistry()
	registry.SetLimits(fileCfg.ToolLimits)
	tools.RegisterDefaults(registry, env, store, fileCfg.BashTimeoutMs)

	return registry, store
}

// printToolTable writes the descriptor table to stdout, one tool per line.
func printToolTable(registry *tools.Registry) {
	for _, d := range registry.Descriptors() {
		fmt.Printf("%-14s %s\n", d.Name, d.Description)
		for _, arg := range d.Args {
			req := ""
			if arg.Required {
				req = " (required)"
			}
			fmt.Printf("    %-12s %s%s  %s\n", arg.Name, arg.Type, req, arg.Description)
		}
	}
}

// runCall invokes one tool with JSON arguments and prints the observation.
func runCall(registry *tools.Registry, jnl *journal.Journal, cfg config) int {
	var args map[string]any
	if err := json.Unmarshal([]byte(cfg.callArgs), &args); err != nil {
		log.Printf("parse -args: %v", err)
		return 1
	}

	out, err := registry.Invoke(cfg.callTool, args)
	if cfg.verbose {
		for _, rec := range jnl.Records() {
			log.Printf("invocation %s tool=%s ok=%t duration=%s", rec.ID, rec.Tool, rec.OK, rec.Duration)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println(out)
	return 0
}

// runMCP serves the tool registry over MCP stdio until interrupted.
func runMCP(registry *tools.Registry) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := host.BuildMCPServer(registry, version)
	if err := host.ServeStdio(ctx, server); err != nil && ctx.Err() == nil {
		log.Printf("mcp server: %v", err)
		return 1
	}
	return 0
}
