// ABOUTME: YAML configuration file loading for the tusk CLI with sane defaults.
// ABOUTME: Controls working directory, env policy, bash timeout, buffer store sizing, and tool limits.
package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk tusk.yaml shape.
type fileConfig struct {
	WorkDir          string         `yaml:"work_dir,omitempty"`
	EnvPolicy        string         `yaml:"env_policy,omitempty"`
	BashTimeoutMs    int            `yaml:"bash_timeout_ms,omitempty"`
	MaxBuffers       int            `yaml:"max_buffers,omitempty"`
	BufferTTLMinutes int            `yaml:"buffer_ttl_minutes,omitempty"`
	ToolLimits       map[string]int `yaml:"tool_limits,omitempty"`
}

// defaultFileConfig returns the configuration used when no tusk.yaml exists.
func defaultFileConfig() fileConfig {
	return fileConfig{
		EnvPolicy:        "inherit_core",
		BashTimeoutMs:    10000,
		MaxBuffers:       100,
		BufferTTLMinutes: 120,
	}
}

// loadFileConfig reads a tusk.yaml from path. A missing file yields defaults.
func loadFileConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.BashTimeoutMs <= 0 {
		cfg.BashTimeoutMs = 10000
	}
	if cfg.MaxBuffers <= 0 {
		cfg.MaxBuffers = 100
	}
	if cfg.BufferTTLMinutes <= 0 {
		cfg.BufferTTLMinutes = 120
	}

	return cfg, nil
}

// bufferTTL returns the configured buffer idle TTL as a duration.
func (c fileConfig) bufferTTL() time.Duration {
	return time.Duration(c.BufferTTLMinutes) * time.Minute
}
