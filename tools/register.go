// ABOUTME: Registers the full default tool set against an Environment and buffer store.
// ABOUTME: Registration order matches the descriptor table exposed to agents.

package tools

import (
	"github.com/2389-research/tusk/buffer"
)

// RegisterDefaults registers all ten built-in tools with the given registry.
// Registration upserts at the front, so the last tool registered here is the
// first entry agents see.
func RegisterDefaults(registry *Registry, env Environment, store *buffer.Store, bashTimeoutMs int) {
	registry.Register(NewReplaceBufferTool(store))
	registry.Register(NewEditBufferTool(store))
	registry.Register(NewViewBufferTool(store))
	registry.Register(NewReplaceTool(env))
	registry.Register(NewEditTool(env))
	registry.Register(NewViewTool(env))
	registry.Register(NewLSTool(env))
	registry.Register(NewGrepTool(env))
	registry.Register(NewGlobTool(env))
	registry.Register(NewBashTool(env, bashTimeoutMs))
}
