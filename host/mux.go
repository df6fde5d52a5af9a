// ABOUTME: Registration shim adapting tusk tools to the mux tool.Tool interface.
// ABOUTME: Run errors become textual tool results; no Go error crosses the host boundary.

package host

import (
	"context"

	"github.com/2389-research/mux/tool"
	"github.com/2389-research/tusk/tools"
)

// muxTool adapts one tusk tool to the mux Tool interface.
type muxTool struct {
	t *tools.Tool
}

func (m *muxTool) Name() string {
	return m.t.Desc.Name
}

func (m *muxTool) Description() string {
	return m.t.Desc.Description
}

func (m *muxTool) RequiresApproval(_ map[string]any) bool {
	return false
}

func (m *muxTool) InputSchema() map[string]any {
	return m.t.Desc.InputSchema()
}

func (m *muxTool) Execute(_ context.Context, params map[string]any) (*tool.Result, error) {
	out, err := m.t.Run(params)
	if err != nil {
		// The consumer is an LLM agent expecting textual observations, so
		// operation failures are reported as result text rather than errors.
		return tool.NewResult(m.t.Desc.Name, false, "", err.Error()), nil
	}
	return tool.NewResult(m.t.Desc.Name, true, out, ""), nil
}

// RegisterMux registers every tool from src into the mux registry dst.
// Re-registration replaces prior entries by name, so the call is idempotent.
func RegisterMux(src *tools.Registry, dst *tool.Registry) {
	for _, t := range src.All() {
		dst.Register(&muxTool{t: t})
	}
}

// BuildMuxRegistry creates a mux tool registry populated from src.
func BuildMuxRegistry(src *tools.Registry) *tool.Registry {
	dst := tool.NewRegistry()
	RegisterMux(src, dst)
	return dst
}
