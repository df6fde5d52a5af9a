// ABOUTME: Descriptor and argument schema types for agent-facing tools.
// ABOUTME: Renders descriptors into JSON-schema maps consumed by the host shims.

package tools

// ArgType is the wire type of a single tool argument.
type ArgType string

const (
	ArgString      ArgType = "string"
	ArgNumber      ArgType = "number"
	ArgStringArray ArgType = "array"
)

// Arg describes one argument in a tool's schema.
type Arg struct {
	Name        string
	Type        ArgType
	Description string
	Required    bool
}

// Descriptor is the agent-visible metadata for a tool: a unique name, a
// free-text description, and an ordered argument schema.
type Descriptor struct {
	Name        string
	Description string
	Args        []Arg
}

// InputSchema renders the descriptor's arguments as a JSON-schema object map.
func (d Descriptor) InputSchema() map[string]any {
	properties := make(map[string]any, len(d.Args))
	var required []any
	for _, arg := range d.Args {
		prop := map[string]any{
			"type":        string(arg.Type),
			"description": arg.Description,
		}
		if arg.Type == ArgStringArray {
			prop["items"] = map[string]any{"type": "string"}
		}
		properties[arg.Name] = prop
		if arg.Required {
			required = append(required, arg.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Tool pairs a descriptor with the operation implementing it. Run returns the
// observation string reported back to the agent.
type Tool struct {
	Desc Descriptor
	Run  func(args map[string]any) (string, error)
}
