// ABOUTME: Registration shim exposing tusk tools as an MCP server over stdio.
// ABOUTME: Converts descriptors to jsonschema input schemas and Run errors to IsError results.

package host

import (
	"context"
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/tusk/tools"
)

// MCPSchema converts a tool descriptor's argument schema to a jsonschema object.
func MCPSchema(d tools.Descriptor) *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(d.Args))
	var required []string
	for _, arg := range d.Args {
		prop := &jsonschema.Schema{
			Type:        string(arg.Type),
			Description: arg.Description,
		}
		if arg.Type == tools.ArgStringArray {
			prop.Items = &jsonschema.Schema{Type: "string"}
		}
		properties[arg.Name] = prop
		if arg.Required {
			required = append(required, arg.Name)
		}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// RegisterMCP adds every tool from src to the MCP server.
func RegisterMCP(src *tools.Registry, server *mcp.Server) {
	for _, t := range src.All() {
		registerMCPTool(server, t)
	}
}

func registerMCPTool(server *mcp.Server, t *tools.Tool) {
	server.AddTool(&mcp.Tool{
		Name:        t.Desc.Name,
		Description: t.Desc.Description,
		InputSchema: MCPSchema(t.Desc),
	}, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return textResult("invalid tool arguments: "+err.Error(), true), nil
			}
		}

		out, err := t.Run(args)
		if err != nil {
			return textResult(err.Error(), true), nil
		}
		return textResult(out, false), nil
	})
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
}

// BuildMCPServer creates an MCP server named tusk exposing every tool in src.
func BuildMCPServer(src *tools.Registry, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "tusk", Version: version}, nil)
	RegisterMCP(src, server)
	return server
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is canceled.
func ServeStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
