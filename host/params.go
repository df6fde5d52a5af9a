// ABOUTME: Converts tool descriptors into Anthropic and OpenAI tool parameter lists.
// ABOUTME: Upsert helpers maintain host-owned active-tool slices, deduplicated by name at the front.

package host

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"

	"github.com/2389-research/tusk/tools"
)

// AnthropicTools converts every registered descriptor into Anthropic tool params.
func AnthropicTools(src *tools.Registry) []anthropic.ToolUnionParam {
	descs := src.Descriptors()
	out := make([]anthropic.ToolUnionParam, 0, len(descs))
	for _, d := range descs {
		out = append(out, AnthropicTool(d))
	}
	return out
}

// AnthropicTool converts one descriptor into an Anthropic tool param.
func AnthropicTool(d tools.Descriptor) anthropic.ToolUnionParam {
	schema := d.InputSchema()
	properties, _ := schema["properties"].(map[string]any)

	var required []string
	if reqList, ok := schema["required"].([]any); ok {
		for _, r := range reqList {
			if s, ok := r.(string); ok {
				required = append(required, s)
			}
		}
	}

	return anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
		Name:        d.Name,
		Description: anthropic.String(d.Description),
		InputSchema: anthropic.ToolInputSchemaParam{
			Properties: properties,
			Required:   required,
		},
	}}
}

// OpenAITools converts every registered descriptor into OpenAI function tool params.
func OpenAITools(src *tools.Registry) []openai.ChatCompletionToolParam {
	descs := src.Descriptors()
	out := make([]openai.ChatCompletionToolParam, 0, len(descs))
	for _, d := range descs {
		out = append(out, OpenAITool(d))
	}
	return out
}

// OpenAITool converts one descriptor into an OpenAI function tool param.
func OpenAITool(d tools.Descriptor) openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        d.Name,
			Description: openai.String(d.Description),
			Parameters:  openai.FunctionParameters(d.InputSchema()),
		},
	}
}

// UpsertAnthropicTool inserts param at the front of list, removing any prior
// entry with the same name. Last registered wins, preserving recency order.
func UpsertAnthropicTool(list []anthropic.ToolUnionParam, param anthropic.ToolUnionParam) []anthropic.ToolUnionParam {
	if param.OfTool == nil {
		return append([]anthropic.ToolUnionParam{param}, list...)
	}

	name := param.OfTool.Name
	out := make([]anthropic.ToolUnionParam, 0, len(list)+1)
	out = append(out, param)
	for _, existing := range list {
		if existing.OfTool != nil && existing.OfTool.Name == name {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// UpsertOpenAITool inserts param at the front of list, removing any prior
// entry with the same function name.
func UpsertOpenAITool(list []openai.ChatCompletionToolParam, param openai.ChatCompletionToolParam) []openai.ChatCompletionToolParam {
	name := param.Function.Name
	out := make([]openai.ChatCompletionToolParam, 0, len(list)+1)
	out = append(out, param)
	for _, existing := range list {
		if existing.Function.Name == name {
			continue
		}
		out = append(out, existing)
	}
	return out
}
