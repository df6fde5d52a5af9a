// ABOUTME: Constructors for the buffer-side tools (ViewBuffer, EditBuffer, ReplaceBuffer).
// ABOUTME: bufferTarget adapts the buffer store to the TextTarget interface.

package tools

import (
	"github.com/2389-research/tusk/buffer"
)

// bufferTarget addresses a named buffer in an in-memory store.
type bufferTarget struct {
	store *buffer.Store
	name  string
}

// NewBufferTarget returns a TextTarget for the named buffer.
func NewBufferTarget(store *buffer.Store, name string) TextTarget {
	return &bufferTarget{store: store, name: name}
}

func (t *bufferTarget) Name() string {
	return t.name
}

func (t *bufferTarget) Read() (string, error) {
	return t.store.Read(t.name)
}

func (t *bufferTarget) Write(content string) error {
	return t.store.Write(t.name, content)
}

func (t *bufferTarget) Exists() bool {
	return t.store.Has(t.name)
}

// NewViewBufferTool creates the ViewBuffer tool for reading a line range of a buffer.
func NewViewBufferTool(store *buffer.Store) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "ViewBuffer",
			Description: "View the contents of an open buffer, optionally restricted to a line range.",
			Args: []Arg{
				{Name: "buffer_name", Type: ArgString, Description: "Name of the buffer to view", Required: true},
				{Name: "limit", Type: ArgNumber, Description: "Maximum number of lines to return (default: all)"},
				{Name: "offset", Type: ArgNumber, Description: "Zero-based line offset to start from (default: 0)"},
			},
		},
		Run: func(args map[string]any) (string, error) {
			name, err := getStringArg(args, "buffer_name", true)
			if err != nil {
				return "", err
			}

			limit, err := getIntArg(args, "limit", 0)
			if err != nil {
				return "", err
			}

			offset, err := getIntArg(args, "offset", 0)
			if err != nil {
				return "", err
			}

			return viewRange(NewBufferTarget(store, name), offset, limit)
		},
	}
}

// NewEditBufferTool creates the EditBuffer tool for single-match string replacement
// in a buffer. The mutation stays in memory; nothing touches disk.
func NewEditBufferTool(store *buffer.Store) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "EditBuffer",
			Description: "Replace exactly one occurrence of old_string with new_string in an open buffer. An empty old_string creates or overwrites the buffer with new_string.",
			Args: []Arg{
				{Name: "buffer_name", Type: ArgString, Description: "Name of the buffer to edit", Required: true},
				{Name: "old_string", Type: ArgString, Description: "Exact text to find; must occur exactly once", Required: true},
				{Name: "new_string", Type: ArgString, Description: "Replacement text", Required: true},
			},
		},
		Run: func(args map[string]any) (string, error) {
			name, err := getStringArg(args, "buffer_name", true)
			if err != nil {
				return "", err
			}

			oldString, err := getStringArg(args, "old_string", true)
			if err != nil {
				return "", err
			}

			newString, err := getStringArg(args, "new_string", true)
			if err != nil {
				return "", err
			}

			return replaceOnce(NewBufferTarget(store, name), oldString, newString)
		},
	}
}

// NewReplaceBufferTool creates the ReplaceBuffer tool for overwriting a buffer's full content.
func NewReplaceBufferTool(store *buffer.Store) *Tool {
	return &Tool{
		Desc: Descriptor{
			Name:        "ReplaceBuffer",
			Description: "Overwrite a buffer's entire content with the supplied content, creating it if needed.",
			Args: []Arg{
				{Name: "buffer_name", Type: ArgString, Description: "Name of the buffer to write", Required: true},
				{Name: "content", Type: ArgString, Description: "The full buffer content to write", Required: true},
			},
		},
		Run: func(args map[string]any) (string, error) {
			name, err := getStringArg(args, "buffer_name", true)
			if err != nil {
				return "", err
			}

			content, err := getStringArg(args, "content", true)
			if err != nil {
				return "", err
			}

			return fullReplace(NewBufferTarget(store, name), content)
		},
	}
}
