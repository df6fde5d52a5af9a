// ABOUTME: TextTarget abstracts an addressable unit of text content for view/edit operations.
// ABOUTME: fileTarget is the persistent, Environment-backed implementation.

package tools

// TextTarget is an addressable unit of text content. The file-backed variant
// persists to disk through an Environment; the buffer-backed variant lives in
// a session-scoped in-memory store. View, edit, and replace are implemented
// once against this interface.
type TextTarget interface {
	// Name identifies the target in observation and error messages.
	Name() string

	// Read returns the target's full content.
	Read() (string, error)

	// Write replaces the target's full content, creating the target if needed.
	Write(content string) error

	// Exists reports whether the target currently exists.
	Exists() bool
}

// fileTarget addresses a file on disk through an Environment.
type fileTarget struct {
	env  Environment
	path string
}

// NewFileTarget returns a TextTarget for the file at path.
func NewFileTarget(env Environment, path string) TextTarget {
	return &fileTarget{env: env, path: path}
}

func (t *fileTarget) Name() string {
	return t.path
}

func (t *fileTarget) Read() (string, error) {
	return t.env.ReadFile(t.path)
}

func (t *fileTarget) Write(content string) error {
	return t.env.WriteFile(t.path, content)
}

func (t *fileTarget) Exists() bool {
	ok, err := t.env.FileExists(t.path)
	return err == nil && ok
}
