// ABOUTME: Buffer holds one in-memory text container with access-time tracking.
// ABOUTME: Content mutations are serialized with a per-buffer RWMutex.

package buffer

import (
	"sync"
	"time"
)

// Buffer is a transient, session-scoped text container identified by name.
type Buffer struct {
	mu         sync.RWMutex
	ID         string
	BufferName string
	content    string
	CreatedAt  time.Time
	LastAccess time.Time
}

// Name returns the buffer's identifying name.
func (b *Buffer) Name() string {
	return b.BufferName
}

// Content returns the buffer's current content.
func (b *Buffer) Content() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content
}

// SetContent replaces the buffer's entire content.
func (b *Buffer) SetContent(content string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = content
}
