// ABOUTME: In-memory buffer store with TTL cleanup and capacity limits.
// ABOUTME: Thread-safe, name-keyed storage for transient editor buffers.

package buffer

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	mu         sync.RWMutex
	buffers    map[string]*Buffer
	maxBuffers int
	ttl        time.Duration
}

// NewStore creates a new buffer store. maxBuffers bounds the number of live
// buffers; when full, the least recently accessed buffer is evicted.
func NewStore(maxBuffers int, ttl time.Duration) *Store {
	if maxBuffers <= 0 {
		maxBuffers = 100
	}
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Store{
		buffers:    make(map[string]*Buffer),
		maxBuffers: maxBuffers,
		ttl:        ttl,
	}
}

// Read returns the content of the named buffer.
func (s *Store) Read(name string) (string, error) {
	s.mu.Lock()
	buf, ok := s.buffers[name]
	if ok {
		buf.LastAccess = time.Now()
	}
	s.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("buffer not found: %s", name)
	}
	return buf.Content(), nil
}

// Write replaces the content of the named buffer, creating it if needed.
func (s *Store) Write(name, content string) error {
	s.mu.Lock()
	buf, ok := s.buffers[name]
	if !ok {
		if len(s.buffers) >= s.maxBuffers {
			s.evictOldestLocked()
		}
		now := time.Now()
		buf = &Buffer{
			ID:         uuid.New().String(),
			BufferName: name,
			CreatedAt:  now,
			LastAccess: now,
		}
		s.buffers[name] = buf
	} else {
		buf.LastAccess = time.Now()
	}
	s.mu.Unlock()

	buf.SetContent(content)
	return nil
}

// Has reports whether a buffer with the given name exists.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.buffers[name]
	return ok
}

// Get retrieves a buffer by name and updates its LastAccess time.
func (s *Store) Get(name string) (*Buffer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.buffers[name]
	if !ok {
		return nil, false
	}
	buf.LastAccess = time.Now()
	return buf, true
}

// Delete removes a buffer by name. Returns true if the buffer existed.
func (s *Store) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.buffers[name]; ok {
		delete(s.buffers, name)
		return true
	}
	return false
}

// Names returns the names of all live buffers.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.buffers))
	for name := range s.buffers {
		names = append(names, name)
	}
	return names
}

// Len returns the number of live buffers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.buffers)
}

// evictOldestLocked removes the least recently accessed buffer. Caller holds s.mu.
func (s *Store) evictOldestLocked() {
	var oldestName string
	var oldestTime time.Time
	for name, buf := range s.buffers {
		if oldestTime.IsZero() || buf.LastAccess.Before(oldestTime) {
			oldestName = name
			oldestTime = buf.LastAccess
		}
	}
	delete(s.buffers, oldestName)
}

// Cleanup removes buffers idle longer than TTL.
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for name, buf := range s.buffers {
		if buf.LastAccess.Before(cutoff) {
			delete(s.buffers, name)
		}
	}
}

// StartCleanup starts a background cleanup goroutine and returns a stop function.
func (s *Store) StartCleanup(interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				s.Cleanup()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}
