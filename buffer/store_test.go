// ABOUTME: Tests for the buffer store: lifecycle, capacity eviction, and TTL cleanup.
// ABOUTME: Uses direct LastAccess manipulation to simulate idle buffers.

package buffer

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func newTestStore() *Store {
	return NewStore(100, time.Hour)
}

func TestStoreWriteRead(t *testing.T) {
	s := newTestStore()

	if err := s.Write("scratch", "hello"); err != nil {
		t.Fatal(err)
	}

	got, err := s.Read("scratch")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
}

func TestStoreReadMissing(t *testing.T) {
	s := newTestStore()

	_, err := s.Read("nope")
	if err == nil {
		t.Fatal("expected error for missing buffer")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the buffer: %v", err)
	}
}

func TestStoreWriteOverwrites(t *testing.T) {
	s := newTestStore()
	s.Write("b", "first")
	s.Write("b", "second")

	got, _ := s.Read("b")
	if got != "second" {
		t.Errorf("expected 'second', got %q", got)
	}
	if s.Len() != 1 {
		t.Errorf("overwrite must not create a new buffer, len=%d", s.Len())
	}
}

func TestStoreHasDelete(t *testing.T) {
	s := newTestStore()
	s.Write("b", "x")

	if !s.Has("b") {
		t.Error("Has should report existing buffer")
	}
	if !s.Delete("b") {
		t.Error("Delete should return true for existing buffer")
	}
	if s.Has("b") {
		t.Error("buffer should be gone after Delete")
	}
	if s.Delete("b") {
		t.Error("Delete should return false for missing buffer")
	}
}

func TestStoreNamesLen(t *testing.T) {
	s := newTestStore()
	s.Write("a", "1")
	s.Write("b", "2")

	if s.Len() != 2 {
		t.Errorf("expected 2 buffers, got %d", s.Len())
	}

	names := s.Names()
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("expected names a and b, got %v", names)
	}
}

func TestStoreGetUpdatesAccess(t *testing.T) {
	s := newTestStore()
	s.Write("b", "x")

	buf, ok := s.Get("b")
	if !ok {
		t.Fatal("expected buffer")
	}
	before := buf.LastAccess

	time.Sleep(5 * time.Millisecond)
	s.Get("b")

	if !buf.LastAccess.After(before) {
		t.Error("Get should update LastAccess")
	}
}

func TestStoreCapacityEviction(t *testing.T) {
	s := NewStore(3, time.Hour)
	for i := 0; i < 3; i++ {
		s.Write(fmt.Sprintf("buf%d", i), "x")
	}

	// Make buf1 the least recently accessed.
	s.buffers["buf1"].LastAccess = time.Now().Add(-time.Minute)

	s.Write("buf3", "x")

	if s.Len() != 3 {
		t.Errorf("store should stay at capacity, len=%d", s.Len())
	}
	if s.Has("buf1") {
		t.Error("least recently accessed buffer should be evicted")
	}
	if !s.Has("buf3") {
		t.Error("new buffer should exist after eviction")
	}
}

func TestStoreCleanup(t *testing.T) {
	s := NewStore(100, time.Minute)
	s.Write("fresh", "x")
	s.Write("stale", "x")
	s.buffers["stale"].LastAccess = time.Now().Add(-2 * time.Minute)

	s.Cleanup()

	if s.Has("stale") {
		t.Error("stale buffer should be removed by Cleanup")
	}
	if !s.Has("fresh") {
		t.Error("fresh buffer should survive Cleanup")
	}
}

func TestStoreStartCleanupStops(t *testing.T) {
	s := NewStore(100, time.Millisecond)
	s.Write("b", "x")
	s.buffers["b"].LastAccess = time.Now().Add(-time.Second)

	stop := s.StartCleanup(5 * time.Millisecond)
	defer stop()

	deadline := time.After(time.Second)
	for s.Has("b") {
		select {
		case <-deadline:
			t.Fatal("background cleanup never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestNewStoreClampsBadValues(t *testing.T) {
	s := NewStore(0, 0)

	for i := 0; i < 5; i++ {
		s.Write(fmt.Sprintf("buf%d", i), "x")
	}

	// A non-positive capacity must not evict on every create.
	if s.Len() != 5 {
		t.Errorf("expected 5 buffers with clamped capacity, got %d", s.Len())
	}
	if s.maxBuffers <= 0 {
		t.Errorf("maxBuffers should be clamped, got %d", s.maxBuffers)
	}
	if s.ttl <= 0 {
		t.Errorf("ttl should be clamped, got %s", s.ttl)
	}
}

func TestBufferIDsUnique(t *testing.T) {
	s := newTestStore()
	s.Write("a", "x")
	s.Write("b", "x")

	a, _ := s.Get("a")
	b, _ := s.Get("b")
	if a.ID == b.ID {
		t.Error("buffers should get distinct IDs")
	}
	if a.Name() != "a" || b.Name() != "b" {
		t.Errorf("buffer names mismatch: %q %q", a.Name(), b.Name())
	}
}
