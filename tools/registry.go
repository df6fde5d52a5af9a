// ABOUTME: Ordered tool registry with upsert-by-name front insertion and invocation dispatch.
// ABOUTME: Invoke runs a tool, truncates its observation, and journals the call.

package tools

import (
	"fmt"
	"sync"
	"time"

	"github.com/2389-research/tusk/journal"
)

// Registry is an ordered, thread-safe collection of tools. Registration
// upserts by name at the front of the list, so the most recently registered
// tools come first and re-registration replaces the prior entry.
type Registry struct {
	mu      sync.RWMutex
	order   []*Tool
	index   map[string]*Tool
	journal *journal.Journal
	limits  map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]*Tool),
	}
}

// SetJournal attaches an invocation journal. Passing nil detaches it.
func (r *Registry) SetJournal(j *journal.Journal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.journal = j
}

// SetLimits overrides per-tool observation character limits.
func (r *Registry) SetLimits(limits map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limits = limits
}

// Register upserts a tool by name at the front of the registry. Returns an
// error if the tool's descriptor has an empty name.
func (r *Registry) Register(t *Tool) error {
	if t.Desc.Name == "" {
		return fmt.Errorf("tool name must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[t.Desc.Name]; ok {
		r.removeLocked(t.Desc.Name)
	}
	r.order = append([]*Tool{t}, r.order...)
	r.index[t.Desc.Name] = t
	return nil
}

// Unregister removes a tool by name. Returns true if the tool existed.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[name]; !ok {
		return false
	}
	r.removeLocked(name)
	return true
}

// removeLocked drops the named tool from both the order slice and the index.
// Caller holds r.mu.
func (r *Registry) removeLocked(name string) {
	delete(r.index, name)
	for i, t := range r.order {
		if t.Desc.Name == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Get returns the registered tool with the given name, or nil if not found.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index[name]
}

// Has returns true if a tool with the given name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.index[name]
	return ok
}

// Names returns the names of all registered tools in registry order
// (most recently registered first).
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, t := range r.order {
		names = append(names, t.Desc.Name)
	}
	return names
}

// All returns the registered tools in registry order.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Tool, len(r.order))
	copy(out, r.order)
	return out
}

// Descriptors returns the descriptors of all registered tools in registry order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, t.Desc)
	}
	return out
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Invoke runs the named tool with the given arguments, truncates the
// observation with per-tool limits, and journals the call.
func (r *Registry) Invoke(name string, args map[string]any) (string, error) {
	r.mu.RLock()
	t := r.index[name]
	j := r.journal
	limits := r.limits
	r.mu.RUnlock()

	if t == nil {
		return "", fmt.Errorf("unknown tool: %s", name)
	}

	start := time.Now()
	out, err := t.Run(args)
	elapsed := time.Since(start)

	if err != nil {
		if j != nil {
			j.Append(name, false, elapsed, err.Error())
		}
		return "", err
	}

	out = TruncateToolOutput(out, name, limits)
	if j != nil {
		j.Append(name, true, elapsed, summarize(out))
	}
	return out, nil
}

// summarize clips an observation to a journal-sized first line.
func summarize(s string) string {
	const max = 120
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			s = s[:i]
			break
		}
	}
	if len(s) > max {
		return s[:max]
	}
	return s
}
