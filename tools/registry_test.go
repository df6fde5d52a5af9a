// ABOUTME: Tests for the ordered tool registry covering upsert ordering, lookup, and invocation.
// ABOUTME: Verifies journaling and per-tool truncation on the Invoke path.

package tools

import (
	"fmt"
	"strings"
	"testing"

	"github.com/2389-research/tusk/journal"
)

func staticTool(name, output string) *Tool {
	return &Tool{
		Desc: Descriptor{Name: name, Description: "test tool " + name},
		Run: func(args map[string]any) (string, error) {
			return output, nil
		},
	}
}

func TestRegistryRegisterFrontOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(staticTool("first", ""))
	r.Register(staticTool("second", ""))

	names := r.Names()
	if len(names) != 2 || names[0] != "second" || names[1] != "first" {
		t.Errorf("expected most recently registered first, got %v", names)
	}
}

func TestRegistryUpsertReplacesAndMovesToFront(t *testing.T) {
	r := NewRegistry()
	r.Register(staticTool("a", "old"))
	r.Register(staticTool("b", ""))
	r.Register(staticTool("a", "new"))

	names := r.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("re-registration must move the tool to the front, got %v", names)
	}

	out, err := r.Invoke("a", nil)
	if err != nil {
		t.Fatal(err)
	}
	if out != "new" {
		t.Errorf("re-registration must replace the prior entry, got %q", out)
	}
}

func TestRegistryRegisterEmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&Tool{}); err == nil {
		t.Fatal("expected error for empty tool name")
	}
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(staticTool("gone", ""))

	if !r.Unregister("gone") {
		t.Error("expected Unregister to report existing tool")
	}
	if r.Has("gone") {
		t.Error("tool should be removed")
	}
	if r.Unregister("gone") {
		t.Error("expected Unregister to report missing tool")
	}
}

func TestRegistryInvokeUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Invoke("missing", nil); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestRegistryInvokeJournals(t *testing.T) {
	r := NewRegistry()
	jnl := journal.New(16)
	r.SetJournal(jnl)

	r.Register(staticTool("ok", "fine"))
	r.Register(&Tool{
		Desc: Descriptor{Name: "bad"},
		Run: func(args map[string]any) (string, error) {
			return "", fmt.Errorf("boom")
		},
	})

	if _, err := r.Invoke("ok", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Invoke("bad", nil); err == nil {
		t.Fatal("expected error from bad tool")
	}

	recs := jnl.Records()
	if len(recs) != 2 {
		t.Fatalf("expected 2 journal records, got %d", len(recs))
	}
	if !recs[0].OK || recs[0].Tool != "ok" {
		t.Errorf("first record should be the successful call, got %+v", recs[0])
	}
	if recs[1].OK || recs[1].Summary != "boom" {
		t.Errorf("failed call must journal the error text, got %+v", recs[1])
	}
}

func TestRegistryInvokeTruncates(t *testing.T) {
	r := NewRegistry()
	r.SetLimits(map[string]int{"chatty": 50})
	r.Register(staticTool("chatty", strings.Repeat("x", 500)))

	out, err := r.Invoke("chatty", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "truncated") {
		t.Error("expected truncation warning for oversized output")
	}
	if len(out) >= 500 {
		t.Errorf("expected truncated output, got %d chars", len(out))
	}
}

func TestRegistryDescriptorsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(staticTool("one", ""))
	r.Register(staticTool("two", ""))

	descs := r.Descriptors()
	if len(descs) != 2 || descs[0].Name != "two" {
		t.Errorf("descriptors must follow registry order, got %v", descs)
	}
}
