package graph_test

import (
	"errors"
	"testing"

	"go.trai.ch/fbgen/internal/core/domain"
	"go.trai.ch/fbgen/internal/engine/graph"
	"go.trai.ch/zerr"
)

func action(id string, prereqs ...*domain.Action) *domain.Action {
	return &domain.Action{
		ID:            id,
		Kind:          domain.KindCompile,
		Executable:    "cl.exe",
		Prerequisites: prereqs,
	}
}

func ids(actions []*domain.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.ID
	}
	return out
}

func TestSort_ValidOrderPreserved(t *testing.T) {
	a := action("a")
	b := action("b", a)
	c := action("c", a, b)
	in := []*domain.Action{a, b, c}

	sorted, err := graph.Sort(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Emission order drives stanza naming, so a valid input must come back
	// unchanged.
	for i := range in {
		if sorted[i] != in[i] {
			t.Fatalf("order changed at %d: got %v", i, ids(sorted))
		}
		if sorted[i].SortIndex != i {
			t.Errorf("expected SortIndex %d on %s, got %d", i, sorted[i].ID, sorted[i].SortIndex)
		}
	}
}

func TestSort_RebuildsInvalidOrder(t *testing.T) {
	a := action("a")
	b := action("b", a)
	link := action("link", a, b)

	sorted, err := graph.Sort([]*domain.Action{link, b, a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := ids(sorted)
	if got[0] != "a" || got[1] != "b" || got[2] != "link" {
		t.Errorf("unexpected order: %v", got)
	}
	for i, act := range sorted {
		if act.SortIndex != i {
			t.Errorf("expected SortIndex %d on %s, got %d", i, act.ID, act.SortIndex)
		}
	}
}

func TestSort_Diamond(t *testing.T) {
	base := action("base")
	left := action("left", base)
	right := action("right", base)
	top := action("top", left, right)

	sorted, err := graph.Sort([]*domain.Action{top, right, left, base})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := make(map[string]int, len(sorted))
	for i, a := range sorted {
		pos[a.ID] = i
	}
	if pos["base"] > pos["left"] || pos["base"] > pos["right"] {
		t.Errorf("base must precede left and right: %v", ids(sorted))
	}
	if pos["top"] != len(sorted)-1 {
		t.Errorf("top must come last: %v", ids(sorted))
	}
}

func TestSort_CycleIsFatal(t *testing.T) {
	a := action("a")
	b := action("b", a)
	a.Prerequisites = append(a.Prerequisites, b)

	_, err := graph.Sort([]*domain.Action{a, b})
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if meta["action"] == nil || meta["prerequisite"] == nil {
		t.Errorf("expected action and prerequisite metadata, got %v", meta)
	}
}

func TestSort_UnknownPrerequisiteIgnored(t *testing.T) {
	// A prerequisite outside the action list cannot constrain the order.
	external := action("external")
	a := action("a", external)

	sorted, err := graph.Sort([]*domain.Action{a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sorted) != 1 || sorted[0] != a {
		t.Errorf("unexpected result: %v", ids(sorted))
	}
}

func TestSort_RebuildIgnoresUnknownPrerequisite(t *testing.T) {
	// The rebuild path must behave like the fast path: prerequisites outside
	// the list never appear in the output.
	external := action("external")
	a := action("a", external)
	b := action("b", a)

	sorted, err := graph.Sort([]*domain.Action{b, a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ids(sorted)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
}
