package containers

import (
	"strings"
	"testing"
)

func TestMemoryFootprintValueExcludesChildren(t *testing.T) {
	parent := NewMemoryFootprint(100)
	parent.AddChild("buffer", NewMemoryFootprint(50))

	if value := parent.Value(); value != 100 {
		t.Errorf("unexpected value, wanted 100, got %d", value)
	}
	if total := parent.Total(); total != 150 {
		t.Errorf("unexpected total, wanted 150, got %d", total)
	}
}

func TestMemoryFootprintSharedChildCountedOnce(t *testing.T) {
	shared := NewMemoryFootprint(30)
	parent := NewMemoryFootprint(10)
	left := NewMemoryFootprint(1)
	right := NewMemoryFootprint(2)
	left.AddChild("shared", shared)
	right.AddChild("shared", shared)
	parent.AddChild("left", left)
	parent.AddChild("right", right)

	if total := parent.Total(); total != 43 {
		t.Errorf("shared footprint counted more than once, wanted 43, got %d", total)
	}
}

func TestMemoryFootprintCycleDoesNotLoop(t *testing.T) {
	root := NewMemoryFootprint(5)
	root.AddChild("self", root)

	if total := root.Total(); total != 5 {
		t.Errorf("unexpected total for cyclic footprint, wanted 5, got %d", total)
	}
}

func TestMemoryFootprintChildReplacedByName(t *testing.T) {
	parent := NewMemoryFootprint(0)
	parent.AddChild("data", NewMemoryFootprint(10))
	parent.AddChild("data", NewMemoryFootprint(20))

	if total := parent.Total(); total != 20 {
		t.Errorf("replaced child should not be counted, wanted 20, got %d", total)
	}
}

func TestMemoryFootprintStringListsComponents(t *testing.T) {
	parent := NewMemoryFootprint(100)
	parent.AddChild("values", NewMemoryFootprint(2048))
	parent.AddChild("flags", NewMemoryFootprint(64))

	str := parent.String()
	for _, part := range []string{"./values", "./flags", "2.0 KiB", "64 B"} {
		if !strings.Contains(str, part) {
			t.Errorf("rendering misses %q:\n%s", part, str)
		}
	}

	// children are rendered in name order
	if strings.Index(str, "./flags") > strings.Index(str, "./values") {
		t.Errorf("children not sorted by name:\n%s", str)
	}
}
