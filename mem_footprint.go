package containers

import (
	"fmt"
	"sort"
	"strings"
)

// MemoryFootprint holds the memory consumption of a container, optionally
// broken down into named sub-components forming a tree.
type MemoryFootprint struct {
	value    uintptr
	children map[string]*MemoryFootprint
}

// NewMemoryFootprint creates a footprint of the given size with no children.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{value: value}
}

// AddChild attaches the footprint of a sub-component under the given name.
// A child registered under an existing name replaces the previous one.
func (f *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if f.children == nil {
		f.children = make(map[string]*MemoryFootprint)
	}
	f.children[name] = child
}

// Value returns the bytes consumed by the component itself, excluding children.
func (f *MemoryFootprint) Value() uintptr {
	return f.value
}

// Total returns the bytes consumed by the component and all its children.
// Footprints reachable through more than one path are counted once.
func (f *MemoryFootprint) Total() uintptr {
	visited := make(map[*MemoryFootprint]bool)
	return f.addToTotal(visited)
}

func (f *MemoryFootprint) addToTotal(visited map[*MemoryFootprint]bool) uintptr {
	if visited[f] {
		return 0
	}
	visited[f] = true
	total := f.value
	for _, child := range f.children {
		total += child.addToTotal(visited)
	}
	return total
}

// String renders the footprint tree with one line per component, children
// sorted by name for deterministic output.
func (f *MemoryFootprint) String() string {
	var sb strings.Builder
	f.writeTo(&sb, ".")
	return sb.String()
}

func (f *MemoryFootprint) writeTo(sb *strings.Builder, path string) {
	fmt.Fprintf(sb, "%s %s\n", formatByteAmount(f.Total()), path)
	names := make([]string, 0, len(f.children))
	for name := range f.children {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f.children[name].writeTo(sb, path+"/"+name)
	}
}

func formatByteAmount(bytes uintptr) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes)
	prefixes := "KMGTPE"
	exp := 0
	for value >= unit && exp < len(prefixes)-1 {
		value /= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", value, prefixes[exp])
}
