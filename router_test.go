// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package swtree

import (
	"reflect"
	"sort"
	"testing"
)

// scenario1 builds the spec's single-leaf, three-node fixture.
func scenario1(t *testing.T) (*Forest, NodeDirectory, HostlistCodec) {
	t.Helper()
	dir := NewMemNodeDirectory([]string{"n0", "n1", "n2"})
	hl := NewDefaultHostlist()
	spec := TopoSpec{Switches: []SwitchSpec{
		{Name: "leaf0", Nodes: []string{"n0", "n1", "n2"}},
	}}
	f, err := BuildForest(spec, dir, hl)
	if err != nil {
		t.Fatalf("BuildForest: %v", err)
	}
	return f, dir, hl
}

func TestRouteSingleLeafDelegatesToTreewidth(t *testing.T) {
	f, _, _ := scenario1(t)
	splitter := NewFlatTreewidthSplitter()

	sublists, depth, err := f.SplitHostlist("n0,n2", 2, RouteFlags{TopologyAware: true}, splitter)
	if err != nil {
		t.Fatalf("SplitHostlist: %v", err)
	}
	if depth != 2 {
		t.Fatalf("depth = %d, want 2", depth)
	}
	gotUnion := unionNames(t, sublists)
	sort.Strings(gotUnion)
	want := []string{"n0", "n2"}
	if !reflect.DeepEqual(gotUnion, want) {
		t.Fatalf("union = %v, want %v", gotUnion, want)
	}
}

func TestRouteTwoLeavesUnderOneSpine(t *testing.T) {
	f, _, _ := scenario2(t)
	splitter := NewFlatTreewidthSplitter()

	sublists, depth, err := f.SplitHostlist("n1,n2", 2, RouteFlags{TopologyAware: true}, splitter)
	if err != nil {
		t.Fatalf("SplitHostlist: %v", err)
	}
	if depth != 2 {
		t.Fatalf("depth = %d, want 2", depth)
	}
	if len(sublists) != 2 {
		t.Fatalf("sublists = %v, want 2 entries", sublists)
	}
	if sublists[0] != "n1" || sublists[1] != "n2" {
		t.Fatalf("sublists = %v, want [n1 n2] in that order", sublists)
	}
}

func TestRouteTopologyAwareDisabledShortCircuits(t *testing.T) {
	f, _, _ := scenario2(t)
	splitter := NewFlatTreewidthSplitter()

	sublists, depth, err := f.SplitHostlist("n1,n2", 2, RouteFlags{TopologyAware: false}, splitter)
	if err != nil {
		t.Fatalf("SplitHostlist: %v", err)
	}
	want, wantDepth, _ := splitter.Split("n1,n2", 2, f.nodeDir)
	if depth != wantDepth || !reflect.DeepEqual(sublists, want) {
		t.Fatalf("short-circuit result = (%v, %d), want (%v, %d)", sublists, depth, want, wantDepth)
	}
}

func TestRouteOrphanNode(t *testing.T) {
	// A node with no leaf membership at all cannot be reached through
	// any subtree and must surface as a singleton.
	dir := NewMemNodeDirectory([]string{"n0", "n1", "orphan"})
	hl := NewDefaultHostlist()
	spec := TopoSpec{Switches: []SwitchSpec{
		{Name: "leaf0", Nodes: []string{"n0", "n1"}},
	}}
	f, err := BuildForest(spec, dir, hl)
	if err != nil {
		t.Fatalf("BuildForest: %v", err)
	}
	splitter := NewFlatTreewidthSplitter()
	sublists, _, err := f.SplitHostlist("n0,orphan", 2, RouteFlags{TopologyAware: true}, splitter)
	if err != nil {
		t.Fatalf("SplitHostlist: %v", err)
	}
	found := false
	for _, s := range sublists {
		if s == "orphan" {
			found = true
		}
	}
	if !found {
		t.Fatalf("orphan node not emitted as singleton: %v", sublists)
	}
}

func unionNames(t *testing.T, sublists []string) []string {
	t.Helper()
	var out []string
	for _, s := range sublists {
		names, err := expandHostlist(s)
		if err != nil {
			t.Fatalf("expandHostlist(%q): %v", s, err)
		}
		out = append(out, names...)
	}
	return out
}

func TestForestInitializerBuildsOnce(t *testing.T) {
	calls := 0
	fi := NewForestInitializer(func() (*Forest, error) {
		calls++
		f, _, _ := scenario2(t)
		return f, nil
	})

	f1, err := fi.Get(false)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	f2, err := fi.Get(false)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if f1 != f2 {
		t.Fatalf("expected same forest instance across calls")
	}
	if calls != 1 {
		t.Fatalf("build called %d times, want 1", calls)
	}
}
