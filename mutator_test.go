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
	"errors"
	"testing"
)

func TestAddNodeToExistingLeaf(t *testing.T) {
	f, dir, _ := scenario2(t)
	n2, _ := dir.ByName("n2")

	if err := f.AddRemoveNode(n2, "spine0:leaf0"); err != nil {
		t.Fatalf("AddRemoveNode: %v", err)
	}

	leaf0 := f.Switches[f.indexByName("leaf0")]
	leaf1 := f.Switches[f.indexByName("leaf1")]
	spine := f.Switches[f.indexByName("spine0")]

	if !leaf0.NodeBitmap.Test(n2) {
		t.Fatalf("n2 not added to leaf0")
	}
	if leaf1.NodeBitmap.Test(n2) {
		t.Fatalf("n2 still present in leaf1")
	}
	if !spine.NodeBitmap.Test(n2) {
		t.Fatalf("n2 missing from spine0 after propagation")
	}
}

func TestAddThenRemoveRoundTrips(t *testing.T) {
	f, dir, _ := scenario2(t)
	before := f.Snapshot()

	n2, _ := dir.ByName("n2")
	if err := f.AddRemoveNode(n2, "spine0:leaf0"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := f.AddRemoveNode(n2, "spine0:leaf1"); err != nil {
		t.Fatalf("restore: %v", err)
	}

	after := f.Snapshot()
	if len(before) != len(after) {
		t.Fatalf("record count changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("record %d differs after add/remove round trip: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestAddRemoveNodeCreatesMissingLeaf(t *testing.T) {
	f, dir, _ := scenario2(t)
	n2, _ := dir.ByName("n2")

	if err := f.AddRemoveNode(n2, "spine0:leaf2"); err != nil {
		t.Fatalf("AddRemoveNode: %v", err)
	}

	leaf2idx := f.indexByName("leaf2")
	if leaf2idx < 0 {
		t.Fatalf("leaf2 was not created")
	}
	if !f.Switches[leaf2idx].IsLeaf() {
		t.Fatalf("leaf2 should be a leaf")
	}
	if !f.Switches[leaf2idx].NodeBitmap.Test(n2) {
		t.Fatalf("n2 not attached to newly created leaf2")
	}
	spine := f.Switches[f.indexByName("spine0")]
	found := false
	for _, c := range spine.Children {
		if c == leaf2idx {
			found = true
		}
	}
	if !found {
		t.Fatalf("leaf2 not registered as a child of spine0")
	}
}

func TestAddRemoveNodeUnknownFirstSegment(t *testing.T) {
	f, dir, _ := scenario2(t)
	n2, _ := dir.ByName("n2")
	err := f.AddRemoveNode(n2, "ghost:leaf9")
	if !errors.Is(err, ErrUnknownSwitch) {
		t.Fatalf("expected ErrUnknownSwitch, got %v", err)
	}
}

func TestAddRemoveNodeNonLeafTarget(t *testing.T) {
	f, dir, _ := scenario2(t)
	n2, _ := dir.ByName("n2")
	err := f.AddRemoveNode(n2, "spine0")
	if !errors.Is(err, ErrNonLeafTarget) {
		t.Fatalf("expected ErrNonLeafTarget, got %v", err)
	}
}

func TestPureRemoval(t *testing.T) {
	f, dir, _ := scenario2(t)
	n0, _ := dir.ByName("n0")

	if err := f.AddRemoveNode(n0, ""); err != nil {
		t.Fatalf("AddRemoveNode: %v", err)
	}
	leaf0 := f.Switches[f.indexByName("leaf0")]
	spine := f.Switches[f.indexByName("spine0")]
	if leaf0.NodeBitmap.Test(n0) {
		t.Fatalf("n0 still present in leaf0 after pure removal")
	}
	if spine.NodeBitmap.Test(n0) {
		t.Fatalf("n0 still present in spine0 after pure removal")
	}
}
