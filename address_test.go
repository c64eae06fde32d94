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

func TestNodeAddress(t *testing.T) {
	f, _, _ := scenario2(t)

	addr, pattern, err := f.NodeAddress("n2")
	if err != nil {
		t.Fatalf("NodeAddress: %v", err)
	}
	if addr != "spine0.leaf1.n2" {
		t.Fatalf("address = %q, want spine0.leaf1.n2", addr)
	}
	if pattern != "switch.switch.node" {
		t.Fatalf("pattern = %q, want switch.switch.node", pattern)
	}
}

func TestNodeAddressUnknownNode(t *testing.T) {
	f, _, _ := scenario2(t)
	_, _, err := f.NodeAddress("ghost")
	if !errors.Is(err, ErrNodeUnknown) {
		t.Fatalf("expected ErrNodeUnknown, got %v", err)
	}
}

func TestNodeAddressEmptyForest(t *testing.T) {
	dir := NewMemNodeDirectory([]string{"solo"})
	f, err := BuildForest(TopoSpec{}, dir, NewDefaultHostlist())
	if err != nil {
		t.Fatalf("BuildForest: %v", err)
	}
	addr, pattern, err := f.NodeAddress("solo")
	if err != nil {
		t.Fatalf("NodeAddress: %v", err)
	}
	if addr != "solo" || pattern != "node" {
		t.Fatalf("got (%q, %q), want (solo, node)", addr, pattern)
	}
}
