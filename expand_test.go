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

import "testing"

func TestWholeTopoLeafClosureOnly(t *testing.T) {
	f, dir, _ := scenario2(t)
	n1, _ := dir.ByName("n1")

	m := NewNodeBitmap(dir.Count())
	m.Set(n1)
	f.WholeTopo(m)

	n0, _ := dir.ByName("n0")
	n2, _ := dir.ByName("n2")
	if !m.Test(n0) {
		t.Fatalf("expected n0 pulled in by leaf0 closure")
	}
	if !m.Test(n1) {
		t.Fatalf("expected n1 still set")
	}
	if m.Test(n2) {
		t.Fatalf("leaf1 should not be pulled in: expand must not cross the leaf boundary")
	}
}

func TestWholeTopoIdempotentAndEnlargesOnly(t *testing.T) {
	f, dir, _ := scenario2(t)
	n1, _ := dir.ByName("n1")

	m := NewNodeBitmap(dir.Count())
	m.Set(n1)
	original := m.Copy()

	f.WholeTopo(m)
	if !m.IsSuperset(original) {
		t.Fatalf("expand must enlarge only: original not a subset of expanded")
	}

	once := m.Copy()
	f.WholeTopo(m)
	if !m.Equal(once) {
		t.Fatalf("expand(expand(M)) != expand(M)")
	}
}
