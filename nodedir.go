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

// memNodeDirectory is a concrete, in-memory NodeDirectory. It exists
// to exercise the rest of this package in tests and the demonstration
// CLI; the production node directory is storage-backed and out of
// scope (spec §1).
type memNodeDirectory struct {
	names   []string
	byName  map[string]uint
}

// NewMemNodeDirectory builds a NodeDirectory over a fixed, ordered
// list of node names. Index i is assigned to names[i].
func NewMemNodeDirectory(names []string) NodeDirectory {
	byName := make(map[string]uint, len(names))
	for i, n := range names {
		byName[n] = uint(i)
	}
	return &memNodeDirectory{names: names, byName: byName}
}

func (d *memNodeDirectory) ByName(name string) (uint, bool) {
	idx, ok := d.byName[name]
	return idx, ok
}

func (d *memNodeDirectory) ByIndex(idx uint) (NodeRecord, bool) {
	if idx >= uint(len(d.names)) {
		return NodeRecord{}, false
	}
	return NodeRecord{Index: idx, Name: d.names[idx]}, true
}

func (d *memNodeDirectory) Count() uint {
	return uint(len(d.names))
}
