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
	"fmt"
	"strings"
)

// AddRemoveNode adds node to the leaf named by unitPath, or removes it
// from wherever it currently sits, propagating the node_bitmap change
// up every affected ancestor (spec §4.3).
//
// unitPath is a colon-separated chain of switch names from an
// ancestor down to a leaf, e.g. "spine:edge:leaf". An empty unitPath
// means pure removal: node is cleared from whatever leaf currently
// holds it and nothing is added. Segments that don't yet exist are
// created as children of the previously resolved switch; the first
// segment must already exist. The final segment must resolve to a
// leaf switch.
func (f *Forest) AddRemoveNode(node uint, unitPath string) error {
	targetLeaf := -1
	if unitPath != "" {
		leaf, err := f.resolveOrCreatePath(unitPath)
		if err != nil {
			return err
		}
		targetLeaf = leaf
	}

	// Removals are propagated before additions, so an ancestor shared
	// by the old and the new leaf ends up holding the node. Each pass
	// has its own visited buffer, sized off switch_count, mirroring the
	// source's xcalloc(ctx->switch_count, sizeof(bool)) scratch buffer.
	for _, adding := range []bool{false, true} {
		visited := make([]bool, len(f.Switches))
		for _, leaf := range f.leafIndices() {
			currentlyIn := f.Switches[leaf].NodeBitmap.Test(node)
			shouldBe := leaf == targetLeaf
			if currentlyIn == shouldBe || shouldBe != adding {
				continue
			}
			sw := leaf
			for sw != NoParent {
				if visited[sw] {
					break
				}
				visited[sw] = true
				a := f.Switches[sw]
				if adding {
					a.NodeBitmap.Set(node)
				} else {
					a.NodeBitmap.Clear(node)
				}
				if err := f.renderNodes(a); err != nil {
					return err
				}
				f.renderSwitches(a)
				sw = a.Parent
			}
		}
	}
	return nil
}

// resolveOrCreatePath walks a colon-separated unit path left to
// right, creating missing trailing switches as children of the
// previously resolved switch, and returns the leaf the path resolves
// to. The first segment must already exist (spec §4.3: "creating a
// new root is an error").
func (f *Forest) resolveOrCreatePath(unitPath string) (int, error) {
	segments := strings.Split(unitPath, ":")
	if len(segments) == 0 || segments[0] == "" {
		return -1, fmt.Errorf("%w: empty unit path", ErrUnknownSwitch)
	}

	prev := f.indexByName(segments[0])
	if prev < 0 {
		return -1, fmt.Errorf("%w: %s", ErrUnknownSwitch, segments[0])
	}

	for _, name := range segments[1:] {
		idx := f.indexByName(name)
		if idx < 0 {
			idx = f.appendSwitch(name, prev)
		}
		prev = idx
	}

	if f.Switches[prev].Level != 0 {
		return -1, fmt.Errorf("%w: %s", ErrNonLeafTarget, f.Switches[prev].Name)
	}
	return prev, nil
}

// appendSwitch creates a new leaf-level switch named name as a child
// of parent, with a fresh index (spec §3: "indices are never reused").
// Its level, and the level of every ancestor whose subtree now
// reaches one level deeper, is recomputed.
func (f *Forest) appendSwitch(name string, parent int) int {
	idx := len(f.Switches)
	s := &Switch{
		Name:       name,
		Level:      0,
		Parent:     parent,
		NodeBitmap: NewNodeBitmap(f.nodeWidth),
	}
	f.Switches = append(f.Switches, s)

	p := f.Switches[parent]
	p.Children = append(p.Children, idx)

	// Propagate Descendants and Level up from parent to the root.
	for a := parent; a != NoParent; a = f.Switches[a].Parent {
		f.Switches[a].Descendants = append(f.Switches[a].Descendants, idx)
		childLevel := 0
		for _, c := range f.Switches[a].Children {
			if f.Switches[c].Level+1 > childLevel {
				childLevel = f.Switches[c].Level + 1
			}
		}
		f.Switches[a].Level = childLevel
		if childLevel > f.SwitchLevels {
			f.SwitchLevels = childLevel
		}
	}
	f.renderSwitches(p)
	return idx
}
