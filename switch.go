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

// Package swtree models a cluster's compute fabric as a forest of
// switches with compute nodes attached at the leaves, and answers the
// placement, broadcast-splitting and addressing questions a scheduler
// needs against that model.
package swtree

// NoParent is the sentinel parent index for a root switch.
const NoParent = -1

// Switch is one entry in a Forest's switch table (spec §3).
type Switch struct {
	Name  string
	Level int // 0 == leaf
	Parent int // index into Forest.Switches, or NoParent

	// Children holds the direct-child switch indices, in declared
	// order. Empty iff Level == 0.
	Children []int

	// Descendants holds every transitively reachable child switch
	// index, in a stable traversal order. Empty iff Level == 0.
	Descendants []int

	// NodeBitmap is the set of node indices reachable through this
	// switch: the direct attachment set for a leaf, the union over
	// children for an interior switch (invariant 2).
	NodeBitmap NodeBitmap

	// Nodes is the denormalized hostlist rendering of NodeBitmap.
	Nodes string

	// Switches is the denormalized name list of direct children.
	Switches string

	// LinkSpeed is an opaque value carried verbatim from configuration.
	LinkSpeed uint32
}

// IsLeaf reports whether s is a leaf switch.
func (s *Switch) IsLeaf() bool { return s.Level == 0 }

// Forest is the complete in-memory switch table for a cluster (spec §3).
// A Forest is built whole by a Validator and destroyed whole; switches
// are never independently destroyed, and indices are never reused
// within a forest's lifetime.
type Forest struct {
	Switches     []*Switch
	SwitchLevels int // max(level) across Switches; 0 means leaves only

	nodeWidth uint // width used for every NodeBitmap allocated in this forest

	nodeDir  NodeDirectory
	hostlist HostlistCodec
}

// SwitchCount returns the number of switches in the forest.
func (f *Forest) SwitchCount() int { return len(f.Switches) }

// Empty reports whether the forest has no switches.
func (f *Forest) Empty() bool { return len(f.Switches) == 0 }

// NodeWidth returns the width used for every NodeBitmap in this forest.
func (f *Forest) NodeWidth() uint { return f.nodeWidth }

// indexByName returns the switch index for name, or -1.
func (f *Forest) indexByName(name string) int {
	for i, s := range f.Switches {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// leafIndices returns every leaf switch index in table order.
func (f *Forest) leafIndices() []int {
	out := make([]int, 0, len(f.Switches))
	for i, s := range f.Switches {
		if s.IsLeaf() {
			out = append(out, i)
		}
	}
	return out
}

// renderSwitches regenerates s.Switches from its Children's names,
// using the forest's hostlist-free name-list convention (a plain
// comma join, mirroring the source's switch_record_update_block_config
// denormalization of child names rather than a compressed hostlist,
// since switch names are not numeric hostlist expressions).
func (f *Forest) renderSwitches(s *Switch) {
	if len(s.Children) == 0 {
		s.Switches = ""
		return
	}
	names := make([]string, len(s.Children))
	for i, c := range s.Children {
		names[i] = f.Switches[c].Name
	}
	s.Switches = joinNames(names)
}

// renderNodes regenerates s.Nodes from s.NodeBitmap via the forest's
// HostlistCodec (spec: "nodes... canonical rendering of node_bitmap").
func (f *Forest) renderNodes(s *Switch) error {
	if s.NodeBitmap.Count() == 0 {
		s.Nodes = ""
		return nil
	}
	rendered, err := f.hostlist.Render(s.NodeBitmap, f.nodeDir)
	if err != nil {
		return err
	}
	s.Nodes = rendered
	return nil
}

func joinNames(names []string) string {
	out := names[0]
	for _, n := range names[1:] {
		out += "," + n
	}
	return out
}
