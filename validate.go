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

import "fmt"

// SwitchSpec is one declarative switch entry fed to BuildForest: a
// name, its parent's name (empty for a root), the names of nodes
// attached directly to it (leaves only), and its link speed.
type SwitchSpec struct {
	Name      string
	Parent    string // empty => root
	Nodes     []string
	LinkSpeed uint32
}

// TopoSpec is the in-memory configuration BuildForest validates into
// a Forest. It stands in for the configuration-file format that is
// out of scope for this package (spec §1): something upstream already
// parsed switches.conf/topology.conf (or equivalent) into this shape
// before handing it to the Validator contract.
type TopoSpec struct {
	Switches []SwitchSpec
}

// Validator builds (or rebuilds) a Forest from an opaque configuration
// handle, establishing the invariants of spec §3. BuildForest is the
// concrete implementation this package ships; it is not the
// configuration-file parser, which remains an external concern.
type Validator interface {
	Validate(nodeDir NodeDirectory, hostlist HostlistCodec) (*Forest, error)
}

// topoSpecValidator adapts a TopoSpec value into a Validator.
type topoSpecValidator struct {
	spec TopoSpec
}

// NewValidator wraps spec as a Validator.
func NewValidator(spec TopoSpec) Validator {
	return topoSpecValidator{spec: spec}
}

func (v topoSpecValidator) Validate(nodeDir NodeDirectory, hostlist HostlistCodec) (*Forest, error) {
	return BuildForest(v.spec, nodeDir, hostlist)
}

// BuildForest builds a Forest from spec, satisfying every invariant of
// spec §3. If spec has no switches, validation is a no-op: an empty
// forest with SwitchCount() == 0 (spec §4.2).
func BuildForest(spec TopoSpec, nodeDir NodeDirectory, hostlist HostlistCodec) (*Forest, error) {
	f := &Forest{nodeWidth: nodeDir.Count(), nodeDir: nodeDir, hostlist: hostlist}
	if len(spec.Switches) == 0 {
		return f, nil
	}

	byName := make(map[string]int, len(spec.Switches))
	for _, ss := range spec.Switches {
		if _, dup := byName[ss.Name]; dup {
			return &Forest{nodeDir: nodeDir, hostlist: hostlist}, fmt.Errorf("%w: duplicate switch name %q", ErrConfigInvalid, ss.Name)
		}
		idx := len(f.Switches)
		byName[ss.Name] = idx
		f.Switches = append(f.Switches, &Switch{
			Name:      ss.Name,
			Parent:    NoParent,
			NodeBitmap: NewNodeBitmap(f.nodeWidth),
			LinkSpeed: ss.LinkSpeed,
		})
	}

	roots := 0
	for i, ss := range spec.Switches {
		if ss.Parent == "" {
			roots++
			continue
		}
		pIdx, ok := byName[ss.Parent]
		if !ok {
			return &Forest{nodeDir: nodeDir, hostlist: hostlist}, fmt.Errorf("%w: %s names unknown parent %q", ErrConfigInvalid, ss.Name, ss.Parent)
		}
		f.Switches[i].Parent = pIdx
		f.Switches[pIdx].Children = append(f.Switches[pIdx].Children, i)
	}
	if roots == 0 {
		return &Forest{nodeDir: nodeDir, hostlist: hostlist}, fmt.Errorf("%w: no root switch (every switch names a parent)", ErrConfigInvalid)
	}

	// Attach directly-configured nodes to their leaves (invariant 4:
	// each node lives under exactly one leaf).
	seen := make([]bool, nodeDir.Count())
	for i, ss := range spec.Switches {
		if len(ss.Nodes) == 0 {
			continue
		}
		if len(f.Switches[i].Children) != 0 {
			return &Forest{nodeDir: nodeDir, hostlist: hostlist}, fmt.Errorf("%w: %s has both nodes and child switches", ErrConfigInvalid, ss.Name)
		}
		for _, name := range ss.Nodes {
			idx, ok := nodeDir.ByName(name)
			if !ok {
				return &Forest{nodeDir: nodeDir, hostlist: hostlist}, fmt.Errorf("%w: %s names unknown node %q", ErrConfigInvalid, ss.Name, name)
			}
			if seen[idx] {
				return &Forest{nodeDir: nodeDir, hostlist: hostlist}, fmt.Errorf("%w: node %q attached under more than one leaf", ErrConfigInvalid, name)
			}
			seen[idx] = true
			f.Switches[i].NodeBitmap.Set(idx)
		}
	}

	// Levels: a leaf has level 0; an interior switch's level is one
	// more than the max level among its children (spec §3: "at least
	// one child has level exactly L-1").
	levels := make([]int, len(f.Switches))
	var levelOf func(i int) int
	visiting := make([]bool, len(f.Switches))
	levelOf = func(i int) int {
		if levels[i] != 0 || len(f.Switches[i].Children) == 0 {
			return levels[i]
		}
		if visiting[i] {
			fatalf("swtree: cycle detected in switch table at %s", f.Switches[i].Name)
		}
		visiting[i] = true
		max := 0
		for _, c := range f.Switches[i].Children {
			if lv := levelOf(c); lv+1 > max {
				max = lv + 1
			}
		}
		visiting[i] = false
		levels[i] = max
		return max
	}
	maxLevel := 0
	for i := range f.Switches {
		lv := levelOf(i)
		f.Switches[i].Level = lv
		if lv > maxLevel {
			maxLevel = lv
		}
	}
	f.SwitchLevels = maxLevel

	// Descendants: transitive children in a stable pre-order traversal.
	var collectDesc func(i int) []int
	collectDesc = func(i int) []int {
		var out []int
		for _, c := range f.Switches[i].Children {
			out = append(out, c)
			out = append(out, collectDesc(c)...)
		}
		return out
	}
	for i := range f.Switches {
		f.Switches[i].Descendants = collectDesc(i)
	}

	// node_bitmap for interior switches: union over children
	// (invariant 2), computed bottom-up.
	var union func(i int)
	union = func(i int) {
		s := f.Switches[i]
		if len(s.Children) == 0 {
			return
		}
		for _, c := range s.Children {
			union(c)
			s.NodeBitmap.Or(f.Switches[c].NodeBitmap)
		}
	}
	for i := range f.Switches {
		if f.Switches[i].Parent == NoParent {
			union(i)
		}
	}

	for _, s := range f.Switches {
		if err := f.renderNodes(s); err != nil {
			return &Forest{nodeDir: nodeDir, hostlist: hostlist}, err
		}
		f.renderSwitches(s)
	}

	return f, nil
}
