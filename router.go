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
	"math"
	"sync"
)

// ForestInitializer realizes the single process-wide, mutex-guarded
// one-shot build spec §5 requires of the Router: the first caller to
// need a forest builds it, and every other caller observes the
// already-built result instead of racing to build their own. It is a
// plain value a process constructs once and shares, in the shape of
// the teacher's GetKZGConfig lazy singleton (config.go), rather than
// module-level mutable state (Design Notes).
type ForestInitializer struct {
	mu     sync.Mutex
	forest *Forest
	build  func() (*Forest, error)
}

// NewForestInitializer wraps build as a one-shot initializer.
func NewForestInitializer(build func() (*Forest, error)) *ForestInitializer {
	return &ForestInitializer{build: build}
}

// Get returns the shared forest, building it on the first call and
// blocking concurrent callers until that build completes. If running
// inside a long-lived controller and the built forest is unexpectedly
// empty, that is a Fatal programming error (spec §5), not a
// recoverable condition.
func (fi *ForestInitializer) Get(fatalOnEmpty bool) (*Forest, error) {
	fi.mu.Lock()
	defer fi.mu.Unlock()
	if fi.forest != nil {
		if fatalOnEmpty && fi.forest.Empty() {
			fatalf("swtree: forest unexpectedly empty inside controller process")
		}
		return fi.forest, nil
	}
	f, err := fi.build()
	if err != nil {
		return nil, err
	}
	fi.forest = f
	if fatalOnEmpty && f.Empty() {
		fatalf("swtree: forest unexpectedly empty inside controller process")
	}
	return f, nil
}

// SplitHostlist splits destination (a hostlist expression) into
// per-subtree sub-hostlists that mirror the fabric, and estimates the
// tree-broadcast fan-out depth (spec §4.7).
func (f *Forest) SplitHostlist(destination string, treeWidth uint, flags RouteFlags, splitter TreewidthSplitter) (sublists []string, depth int, err error) {
	if treeWidth < 2 {
		treeWidth = 2
	}

	// Step 1: short-circuit when topology-aware routing is disabled.
	if !flags.TopologyAware {
		return splitter.Split(destination, treeWidth, f.nodeDir)
	}

	// Step 2: materialize D as a bitmap. A failure here is a
	// programmer-contract violation (spec §4.7 Failures), not a
	// recoverable condition.
	d, perr := f.hostlist.Parse(destination, f.nodeDir)
	if perr != nil {
		fatalf("swtree: router: failed to build bitmap from hostlist %q: %v", destination, perr)
	}

	// Step 3: seed switch set.
	s := newSwitchBits(uint(len(f.Switches)))
	depth0 := 0
	for _, leaf := range f.leafIndices() {
		overlap := f.Switches[leaf].NodeBitmap.OverlapCount(d)
		if overlap == 0 {
			continue
		}
		s.set(uint(leaf))
		if ld := leafBroadcastDepth(overlap, treeWidth); ld > depth0 {
			depth0 = ld
		}
	}

	// Step 4: merge upward, level by level.
	upper := 0
	for level := 1; level <= f.SwitchLevels && s.count() >= 2; level++ {
		// Iterate a snapshot of this level's switch indices: step 4
		// must only consider switches at the current level as
		// candidate merge points, and a switch newly set at this
		// level must not be revisited within the same pass (Design
		// Notes, open question 1).
		var atLevel []int
		for i, sw := range f.Switches {
			if sw.Level == level {
				atLevel = append(atLevel, i)
			}
		}
		for _, si := range atLevel {
			if s.count() < 2 {
				break
			}
			sw := f.Switches[si]
			var inSet []int
			for _, desc := range sw.Descendants {
				if s.test(uint(desc)) {
					inSet = append(inSet, desc)
				}
			}
			if len(inSet) < 2 {
				continue
			}
			for _, desc := range inSet {
				s.clear(uint(desc))
			}
			s.set(uint(si))
			if level > upper {
				upper = level
			}
		}
	}

	depth = depth0 + upper

	// Step 6: degenerate case - exactly one switch remains, it's a
	// leaf, and D is fully contained in it.
	if idx := soleMember(s); idx >= 0 && f.Switches[idx].IsLeaf() && f.Switches[idx].NodeBitmap.IsSuperset(d) {
		return splitter.Split(destination, treeWidth, f.nodeDir)
	}

	// Step 7: subtree split, in ascending switch-table index order.
	remaining := d.Copy()
	for _, si := range s.indices() {
		sw := f.Switches[si]
		for _, c := range sw.Children {
			child := f.Switches[c]
			fset := child.NodeBitmap.Copy()
			fset.And(remaining)
			if fset.Count() == 0 {
				continue
			}
			rendered, rerr := f.hostlist.Render(fset, f.nodeDir)
			if rerr != nil {
				fatalf("swtree: router: failed to render sub-hostlist: %v", rerr)
			}
			sublists = append(sublists, rendered)
			remaining.AndNot(fset)
			if remaining.Count() == 0 {
				break
			}
		}
		if remaining.Count() == 0 {
			break
		}
	}

	// Step 8: orphans - nodes in D unreachable through any marked
	// subtree, emitted as singletons in ascending index order.
	remaining.Visit(func(i uint) bool {
		rec, ok := f.nodeDir.ByIndex(i)
		name := ""
		if ok {
			name = rec.Name
		}
		sublists = append(sublists, name)
		return true
	})

	return sublists, depth, nil
}

// leafBroadcastDepth computes ⌈log_tw(count*(tw-1)+1)⌉, the standard
// forward-tree depth for count destinations at fan-out tw.
func leafBroadcastDepth(count, tw uint) int {
	if count == 0 {
		return 0
	}
	x := float64(count)*float64(tw-1) + 1
	return int(math.Ceil(math.Log(x) / math.Log(float64(tw))))
}

// soleMember returns the single set index in s, or -1 if s does not
// contain exactly one member.
func soleMember(s switchBits) int {
	if s.count() != 1 {
		return -1
	}
	idx := s.indices()
	return int(idx[0])
}
