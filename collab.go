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

// NodeRecord is the minimal view of a compute node this package needs
// from the external node directory (spec §6).
type NodeRecord struct {
	Index uint
	Name  string
}

// NodeDirectory is the external node directory: name/index resolution
// for compute nodes, with stable indices for the life of a forest.
// The production directory is storage-backed and out of scope here
// (spec §1); memNodeDirectory (nodedir.go) is a concrete in-memory
// implementation used by tests and the CLI.
type NodeDirectory interface {
	// ByName resolves a node name to its stable index. ok is false if
	// the name is unknown.
	ByName(name string) (idx uint, ok bool)

	// ByIndex resolves a node index to its record. ok is false if the
	// index is unknown.
	ByIndex(idx uint) (rec NodeRecord, ok bool)

	// Count returns the width to allocate node bitmaps with: one bit
	// per possible index in [0, Count).
	Count() uint
}

// HostlistCodec parses and renders compressed hostlist expressions
// (e.g. "node[1-3,7]") against node bitmaps. defaultHostlist
// (hostlist.go) is the concrete implementation; no hostlist library
// exists anywhere in the retrieval pack to ground one on instead.
type HostlistCodec interface {
	// Parse expands a hostlist expression into a bitmap over dir's
	// index space.
	Parse(expr string, dir NodeDirectory) (NodeBitmap, error)

	// Render compresses a bitmap back into a hostlist expression.
	Render(bm NodeBitmap, dir NodeDirectory) (string, error)
}

// TreewidthSplitter splits a flat hostlist into tree_width-arity
// sub-lists, ignoring topology entirely. It backs the Router's
// short-circuit (topology-aware routing disabled) and its degenerate
// single-leaf case (spec §4.7 steps 1 and 6).
type TreewidthSplitter interface {
	Split(expr string, treeWidth uint, dir NodeDirectory) (sublists []string, depth int, err error)
}

// Locker is the node-directory read/write lock the containing process
// owns (spec §5). swtree never acquires it implicitly; callers that
// need the documented "at least read-locked while any query or
// mutator runs" guarantee acquire it around their own call.
type Locker interface {
	RLock()
	RUnlock()
	Lock()
	Unlock()
}

// Logger is the per-process logging/verbosity facility (spec §6),
// consumed rather than imported: this package has no opinion on log
// formatting or sinks. NewStdLogger (printer.go) is a trivial
// standard-library-backed default for callers that don't supply one.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// RouteFlags carries the configuration flags the Router consults
// (spec §6: TopologyParam, DebugFlags.ROUTE).
type RouteFlags struct {
	// TopologyAware, when false, makes SplitHostlist delegate directly
	// to the TreewidthSplitter (spec §4.7 step 1).
	TopologyAware bool

	// Debug carries the DebugFlags.ROUTE setting. SplitHostlist does not
	// read it and does no logging of its own.
	Debug bool
}
