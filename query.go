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

// QueryKind tags the dynamic-dispatch options of Get (spec §4.10).
type QueryKind int

const (
	QueryTopologySnapshot QueryKind = iota
	QueryRecordCount
	QueryExclusiveTopologyFlag
)

// QueryResult is the tagged-variant result of Get: exactly one of its
// fields is meaningful, selected by the QueryKind passed in.
type QueryResult struct {
	Snapshot            []SnapshotRecord
	RecordCount         int
	ExclusiveTopoFlag   int
}

// GetBitmap returns a borrowed view of the named switch's node bitmap.
// The bitmap's lifetime is the forest's; callers must not retain it
// past the forest's lifetime or mutate it (spec §9: "borrowed bitmap"
// return).
func (f *Forest) GetBitmap(name string) (NodeBitmap, bool) {
	idx := f.indexByName(name)
	if idx < 0 {
		return NodeBitmap{}, false
	}
	return f.Switches[idx].NodeBitmap, true
}

// Get answers the dynamic-dispatch query of spec §4.10. An unknown
// kind surfaces ErrUnsupportedQuery rather than undefined behavior
// (Design Notes).
func (f *Forest) Get(kind QueryKind) (QueryResult, error) {
	switch kind {
	case QueryTopologySnapshot:
		return QueryResult{Snapshot: f.Snapshot()}, nil
	case QueryRecordCount:
		return QueryResult{RecordCount: f.SwitchCount()}, nil
	case QueryExclusiveTopologyFlag:
		// This plugin never supports exclusive-topology scheduling.
		return QueryResult{ExclusiveTopoFlag: 0}, nil
	default:
		return QueryResult{}, fmt.Errorf("%w: %d", ErrUnsupportedQuery, kind)
	}
}

// GetFragmentation always reports 0: a tree topology exposes no
// fragmentation metric (spec §4.10).
func (f *Forest) GetFragmentation() int { return 0 }
