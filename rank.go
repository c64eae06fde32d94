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

import "strings"

// rankOptInToken is the case-insensitive substring of TopologyParam
// that opts into switch-based node ranking (spec §4.4).
const rankOptInToken = "SwitchAsNodeRank"

// GenerateNodeRanking assigns each node a rank equal to the 1-based
// ordinal of the leaf it belongs to, in leaf-table order, by building
// a transient forest from spec and discarding it afterward. Nodes not
// attached to any leaf keep rank 0. If topologyParam does not contain
// the opt-in token (case-insensitive), ranking is skipped and ok is
// false.
//
// The forest it builds is used only for this ranking and is not
// returned; it never becomes the caller's live topology.
func GenerateNodeRanking(topologyParam string, spec TopoSpec, nodeDir NodeDirectory, hostlist HostlistCodec) (ranks map[uint]int, ok bool, err error) {
	if !strings.Contains(strings.ToLower(topologyParam), strings.ToLower(rankOptInToken)) {
		return nil, false, nil
	}

	f, err := BuildForest(spec, nodeDir, hostlist)
	if err != nil {
		return nil, false, err
	}
	if f.Empty() {
		return nil, false, nil
	}

	ranks = make(map[uint]int, nodeDir.Count())
	switchRank := 1
	for _, leaf := range f.leafIndices() {
		f.Switches[leaf].NodeBitmap.Visit(func(n uint) bool {
			ranks[n] = switchRank
			return true
		})
		switchRank++
	}
	return ranks, true, nil
}
