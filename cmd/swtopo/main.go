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

// swtopo builds a small, hard-coded three-level fabric (two spines,
// four leaves, sixteen nodes), prints it, resolves one node's
// hierarchical address, and splits a broadcast across it. It exists
// to exercise swtree end to end the way a real scheduler component
// would, the way the teacher's cmd/fuzzinsertstemordered exercises
// verkle.InsertStemOrdered against its reference path.
package main

import (
	"fmt"
	"os"

	"github.com/sched-fabric/swtree"
)

func main() {
	nodeNames := make([]string, 0, 16)
	for i := 0; i < 16; i++ {
		nodeNames = append(nodeNames, fmt.Sprintf("node%d", i))
	}
	dir := swtree.NewMemNodeDirectory(nodeNames)
	hostlist := swtree.NewDefaultHostlist()

	spec := swtree.TopoSpec{
		Switches: []swtree.SwitchSpec{
			{Name: "spine0", LinkSpeed: 100000},
			{Name: "spine1", LinkSpeed: 100000},
			{Name: "leaf0", Parent: "spine0", Nodes: nodeNames[0:4], LinkSpeed: 10000},
			{Name: "leaf1", Parent: "spine0", Nodes: nodeNames[4:8], LinkSpeed: 10000},
			{Name: "leaf2", Parent: "spine1", Nodes: nodeNames[8:12], LinkSpeed: 10000},
			{Name: "leaf3", Parent: "spine1", Nodes: nodeNames[12:16], LinkSpeed: 10000},
		},
	}

	forest, err := swtree.BuildForest(spec, dir, hostlist)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build:", err)
		os.Exit(1)
	}

	printer := swtree.NewPrinterWithLimit(0)
	fmt.Print(printer.Print(forest.Snapshot()))

	addr, pattern, err := forest.NodeAddress("node5")
	if err != nil {
		fmt.Fprintln(os.Stderr, "address:", err)
		os.Exit(1)
	}
	fmt.Printf("node5 address=%s pattern=%s\n", addr, pattern)

	splitter := swtree.NewFlatTreewidthSplitter()
	sublists, depth, err := forest.SplitHostlist("node[1,4,9]", 2, swtree.RouteFlags{TopologyAware: true}, splitter)
	if err != nil {
		fmt.Fprintln(os.Stderr, "route:", err)
		os.Exit(1)
	}
	fmt.Printf("route depth=%d sublists=%v\n", depth, sublists)
}
