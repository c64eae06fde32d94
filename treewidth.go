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

// flatTreewidthSplitter is a concrete TreewidthSplitter: it ignores
// topology entirely and splits a hostlist into tree_width-arity
// chunks, estimating depth with the same forward-tree formula the
// Router uses for a single contained leaf (spec §4.7's common case).
type flatTreewidthSplitter struct{}

// NewFlatTreewidthSplitter returns the package's built-in
// TreewidthSplitter.
func NewFlatTreewidthSplitter() TreewidthSplitter { return flatTreewidthSplitter{} }

func (flatTreewidthSplitter) Split(expr string, treeWidth uint, dir NodeDirectory) ([]string, int, error) {
	if treeWidth < 2 {
		treeWidth = 2
	}
	names, err := expandHostlist(expr)
	if err != nil {
		return nil, 0, fmt.Errorf("swtree: treewidth split %q: %w", expr, err)
	}
	if len(names) == 0 {
		return nil, 0, nil
	}

	var out []string
	for i := 0; i < len(names); i += int(treeWidth) {
		end := i + int(treeWidth)
		if end > len(names) {
			end = len(names)
		}
		out = append(out, CompressNames(names[i:end]))
	}
	depth := leafBroadcastDepth(uint(len(names)), treeWidth)
	return out, depth, nil
}
