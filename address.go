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

// NodeAddress produces the hierarchical dotted address and its
// pattern for nodeName (spec §4.5), e.g. "s0.s4.s8.node1" with pattern
// "switch.switch.switch.node".
//
// If the forest is empty, the address is just the node's own name and
// the pattern is "node" (source: topology_p_get_node_addr's
// switch_count == 0 special case).
func (f *Forest) NodeAddress(nodeName string) (address, pattern string, err error) {
	if f.Empty() {
		return nodeName, "node", nil
	}

	idx, ok := f.nodeDir.ByName(nodeName)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrNodeUnknown, nodeName)
	}

	var addr, pat string
	for level := f.SwitchLevels; level >= 0; level-- {
		var names []string
		for _, s := range f.Switches {
			if s.Level != level {
				continue
			}
			if s.NodeBitmap.Test(idx) {
				names = append(names, s.Name)
			}
		}
		if len(names) > 0 {
			addr += CompressNames(names)
		}
		addr += "."
		pat += "switch."
	}
	addr += nodeName
	pat += "node"
	return addr, pat, nil
}
