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
	"sort"
	"strconv"
	"strings"
)

// defaultHostlist is the concrete HostlistCodec. No hostlist library
// exists anywhere in the retrieval pack to ground this on, so it is
// implemented directly against the standard library (see DESIGN.md).
// It supports the common Slurm-style expressions this package's own
// output produces: a bare name, a comma-separated list of names, and
// a compressed "prefix[n1-n2,n3]" range expression.
type defaultHostlist struct{}

// NewDefaultHostlist returns the package's built-in HostlistCodec.
func NewDefaultHostlist() HostlistCodec { return defaultHostlist{} }

func (defaultHostlist) Parse(expr string, dir NodeDirectory) (NodeBitmap, error) {
	bm := NewNodeBitmap(dir.Count())
	if expr == "" {
		return bm, nil
	}
	names, err := expandHostlist(expr)
	if err != nil {
		return NodeBitmap{}, fmt.Errorf("swtree: parsing hostlist %q: %w", expr, err)
	}
	for _, name := range names {
		idx, ok := dir.ByName(name)
		if !ok {
			return NodeBitmap{}, fmt.Errorf("swtree: parsing hostlist %q: %w: %s", expr, ErrNodeUnknown, name)
		}
		bm.Set(idx)
	}
	return bm, nil
}

func (defaultHostlist) Render(bm NodeBitmap, dir NodeDirectory) (string, error) {
	names := make([]string, 0, bm.Count())
	var rerr error
	bm.Visit(func(i uint) bool {
		rec, ok := dir.ByIndex(i)
		if !ok {
			rerr = fmt.Errorf("swtree: rendering bitmap: %w: index %d", ErrNodeUnknown, i)
			return false
		}
		names = append(names, rec.Name)
		return true
	})
	if rerr != nil {
		return "", rerr
	}
	return CompressNames(names), nil
}

// CompressNames renders an arbitrary set of names as a compressed
// hostlist-style string, grouping names that share an alphabetic
// prefix and a fixed-width numeric suffix into "prefix[n1-n2,n3]"
// ranges, and joining distinct groups with commas. It is also used
// directly by the Addresser (spec §4.5) to compress a level's switch
// names, which is a name-set operation independent of any node
// bitmap.
func CompressNames(names []string) string {
	if len(names) == 0 {
		return ""
	}
	groups := map[string][]numSuffix{}
	prefixOf := map[string]string{}
	order := []string{}
	for _, n := range names {
		prefix, num, width, ok := splitTrailingDigits(n)
		if !ok {
			prefix, num, width = n, -1, 0
		}
		key := prefix + "\x00" + strconv.Itoa(width)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
			prefixOf[key] = prefix
		}
		groups[key] = append(groups[key], numSuffix{n: num, width: width, bare: !ok})
	}
	sort.Strings(order)

	var out []string
	for _, key := range order {
		prefix := prefixOf[key]
		items := groups[key]
		var bare bool
		nums := make([]int, 0, len(items))
		width := 0
		for _, it := range items {
			if it.bare {
				bare = true
				continue
			}
			nums = append(nums, it.n)
			if it.width > width {
				width = it.width
			}
		}
		if bare || len(nums) == 0 {
			out = append(out, prefix)
			continue
		}
		sort.Ints(nums)
		if len(nums) == 1 {
			// A lone member of its prefix group needs no brackets.
			out = append(out, prefix+padWidth(nums[0], width))
			continue
		}
		out = append(out, prefix+"["+formatRanges(nums, width)+"]")
	}
	return strings.Join(out, ",")
}

type numSuffix struct {
	n     int
	width int
	bare  bool
}

// splitTrailingDigits splits "node012" into ("node", 12, 3, true).
func splitTrailingDigits(s string) (prefix string, num int, width int, ok bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, 0, false
	}
	digits := s[i:]
	n, err := strconv.Atoi(digits)
	if err != nil {
		return s, 0, 0, false
	}
	return s[:i], n, len(digits), true
}

// formatRanges renders sorted, deduplicated numbers as comma-joined
// ranges ("1-3,7"), zero-padded to width when width > 1 and the
// rendering wouldn't lose the original digit count.
func formatRanges(nums []int, width int) string {
	var parts []string
	i := 0
	for i < len(nums) {
		j := i
		for j+1 < len(nums) && nums[j+1] == nums[j]+1 {
			j++
		}
		if j == i {
			parts = append(parts, padWidth(nums[i], width))
		} else {
			parts = append(parts, padWidth(nums[i], width)+"-"+padWidth(nums[j], width))
		}
		i = j + 1
	}
	return strings.Join(parts, ",")
}

// padWidth zero-pads n to width digits, unless width <= 1 in which
// case the original, unpadded suffix is preserved.
func padWidth(n, width int) string {
	s := strconv.Itoa(n)
	for width > 1 && len(s) < width {
		s = "0" + s
	}
	return s
}

// expandHostlist expands a "prefix[n1-n2,n3],other,prefix2[..]"
// expression, or a bare comma-separated name list, into individual
// names.
func expandHostlist(expr string) ([]string, error) {
	var out []string
	for _, term := range splitTopLevelCommas(expr) {
		if term == "" {
			continue
		}
		open := strings.IndexByte(term, '[')
		if open < 0 {
			out = append(out, term)
			continue
		}
		if !strings.HasSuffix(term, "]") {
			return nil, fmt.Errorf("unterminated range expression %q", term)
		}
		prefix := term[:open]
		inner := term[open+1 : len(term)-1]
		for _, rng := range strings.Split(inner, ",") {
			if rng == "" {
				continue
			}
			if dash := strings.IndexByte(rng, '-'); dash >= 0 {
				loStr, hiStr := rng[:dash], rng[dash+1:]
				lo, err := strconv.Atoi(loStr)
				if err != nil {
					return nil, fmt.Errorf("bad range start %q: %w", rng, err)
				}
				hi, err := strconv.Atoi(hiStr)
				if err != nil {
					return nil, fmt.Errorf("bad range end %q: %w", rng, err)
				}
				width := len(loStr)
				for n := lo; n <= hi; n++ {
					out = append(out, prefix+padInt(n, width))
				}
			} else {
				n, err := strconv.Atoi(rng)
				if err != nil {
					return nil, fmt.Errorf("bad range element %q: %w", rng, err)
				}
				out = append(out, prefix+padInt(n, len(rng)))
			}
		}
	}
	return out, nil
}

func padInt(n, width int) string {
	s := strconv.Itoa(n)
	for width > 1 && len(s) < width {
		s = "0" + s
	}
	return s
}

// splitTopLevelCommas splits on commas that are not inside a [...]
// range expression.
func splitTopLevelCommas(s string) []string {
	var out []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}
