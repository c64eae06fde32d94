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
	"github.com/bits-and-blooms/bitset"
	"github.com/prysmaticlabs/go-bitfield"
)

// NodeBitmap is a fixed-width bitmap over node indices. It backs every
// switch's node_bitmap (spec §3) and every bitmap handed across the
// query API. The zero value is not usable; construct with NewNodeBitmap.
type NodeBitmap struct {
	bits *bitset.BitSet
}

// NewNodeBitmap allocates a zeroed bitmap over [0, width) node indices.
func NewNodeBitmap(width uint) NodeBitmap {
	return NodeBitmap{bits: bitset.New(width)}
}

// Copy returns an independent copy of b.
func (b NodeBitmap) Copy() NodeBitmap {
	return NodeBitmap{bits: b.bits.Clone()}
}

// CopyInto overwrites dst's bits with b's, without reallocating dst's
// backing storage when the widths already match.
func (b NodeBitmap) CopyInto(dst NodeBitmap) {
	b.bits.CopyFull(dst.bits)
}

// Len reports the bitmap's fixed width.
func (b NodeBitmap) Len() uint {
	return b.bits.Len()
}

// Test reports whether node i is set.
func (b NodeBitmap) Test(i uint) bool {
	return b.bits.Test(i)
}

// Set sets node i.
func (b NodeBitmap) Set(i uint) {
	b.bits.Set(i)
}

// Clear clears node i.
func (b NodeBitmap) Clear(i uint) {
	b.bits.Clear(i)
}

// Count returns the population count.
func (b NodeBitmap) Count() uint {
	return b.bits.Count()
}

// OverlapCount returns |b ∩ other| without materializing the
// intersection.
func (b NodeBitmap) OverlapCount(other NodeBitmap) uint {
	return b.bits.IntersectionCardinality(other.bits)
}

// AnyOverlap reports whether b and other share any set bit.
func (b NodeBitmap) AnyOverlap(other NodeBitmap) bool {
	return b.bits.IntersectionCardinality(other.bits) > 0
}

// IsSuperset reports whether other ⊆ b.
func (b NodeBitmap) IsSuperset(other NodeBitmap) bool {
	return b.bits.IsSuperSet(other.bits)
}

// Or sets b |= other in place.
func (b NodeBitmap) Or(other NodeBitmap) {
	b.bits.InPlaceUnion(other.bits)
}

// And sets b &= other in place.
func (b NodeBitmap) And(other NodeBitmap) {
	b.bits.InPlaceIntersection(other.bits)
}

// AndNot sets b &^= other in place (b ← b \ other).
func (b NodeBitmap) AndNot(other NodeBitmap) {
	b.bits.InPlaceDifference(other.bits)
}

// FindFirstSet returns the lowest set bit index and true, or (0, false)
// if empty.
func (b NodeBitmap) FindFirstSet() (uint, bool) {
	return b.bits.NextSet(0)
}

// FindLastSet returns the highest set bit index and true, or (0, false)
// if empty.
func (b NodeBitmap) FindLastSet() (uint, bool) {
	found := false
	var last uint
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		last = i
		found = true
	}
	return last, found
}

// Visit calls fn for every set bit in ascending order, stopping early
// if fn returns false.
func (b NodeBitmap) Visit(fn func(i uint) bool) {
	for i, ok := b.bits.NextSet(0); ok; i, ok = b.bits.NextSet(i + 1) {
		if !fn(i) {
			return
		}
	}
}

// Indices returns every set bit in ascending order.
func (b NodeBitmap) Indices() []uint {
	out := make([]uint, 0, b.Count())
	b.Visit(func(i uint) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Equal reports whether b and other have identical bits and width.
func (b NodeBitmap) Equal(other NodeBitmap) bool {
	return b.bits.Equal(other.bits)
}

// switchBits is the Router's working set of switch-table indices
// (spec §4.7 steps 3-4). It is a distinct bit-width and a distinct
// domain from NodeBitmap (switch count, not node count), so it is
// backed by a separate bitfield type rather than overloading
// NodeBitmap for two unrelated index spaces.
type switchBits struct {
	bits bitfield.Bitlist
	n    uint64
}

func newSwitchBits(n uint) switchBits {
	return switchBits{bits: bitfield.NewBitlist(uint64(n)), n: uint64(n)}
}

func (s switchBits) test(i uint) bool {
	return s.bits.BitAt(uint64(i))
}

func (s switchBits) set(i uint) {
	s.bits.SetBitAt(uint64(i), true)
}

func (s switchBits) clear(i uint) {
	s.bits.SetBitAt(uint64(i), false)
}

func (s switchBits) count() uint {
	return uint(s.bits.Count())
}

// indices returns every set switch index in ascending order.
func (s switchBits) indices() []uint {
	raw := s.bits.BitIndices()
	out := make([]uint, len(raw))
	for i, v := range raw {
		out[i] = uint(v)
	}
	return out
}

func (s switchBits) firstLast() (first, last uint, ok bool) {
	idx := s.indices()
	if len(idx) == 0 {
		return 0, 0, false
	}
	return idx[0], idx[len(idx)-1], true
}
