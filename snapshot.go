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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// SnapshotRecord is one flat, wire-compatible view of a switch (spec
// §4.8): {level: u16, link_speed: u32, name, nodes, switches}.
type SnapshotRecord struct {
	Level     uint16
	LinkSpeed uint32
	Name      string
	Nodes     string
	Switches  string
}

// Snapshot returns the flat record sequence packed by PackSnapshot.
func (f *Forest) Snapshot() []SnapshotRecord {
	out := make([]SnapshotRecord, len(f.Switches))
	for i, s := range f.Switches {
		out[i] = SnapshotRecord{
			Level:     uint16(s.Level),
			LinkSpeed: s.LinkSpeed,
			Name:      s.Name,
			Nodes:     s.Nodes,
			Switches:  s.Switches,
		}
	}
	return out
}

// byteOrder is the wire contract's endianness. Field widths and this
// choice are an external contract (spec §4.8); this package must
// match it bit-for-bit, so it is not configurable.
var byteOrder = binary.BigEndian

// PackSnapshot serializes records as record_count:u32 followed by,
// for each record, level:u16, link_speed:u32, and three
// length-prefixed (u32) strings: name, nodes, switches.
//
// karalabe/ssz is not used here even though the teacher depends on
// it: that library's encoders are driven by compile-time generated
// (sszgen) object schemas for fixed consensus types, and this record
// is a free-form, ungenerated tuple of variable-length strings with
// no SSZ schema to generate from. See DESIGN.md.
func PackSnapshot(records []SnapshotRecord) []byte {
	var buf bytes.Buffer
	writeU32(&buf, uint32(len(records)))
	for _, r := range records {
		writeU16(&buf, r.Level)
		writeU32(&buf, r.LinkSpeed)
		writeString(&buf, r.Name)
		writeString(&buf, r.Nodes)
		writeString(&buf, r.Switches)
	}
	return buf.Bytes()
}

// UnpackSnapshot is PackSnapshot's exact inverse. On any truncation or
// length mismatch, the partial result is discarded and a wrapped
// ErrDecode is returned.
func UnpackSnapshot(data []byte) ([]SnapshotRecord, error) {
	r := bytes.NewReader(data)
	count, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading record_count: %v", ErrDecode, err)
	}
	out := make([]SnapshotRecord, 0, count)
	for i := uint32(0); i < count; i++ {
		rec, err := readRecord(r)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrDecode, i, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func readRecord(r *bytes.Reader) (SnapshotRecord, error) {
	level, err := readU16(r)
	if err != nil {
		return SnapshotRecord{}, err
	}
	linkSpeed, err := readU32(r)
	if err != nil {
		return SnapshotRecord{}, err
	}
	name, err := readString(r)
	if err != nil {
		return SnapshotRecord{}, err
	}
	nodes, err := readString(r)
	if err != nil {
		return SnapshotRecord{}, err
	}
	switches, err := readString(r)
	if err != nil {
		return SnapshotRecord{}, err
	}
	return SnapshotRecord{
		Level:     level,
		LinkSpeed: linkSpeed,
		Name:      name,
		Nodes:     nodes,
		Switches:  switches,
	}, nil
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	byteOrder.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	byteOrder.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeString(buf *bytes.Buffer, s string) {
	writeU32(buf, uint32(len(s)))
	buf.WriteString(s)
}

func readU16(r *bytes.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return byteOrder.Uint16(b[:]), nil
}

func readU32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return byteOrder.Uint32(b[:]), nil
}

func readString(r *bytes.Reader) (string, error) {
	n, err := readU32(r)
	if err != nil {
		return "", err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
