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
	"errors"
	"strings"
	"testing"
)

func TestPrintFormatsRecord(t *testing.T) {
	f, _, _ := scenario2(t)
	p := NewPrinterWithLimit(0)
	out := p.Print(f.Snapshot())

	if !strings.Contains(out, "SwitchName=leaf0 Level=0 LinkSpeed=0 Nodes=n[0-1]\n") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "SwitchName=spine0 Level=1 LinkSpeed=0 Nodes=n[0-3] Switches=leaf0,leaf1") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestPrintTruncates(t *testing.T) {
	f, _, _ := scenario2(t)
	p := NewPrinterWithLimit(10)
	out := p.Print(f.Snapshot())
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if len(line) > 10 {
			t.Fatalf("line %q exceeds truncation length", line)
		}
	}
}

func TestPrintFilteredByUnit(t *testing.T) {
	f, dir, hl := scenario2(t)
	p := NewPrinterWithLimit(0)

	out, err := p.PrintFiltered(f.Snapshot(), "leaf0", "", dir, hl)
	if err != nil {
		t.Fatalf("PrintFiltered: %v", err)
	}
	if !strings.Contains(out, "SwitchName=leaf0") {
		t.Fatalf("missing leaf0 in filtered output: %s", out)
	}
	if strings.Contains(out, "SwitchName=leaf1") || strings.Contains(out, "SwitchName=spine0") {
		t.Fatalf("filtered output leaked other switches: %s", out)
	}
}

func TestPrintFilteredNoMatch(t *testing.T) {
	f, dir, hl := scenario2(t)
	p := NewPrinterWithLimit(0)

	_, err := p.PrintFiltered(f.Snapshot(), "nonexistent", "", dir, hl)
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestPrintFilteredByNodeSubset(t *testing.T) {
	f, dir, hl := scenario2(t)
	p := NewPrinterWithLimit(0)

	out, err := p.PrintFiltered(f.Snapshot(), "", "n2", dir, hl)
	if err != nil {
		t.Fatalf("PrintFiltered: %v", err)
	}
	if !strings.Contains(out, "SwitchName=leaf1") || !strings.Contains(out, "SwitchName=spine0") {
		t.Fatalf("expected leaf1 and spine0 (both superset of n2): %s", out)
	}
	if strings.Contains(out, "SwitchName=leaf0") {
		t.Fatalf("leaf0 doesn't contain n2, should be filtered out: %s", out)
	}
}
