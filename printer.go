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
	"log"
	"os"
	"strconv"
	"strings"
)

// Printer formats snapshot records as human-readable lines (spec
// §4.9). truncateLen is captured once at construction time rather
// than read from the environment on every call (Design Notes:
// "treat as an injected configuration value at printer construction,
// not a read at every call site").
type Printer struct {
	truncateLen int // 0 means unlimited
}

// NewPrinter builds a Printer, reading SLURM_TOPO_LEN once.
func NewPrinter() Printer {
	p := Printer{}
	if v := os.Getenv("SLURM_TOPO_LEN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.truncateLen = n
		}
	}
	return p
}

// NewPrinterWithLimit builds a Printer with an explicit truncation
// length (0 means unlimited), bypassing the environment.
func NewPrinterWithLimit(truncateLen int) Printer {
	return Printer{truncateLen: truncateLen}
}

// Print renders every record in records as one line:
// "SwitchName=<n> Level=<l> LinkSpeed=<s>", with " Nodes=<n>" and
// " Switches=<s>" appended when non-empty.
func (p Printer) Print(records []SnapshotRecord) string {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(p.formatRecord(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// PrintFiltered renders only the records matching unit (exact name
// match, if non-empty) and nodeQuery (the record's Nodes must be a
// superset of the query hostlist, if non-empty). Zero matches returns
// ErrNoMatch, which is a descriptive result, not a failure (spec
// §4.9).
func (p Printer) PrintFiltered(records []SnapshotRecord, unit, nodeQuery string, dir NodeDirectory, hostlist HostlistCodec) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("swtree: no topology information available")
	}

	var queryBM NodeBitmap
	haveQuery := nodeQuery != ""
	if haveQuery {
		bm, err := hostlist.Parse(nodeQuery, dir)
		if err != nil {
			return "", err
		}
		queryBM = bm
	}

	var sb strings.Builder
	matches := 0
	for _, r := range records {
		if unit != "" && r.Name != unit {
			continue
		}
		if haveQuery {
			recBM, err := hostlist.Parse(r.Nodes, dir)
			if err != nil {
				return "", err
			}
			if !recBM.IsSuperset(queryBM) {
				continue
			}
		}
		sb.WriteString(p.formatRecord(r))
		sb.WriteByte('\n')
		matches++
	}
	if matches == 0 {
		return "", ErrNoMatch
	}
	return sb.String(), nil
}

func (p Printer) formatRecord(r SnapshotRecord) string {
	line := fmt.Sprintf("SwitchName=%s Level=%d LinkSpeed=%d", r.Name, r.Level, r.LinkSpeed)
	if r.Nodes != "" {
		line += " Nodes=" + r.Nodes
	}
	if r.Switches != "" {
		line += " Switches=" + r.Switches
	}
	if p.truncateLen > 0 && len(line) > p.truncateLen {
		line = line[:p.truncateLen]
	}
	return line
}

// stdLogger is a trivial standard-library-backed Logger (collab.go)
// for callers that don't supply their own; there is no logging
// library anywhere in the retrieval pack to ground a richer one on.
type stdLogger struct {
	debug bool
}

// NewStdLogger returns a Logger backed by the standard library's log
// package. Debugf is a no-op unless debug is true.
func NewStdLogger(debug bool) Logger {
	return stdLogger{debug: debug}
}

func (l stdLogger) Debugf(format string, args ...any) {
	if l.debug {
		log.Printf("[debug] "+format, args...)
	}
}

func (l stdLogger) Errorf(format string, args ...any) {
	log.Printf("[error] "+format, args...)
}
