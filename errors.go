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
	"fmt"
)

// Sentinel errors for the recoverable error kinds of spec §7. Wrap
// with fmt.Errorf("...: %w", errX) at call sites to add context.
var (
	// ErrConfigInvalid means the Validator failed; the forest is left empty.
	ErrConfigInvalid = errors.New("swtree: invalid topology configuration")

	// ErrUnknownSwitch means a mutator unit path's first segment names
	// no existing switch and no add-target context was given.
	ErrUnknownSwitch = errors.New("swtree: unknown switch")

	// ErrNonLeafTarget means a mutator unit path resolved to a switch
	// that isn't a leaf.
	ErrNonLeafTarget = errors.New("swtree: unit path does not resolve to a leaf switch")

	// ErrNodeUnknown means the addresser could not resolve a node name.
	ErrNodeUnknown = errors.New("swtree: unknown node")

	// ErrDecode means a snapshot was truncated or malformed.
	ErrDecode = errors.New("swtree: snapshot decode error")

	// ErrUnsupportedQuery means Get was called with an unrecognized kind.
	ErrUnsupportedQuery = errors.New("swtree: unsupported query kind")

	// ErrNoMatch means Print's filter matched no switch record. It is
	// reported to the caller but is not itself a failure (spec §4.9).
	ErrNoMatch = errors.New("swtree: no topology record matches filter")
)

// fatalf reports a Fatal condition (spec §7): a router invariant
// violation or a controller-side "forest empty" where it must not be.
// These are programming-contract violations, not recoverable
// conditions, and the process is expected to abort rather than
// continue with an inconsistent forest.
func fatalf(format string, args ...any) {
	panic(newFatalError(format, args...))
}

// FatalError is the panic value raised by a Fatal condition. Callers
// embedding swtree in a long-running controller should recover at
// the outermost request boundary only to log and re-panic or exit;
// swtree itself never recovers from one.
type FatalError struct {
	msg string
}

func newFatalError(format string, args ...any) *FatalError {
	return &FatalError{msg: fmt.Sprintf(format, args...)}
}

func (e *FatalError) Error() string { return e.msg }
