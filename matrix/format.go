// SPDX-License-Identifier: MIT

// Package matrix - human-readable rendering.
//
// Format:
//   - one row per line: "[1, 2]\n[3, 4]\n"; String, %v and %s use %v per element.
//   - %+v adds a "Dense[r×c]" header line and formats elements with %+v.
//   - any other verb, with its flags, width and precision, is applied to each
//     element: %q quotes strings, %05.1f pads floats.
//   - an empty matrix renders as "" (%+v: header only); nil as "<nil>".

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowEnd   = "]"
	_fmtNewline  = "\n"
	_fmtSep      = ", "
	_fmtElem     = "%v"
	_fmtNil      = "<nil>"
	_fmtShapeHdr = "Dense[%d×%d]\n"
)

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer  = (*Dense[int])(nil)
	_ fmt.Formatter = (*Dense[int])(nil)
	_ fmt.Stringer  = View[int]{}
)

// String renders the matrix row by row for diagnostics.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	if m == nil {
		return _fmtNil
	}
	var b strings.Builder
	m.writeRows(&b, _fmtElem)

	return b.String()
}

// Format implements fmt.Formatter. The row layout is fixed; the verb and its
// flags are forwarded to every element, except %s, which renders elements
// with %v so String and %s agree for any T.
func (m *Dense[T]) Format(f fmt.State, verb rune) {
	if m == nil {
		_, _ = f.Write([]byte(_fmtNil))
		return
	}
	var b strings.Builder
	if verb == 'v' && f.Flag('+') {
		fmt.Fprintf(&b, _fmtShapeHdr, m.r, m.c)
	}
	elemFmt := fmt.FormatString(f, verb)
	if verb == 's' {
		elemFmt = _fmtElem
	}
	m.writeRows(&b, elemFmt)
	_, _ = f.Write([]byte(b.String()))
}

func (m *Dense[T]) writeRows(b *strings.Builder, elemFmt string) {
	for i := 0; i < m.r; i++ {
		writeRow(b, m.data[i*m.c:(i+1)*m.c], elemFmt)
		b.WriteString(_fmtNewline)
	}
}
