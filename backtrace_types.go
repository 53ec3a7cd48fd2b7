// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package nwalign

// trace is a traceback pointer, it records the previous cell
// and the matrix the previous cell belongs to.
type trace uint8

const (
	traceStart trace = iota // (0, 0)
	traceDiagM              // diagonal, from M
	traceDiagI              // diagonal, from I
	traceLeftM              // left, from M (gap open)
	traceLeftI              // left, from I (gap extension)
	traceUpM                // up, from M (gap open)
	traceUpI                // up, from I (gap extension)
)

// fromM tells if the previous cell is in M.
func (t trace) fromM() bool {
	return t == traceDiagM || t == traceLeftM || t == traceUpM
}

// CIGAR operations in the raw trace.
const (
	OpMatch     byte = 'M' // match or mismatch
	OpInsertion byte = 'I' // gap in the target (seq 2)
	OpDeletion  byte = 'D' // gap in the query (seq 1)
)

var traceOps []byte = []byte{'.', OpMatch, OpMatch, OpInsertion, OpInsertion, OpDeletion, OpDeletion} // for backtrace

var traceArrows []rune = []rune{'⊕', '⬊', '⬂', '⟼', '🠦', '↧', '🠧'} // for visualization

// for showing pointers.
func trace2str(t trace) string {
	switch t {
	case traceStart:
		return "Start"
	case traceDiagM:
		return "Diag.M"
	case traceDiagI:
		return "Diag.I"
	case traceLeftM:
		return "Left.M"
	case traceLeftI:
		return "Left.I"
	case traceUpM:
		return "Up.M"
	case traceUpI:
		return "Up.I"
	default:
		return "N/A"
	}
}

// String is used in test messages and the matrix listing.
func (t trace) String() string { return trace2str(t) }
