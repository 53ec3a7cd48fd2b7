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

import (
	"golang.org/x/exp/slices"
)

// endpoint finds the cell where the alignment ends.
//
// Both the last column and the last row are scanned for the highest score
// of M and I, starting from 0. Later cells (closer to the beginning) and I
// win ties inside one scan. The last row is chosen only if its
// maximum is strictly higher than the one of the last column.
func (algn *Aligner) endpoint(mx *matrices) (i, j int, inM bool, score int) {
	M, I := &mx.M, &mx.I
	L1, L2 := len(mx.q), len(mx.t)

	var v int

	// the last column
	var maxCol, bestI int
	for i = L2; i > 0; i-- {
		if v = M.At(i, L1); v >= maxCol {
			maxCol, bestI = v, i
		}
		if v = I.At(i, L1); v >= maxCol {
			maxCol, bestI = v, i
		}
	}

	// the last row
	var maxRow, bestJ int
	for j = L1; j > 0; j-- {
		if v = M.At(L2, j); v >= maxRow {
			maxRow, bestJ = v, j
		}
		if v = I.At(L2, j); v >= maxRow {
			maxRow, bestJ = v, j
		}
	}

	if maxRow > maxCol {
		i, j = L2, bestJ
	} else {
		i, j = bestI, L1
	}

	if M.At(i, j) >= I.At(i, j) {
		return i, j, true, M.At(i, j)
	}
	return i, j, false, I.At(i, j)
}

// backTrace walks from the endpoint to (0, 0) and builds the result.
func (algn *Aligner) backTrace(mx *matrices, q, t []byte) *AlignmentResult {
	L1, L2 := len(q), len(t)
	i, j, inM, score := algn.endpoint(mx)

	r := &AlignmentResult{
		Q:     make([]byte, 0, L1+L2),
		T:     make([]byte, 0, L1+L2),
		Score: score,
		CIGAR: NewCIGAR(),
	}

	// the unaligned suffix after the endpoint, it's not scored.
	var k int
	for k = L2; k > i; k-- {
		r.push('-', t[k-1], OpDeletion)
	}
	for k = L1; k > j; k-- {
		r.push(q[k-1], '-', OpInsertion)
	}

	var p trace
	for i > 0 || j > 0 {
		if inM {
			p = mx.TM.At(i, j)
		} else {
			p = mx.TI.At(i, j)
		}

		switch traceOps[p] {
		case OpMatch:
			r.push(q[j-1], t[i-1], OpMatch)
			i--
			j--
		case OpInsertion:
			r.push(q[j-1], '-', OpInsertion)
			j--
		case OpDeletion:
			r.push('-', t[i-1], OpDeletion)
			i--
		default: // only (0, 0) has no predecessor
			i, j = 0, 0
		}

		inM = p.fromM()
	}

	// all are collected in reverse order.
	slices.Reverse(r.Q)
	slices.Reverse(r.T)
	r.CIGAR.process()

	r.AlignLen = uint32(len(r.Q))
	r.countGaps()

	return r
}

// push adds one alignment column in backtrace.
func (r *AlignmentResult) push(qb, tb byte, op byte) {
	r.Q = append(r.Q, qb)
	r.T = append(r.T, tb)

	if op == OpMatch {
		if qb == tb {
			r.Matches++
		} else {
			r.Mismatches++
		}
	}

	n := len(r.CIGAR.Ops)
	if n > 0 && r.CIGAR.Ops[n-1].Op == op {
		r.CIGAR.Update(1)
	} else {
		r.CIGAR.Add(op)
	}
}
