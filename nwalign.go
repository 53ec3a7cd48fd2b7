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

// Package nwalign implements global pairwise alignment of nucleotide
// sequences with affine gap penalties and free end gaps,
// as used for re-aligning reads against an extended reference window.
//
// Two score matrices are filled: M, the best score of an alignment ending
// with a match/mismatch at a cell, and I, ending with a gap. The alignment
// ends at the best cell of the last row or the last column, so the
// unaligned suffix of the longer sequence is not penalized.
package nwalign

// Aligner is the object for aligning,
// which can apply to multiple pairs of query and target sequences.
//
// An Aligner only holds the scoring parameters, all matrices are
// owned by a single Align call, so it's safe for concurrent use.
// Matrices are reused across calls, except those with more than
// 4M cells, which are released after the call.
type Aligner struct {
	s *Scoring
}

// New returns a new Aligner with the default scoring.
func New() *Aligner {
	sc := DefaultScoring
	sc.build()
	return &Aligner{s: &sc}
}

// NewWithScoring returns a new Aligner with a copy of the given scoring.
// A nil or invalid scoring gives an error wrapping ErrInvalidScoring.
func NewWithScoring(s *Scoring) (*Aligner, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sc := *s
	sc.build()
	return &Aligner{s: &sc}, nil
}

// Scoring returns the scoring parameters.
func (algn *Aligner) Scoring() Scoring {
	return *algn.s
}

// Align aligns a query (seq 1) and a target (seq 2) with the given scoring.
func Align(q, t []byte, s *Scoring) (*AlignmentResult, error) {
	algn, err := NewWithScoring(s)
	if err != nil {
		return nil, err
	}
	return algn.Align(q, t)
}

// Align performs alignment for two sequences.
// Only A, C, G, and T are allowed, otherwise an error wrapping ErrInvalidSymbol is returned.
func (algn *Aligner) Align(q, t []byte) (*AlignmentResult, error) {
	mx := getMatrices()
	defer recycleMatrices(mx)

	if err := algn.prepare(mx, q, t); err != nil {
		return nil, err
	}

	algn.fill(mx)

	return algn.backTrace(mx, q, t), nil
}

// prepare checks and encodes the two sequences, and resizes the matrices.
func (algn *Aligner) prepare(mx *matrices, q, t []byte) error {
	if err := encode(q, 1, &mx.q); err != nil {
		return err
	}
	if err := encode(t, 2, &mx.t); err != nil {
		return err
	}
	mx.resize(len(q), len(t))
	return nil
}

// fill initializes the first row and column, and fills all matrices.
func (algn *Aligner) fill(mx *matrices) {
	M, I := &mx.M, &mx.I
	TM, TI := &mx.TM, &mx.TI
	q, t := mx.q, mx.t
	L1, L2 := len(q), len(t)
	p := algn.s

	// M[0][0] = I[0][0] = 0
	TM.Set(0, 0, traceStart)
	TI.Set(0, 0, traceStart)

	// leading gaps are free in M, but not in I.
	var i, j int
	for j = 1; j <= L1; j++ {
		M.Set(0, j, 0)
		I.Set(0, j, -j*p.GapOpen)
		TM.Set(0, j, traceLeftM)
		TI.Set(0, j, traceLeftM)
	}
	for i = 1; i <= L2; i++ {
		M.Set(i, 0, 0)
		I.Set(i, 0, -i*p.GapOpen)
		TM.Set(i, 0, traceUpI)
		TI.Set(i, 0, traceUpI)
	}

	var sub int
	var d1, d2 int // diagonal
	var l1, l2 int // left
	var u1, u2 int // up
	var best int   // best gap score
	var ptr trace  // pointer of the best gap score
	for i = 1; i <= L2; i++ {
		for j = 1; j <= L1; j++ {
			sub = p.table[q[j-1]][t[i-1]]

			// M: from M first
			d1 = M.At(i-1, j-1) + sub
			d2 = I.At(i-1, j-1) + sub
			if d1 >= d2 {
				M.Set(i, j, d1)
				TM.Set(i, j, traceDiagM)
			} else {
				M.Set(i, j, d2)
				TM.Set(i, j, traceDiagI)
			}

			// I: left open > left extend > up open > up extend
			l1 = M.At(i, j-1) - p.GapOpen
			l2 = I.At(i, j-1) - p.GapExt
			u1 = M.At(i-1, j) - p.GapOpen
			u2 = I.At(i-1, j) - p.GapExt

			best, ptr = l1, traceLeftM
			if l2 > best {
				best, ptr = l2, traceLeftI
			}
			if u1 > best {
				best, ptr = u1, traceUpM
			}
			if u2 > best {
				best, ptr = u2, traceUpI
			}
			I.Set(i, j, best)
			TI.Set(i, j, ptr)
		}
	}
}
