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
	"sync"
)

// AlignmentResult represent a AlignmentResult structure.
type AlignmentResult struct {
	Q []byte // aligned query (seq 1), '-' for gaps
	T []byte // aligned target (seq 2), '-' for gaps

	Score int // Alignment score

	CIGAR *CIGAR

	// Stats of all alignment columns, including free end gaps.
	AlignLen   uint32
	Matches    uint32
	Mismatches uint32
	Gaps       uint32
	GapRegions uint32
}

// RecycleAlignmentResult recycles the CIGAR of an AlignmentResult.
// The result should not be used after that.
func RecycleAlignmentResult(r *AlignmentResult) {
	if r != nil {
		RecycleCIGAR(r.CIGAR)
		r.CIGAR = nil
	}
}

// countGaps fills Gaps and GapRegions from the processed CIGAR.
func (r *AlignmentResult) countGaps() {
	r.Gaps, r.GapRegions = 0, 0
	for _, op := range r.CIGAR.Ops {
		if op.Op == OpInsertion || op.Op == OpDeletion {
			r.Gaps += op.N
			r.GapRegions++
		}
	}
}

// Identity returns the percentage of identical columns.
func (r *AlignmentResult) Identity() float64 {
	if r.AlignLen == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.AlignLen) * 100
}

// AlignmentText returns the formated alignment text for Query, Alignment, and Target.
// Do not forget to recycle them with RecycleAlignmentText().
func (r *AlignmentResult) AlignmentText() (*[]byte, *[]byte, *[]byte) {
	Q := poolBytes.Get().(*[]byte)
	A := poolBytes.Get().(*[]byte)
	T := poolBytes.Get().(*[]byte)

	*Q = append(*Q, r.Q...)
	*T = append(*T, r.T...)
	for i, b := range r.Q {
		if b != '-' && b == r.T[i] {
			*A = append(*A, '|')
		} else {
			*A = append(*A, ' ')
		}
	}

	return Q, A, T
}

var poolBytes = &sync.Pool{New: func() interface{} {
	buf := make([]byte, 0, 1024)
	return &buf
}}

// RecycleAlignmentText recycle alignment text.
func RecycleAlignmentText(Q, A, T *[]byte) {
	if Q != nil {
		*Q = (*Q)[:0]
		poolBytes.Put(Q)
	}
	if A != nil {
		*A = (*A)[:0]
		poolBytes.Put(A)
	}
	if T != nil {
		*T = (*T)[:0]
		poolBytes.Put(T)
	}
}
