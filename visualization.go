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
	"fmt"
	"io"
)

// Plot fills the matrices for a pair of sequences and plots M and I as text tables.
//
// A table cell contains the traceback symbol and the score.
// Symbols:
//
//	⊕    Start,
//	⬊    Diagonal, from M
//	⬂    Diagonal, from I
//	⟼    Left, from M (gap open, insertion)
//	🠦    Left, from I (gap extension, insertion)
//	↧    Up, from M (gap open, deletion)
//	🠧    Up, from I (gap extension, deletion)
func (algn *Aligner) Plot(q, t []byte, wtr io.Writer) error {
	mx := getMatrices()
	defer recycleMatrices(mx)

	if err := algn.prepare(mx, q, t); err != nil {
		return err
	}
	algn.fill(mx)

	fmt.Fprintf(wtr, "---------------- M ----------------\n")
	plotGrid(wtr, q, t, &mx.M, &mx.TM)
	fmt.Fprintf(wtr, "\n---------------- I ----------------\n")
	plotGrid(wtr, q, t, &mx.I, &mx.TI)

	i, j, inM, score := algn.endpoint(mx)
	name := "I"
	if inM {
		name = "M"
	}
	fmt.Fprintf(wtr, "\nend: %s(%d, %d), score: %d\n", name, i, j, score)
	return nil
}

func plotGrid(wtr io.Writer, q, t []byte, m *grid[int], tm *grid[trace]) {
	// sequence q
	fmt.Fprintf(wtr, "   \t \t   ")
	for h := range q {
		fmt.Fprintf(wtr, "\t%4d", h+1)
	}
	fmt.Fprintln(wtr)
	fmt.Fprintf(wtr, "   \t \t   ")
	for _, b := range q {
		fmt.Fprintf(wtr, "\t%4c", b)
	}
	fmt.Fprintln(wtr)

	for v := 0; v < m.rows; v++ {
		if v == 0 {
			fmt.Fprintf(wtr, "%3d\t ", v)
		} else {
			fmt.Fprintf(wtr, "%3d\t%c", v, t[v-1]) // a base in seq t
		}
		for h := 0; h < m.cols; h++ { // a row of the matrix
			fmt.Fprintf(wtr, "\t%c%3d", traceArrows[tm.At(v, h)], m.At(v, h))
		}
		fmt.Fprintln(wtr)
	}
}
