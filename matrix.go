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
	"sync"
)

// grid is a 2D matrix stored in a flat slice.
// All index arithmetic goes through At and Set.
// Rows are target (seq 2) positions, columns are query (seq 1) positions.
type grid[T any] struct {
	rows, cols int
	data       []T
}

// reset resizes the grid and zeros all cells, the underlying array is reused if possible.
func (g *grid[T]) reset(rows, cols int) {
	n := rows * cols
	if n <= cap(g.data) {
		g.data = g.data[:n]
		clear(g.data)
	} else {
		g.data = make([]T, n)
	}
	g.rows, g.cols = rows, cols
}

func (g *grid[T]) check(i, j int) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		panic(fmt.Sprintf("nwalign: cell (%d, %d) out of range of a %dx%d matrix", i, j, g.rows, g.cols))
	}
}

// At returns the value of cell (i, j).
func (g *grid[T]) At(i, j int) T {
	g.check(i, j)
	return g.data[i*g.cols+j]
}

// Set sets the value of cell (i, j).
func (g *grid[T]) Set(i, j int, v T) {
	g.check(i, j)
	g.data[i*g.cols+j] = v
}

// matrices contains the two DP matrices and their traceback matrices.
// A matrices object belongs to exactly one alignment call.
type matrices struct {
	M, I   grid[int]
	TM, TI grid[trace]

	q, t []int8 // encoded sequences
}

var poolMatrices = &sync.Pool{New: func() interface{} {
	mx := matrices{
		q: make([]int8, 0, 128),
		t: make([]int8, 0, 128),
	}
	return &mx
}}

// getMatrices returns a matrices object from the object pool.
func getMatrices() *matrices {
	return poolMatrices.Get().(*matrices)
}

// resize prepares all matrices for a query of length l1 and a target of length l2.
func (mx *matrices) resize(l1, l2 int) {
	rows, cols := l2+1, l1+1
	mx.M.reset(rows, cols)
	mx.I.reset(rows, cols)
	mx.TM.reset(rows, cols)
	mx.TI.reset(rows, cols)
}

// maxPooledCells is the largest matrix size (in cells) kept in the pool.
// Matrices of larger alignments are left to the GC.
var maxPooledCells = 1 << 22

// poolable tells if the matrices are small enough to be kept in the pool.
func (mx *matrices) poolable() bool {
	return cap(mx.M.data) <= maxPooledCells
}

// recycleMatrices returns the matrices to the pool.
func recycleMatrices(mx *matrices) {
	if mx == nil || !mx.poolable() {
		return
	}
	mx.q = mx.q[:0]
	mx.t = mx.t[:0]
	poolMatrices.Put(mx)
}
