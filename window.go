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

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Locus is a position on a chromosome, e.g., the start of an STR.
type Locus struct {
	Chrom string
	Pos   int
}

func (l Locus) String() string { return fmt.Sprintf("%s:%d", l.Chrom, l.Pos) }

// RefWindows is an immutable table of extended reference windows,
// it's built once and shared by all workers.
type RefWindows struct {
	windows map[Locus]string
}

// NewRefWindows builds a table from a map of loci to reference windows.
// The map is copied, and all windows are checked.
func NewRefWindows(windows map[Locus]string) (*RefWindows, error) {
	m := make(map[Locus]string, len(windows))
	for l, w := range windows {
		for i := 0; i < len(w); i++ {
			if base2idx[w[i]] < 0 {
				return nil, fmt.Errorf("reference window of %s: %w",
					l, &SymbolError{Seq: 2, Pos: i, Base: w[i]})
			}
		}
		m[l] = w
	}
	return &RefWindows{windows: m}, nil
}

// Len returns the number of windows.
func (rw *RefWindows) Len() int { return len(rw.windows) }

// Window returns the reference window of a locus.
func (rw *RefWindows) Window(l Locus) (string, bool) {
	w, ok := rw.windows[l]
	return w, ok
}

// Loci returns all loci, sorted by chromosome and position.
func (rw *RefWindows) Loci() []Locus {
	loci := maps.Keys(rw.windows)
	slices.SortFunc(loci, func(a, b Locus) int {
		if a.Chrom != b.Chrom {
			if a.Chrom < b.Chrom {
				return -1
			}
			return 1
		}
		return a.Pos - b.Pos
	})
	return loci
}

// Realign aligns a read against the reference window of a locus.
func (algn *Aligner) Realign(rw *RefWindows, l Locus, read []byte) (*AlignmentResult, error) {
	w, ok := rw.windows[l]
	if !ok {
		return nil, fmt.Errorf("nwalign: no reference window for locus %s", l)
	}
	return algn.Align(read, []byte(w))
}
