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
)

// Scoring contains the substitution scores and gap penalties.
// Gap penalties are magnitudes, they are subtracted from the score.
type Scoring struct {
	Match    int
	Mismatch int
	GapOpen  int
	GapExt   int

	table [4][4]int
}

// DefaultScoring is what the STR re-alignment step uses.
// GapExt is 0: extending an opened gap is free.
var DefaultScoring = Scoring{
	Match:    2,
	Mismatch: -2,
	GapOpen:  6,
	GapExt:   0,
}

// base2idx maps A, C, G, T to 0-3, everything else to -1.
var base2idx [256]int8

func init() {
	for i := range base2idx {
		base2idx[i] = -1
	}
	base2idx['A'] = 0
	base2idx['C'] = 1
	base2idx['G'] = 2
	base2idx['T'] = 3

	DefaultScoring.build()
}

// NewScoring checks the parameters and builds the substitution table.
func NewScoring(match, mismatch, gapOpen, gapExt int) (*Scoring, error) {
	s := &Scoring{
		Match:    match,
		Mismatch: mismatch,
		GapOpen:  gapOpen,
		GapExt:   gapExt,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.build()
	return s, nil
}

// Validate checks match > mismatch and gapOpen >= gapExt >= 0.
func (s *Scoring) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: no scoring given", ErrInvalidScoring)
	}
	if s.Match <= s.Mismatch {
		return fmt.Errorf("%w: match score (%d) should be greater than mismatch score (%d)",
			ErrInvalidScoring, s.Match, s.Mismatch)
	}
	if s.GapExt < 0 {
		return fmt.Errorf("%w: gap extension penalty should be non-negative: %d",
			ErrInvalidScoring, s.GapExt)
	}
	if s.GapOpen < s.GapExt {
		return fmt.Errorf("%w: gap open penalty (%d) should not be smaller than gap extension penalty (%d)",
			ErrInvalidScoring, s.GapOpen, s.GapExt)
	}
	return nil
}

// build fills the 4x4 table used by the matrix builder, diagonal is Match.
// It must be called again after changing Match or Mismatch.
func (s *Scoring) build() {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				s.table[i][j] = s.Match
			} else {
				s.table[i][j] = s.Mismatch
			}
		}
	}
}

// Sub returns the substitution score of two bases.
// It reads Match and Mismatch directly, so it also works on a
// Scoring that is a struct literal or a modified copy.
func (s *Scoring) Sub(a, b byte) (int, error) {
	x, y := base2idx[a], base2idx[b]
	if x < 0 {
		return 0, &SymbolError{Base: a}
	}
	if y < 0 {
		return 0, &SymbolError{Base: b}
	}
	if x == y {
		return s.Match, nil
	}
	return s.Mismatch, nil
}

// Gap returns the penalty for opening or extending a gap.
func (s *Scoring) Gap(extend bool) int {
	if extend {
		return s.GapExt
	}
	return s.GapOpen
}

// encode converts a sequence to table indexes.
// which (1 for the query, 2 for the target) is only used in the error.
func encode(seq []byte, which int, codes *[]int8) error {
	*codes = (*codes)[:0]
	var c int8
	for i, b := range seq {
		c = base2idx[b]
		if c < 0 {
			return &SymbolError{Seq: which, Pos: i, Base: b}
		}
		*codes = append(*codes, c)
	}
	return nil
}
