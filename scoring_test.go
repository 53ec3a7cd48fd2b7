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
	"errors"
	"testing"
)

func TestNewScoring(t *testing.T) {
	tests := []struct {
		match, mismatch, gapOpen, gapExt int
		ok                               bool
	}{
		{2, -2, 6, 0, true},
		{2, -2, 6, 6, true},
		{1, -3, 5, 2, true},
		{2, 2, 6, 0, false},  // match == mismatch
		{-2, 2, 6, 0, false}, // match < mismatch
		{2, -2, 1, 2, false}, // open < extension
		{2, -2, 6, -1, false},
		{2, -2, -1, -2, false},
	}

	for _, c := range tests {
		s, err := NewScoring(c.match, c.mismatch, c.gapOpen, c.gapExt)
		if c.ok {
			if err != nil {
				t.Errorf("%d %d %d %d: unexpected error: %s", c.match, c.mismatch, c.gapOpen, c.gapExt, err)
			} else if s.GapOpen != c.gapOpen || s.GapExt != c.gapExt {
				t.Errorf("%d %d %d %d: parameters not kept", c.match, c.mismatch, c.gapOpen, c.gapExt)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidScoring) {
			t.Errorf("%d %d %d %d: expected ErrInvalidScoring, returned %v", c.match, c.mismatch, c.gapOpen, c.gapExt, err)
		}
	}
}

func TestScoringSub(t *testing.T) {
	s, err := NewScoring(5, -4, 10, 1)
	if err != nil {
		t.Fatal(err)
	}

	bases := []byte("ACGT")
	for _, a := range bases {
		for _, b := range bases {
			v, err := s.Sub(a, b)
			if err != nil {
				t.Fatal(err)
			}
			expected := -4
			if a == b {
				expected = 5
			}
			if v != expected {
				t.Errorf("%c-%c: expected %d, returned %d", a, b, expected, v)
			}
			if w, _ := s.Sub(b, a); w != v {
				t.Errorf("%c-%c: the table is not symmetric", a, b)
			}
		}
	}

	for _, pair := range [][2]byte{{'A', 'N'}, {'n', 'A'}, {'a', 'c'}, {'U', 'T'}} {
		if _, err = s.Sub(pair[0], pair[1]); !errors.Is(err, ErrInvalidSymbol) {
			t.Errorf("%c-%c: expected ErrInvalidSymbol, returned %v", pair[0], pair[1], err)
		}
	}

	if s.Gap(false) != 10 || s.Gap(true) != 1 {
		t.Errorf("unexpected gap penalties: open %d, extension %d", s.Gap(false), s.Gap(true))
	}
}

func TestDefaultScoring(t *testing.T) {
	if err := DefaultScoring.Validate(); err != nil {
		t.Fatal(err)
	}
	if v, _ := DefaultScoring.Sub('G', 'G'); v != 2 {
		t.Errorf("G-G: expected 2, returned %d", v)
	}
	if v, _ := DefaultScoring.Sub('G', 'C'); v != -2 {
		t.Errorf("G-C: expected -2, returned %d", v)
	}

	algn, err := NewWithScoring(&Scoring{Match: 1, Mismatch: -1, GapOpen: 3, GapExt: 1})
	if err != nil {
		t.Fatal(err)
	}
	if s := algn.Scoring(); s.Match != 1 || s.GapOpen != 3 {
		t.Errorf("unexpected scoring: %+v", s)
	}
}

func TestScoringSubUnbuilt(t *testing.T) {
	lit := &Scoring{Match: 5, Mismatch: -4, GapOpen: 10, GapExt: 1}

	changed := DefaultScoring
	changed.Match = 5
	changed.Mismatch = -4

	for _, s := range []*Scoring{lit, &changed} {
		if v, err := s.Sub('A', 'A'); err != nil || v != 5 {
			t.Errorf("%+v: A-A: expected 5, returned %d, %v", *s, v, err)
		}
		if v, err := s.Sub('A', 'G'); err != nil || v != -4 {
			t.Errorf("%+v: A-G: expected -4, returned %d, %v", *s, v, err)
		}
	}

	if v, _ := DefaultScoring.Sub('A', 'A'); v != 2 {
		t.Errorf("DefaultScoring changed by a copy: A-A: %d", v)
	}
}

func TestNilScoring(t *testing.T) {
	var s *Scoring
	if err := s.Validate(); !errors.Is(err, ErrInvalidScoring) {
		t.Errorf("Validate: expected ErrInvalidScoring, returned %v", err)
	}
	if _, err := NewWithScoring(nil); !errors.Is(err, ErrInvalidScoring) {
		t.Errorf("NewWithScoring: expected ErrInvalidScoring, returned %v", err)
	}
	if r, err := Align([]byte("ACGT"), []byte("ACGT"), nil); r != nil || !errors.Is(err, ErrInvalidScoring) {
		t.Errorf("Align: expected ErrInvalidScoring, returned %v", err)
	}
}
