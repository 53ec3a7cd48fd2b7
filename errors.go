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
	"fmt"
)

var (
	// ErrInvalidSymbol means a sequence contains a base other than A, C, G, T.
	ErrInvalidSymbol = errors.New("nwalign: invalid symbol")

	// ErrInvalidScoring means the scoring parameters are not usable.
	ErrInvalidScoring = errors.New("nwalign: invalid scoring")
)

// SymbolError reports the position of an invalid base.
type SymbolError struct {
	Seq  int // 1 for the query, 2 for the target, 0 if unknown
	Pos  int // 0-based
	Base byte
}

func (e *SymbolError) Error() string {
	if e.Seq == 0 {
		return fmt.Sprintf("%s: %q", ErrInvalidSymbol, e.Base)
	}
	return fmt.Sprintf("%s: %q at position %d of seq %d", ErrInvalidSymbol, e.Base, e.Pos+1, e.Seq)
}

func (e *SymbolError) Unwrap() error { return ErrInvalidSymbol }
