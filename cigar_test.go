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
	"testing"

	"github.com/kortschak/utter"
)

func TestCompressTrace(t *testing.T) {
	tests := []struct {
		trace string
		cigar string
	}{
		{"", ""},
		{"M", "1M"},
		{"MMMMIMM", "4M1I2M"},
		{"IDDM", "1I2D1M"},
		{"MMMMMMMMMMMMIMMMMM", "12M1I5M"},
		{"DDDDMMMMIIII", "4D4M4I"},
	}

	for _, c := range tests {
		cigar := CompressTrace([]byte(c.trace))
		if s := cigar.String(); s != c.cigar {
			t.Errorf("%q: expected %s, returned %s, records:\n%s", c.trace, c.cigar, s, utter.Sdump(cigar.Ops))
		}
		if cigar.Len() != len(c.trace) {
			t.Errorf("%q: run lengths sum to %d", c.trace, cigar.Len())
		}
		RecycleCIGAR(cigar)
	}
}

func TestCIGARBacktraceOrder(t *testing.T) {
	// records are added from the end of the alignment
	cigar := NewCIGAR()
	cigar.Add(OpMatch)
	cigar.Update(2)
	cigar.Add(OpInsertion)
	cigar.Add(OpMatch)
	if s := cigar.String(); s != "1M1I3M" {
		t.Errorf("expected 1M1I3M, returned %s, records:\n%s", s, utter.Sdump(cigar.Ops))
	}
	RecycleCIGAR(cigar)

	cigar = NewCIGAR()
	cigar.Add(OpMatch)
	cigar.AddN(OpMatch, 3)
	cigar.Add(OpDeletion)
	if s := cigar.String(); s != "1D4M" {
		t.Errorf("expected 1D4M, returned %s, records:\n%s", s, utter.Sdump(cigar.Ops))
	}
	if len(cigar.Ops) != 2 {
		t.Errorf("adjacent records should be merged:\n%s", utter.Sdump(cigar.Ops))
	}

	// processing twice changes nothing
	if s := cigar.String(); s != "1D4M" {
		t.Errorf("expected 1D4M, returned %s", s)
	}
	RecycleCIGAR(cigar)
}
