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

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/strkit/nwalign"
)

func TestAlignPairs(t *testing.T) {
	input := `>ACGTAC
<ACGTACGGGGTTT

>ACGT
<ACCT
`
	var buf bytes.Buffer
	if err := alignPairs(nwalign.New(), strings.NewReader(input), &buf, false); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, s := range []string{
		"query   ACGTAC-------\n",
		"target  ACGTACGGGGTTT\n",
		"cigar   6M7D\n",
		"score: 12, length: 13, matches: 6",
		"        || |\n",
		"cigar   4M\n",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("%q not found in:\n%s", s, out)
		}
	}

	buf.Reset()
	if err := alignPairs(nwalign.New(), strings.NewReader(input), &buf, true); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestAlignPairsInvalid(t *testing.T) {
	for _, input := range []string{
		">ACGT\n",        // target missing
		"ACGT\n<ACGT\n",  // no '>'
		">ACGT\nACGT\n",  // no '<'
		">ACGN\n<ACGT\n", // invalid base
		">ACGT\n<acgt\n", // lower case
	} {
		var buf bytes.Buffer
		if err := alignPairs(nwalign.New(), strings.NewReader(input), &buf, false); err == nil {
			t.Errorf("%q: an error is expected", input)
		}
	}
}

func TestNewAligner(t *testing.T) {
	defer viper.Reset()

	viper.Set("match", 1)
	viper.Set("mismatch", -1)
	viper.Set("gap-open", 4)
	viper.Set("gap-ext", 1)
	algn, err := newAligner()
	if err != nil {
		t.Fatal(err)
	}
	if s := algn.Scoring(); s.Match != 1 || s.Mismatch != -1 || s.GapOpen != 4 || s.GapExt != 1 {
		t.Errorf("unexpected scoring: %+v", s)
	}

	viper.Set("gap-ext", 5)
	if _, err = newAligner(); err == nil {
		t.Errorf("gap extension larger than gap open should be rejected")
	}
}

func TestBindScoringFlags(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := bindScoringFlags(fs); err != nil {
		t.Fatal(err)
	}
	if err := fs.Parse([]string{"--match", "3", "--gap-ext", "2"}); err != nil {
		t.Fatal(err)
	}

	if v := viper.GetInt("match"); v != 3 {
		t.Errorf("match: expected 3, returned %d", v)
	}
	if v := viper.GetInt("gap-ext"); v != 2 {
		t.Errorf("gap-ext: expected 2, returned %d", v)
	}
	if v := viper.GetInt("gap-open"); v != nwalign.DefaultScoring.GapOpen {
		t.Errorf("gap-open: expected the default %d, returned %d", nwalign.DefaultScoring.GapOpen, v)
	}

	algn, err := newAligner()
	if err != nil {
		t.Fatal(err)
	}
	if s := algn.Scoring(); s.Match != 3 || s.GapExt != 2 {
		t.Errorf("unexpected scoring: %+v", s)
	}
}
