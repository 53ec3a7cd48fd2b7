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
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/strkit/nwalign"
)

var (
	alignInFile   string
	alignNoOutput bool
	alignPprofCPU bool
	alignPprofMem bool
)

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().StringVarP(&alignInFile, "infile", "i", "", "input file of sequence pairs")
	alignCmd.Flags().BoolVarP(&alignNoOutput, "no-output", "N", false, "do not output alignment (for benchmark)")
	alignCmd.Flags().BoolVarP(&alignPprofCPU, "cpu-pprof", "p", false, "cpu pprof. go tool pprof -http=:8080 cpu.pprof")
	alignCmd.Flags().BoolVarP(&alignPprofMem, "mem-pprof", "m", false, "mem pprof. go tool pprof -http=:8080 mem.pprof")

	alignCmd.Flags().SortFlags = false
}

var alignCmd = &cobra.Command{
	Use:   "align [flags] [<query seq> <target seq>]",
	Short: "Align sequence pairs",
	Long: `Align sequence pairs

Usage:
  1. Align two sequences from the positional arguments.

        nwalign align [flags] <query seq> <target seq>

  2. Align sequence pairs from the input file.

        nwalign align [flags] -i input.txt

Input file format: a query line starting with '>' followed by a target line starting with '<'.
  Example:
  >ACGTACGTAGAGAGAGAGTTT
  <GGACGTACGTAGAGAGAGTTTCCA

Only A, C, G, and T are allowed in sequences.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// go tool pprof -http=:8080 cpu.pprof
		if alignPprofCPU {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		} else if alignPprofMem {
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		}

		algn, err := newAligner()
		if err != nil {
			return err
		}

		outfh := bufio.NewWriter(os.Stdout)
		defer outfh.Flush()

		// two sequences from positional arguments

		if alignInFile == "" {
			if len(args) != 2 {
				return fmt.Errorf("if flag -i not given, please give me two sequences")
			}
			return align2Seqs(algn, outfh, []byte(args[0]), []byte(args[1]), alignNoOutput)
		}

		// sequence pairs from a file

		fh, err := os.Open(alignInFile)
		if err != nil {
			return fmt.Errorf("failed to read file: %s: %w", alignInFile, err)
		}
		defer fh.Close()

		return alignPairs(algn, fh, outfh, alignNoOutput)
	},
}

// alignPairs aligns all sequence pairs from a reader.
func alignPairs(algn *nwalign.Aligner, r io.Reader, outfh io.Writer, noOutput bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<30)

	var q, t []byte
	var line int
	for scanner.Scan() {
		line++
		q = append(q[:0], scanner.Bytes()...)
		if len(q) == 0 {
			continue
		}
		if !scanner.Scan() {
			return fmt.Errorf("line %d: target sequence missing", line)
		}
		line++
		t = append(t[:0], scanner.Bytes()...)

		if q[0] != '>' || len(t) == 0 || t[0] != '<' {
			return fmt.Errorf("line %d: a sequence pair should be '>query' and '<target'", line-1)
		}

		if err := align2Seqs(algn, outfh, q[1:], t[1:], noOutput); err != nil {
			return fmt.Errorf("line %d: %w", line-1, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("something wrong in reading sequence pairs: %w", err)
	}
	return nil
}

func align2Seqs(algn *nwalign.Aligner, outfh io.Writer, q, t []byte, noOutput bool) error {
	r, err := algn.Align(q, t)
	if err != nil {
		return err
	}
	defer nwalign.RecycleAlignmentResult(r)

	if noOutput {
		return nil
	}

	Q, A, T := r.AlignmentText()
	fmt.Fprintf(outfh, "query   %s\n", *Q)
	fmt.Fprintf(outfh, "        %s\n", *A)
	fmt.Fprintf(outfh, "target  %s\n", *T)
	fmt.Fprintf(outfh, "cigar   %s\n", r.CIGAR.String())
	fmt.Fprintf(outfh, "score: %d, length: %d, matches: %d (%.2f%%), mismatches: %d, gaps: %d, gap regions: %d\n",
		r.Score, r.AlignLen, r.Matches, r.Identity(), r.Mismatches, r.Gaps, r.GapRegions)
	fmt.Fprintln(outfh)
	nwalign.RecycleAlignmentText(Q, A, T)

	return nil
}
