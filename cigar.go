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
	"bytes"
	"fmt"
	"strconv"
	"sync"

	"github.com/biogo/hts/sam"
)

// CIGAR is a run-length encoded list of alignment operations.
//
// Records are appended in backtrace order, i.e., from the end of the
// alignment to the beginning. They are reversed and merged
// the first time the CIGAR is read.
type CIGAR struct {
	Ops []*CIGARRecord

	processed bool
}

// CIGARRecord records the operation and the number.
type CIGARRecord struct {
	N  uint32
	Op byte
}

// NewCIGAR returns a new CIGAR from the object pool.
func NewCIGAR() *CIGAR {
	cigar := poolCIGAR.Get().(*CIGAR)
	cigar.reset()
	return cigar
}

// reset resets a CIGAR.
func (cigar *CIGAR) reset() {
	for _, r := range cigar.Ops {
		poolCIGARRecord.Put(r)
	}
	cigar.Ops = cigar.Ops[:0]
	cigar.processed = false
}

// RecycleCIGAR recycles a CIGAR object.
func RecycleCIGAR(cigar *CIGAR) {
	if cigar != nil {
		cigar.reset()
		poolCIGAR.Put(cigar)
	}
}

// object pool of a CIGAR.
var poolCIGAR = &sync.Pool{New: func() interface{} {
	cigar := CIGAR{
		Ops: make([]*CIGARRecord, 0, 128),
	}
	return &cigar
}}

// object pool of CIGARRecord.
var poolCIGARRecord = &sync.Pool{New: func() interface{} {
	return &CIGARRecord{}
}}

// CompressTrace compresses a raw trace with one operation per alignment column,
// e.g., "MMMMIMM" -> 4M1I2M.
func CompressTrace(trace []byte) *CIGAR {
	cigar := NewCIGAR()
	for i := len(trace) - 1; i >= 0; i-- {
		cigar.Add(trace[i])
	}
	cigar.process()
	return cigar
}

// Add adds a new record in backtrace.
func (cigar *CIGAR) Add(op byte) {
	cigar.AddN(op, 1)
}

// AddN adds a new record in backtrace and set its number as n.
func (cigar *CIGAR) AddN(op byte, n uint32) {
	r := poolCIGARRecord.Get().(*CIGARRecord)
	r.Op = op
	r.N = n
	cigar.Ops = append(cigar.Ops, r)
}

// Update updates the last record.
func (cigar *CIGAR) Update(n uint32) {
	l := len(cigar.Ops)
	if l > 0 {
		cigar.Ops[l-1].N += n
	}
}

// process reverses the records and merges adjacent ones of the same type.
func (cigar *CIGAR) process() {
	if cigar.processed {
		return
	}
	cigar.processed = true

	s := &cigar.Ops
	if len(*s) == 0 {
		return
	}

	// reverse the order of all operations.
	var i, j int
	for i, j = 0, len(*s)-1; i < j; i, j = i+1, j-1 {
		(*s)[i], (*s)[j] = (*s)[j], (*s)[i]
	}

	// merge operations of the same type.
	j = 0
	for i = 1; i < len(*s); i++ {
		if (*s)[i].Op == (*s)[j].Op {
			(*s)[j].N += (*s)[i].N
			poolCIGARRecord.Put((*s)[i])
			continue
		}
		j++
		(*s)[j] = (*s)[i]
	}
	*s = (*s)[:j+1]
}

// Len returns the sum of all run lengths, i.e., the number of alignment columns.
func (cigar *CIGAR) Len() int {
	cigar.process()
	var n int
	for _, op := range cigar.Ops {
		n += int(op.N)
	}
	return n
}

// String returns the CIGAR string.
func (cigar *CIGAR) String() string {
	cigar.process()
	buf := poolBytesBuffer.Get().(*bytes.Buffer)
	buf.Reset()

	for _, op := range cigar.Ops {
		buf.WriteString(strconv.Itoa(int(op.N)))
		buf.WriteByte(op.Op)
	}

	text := buf.String()
	poolBytesBuffer.Put(buf)
	return text
}

// SAM converts the CIGAR to a sam.Cigar, so it can be used in SAM/BAM records.
func (cigar *CIGAR) SAM() (sam.Cigar, error) {
	cigar.process()
	c := make(sam.Cigar, 0, len(cigar.Ops))
	var t sam.CigarOpType
	for _, op := range cigar.Ops {
		switch op.Op {
		case OpMatch:
			t = sam.CigarMatch
		case OpInsertion:
			t = sam.CigarInsertion
		case OpDeletion:
			t = sam.CigarDeletion
		default:
			return nil, fmt.Errorf("nwalign: unknown CIGAR operation: %q", op.Op)
		}
		c = append(c, sam.NewCigarOp(t, int(op.N)))
	}
	return c, nil
}

var poolBytesBuffer = &sync.Pool{New: func() interface{} {
	buf := make([]byte, 1024)
	return bytes.NewBuffer(buf)
}}
