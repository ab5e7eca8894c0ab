// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by NewIndex.
var (
	ErrNotPermutation = errors.New("suffix: suffix array is not a permutation")
	ErrTooLong        = errors.New("suffix: text too long")
)

// Index answers longest common extension queries for a text. It holds the
// suffix array, the rank of every suffix, the LCP array and the range minimum
// query structure over the LCP array. An Index is never modified after
// construction and may be used by multiple goroutines.
type Index struct {
	t    []byte
	sa   []int32
	rank []int32
	lcp  []int32
	rmq  *RMQ
}

// NewIndex builds the index for t. The text is not copied and must not be
// modified while the index is in use.
func NewIndex(t []byte) (*Index, error) {
	if len(t) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: len(t)=%d > MaxInt32", ErrTooLong,
			len(t))
	}
	x := &Index{
		t:    t,
		sa:   make([]int32, len(t)),
		rank: make([]int32, len(t)),
		lcp:  make([]int32, len(t)),
	}
	Sort(t, x.sa)
	if err := invertSA(x.sa, x.rank); err != nil {
		return nil, err
	}
	kasai(t, x.sa, x.rank, x.lcp)
	x.rmq = NewRMQ(x.lcp)
	return x, nil
}

// LCE returns the length of the longest common prefix of the suffixes
// starting at i and j. A suffix matches itself up to the end of the text.
func (x *Index) LCE(i, j int) int {
	if i == j {
		return len(x.t) - i
	}
	a, b := x.rank[i], x.rank[j]
	if a > b {
		a, b = b, a
	}
	return int(x.lcp[x.rmq.Min(int(a)+1, int(b))])
}
