// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// invertSA stores the rank of every suffix in rank, so that sa[rank[i]] == i.
// It reports an error if sa is not a permutation of [0,len(sa)).
func invertSA(sa, rank []int32) error {
	if len(sa) != len(rank) {
		panic(fmt.Errorf("suffix: len(sa)=%d != len(rank)=%d",
			len(sa), len(rank)))
	}
	for i := range rank {
		rank[i] = -1
	}
	for r, i := range sa {
		if !(0 <= i && int(i) < len(rank)) || rank[i] >= 0 {
			return fmt.Errorf("%w: sa[%d]=%d", ErrNotPermutation,
				r, i)
		}
		rank[i] = int32(r)
	}
	return nil
}

// kasai computes the LCP array: lcp[r] is the length of the common prefix of
// the suffixes with rank r-1 and r, lcp[0] is zero.
//
// The suffixes are visited in text order. If suffix i shares h bytes with
// its predecessor in rank order, suffix i+1 shares at least h-1 bytes with
// its own, so the comparison never restarts from zero.
func kasai(t []byte, sa, rank, lcp []int32) {
	h := 0
	for i, r := range rank {
		if r == 0 {
			lcp[0] = 0
			h = 0
			continue
		}
		p := int(sa[r-1])
		h += commonPrefix(t[i+h:], t[p+h:])
		lcp[r] = int32(h)
		h = max(h-1, 0)
	}
}

// commonPrefix returns the length of the common prefix of a and b. Eight
// bytes are compared at once; the first differing byte is found from the
// trailing zeros of the XOR.
func commonPrefix(a, b []byte) int {
	n := min(len(a), len(b))
	k := 0
	for ; k+8 <= n; k += 8 {
		x := binary.LittleEndian.Uint64(a[k:]) ^
			binary.LittleEndian.Uint64(b[k:])
		if x != 0 {
			return k + bits.TrailingZeros64(x)>>3
		}
	}
	for k < n && a[k] == b[k] {
		k++
	}
	return k
}
