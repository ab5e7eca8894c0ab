// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package suffix provides the suffix array, its inverse, the LCP array and a
// range minimum query structure over it. Together they answer longest common
// extension queries between arbitrary text positions in constant time.
//
// The suffix sort uses the SA-IS algorithm by Nong, Zhang and Chan as
// described in [Two Efficient Algorithms for Linear Time Suffix Array
// Construction].
//
// [Two Efficient Algorithms for Linear Time Suffix Array Construction]: https://doi.org/10.1109/TC.2010.188
package suffix

import (
	"fmt"
)

// Sort computes the suffix array. The slice sa must have the same length as t.
func Sort(t []byte, sa []int32) {
	if len(t) != len(sa) {
		panic(fmt.Errorf("len(t)=%d is different from len(sa)=%d",
			len(t), len(sa)))
	}
	switch len(t) {
	case 0:
		return
	case 1:
		sa[0] = 0
		return
	}

	// Map the bytes to dense ranks starting at 1. Rank 0 is reserved for
	// the terminator that is appended to the text.
	var ranks [256]int32
	for _, c := range t {
		ranks[c] = 1
	}
	k := int32(1)
	for c, r := range ranks {
		if r != 0 {
			ranks[c] = k
			k++
		}
	}
	s := make([]int32, len(t)+1)
	for i, c := range t {
		s[i] = ranks[c]
	}

	x := make([]int32, len(s))
	sais(s, x, int(k))
	// x[0] is the terminator.
	copy(sa, x[1:])
}

// sais computes the suffix array of s. The last value of s must be 0 and must
// not occur anywhere else. All values are smaller than k.
func sais(s, sa []int32, k int) {
	n := len(s)
	if n == 1 {
		sa[0] = 0
		return
	}

	// Position i is a member of stype if the suffix i is smaller than
	// suffix i+1.
	var stype bitset
	stype.init(n)
	stype.insert(n - 1)
	for i := n - 2; i >= 0; i-- {
		if s[i] < s[i+1] || (s[i] == s[i+1] && stype.isMember(i+1)) {
			stype.insert(i)
		}
	}

	counts := make([]int32, k)
	for _, c := range s {
		counts[c]++
	}
	bkt := make([]int32, k)
	heads := func() {
		var sum int32
		for c, m := range counts {
			bkt[c] = sum
			sum += m
		}
	}
	tails := func() {
		var sum int32
		for c, m := range counts {
			sum += m
			bkt[c] = sum
		}
	}

	// induce places the LMS suffixes at the ends of their buckets, keeping
	// their relative order, and induces the L and S suffixes from them.
	induce := func(lms []int32) {
		for i := range sa {
			sa[i] = -1
		}
		tails()
		for i := len(lms) - 1; i >= 0; i-- {
			p := lms[i]
			c := s[p]
			bkt[c]--
			sa[bkt[c]] = p
		}
		heads()
		for i := 0; i < n; i++ {
			p := sa[i]
			if p > 0 && !stype.isMember(int(p-1)) {
				c := s[p-1]
				sa[bkt[c]] = p - 1
				bkt[c]++
			}
		}
		tails()
		for i := n - 1; i >= 0; i-- {
			p := sa[i]
			if p > 0 && stype.isMember(int(p-1)) {
				c := s[p-1]
				bkt[c]--
				sa[bkt[c]] = p - 1
			}
		}
	}

	var lms []int32
	for i := 1; i < n; i++ {
		if stype.isLMS(i) {
			lms = append(lms, int32(i))
		}
	}

	// Sorting the LMS substrings.
	induce(lms)

	// Collect the sorted LMS positions at the front of sa.
	m := 0
	for i := 0; i < n; i++ {
		if p := sa[i]; p >= 0 && stype.isLMS(int(p)) {
			sa[m] = p
			m++
		}
	}

	// Name the LMS substrings. Equal substrings get the same name.
	names := make([]int32, n)
	name := int32(0)
	prev := int32(-1)
	for _, p := range sa[:m] {
		if prev >= 0 && !lmsEqual(s, &stype, prev, p) {
			name++
		}
		names[p] = name
		prev = p
	}

	// The reduced string keeps the text order of the LMS positions. Its last
	// value is the name of the terminator, which is the unique 0.
	s1 := make([]int32, m)
	for i, p := range lms {
		s1[i] = names[p]
	}
	sa1 := make([]int32, m)
	if int(name)+1 < m {
		sais(s1, sa1, int(name)+1)
	} else {
		for i, c := range s1 {
			sa1[c] = int32(i)
		}
	}

	sorted := names[:m]
	for i, r := range sa1 {
		sorted[i] = lms[r]
	}
	induce(sorted)
}

// lmsEqual checks whether the LMS substrings starting at a and b are equal.
func lmsEqual(s []int32, stype *bitset, a, b int32) bool {
	n := len(s)
	if int(a) == n-1 || int(b) == n-1 {
		return false
	}
	for d := 0; ; d++ {
		i, j := int(a)+d, int(b)+d
		if s[i] != s[j] || stype.isMember(i) != stype.isMember(j) {
			return false
		}
		if d > 0 {
			li, lj := stype.isLMS(i), stype.isLMS(j)
			if li || lj {
				return li && lj
			}
		}
	}
}
