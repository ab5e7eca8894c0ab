// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

const bsMask = 1<<6 - 1

// bitset records the S-type positions during the suffix sort. It needs a
// single bit per position of the text.
type bitset struct {
	a []uint64
	n int
}

func (b *bitset) init(n int) {
	k := (n + 63) / 64
	if k <= cap(b.a) {
		b.a = b.a[:k]
		clear(b.a)
	} else {
		b.a = make([]uint64, k)
	}
	b.n = n
}

func (b *bitset) insert(i int) {
	b.a[i>>6] |= 1 << uint(i&bsMask)
}

func (b *bitset) isMember(i int) bool {
	return (b.a[i>>6] & (1 << uint(i&bsMask))) != 0
}

// isLMS reports whether i is a leftmost S-type position, a member whose
// predecessor is not a member.
func (b *bitset) isLMS(i int) bool {
	return i > 0 && b.isMember(i) && !b.isMember(i-1)
}
