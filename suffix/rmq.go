// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"fmt"
	"math/bits"
)

const (
	blockShift = 6
	blockSize  = 1 << blockShift
	blockMask  = blockSize - 1
)

// RMQ answers range minimum queries over an int32 slice in constant time.
//
// The slice is divided into blocks of 64 values. A sparse table stores the
// minima of all runs of 2^k blocks. Inside a block every position i keeps a
// bit mask of the positions j <= i of the block for which no position in
// (j,i] has a value less or equal a[j]. The minimum of [l,r] inside a block is
// then the lowest bit of the mask for r at or above l.
//
// The structure requires 8 bytes per value plus the sparse table over the
// blocks and is immutable after construction.
type RMQ struct {
	a      []int32
	masks  []uint64
	sparse [][]int32
}

// NewRMQ preprocesses a. The slice is not copied and must not be modified as
// long as the RMQ is used.
func NewRMQ(a []int32) *RMQ {
	r := &RMQ{
		a:     a,
		masks: make([]uint64, len(a)),
	}
	nb := (len(a) + blockMask) >> blockShift
	level := make([]int32, nb)
	for b := range level {
		lo := b << blockShift
		hi := min(lo+blockSize, len(a))
		var m uint64
		for i := lo; i < hi; i++ {
			for m != 0 {
				top := lo + 63 - bits.LeadingZeros64(m)
				if a[top] < a[i] {
					break
				}
				m &^= 1 << uint(top-lo)
			}
			m |= 1 << uint(i-lo)
			r.masks[i] = m
		}
		level[b] = int32(lo + bits.TrailingZeros64(r.masks[hi-1]))
	}
	r.sparse = append(r.sparse, level)
	for k := 1; 1<<k <= nb; k++ {
		prev := r.sparse[k-1]
		half := 1 << (k - 1)
		level = make([]int32, nb-1<<k+1)
		for b := range level {
			level[b] = int32(r.minIndex(int(prev[b]),
				int(prev[b+half])))
		}
		r.sparse = append(r.sparse, level)
	}
	return r
}

func (r *RMQ) minIndex(i, j int) int {
	if r.a[j] < r.a[i] {
		return j
	}
	return i
}

// inBlock returns the index of the minimum in [l,r] for l and r in the same
// block.
func (r *RMQ) inBlock(l, h int) int {
	m := r.masks[h] & (^uint64(0) << uint(l&blockMask))
	return h&^blockMask + bits.TrailingZeros64(m)
}

// blocks returns the index of the minimum in the blocks [x,y].
func (r *RMQ) blocks(x, y int) int {
	k := bits.Len(uint(y-x+1)) - 1
	s := r.sparse[k]
	return r.minIndex(int(s[x]), int(s[y-1<<k+1]))
}

// Min returns an index of a minimal value in the closed range [l,h]. If the
// minimum is not unique any of its indexes may be returned.
func (r *RMQ) Min(l, h int) int {
	if !(0 <= l && l <= h && h < len(r.a)) {
		panic(fmt.Errorf("suffix: RMQ range [%d,%d] invalid for len %d",
			l, h, len(r.a)))
	}
	bl, bh := l>>blockShift, h>>blockShift
	if bl == bh {
		return r.inBlock(l, h)
	}
	k := r.minIndex(r.inBlock(l, l|blockMask), r.inBlock(h&^blockMask, h))
	if bl+1 < bh {
		k = r.minIndex(k, r.blocks(bl+1, bh-1))
	}
	return k
}
