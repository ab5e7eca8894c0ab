// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package iupacpal

import "github.com/ulikunitz/iupacpal/iupac"

// extender computes the longest common extension of two text positions.
// *suffix.Index implements it.
type extender interface {
	LCE(i, j int) int
}

// kangaroo extends the text positions i and j past mismatching pairs.
//
// It appends to offs the offset -1 followed by the ascending offsets of the
// pairs that don't match under m. Mismatches at offsets below initialGap are
// recorded but not charged to the budget. The extension stops after budget+1
// charged mismatches or when one of the positions reaches the strand boundary
// at n or 2n+1. In the latter case the boundary offset is appended as final
// break point.
func kangaroo(offs []int, x extender, t []byte, m *iupac.Matcher,
	i, j, budget, initialGap int) []int {
	offs = append(offs, -1)
	if i == j {
		return append(offs, len(t)-i)
	}
	n := (len(t) - 2) / 2
	off := 0
	for budget >= 0 {
		off += x.LCE(i+off, j+off)
		if i+off >= n || j+off >= 2*n+1 {
			offs = append(offs, off)
			break
		}
		if !m.Match(t[i+off], t[j+off]) {
			offs = append(offs, off)
			if off >= initialGap {
				budget--
			}
		}
		off++
	}
	return offs
}
