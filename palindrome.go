// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package iupacpal

import (
	"fmt"

	"github.com/ulikunitz/iupacpal/iupac"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Palindrome describes an inverted repeat. Left and Right are the 0-based
// positions of the outermost symbols of the two arms. Gap is the number of
// symbols between the arms.
type Palindrome struct {
	Left  int `json:"left"`
	Right int `json:"right"`
	Gap   int `json:"gap"`
}

// Len returns the length of a single arm.
func (p Palindrome) Len() int { return (p.Right - p.Left + 1 - p.Gap) / 2 }

// InnerLeft returns the position of the innermost symbol of the left arm.
func (p Palindrome) InnerLeft() int { return p.Left + p.Len() - 1 }

// InnerRight returns the position of the innermost symbol of the right arm.
func (p Palindrome) InnerRight() int { return p.Right - p.Len() + 1 }

func (p Palindrome) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Left, p.Right, p.Gap)
}

// Mismatches counts the pairs of the two arms that don't pair under the
// matcher. The symbol of the left arm is compared with the complement of the
// mirrored symbol of the right arm. The sequence must be normalized and the
// palindrome must lie inside it.
func (p Palindrome) Mismatches(seq []byte, m *iupac.Matcher) int {
	k := 0
	for x := 0; x < p.Len(); x++ {
		c, _ := iupac.Complement(seq[p.Right-x])
		if !m.Match(seq[p.Left+x], c) {
			k++
		}
	}
	return k
}

// compare orders palindromes by left, right and gap.
func compare(p, q Palindrome) int {
	switch {
	case p.Left != q.Left:
		return p.Left - q.Left
	case p.Right != q.Right:
		return p.Right - q.Right
	}
	return p.Gap - q.Gap
}

// set collects palindromes without duplicates.
type set map[Palindrome]struct{}

func (s set) add(p Palindrome) { s[p] = struct{}{} }

// merge adds all palindromes of t to s.
func (s set) merge(t set) {
	for p := range t {
		s[p] = struct{}{}
	}
}

// sorted returns the palindromes in ascending order.
func (s set) sorted() []Palindrome {
	a := maps.Keys(s)
	slices.SortFunc(a, compare)
	return a
}
