// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package iupacpal

import (
	"fmt"

	"github.com/ulikunitz/iupacpal/iupac"
)

// Check verifies p directly against the normalized sequence. It returns an
// error describing the first violated condition: the palindrome must lie
// inside the sequence, the arm length must be in [MinLen,MaxLen], the gap must
// not exceed MaxGap and the arms may not have more than Mismatches
// mismatching pairs. The pairs are compared with m or the default matcher if
// m is nil.
func Check(seq []byte, p Palindrome, cfg Config, m *iupac.Matcher) error {
	n := len(seq)
	if !(0 <= p.Left && p.Left <= p.Right && p.Right < n) {
		return fmt.Errorf("iupacpal: %v outside of sequence [0,%d)", p, n)
	}
	if !(0 <= p.Gap && p.Gap <= cfg.MaxGap) {
		return fmt.Errorf("iupacpal: %v gap must be in [0,%d]", p,
			cfg.MaxGap)
	}
	w := p.Right - p.Left + 1 - p.Gap
	if w < 0 || w%2 != 0 {
		return fmt.Errorf("iupacpal: %v arms have different lengths", p)
	}
	if l := w / 2; !(cfg.MinLen <= l && l <= cfg.MaxLen) {
		return fmt.Errorf("iupacpal: %v arm length %d must be in [%d,%d]",
			p, l, cfg.MinLen, cfg.MaxLen)
	}
	if m == nil {
		m = iupac.Default()
	}
	if k := p.Mismatches(seq, m); k > cfg.Mismatches {
		return fmt.Errorf("iupacpal: %v has %d mismatches; max %d",
			p, k, cfg.Mismatches)
	}
	return nil
}
