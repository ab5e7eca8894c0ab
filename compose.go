// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package iupacpal

import (
	"fmt"

	"github.com/ulikunitz/iupacpal/iupac"
)

// Compose builds the text searched for inverted repeats. For a sequence of
// length n it has length 2n+2: the sequence in lower case, the first
// sentinel, the reverse complement of the sequence and the second sentinel.
// The argument is not modified.
func Compose(seq []byte) ([]byte, error) {
	n := len(seq)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidInput)
	}
	t := make([]byte, n, 2*n+2)
	copy(t, seq)
	if err := iupac.Normalize(t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	t = append(t, iupac.Sentinel1)
	t, err := iupac.ReverseComplement(t, t[:n])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	t = append(t, iupac.Sentinel2)
	return t, nil
}
