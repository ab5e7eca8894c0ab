// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package iupacpal

import (
	"errors"
	"fmt"

	"github.com/ulikunitz/iupacpal/suffix"
)

// Errors returned by the package. Every error returned wraps one of them, so
// they can be tested with errors.Is.
var (
	// ErrInvalidInput is returned for an empty sequence or one containing
	// symbols outside of the alphabet.
	ErrInvalidInput = errors.New("iupacpal: invalid input")
	// ErrInvalidParameter is returned if the configuration is inconsistent.
	ErrInvalidParameter = errors.New("iupacpal: invalid parameter")
	// ErrAllocation is returned if the index structures cannot be
	// allocated for the sequence.
	ErrAllocation = errors.New("iupacpal: allocation failure")
	// ErrSort is returned if the suffix sort produced an invalid result.
	ErrSort = errors.New("iupacpal: suffix sort failure")
)

// indexError maps the errors of the suffix package to the errors of this
// package.
func indexError(err error) error {
	if errors.Is(err, suffix.ErrTooLong) {
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return fmt.Errorf("%w: %w", ErrSort, err)
}
