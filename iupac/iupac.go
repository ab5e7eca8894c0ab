// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package iupac provides the nucleotide alphabet including the IUPAC
// ambiguity codes, the complement function and the predicate deciding
// whether two symbols may pair.
//
// All symbols are handled in lower case. The letter u is treated as t.
package iupac

import "fmt"

// Symbols lists the alphabet in lower case.
const Symbols = "acgturyswkmbdhvn"

// The sentinels delimit the two strands of the text searched for inverted
// repeats. They are not part of the alphabet and match only themselves.
const (
	Sentinel1 byte = '$'
	Sentinel2 byte = '#'
)

// sigma is the number of symbols known to the matcher: the alphabet plus the
// two sentinels.
const sigma = len(Symbols) + 2

// masks gives the set of bases for every symbol. bit0=a bit1=c bit2=g bit3=t
var masks = [256]uint8{
	'a': 1,
	'c': 2,
	'g': 4,
	't': 8,
	'u': 8,
	'r': 1 | 4,
	'y': 2 | 8,
	's': 2 | 4,
	'w': 1 | 8,
	'k': 4 | 8,
	'm': 1 | 2,
	'b': 2 | 4 | 8,
	'd': 1 | 4 | 8,
	'h': 1 | 2 | 8,
	'v': 1 | 2 | 4,
	'n': 1 | 2 | 4 | 8,
}

var complements = [256]byte{
	'a': 't', 'c': 'g', 'g': 'c', 't': 'a', 'u': 'a',
	'r': 'y', 'y': 'r',
	's': 's', 'w': 'w',
	'k': 'm', 'm': 'k',
	'b': 'v', 'v': 'b',
	'd': 'h', 'h': 'd',
	'n': 'n',
}

// code maps a byte to its row in the match table or -1.
var code [256]int8

func init() {
	for i := range code {
		code[i] = -1
	}
	for i := 0; i < len(Symbols); i++ {
		code[Symbols[i]] = int8(i)
	}
	code[Sentinel1] = int8(len(Symbols))
	code[Sentinel2] = int8(len(Symbols) + 1)
}

// Matcher decides whether two symbols may pair. A Matcher is immutable and
// can be shared by any number of goroutines. Every symbol matches itself.
type Matcher struct {
	table [sigma][sigma]bool
}

// NewMatcher builds the match table. Two alphabet symbols match if their base
// sets intersect.
func NewMatcher() *Matcher {
	m := new(Matcher)
	for i := 0; i < len(Symbols); i++ {
		a := masks[Symbols[i]]
		for j := 0; j < len(Symbols); j++ {
			m.table[i][j] = a&masks[Symbols[j]] != 0
		}
	}
	s1, s2 := code[Sentinel1], code[Sentinel2]
	m.table[s1][s1] = true
	m.table[s2][s2] = true
	return m
}

// NewExactMatcher builds a match table where two symbols match only if they
// stand for the same set of bases. An ambiguity code pairs only with
// itself.
func NewExactMatcher() *Matcher {
	m := new(Matcher)
	for i := 0; i < len(Symbols); i++ {
		a := masks[Symbols[i]]
		for j := 0; j < len(Symbols); j++ {
			m.table[i][j] = a == masks[Symbols[j]]
		}
	}
	s1, s2 := code[Sentinel1], code[Sentinel2]
	m.table[s1][s1] = true
	m.table[s2][s2] = true
	return m
}

var defaultMatcher = NewMatcher()

// Default returns the shared matcher.
func Default() *Matcher { return defaultMatcher }

// Match reports whether a and b may pair. Bytes outside of the alphabet and
// the sentinels never match.
func (m *Matcher) Match(a, b byte) bool {
	i, j := code[a], code[b]
	if i < 0 || j < 0 {
		return false
	}
	return m.table[i][j]
}

// Complement returns the complementary symbol of c. The flag is false if c
// has no complement.
func Complement(c byte) (byte, bool) {
	x := complements[c]
	return x, x != 0
}

// SymbolError reports a byte that is not part of the alphabet.
type SymbolError struct {
	Pos int
	Sym byte
}

func (err *SymbolError) Error() string {
	return fmt.Sprintf("iupac: invalid symbol %q at position %d",
		err.Sym, err.Pos)
}

// Normalize converts seq to lower case in place and checks that every symbol
// belongs to the alphabet. The first offending byte is reported as
// *SymbolError.
func Normalize(seq []byte) error {
	for i, c := range seq {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
			seq[i] = c
		}
		if masks[c] == 0 {
			return &SymbolError{Pos: i, Sym: seq[i]}
		}
	}
	return nil
}

// ReverseComplement appends the reverse complement of seq to dst and returns
// the extended slice. The sequence must be normalized.
func ReverseComplement(dst, seq []byte) ([]byte, error) {
	for i := len(seq) - 1; i >= 0; i-- {
		c, ok := Complement(seq[i])
		if !ok {
			return dst, &SymbolError{Pos: i, Sym: seq[i]}
		}
		dst = append(dst, c)
	}
	return dst, nil
}
