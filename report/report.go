// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package report writes the inverted repeats found by iupacpal. The text
// format shows the two arms of every palindrome aligned against each other,
// the JSON lines format has one object per palindrome.
package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/ulikunitz/iupacpal"
	"github.com/ulikunitz/iupacpal/iupac"
)

// Format selects the output format.
type Format int

// Supported formats.
const (
	Text Format = 1 + iota
	JSONL
)

// MarshalText returns the name of the format.
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case Text:
		return []byte("text"), nil
	case JSONL:
		return []byte("jsonl"), nil
	default:
		return nil, fmt.Errorf("report: unknown Format %d", f)
	}
}

// UnmarshalText sets the format from its name.
func (f *Format) UnmarshalText(text []byte) error {
	switch string(text) {
	case "text":
		*f = Text
	case "jsonl":
		*f = JSONL
	default:
		return fmt.Errorf("report: unknown Format %q", text)
	}
	return nil
}

func (f Format) String() string {
	p, err := f.MarshalText()
	if err != nil {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return string(p)
}

// Header describes the search that produced the palindromes.
type Header struct {
	// Name identifies the sequence.
	Name string
	iupacpal.Config
	// Matcher counts the mismatches of the palindromes. The default
	// matcher is used if it is nil.
	Matcher *iupac.Matcher
}

func (h *Header) matcher() *iupac.Matcher {
	if h.Matcher == nil {
		return iupac.Default()
	}
	return h.Matcher
}

// Write writes the palindromes in the given format. The sequence must be
// normalized.
func Write(w io.Writer, f Format, h Header, seq []byte, ps []iupacpal.Palindrome) error {
	switch f {
	case Text:
		return WriteText(w, h, seq, ps)
	case JSONL:
		return WriteJSONL(w, h, seq, ps)
	default:
		return fmt.Errorf("report: unknown Format %d", f)
	}
}

// pad is the column width of the positions in the text report.
const pad = 9

func digits(k int) int {
	return len(fmt.Sprint(k))
}

func spaces(w *bufio.Writer, k int) {
	for ; k > 0; k-- {
		w.WriteByte(' ')
	}
}

// WriteText writes the text report. Positions are 1-based. The first line of
// a palindrome shows the left arm from the outside in, the last line the
// right arm from the outside in. The line in between marks pairing symbols
// with a bar.
func WriteText(w io.Writer, h Header, seq []byte, ps []iupacpal.Palindrome) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Palindromes of:  %s\n", h.Name)
	fmt.Fprintf(bw, "Sequence length is: %d\n", len(seq))
	fmt.Fprintf(bw, "Start at position: %d\n", 1)
	fmt.Fprintf(bw, "End at position: %d\n", len(seq))
	fmt.Fprintf(bw, "Minimum length of Palindromes is: %d\n", h.MinLen)
	fmt.Fprintf(bw, "Maximum length of Palindromes is: %d\n", h.MaxLen)
	fmt.Fprintf(bw, "Maximum gap between elements is: %d\n", h.MaxGap)
	fmt.Fprintf(bw, "Number of mismatches allowed in Palindrome: %d\n",
		h.Mismatches)
	bw.WriteString("\n\n\nPalindromes:\n")

	m := h.matcher()
	for _, p := range ps {
		ol, or := p.Left+1, p.Right+1
		il, ir := p.InnerLeft()+1, p.InnerRight()+1

		fmt.Fprint(bw, ol)
		spaces(bw, pad-digits(ol))
		bw.Write(seq[ol-1 : il])
		spaces(bw, pad-digits(il))
		fmt.Fprintln(bw, il)

		spaces(bw, pad)
		for x := 0; x < p.Len(); x++ {
			c, _ := iupac.Complement(seq[p.Right-x])
			if m.Match(seq[p.Left+x], c) {
				bw.WriteByte('|')
			} else {
				bw.WriteByte(' ')
			}
		}
		spaces(bw, pad)
		bw.WriteByte('\n')

		fmt.Fprint(bw, or)
		spaces(bw, pad-digits(or))
		for i := or - 1; i >= ir-1; i-- {
			bw.WriteByte(seq[i])
		}
		spaces(bw, pad-digits(ir))
		fmt.Fprintf(bw, "%d\n\n", ir)
	}
	bw.WriteString("\n\n\n")
	return bw.Flush()
}

// record is the JSON representation of a palindrome. The arm positions are
// 1-based like in the text report.
type record struct {
	iupacpal.Palindrome
	Length     int `json:"length"`
	OuterLeft  int `json:"outer_left"`
	InnerLeft  int `json:"inner_left"`
	InnerRight int `json:"inner_right"`
	OuterRight int `json:"outer_right"`
	Mismatches int `json:"mismatches"`
}

// WriteJSONL writes one JSON object per palindrome and line.
func WriteJSONL(w io.Writer, h Header, seq []byte, ps []iupacpal.Palindrome) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	m := h.matcher()
	for _, p := range ps {
		r := record{
			Palindrome: p,
			Length:     p.Len(),
			OuterLeft:  p.Left + 1,
			InnerLeft:  p.InnerLeft() + 1,
			InnerRight: p.InnerRight() + 1,
			OuterRight: p.Right + 1,
			Mismatches: p.Mismatches(seq, m),
		}
		if err := enc.Encode(&r); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// IsBrokenPipe reports whether err is caused by a reader that closed the pipe
// early, for instance head.
func IsBrokenPipe(err error) bool {
	return err != nil &&
		(errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
