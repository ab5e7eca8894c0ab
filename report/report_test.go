package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ulikunitz/iupacpal"
	"github.com/ulikunitz/iupacpal/iupac"
)

const header = `Palindromes of:  test
Sequence length is: 20
Start at position: 1
End at position: 20
Minimum length of Palindromes is: 5
Maximum length of Palindromes is: 20
Maximum gap between elements is: 3
Number of mismatches allowed in Palindrome: 1



Palindromes:
`

func TestWriteText(t *testing.T) {
	seq := []byte("aaacaacaaagttgttgttt")
	h := Header{
		Name: "test",
		Config: iupacpal.Config{MinLen: 5, MaxLen: 20, MaxGap: 3,
			Mismatches: 1},
	}
	ps := []iupacpal.Palindrome{{Left: 0, Right: 19, Gap: 0}, {Left: 3, Right: 15, Gap: 1}}
	var buf bytes.Buffer
	if err := WriteText(&buf, h, seq, ps); err != nil {
		t.Fatalf("WriteText error %s", err)
	}
	want := header +
		"1        aaacaacaaa       10\n" +
		"         ||||||||| |         \n" +
		"20       tttgttgttg       11\n" +
		"\n" +
		"4        caacaa        9\n" +
		"          |  |          \n" +
		"16       ttgttg       11\n" +
		"\n" +
		"\n\n\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("WriteText mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONL(t *testing.T) {
	seq := []byte("aaacaacaaagttgttgttt")
	ps := []iupacpal.Palindrome{{Left: 0, Right: 19, Gap: 0}, {Left: 3, Right: 15, Gap: 1}}
	var buf bytes.Buffer
	if err := Write(&buf, JSONL, Header{}, seq, ps); err != nil {
		t.Fatalf("Write error %s", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(ps) {
		t.Fatalf("got %d lines; want %d", len(lines), len(ps))
	}
	var got []map[string]int
	for _, line := range lines {
		var m map[string]int
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("json.Unmarshal(%s) error %s", line, err)
		}
		got = append(got, m)
	}
	want := []map[string]int{
		{"left": 0, "right": 19, "gap": 0, "length": 10,
			"outer_left": 1, "inner_left": 10, "inner_right": 11,
			"outer_right": 20, "mismatches": 1},
		{"left": 3, "right": 15, "gap": 1, "length": 6,
			"outer_left": 4, "inner_left": 9, "inner_right": 11,
			"outer_right": 16, "mismatches": 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("WriteJSONL mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONLMatcher(t *testing.T) {
	seq := []byte("aant")
	ps := []iupacpal.Palindrome{{Left: 0, Right: 3, Gap: 0}}
	tests := []struct {
		m    *iupac.Matcher
		want int
	}{
		{nil, 0},
		{iupac.Default(), 0},
		{iupac.NewExactMatcher(), 1},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		err := WriteJSONL(&buf, Header{Matcher: tc.m}, seq, ps)
		if err != nil {
			t.Fatalf("WriteJSONL error %s", err)
		}
		var r struct {
			Mismatches int `json:"mismatches"`
		}
		if err = json.Unmarshal(buf.Bytes(), &r); err != nil {
			t.Fatalf("json.Unmarshal(%s) error %s", buf.Bytes(), err)
		}
		if r.Mismatches != tc.want {
			t.Errorf("mismatches = %d; want %d", r.Mismatches, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	for _, f := range []Format{Text, JSONL} {
		p, err := f.MarshalText()
		if err != nil {
			t.Fatalf("%d.MarshalText() error %s", f, err)
		}
		var g Format
		if err = g.UnmarshalText(p); err != nil {
			t.Fatalf("UnmarshalText(%q) error %s", p, err)
		}
		if g != f {
			t.Fatalf("UnmarshalText(%q) = %v; want %v", p, g, f)
		}
	}
	var f Format
	if err := f.UnmarshalText([]byte("xml")); err == nil {
		t.Fatalf("UnmarshalText(%q) returned no error", "xml")
	}
	if _, err := Format(0).MarshalText(); err == nil {
		t.Fatalf("Format(0).MarshalText() returned no error")
	}
	if s := Format(7).String(); s != "Format(7)" {
		t.Fatalf("Format(7).String() = %q", s)
	}
	if err := Write(io.Discard, Format(0), Header{}, nil, nil); err == nil {
		t.Fatalf("Write with Format(0) returned no error")
	}
}

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestIsBrokenPipe(t *testing.T) {
	seq := []byte("acgt")
	ps := []iupacpal.Palindrome{{Left: 0, Right: 3, Gap: 0}}
	err := WriteText(errWriter{&os.PathError{Op: "write",
		Path: "|1", Err: syscall.EPIPE}}, Header{}, seq, ps)
	if !IsBrokenPipe(err) {
		t.Fatalf("IsBrokenPipe(%v) = false; want true", err)
	}
	err = WriteJSONL(errWriter{io.ErrClosedPipe}, Header{}, seq, ps)
	if !IsBrokenPipe(err) {
		t.Fatalf("IsBrokenPipe(%v) = false; want true", err)
	}
	tests := []error{nil, io.ErrShortWrite, fmt.Errorf("x: %w",
		errors.New("pipe"))}
	for _, err := range tests {
		if IsBrokenPipe(err) {
			t.Errorf("IsBrokenPipe(%v) = true; want false", err)
		}
	}
}
