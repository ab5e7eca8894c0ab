package suffix

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

func TestSort(t *testing.T) {
	tests := []string{
		"",
		"a",
		"ab",
		"ba",
		"aaaa",
		"abbaabbaabbaabba",
		"ababababababababac",
		"cdcdcdcdccdd$",
		"banana",
		"mississippi",
		"christmas",
		"cba",
		"The brown fox jumps over the lazy dog.",
		"<mediawiki xmlns=\"http://www.mediawik",
		"acgtacgt$acgtacgt#",
		"aaccggtt$aaccggtt#",
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			text := []byte(tc)
			sa := make([]int32, len(text))
			Sort(text, sa)
			if err := verifySuffixArray(text, sa); err != nil {
				t.Fatal(err)
			}
		})
	}
}

// naiveSort sorts the suffixes by direct comparison.
func naiveSort(p []byte) []int32 {
	sa := make([]int32, len(p))
	for i := range sa {
		sa[i] = int32(i)
	}
	slices.SortFunc(sa, func(x, y int32) int {
		return bytes.Compare(p[x:], p[y:])
	})
	return sa
}

func TestSortRandomDNA(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const alphabet = "acgtn"
	for n := 1; n < 300; n += 7 {
		p := make([]byte, 2*n+2)
		for i := 0; i < n; i++ {
			p[i] = alphabet[r.Intn(len(alphabet))]
			p[n+1+i] = alphabet[r.Intn(2)]
		}
		p[n], p[2*n+1] = '$', '#'
		sa := make([]int32, len(p))
		Sort(p, sa)
		if diff := cmp.Diff(naiveSort(p), sa); diff != "" {
			t.Fatalf("Sort(%q) mismatch (-want +got):\n%s", p, diff)
		}
	}
}

func FuzzSort(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("a"))
	f.Add([]byte("abracadabra"))
	f.Add([]byte("=====foofoobarfoobar bartender===="))
	f.Fuzz(func(t *testing.T, p []byte) {
		sa := make([]int32, len(p))
		Sort(p, sa)
		if err := verifySuffixArray(p, sa); err != nil {
			t.Fatal(err)
		}
	})
}

func shorter(s []byte) string {
	if len(s) > 16 {
		return fmt.Sprintf("%s...", s[:16])
	}
	return string(s)
}

type sortError struct {
	data []byte
	sa   []int32
	i, j int
}

func (err *sortError) Error() string {
	u := err.data[err.sa[err.i]:]
	v := err.data[err.sa[err.j]:]
	return fmt.Sprintf(
		"data[sa[%d]=%d:]=%s >= data[sa[%d]=%d:]=%s",
		err.i, err.sa[err.i], shorter(u),
		err.j, err.sa[err.j], shorter(v))
}

func verifyPermutation(a []int32) error {
	b := make([]int32, len(a))
	return invertSA(a, b)
}

func verifySuffixArray(t []byte, sa []int32) error {
	if len(t) != len(sa) {
		return fmt.Errorf("len(t)=%d != len(sa)=%d", len(t), len(sa))
	}
	if len(sa) == 0 {
		return nil
	}
	// Check that the suffix array is actual a permutation.
	if err := verifyPermutation(sa); err != nil {
		return err
	}
	v := t[sa[0]:]
	for i, k := range sa[1:] {
		var u []byte
		u, v = v, t[k:]
		if bytes.Compare(u, v) >= 0 {
			return &sortError{sa: sa, data: t, i: i, j: i + 1}
		}
	}
	return nil
}

func TestVerifyPermutation(t *testing.T) {
	tests := [][]int32{
		{1, 1, 1},
		{-1, 2, 3},
		{0, 3},
	}
	for _, tc := range tests {
		if err := verifyPermutation(tc); err == nil {
			t.Fatalf("verifyPermutation(%d) returned no error", tc)
		}
	}
}

func TestVerifySuffixArray(t *testing.T) {
	tests := []struct {
		t  []byte
		sa []int32
	}{
		{t: []byte("abba"), sa: []int32{3, 2, 0, 1}},
	}
	for _, tc := range tests {
		if err := verifySuffixArray(tc.t, tc.sa); err == nil {
			t.Fatalf("verifySuffixArray(%q, %d) no error", tc.t,
				tc.sa)
		}
	}
}
