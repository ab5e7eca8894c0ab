// SPDX-FileCopyrightText: © 2026 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package iupacpal finds approximate inverted repeats in nucleotide sequences
// written with the IUPAC ambiguity codes.
//
// An inverted repeat, a palindrome in the biological sense, consists of two
// arms separated by a gap, where the left arm pairs with the reverse
// complement of the right arm. The search builds a suffix array over the
// sequence followed by its reverse complement and extends every centre of the
// sequence with longest common extension queries, jumping over mismatches
// until the mismatch budget is exhausted.
package iupacpal

import (
	"context"
	"fmt"
	"sync"

	"github.com/ulikunitz/iupacpal/iupac"
	"github.com/ulikunitz/iupacpal/suffix"
)

// chunkSize is the number of centres a worker handles between checks of the
// context.
const chunkSize = 1 << 12

// Finder searches for inverted repeats.
type Finder struct {
	Config

	// Matcher decides which symbols pair. The default matcher is used if
	// it is nil.
	Matcher *iupac.Matcher

	// Progress is called with the number of centres completed since the
	// last call. It may be called concurrently by multiple workers.
	Progress func(centres int)
}

// Find returns the inverted repeats of seq in ascending order. The sequence
// is not modified. The search can be cancelled by the context, in which case
// no palindromes but the context error are returned.
func Find(ctx context.Context, seq []byte, cfg Config) ([]Palindrome, error) {
	f := &Finder{Config: cfg}
	return f.Find(ctx, seq)
}

// Centres returns the number of centres swept for a sequence of length n.
func Centres(n int) int {
	if n <= 0 {
		return 0
	}
	return 2*n - 1
}

// Find returns the inverted repeats of seq in ascending order.
func (f *Finder) Find(ctx context.Context, seq []byte) ([]Palindrome, error) {
	cfg := f.Config
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	if cfg.Mismatches >= len(seq) && len(seq) > 0 {
		return nil, fmt.Errorf(
			"%w: Mismatches=%d; must be less than sequence length %d",
			ErrInvalidParameter, cfg.Mismatches, len(seq))
	}
	t, err := Compose(seq)
	if err != nil {
		return nil, err
	}
	x, err := suffix.NewIndex(t)
	if err != nil {
		return nil, indexError(err)
	}
	m := f.Matcher
	if m == nil {
		m = iupac.Default()
	}
	s := &sweeper{t: t, n: len(seq), x: x, m: m, cfg: cfg}
	return s.run(ctx, f.Progress)
}

// sweeper assembles the palindromes for all centres.
type sweeper struct {
	t   []byte
	n   int
	x   extender
	m   *iupac.Matcher
	cfg Config
}

// run sweeps the centres with cfg.Workers goroutines. Every worker collects
// its palindromes in its own set. The sets are merged at the end.
func (s *sweeper) run(ctx context.Context, progress func(int)) ([]Palindrome, error) {
	total := Centres(s.n)
	workers := min(s.cfg.Workers, (total+chunkSize-1)/chunkSize)
	workers = max(workers, 1)

	chunks := make(chan int, workers*2)
	sets := make([]set, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range sets {
		sets[w] = make(set)
		go func(out set) {
			defer wg.Done()
			var c centre
			for start := range chunks {
				if ctx.Err() != nil {
					continue
				}
				end := min(start+chunkSize, total)
				for h := start; h < end; h++ {
					s.centre(&c, h, out)
				}
				if progress != nil {
					progress(end - start)
				}
			}
		}(sets[w])
	}

feed:
	for h := 0; h < total; h += chunkSize {
		select {
		case <-ctx.Done():
			break feed
		case chunks <- h:
		}
	}
	close(chunks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := sets[0]
	for _, t := range sets[1:] {
		result.merge(t)
	}
	return result.sorted(), nil
}

// loc is a break point of the mismatch offset list. The field i is the index
// into the list.
type loc struct {
	off, i int
}

// centre holds the buffers reused for all centres of a worker.
type centre struct {
	offs   []int
	starts []loc
	ends   []loc
}

// initialGap returns the extension offset below which mismatches are not
// charged to the budget.
func initialGap(maxGap int, odd bool) int {
	switch {
	case maxGap%2 == 1:
		return (maxGap - 1) / 2
	case odd:
		return (maxGap - 2) / 2
	}
	return maxGap / 2
}

// centre adds the palindromes for the centre h/2 to out.
//
// For odd palindromes the centre is the position c = h/2 and offset x pairs
// c+1+x with c-1-x. For even palindromes the centre lies between k = (h-1)/2
// and k+1 and offset x pairs k+1+x with k-x.
func (s *sweeper) centre(c *centre, h int, out set) {
	n := s.n
	odd := h%2 == 0
	var i, j, k int
	if odd {
		k = h / 2
		i, j = k+1, 2*n+1-k
	} else {
		k = (h - 1) / 2
		i, j = k+1, 2*n-k
	}
	ig := initialGap(s.cfg.MaxGap, odd)
	budget := s.cfg.Mismatches

	c.offs = kangaroo(c.offs[:0], s.x, s.t, s.m, i, j, budget, ig)
	offs := c.offs

	// A run of consecutive mismatches is a single break point. The arm
	// may start after the last offset of a run and end before its first.
	c.starts, c.ends = c.starts[:0], c.ends[:0]
	for t, off := range offs {
		if t == 0 || t == len(offs)-1 || offs[t+1] != off+1 {
			c.starts = append(c.starts, loc{off, t})
		}
		if t == 0 || offs[t-1] != off-1 {
			c.ends = append(c.ends, loc{off, t})
		}
	}

	e := 0
	for _, st := range c.starts {
		if st.off >= ig {
			break
		}
		// Advance to the farthest end with at most budget mismatches
		// between start and end.
		for e < len(c.ends) && c.ends[e].i-st.i-1 <= budget {
			e++
		}
		if e == 0 {
			continue
		}
		end := c.ends[e-1]
		if end.off <= st.off {
			continue
		}
		var p Palindrome
		if odd {
			p = Palindrome{
				Left:  k - end.off,
				Right: k + end.off,
				Gap:   2*st.off + 3,
			}
		} else {
			p = Palindrome{
				Left:  k - (end.off - 1),
				Right: k + end.off,
				Gap:   2*st.off + 2,
			}
		}
		s.add(out, p, end.off-offs[end.i-1]-1)
	}
}

// add puts p into out if its arm length is in the configured range. Arms that
// are too long are shortened from the outside. The argument mismatchGap is
// the number of pairs between the outer end of the arm and the next mismatch
// inside it. Shortening by exactly that number would make the mismatch the
// outermost pair, so one more pair is cut in that case.
func (s *sweeper) add(out set, p Palindrome, mismatchGap int) {
	l := p.Len()
	if l < s.cfg.MinLen {
		return
	}
	if l <= s.cfg.MaxLen {
		out.add(p)
		return
	}
	o := l - s.cfg.MaxLen
	if o == mismatchGap {
		o++
	}
	p.Left += o
	p.Right -= o
	if p.Len() < s.cfg.MinLen {
		return
	}
	out.add(p)
}
