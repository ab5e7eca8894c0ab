package suffix

import (
	"fmt"
	"math/rand"
	"testing"
)

func naiveMin(a []int32, l, h int) int32 {
	m := a[l]
	for _, v := range a[l+1 : h+1] {
		m = min(m, v)
	}
	return m
}

func TestRMQ(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	sizes := []int{1, 2, 63, 64, 65, 127, 128, 129, 200, 517}
	for _, n := range sizes {
		for _, vmax := range []int32{2, 10, 1000} {
			t.Run(fmt.Sprintf("n=%d,max=%d", n, vmax), func(t *testing.T) {
				a := make([]int32, n)
				for i := range a {
					a[i] = r.Int31n(vmax)
				}
				q := NewRMQ(a)
				for l := 0; l < n; l++ {
					step := 1
					if n > 200 {
						step = 13
					}
					for h := l; h < n; h += step {
						k := q.Min(l, h)
						if !(l <= k && k <= h) {
							t.Fatalf("Min(%d,%d) = %d outside range",
								l, h, k)
						}
						if got, want := a[k], naiveMin(a, l, h); got != want {
							t.Fatalf("a[Min(%d,%d)] = %d; want %d",
								l, h, got, want)
						}
					}
				}
			})
		}
	}
}

func TestRMQPanics(t *testing.T) {
	q := NewRMQ([]int32{3, 1, 2})
	tests := [][2]int{{-1, 0}, {2, 1}, {0, 3}}
	for _, tc := range tests {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Min(%d,%d) didn't panic",
						tc[0], tc[1])
				}
			}()
			q.Min(tc[0], tc[1])
		}()
	}
}

func FuzzRMQ(f *testing.F) {
	f.Add([]byte("abracadabra"), uint16(1), uint16(7))
	f.Add(make([]byte, 130), uint16(3), uint16(129))
	f.Fuzz(func(t *testing.T, p []byte, x, y uint16) {
		if len(p) == 0 {
			return
		}
		a := make([]int32, len(p))
		for i, c := range p {
			a[i] = int32(c)
		}
		l, h := int(x)%len(a), int(y)%len(a)
		if l > h {
			l, h = h, l
		}
		k := NewRMQ(a).Min(l, h)
		if a[k] != naiveMin(a, l, h) {
			t.Fatalf("a[Min(%d,%d)] = %d; want %d", l, h, a[k],
				naiveMin(a, l, h))
		}
	})
}
