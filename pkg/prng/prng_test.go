package prng

import "testing"

func TestSeedDeterministic(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 1000; i++ {
		if got, want := a.Next(), b.Next(); got != want {
			t.Fatalf("draw %d: sources diverged: %d != %d", i, got, want)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same > 1 {
		t.Errorf("different seeds produced %d/100 identical draws", same)
	}
}

func TestSeedFillsState(t *testing.T) {
	src := New(0)

	// Even a zero seed must produce a non-degenerate state.
	var zero Source
	if src.s == zero.s {
		t.Fatal("Seed(0) left the state all zeros")
	}
	if src.s[0] == src.s[1] && src.s[1] == src.s[2] {
		t.Error("state words should not repeat after seeding")
	}
}

func TestUintNBounds(t *testing.T) {
	src := New(99)

	for _, n := range []uint64{1, 2, 3, 7, 100, 1 << 33} {
		for i := 0; i < 1000; i++ {
			if v := src.UintN(n); v >= n {
				t.Fatalf("UintN(%d) = %d, out of range", n, v)
			}
		}
	}
}

func TestUintNOne(t *testing.T) {
	src := New(7)
	for i := 0; i < 100; i++ {
		if v := src.UintN(1); v != 0 {
			t.Fatalf("UintN(1) = %d, want 0", v)
		}
	}
}

func TestUintNZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("UintN(0) did not panic")
		}
	}()
	New(1).UintN(0)
}

// TestUintNFairness draws many values for a range that does not divide 2^64
// and checks every bucket stays close to the expected uniform count. A
// chi-square statistic over 10 buckets with 100k draws should comfortably
// sit below the 0.999 quantile (27.88 for 9 degrees of freedom).
func TestUintNFairness(t *testing.T) {
	const (
		n     = 10
		draws = 100000
	)
	src := New(42)

	var buckets [n]int
	for i := 0; i < draws; i++ {
		buckets[src.UintN(n)]++
	}

	expected := float64(draws) / n
	chi2 := 0.0
	for _, c := range buckets {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	if chi2 > 27.88 {
		t.Errorf("chi-square = %.2f over %v, distribution looks biased", chi2, buckets)
	}
}

func TestDeterministicSequenceSnapshot(t *testing.T) {
	// Two fresh sources must agree draw for draw, including through
	// rejection sampling.
	a := New(0xdeadbeef)
	b := New(0xdeadbeef)
	for i := 0; i < 10000; i++ {
		if got, want := a.UintN(101), b.UintN(101); got != want {
			t.Fatalf("draw %d: %d != %d", i, got, want)
		}
	}
}
