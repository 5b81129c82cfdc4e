package noise

import "testing"

func TestLFSRDeterministic(t *testing.T) {
	a := NewLFSR(SeedClosedHihat)
	b := NewLFSR(SeedClosedHihat)

	for i := range 10000 {
		x, y := a.Next(), b.Next()
		if x != y {
			t.Fatalf("sample %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestLFSRFirstStep(t *testing.T) {
	l := NewLFSR(0xACE1)
	got := l.Next()

	// 0xACE1 taps 1^0^0^1 = 0, so the register shifts right with a zero fill.
	if l.State() != 0x5670 {
		t.Fatalf("state = %#04x, want 0x5670", l.State())
	}

	if want := float64(0x5670)/32768 - 1; got != want {
		t.Fatalf("sample = %v, want %v", got, want)
	}
}

func TestLFSRRangeAndSpread(t *testing.T) {
	l := NewLFSR(SeedOpenHihat)

	var (
		sum    float64
		lo, hi = 1.0, -1.0
	)

	const n = 1 << 16
	for range n {
		x := l.Next()
		if x < -1 || x >= 1 {
			t.Fatalf("sample %v outside [-1, 1)", x)
		}

		sum += x
		lo = min(lo, x)
		hi = max(hi, x)
	}

	if mean := sum / n; mean < -0.1 || mean > 0.1 {
		t.Fatalf("mean = %v, want near 0", mean)
	}

	if hi-lo < 1.5 {
		t.Fatalf("range [%v, %v] too narrow", lo, hi)
	}
}

func TestLFSRNeverLocksAtZero(t *testing.T) {
	l := NewLFSR(0)
	if l.Seed() != DefaultSeed {
		t.Fatalf("seed = %#04x, want default", l.Seed())
	}

	for range 100000 {
		l.Next()
		if l.State() == 0 {
			t.Fatal("register reached the all-zero lock state")
		}
	}
}

func TestLFSRReset(t *testing.T) {
	l := NewLFSR(SeedSnare)
	first := l.Next()

	for range 37 {
		l.Next()
	}

	l.Reset()

	if got := l.Next(); got != first {
		t.Fatalf("after reset = %v, want %v", got, first)
	}
}

func TestSeedsDiverge(t *testing.T) {
	a := NewLFSR(SeedSnare)
	b := NewLFSR(SeedClosedHihat)

	same := 0
	for range 256 {
		if a.Next() == b.Next() {
			same++
		}
	}

	if same > 8 {
		t.Fatalf("%d identical samples across seeds", same)
	}
}
