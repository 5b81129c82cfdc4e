package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-acid/internal/testutil"
)

func TestGoertzelValidation(t *testing.T) {
	if _, err := NewGoertzel(100, 0); err == nil {
		t.Fatal("expected error for invalid sample rate")
	}

	if _, err := NewGoertzel(30000, 48000); err == nil {
		t.Fatal("expected error above Nyquist")
	}

	if _, err := NewGoertzel(math.NaN(), 48000); err == nil {
		t.Fatal("expected error for NaN frequency")
	}
}

func TestGoertzelAmplitude(t *testing.T) {
	const sr = 48000.0

	x := testutil.DeterministicSine(1000, sr, 0.8, 4800)

	got, err := ToneAmplitude(x, 1000, sr)
	if err != nil {
		t.Fatalf("ToneAmplitude() error = %v", err)
	}

	if math.Abs(got-0.8) > 1e-6 {
		t.Fatalf("amplitude at tone = %v, want 0.8", got)
	}

	off, _ := ToneAmplitude(x, 3000, sr)
	if off > 1e-6 {
		t.Fatalf("amplitude off tone = %v, want ~0", off)
	}
}

func TestGoertzelBlockwiseMatchesOneShot(t *testing.T) {
	x := testutil.DeterministicSine(440, 44100, 1, 2048)

	g, _ := NewGoertzel(440, 44100)
	g.ProcessBlock(x[:1000])
	g.ProcessBlock(x[1000:])

	want, _ := ToneAmplitude(x, 440, 44100)
	if math.Abs(g.Amplitude()-want) > 1e-9 {
		t.Fatalf("blockwise = %v, one-shot = %v", g.Amplitude(), want)
	}

	g.Reset()
	if g.Amplitude() != 0 {
		t.Fatalf("amplitude after reset = %v", g.Amplitude())
	}
}
