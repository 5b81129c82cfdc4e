package osc

import (
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for invalid sample rate")
	}

	o, err := New(44100)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if o.Frequency() != 440 {
		t.Fatalf("default frequency = %v, want 440", o.Frequency())
	}

	if o.Waveform() != WaveformSaw {
		t.Fatalf("default waveform = %v, want saw", o.Waveform())
	}
}

func TestSetFrequencyClamps(t *testing.T) {
	o, _ := New(44100)

	o.SetFrequency(880)
	if o.Frequency() != 880 {
		t.Fatalf("frequency = %v, want 880", o.Frequency())
	}

	o.SetFrequency(5)
	if o.Frequency() != MinFrequencyHz {
		t.Fatalf("frequency = %v, want %v", o.Frequency(), MinFrequencyHz)
	}

	o.SetFrequency(25000)
	if o.Frequency() != MaxFrequencyHz {
		t.Fatalf("frequency = %v, want %v", o.Frequency(), MaxFrequencyHz)
	}

	o.SetFrequency(math.NaN())
	if o.Frequency() != MinFrequencyHz {
		t.Fatalf("NaN frequency = %v, want %v", o.Frequency(), MinFrequencyHz)
	}
}

func TestOutputRange(t *testing.T) {
	freqs := []float64{20, 55, 440, 1234.5, 5000, 11025, 15000, 20000}

	for _, w := range []Waveform{WaveformSaw, WaveformSquare} {
		for _, f := range freqs {
			o, _ := New(44100)
			o.SetWaveform(w)
			o.SetFrequency(f)

			for i := range 20000 {
				y := o.ProcessSample()
				if y < -1.5 || y > 1.5 || math.IsNaN(y) {
					t.Fatalf("%s %v Hz sample %d = %v out of range", w, f, i, y)
				}
			}
		}
	}
}

func TestPhaseWraps(t *testing.T) {
	o, _ := New(44100)
	o.SetFrequency(19999)

	for range 5000 {
		o.ProcessSample()
		if p := o.Phase(); p < 0 || p >= 1 {
			t.Fatalf("phase = %v, want [0,1)", p)
		}
	}
}

func TestSawIsZeroMean(t *testing.T) {
	o, _ := New(44100)
	o.SetFrequency(441)

	sum := 0.0
	for range 4410 {
		sum += o.ProcessSample()
	}

	if mean := sum / 4410; math.Abs(mean) > 0.02 {
		t.Fatalf("saw mean = %v, want ~0", mean)
	}
}

func TestSquareHalfPeriods(t *testing.T) {
	o, _ := New(44100)
	o.SetWaveform(WaveformSquare)
	o.SetFrequency(100)

	// Far from the edges the square must sit at its rails.
	buf := make([]float64, 441)
	o.Process(buf)

	if buf[100] != 1 {
		t.Fatalf("first half sample = %v, want 1", buf[100])
	}

	if buf[320] != -1 {
		t.Fatalf("second half sample = %v, want -1", buf[320])
	}
}

func TestPolyBLEP(t *testing.T) {
	const dt = 0.1

	if PolyBLEP(0.5, dt) != 0 {
		t.Fatal("expected zero residual away from the discontinuity")
	}

	if got := PolyBLEP(0, dt); got != -1 {
		t.Fatalf("PolyBLEP(0) = %v, want -1", got)
	}

	// Continuity at the window edges.
	if got := PolyBLEP(dt-1e-12, dt); math.Abs(got) > 1e-9 {
		t.Fatalf("PolyBLEP(dt-) = %v, want ~0", got)
	}

	if got := PolyBLEP(1-dt+1e-12, dt); math.Abs(got) > 1e-9 {
		t.Fatalf("PolyBLEP(1-dt+) = %v, want ~0", got)
	}

	if PolyBLEP(0.01, 0) != 0 {
		t.Fatal("expected zero residual for zero increment")
	}
}

func TestSetWaveformFallsBackToSaw(t *testing.T) {
	o, _ := New(44100)
	o.SetWaveform(Waveform(42))

	if o.Waveform() != WaveformSaw {
		t.Fatalf("waveform = %v, want saw", o.Waveform())
	}
}

func TestParseWaveform(t *testing.T) {
	if w, err := ParseWaveform("square"); err != nil || w != WaveformSquare {
		t.Fatalf("ParseWaveform(square) = %v, %v", w, err)
	}

	if _, err := ParseWaveform("triangle"); err == nil {
		t.Fatal("expected error for unsupported waveform")
	}
}
