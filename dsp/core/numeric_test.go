package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
		{name: "nan", value: math.NaN(), min: 20, max: 20000, expected: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestSanitize(t *testing.T) {
	if Sanitize(math.NaN()) != 0 || Sanitize(math.Inf(-1)) != 0 {
		t.Fatal("non-finite values must sanitize to 0")
	}
	if Sanitize(0.25) != 0.25 {
		t.Fatal("finite values must pass through")
	}
}

func TestLinearToDB(t *testing.T) {
	if !NearlyEqual(LinearToDB(0.1), -20, 1e-10) {
		t.Fatalf("LinearToDB(0.1) = %v, want -20", LinearToDB(0.1))
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(LinearToDB(-1)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestMIDIToFreq(t *testing.T) {
	tests := []struct {
		note float64
		want float64
		tol  float64
	}{
		{note: 69, want: 440, tol: 0.01},
		{note: 57, want: 220, tol: 0.01},
		{note: 60, want: 261.63, tol: 0.1},
		{note: 81, want: 880, tol: 0.01},
	}

	for _, tt := range tests {
		if got := MIDIToFreq(tt.note); math.Abs(got-tt.want) > tt.tol {
			t.Fatalf("MIDIToFreq(%v) = %v, want %v", tt.note, got, tt.want)
		}
	}
}

func TestFlushDenormals(t *testing.T) {
	if FlushDenormals(1e-35) != 0 {
		t.Fatal("expected tiny value to flush to zero")
	}
	if FlushDenormals(1e-3) != 1e-3 {
		t.Fatal("expected normal value to pass through")
	}
}
