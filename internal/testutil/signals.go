package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// NaiveSquare generates an aliasing ±amplitude square wave whose period is
// periodSamples samples, high for the first highSamples of each period.
func NaiveSquare(periodSamples, highSamples int, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	if periodSamples <= 0 {
		return out
	}
	for i := range out {
		if i%periodSamples < highSamples {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}
	return sum
}

// Peak returns max |x[i]|.
func Peak(x []float64) float64 {
	peak := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Float64s widens a float32 buffer.
func Float64s(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
