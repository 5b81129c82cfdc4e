package core

import "math"

// MSToSamples converts a duration in milliseconds to a sample count at
// sampleRate. The result is never below one sample.
func MSToSamples(ms, sampleRate float64) float64 {
	samples := ms / 1000 * sampleRate
	if !(samples >= 1) {
		return 1
	}

	return samples
}

// DecayCoefficient returns the per-sample multiplier that takes an
// exponential decay from 1 down to target after ms milliseconds.
//
// target must be in (0, 1); typical values are 0.01 (-40 dB) and
// 0.001 (-60 dB).
func DecayCoefficient(target, ms, sampleRate float64) float64 {
	return math.Pow(target, 1/MSToSamples(ms, sampleRate))
}
