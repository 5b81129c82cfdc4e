// Package envelope provides the decay-only contour generator used for the
// filter and amplitude of an acid bass voice.
package envelope

import (
	"fmt"

	"github.com/cwbudde/algo-acid/dsp/core"
)

const (
	// MinDecayMS and MaxDecayMS bound the decay time.
	MinDecayMS = 10.0
	MaxDecayMS = 5000.0

	// MinAccent and MaxAccent bound the trigger peak multiplier.
	MinAccent = 0.5
	MaxAccent = 2.0

	// Threshold is the level below which the envelope is inactive and
	// snaps to exactly zero.
	Threshold = 1e-4

	defaultDecayMS = 200.0

	// decayTarget is the fraction of the peak left after the decay time.
	decayTarget = 0.01
)

// Decay is a single-stage exponential decay envelope. Trigger jumps the
// value to the accent-scaled peak; every processed sample multiplies it by a
// fixed coefficient chosen so the value reaches 1% of the peak after the
// configured decay time.
type Decay struct {
	sampleRate float64
	decayMS    float64
	rate       float64
	peak       float64
	value      float64
}

// New constructs an idle envelope with a 200 ms decay.
func New(sampleRate float64) (*Decay, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}

	d := &Decay{sampleRate: sampleRate, peak: 1}
	d.SetDecayMS(defaultDecayMS)

	return d, nil
}

// SetDecayMS sets the decay time in milliseconds, clamped to [10, 5000].
func (d *Decay) SetDecayMS(ms float64) {
	d.decayMS = core.Clamp(ms, MinDecayMS, MaxDecayMS)
	d.rate = core.DecayCoefficient(decayTarget, d.decayMS, d.sampleRate)
}

// DecayMS returns the decay time in milliseconds.
func (d *Decay) DecayMS() float64 { return d.decayMS }

// Rate returns the per-sample decay multiplier.
func (d *Decay) Rate() float64 { return d.rate }

// Peak returns the peak of the most recent trigger.
func (d *Decay) Peak() float64 { return d.peak }

// Trigger restarts the envelope at accent, clamped to [0.5, 2].
func (d *Decay) Trigger(accent float64) {
	d.peak = core.Clamp(accent, MinAccent, MaxAccent)
	d.value = d.peak
}

// ProcessSample returns the current value, then advances the decay.
func (d *Decay) ProcessSample() float64 {
	out := d.value

	d.value *= d.rate
	if d.value < Threshold {
		d.value = 0
	}

	return out
}

// Value returns the current value without advancing.
func (d *Decay) Value() float64 { return d.value }

// Active reports whether the value is above Threshold.
func (d *Decay) Active() bool { return d.value > Threshold }

// Reset silences the envelope immediately.
func (d *Decay) Reset() {
	d.value = 0
}
