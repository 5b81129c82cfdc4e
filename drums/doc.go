// Package drums implements the analog-style percussion voices of the
// groovebox: an 808 kick, a 909 snare and closed/open hihats built on a
// shared six-oscillator metal bank, plus Machine, which mixes the kit and
// plays it from a sequencer.DrumSequencer.
//
// Every voice is idle until Trigger and silences itself once its amplitude
// envelope falls below SilenceThreshold. Time constants are specified in
// milliseconds and converted per sample rate, so the kit sounds the same at
// any rate.
package drums

import (
	"fmt"

	"github.com/cwbudde/algo-acid/dsp/core"
)

// SilenceThreshold is the envelope level below which a voice goes idle.
const SilenceThreshold = 1e-3

// decayRate returns the per-sample multiplier that reaches -60 dB after ms.
func decayRate(ms, sampleRate float64) float64 {
	return core.DecayCoefficient(0.001, ms, sampleRate)
}

// Voice is a self-terminating one-shot sound.
type Voice interface {
	Trigger()
	ProcessSample() float64
	Active() bool
	Reset()
}

func validate(voice string, sampleRate float64) error {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return fmt.Errorf("drums: %s: %w", voice, err)
	}

	return nil
}
