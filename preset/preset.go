// Package preset holds the built-in acid patterns for the synth voice and
// the named drum patterns for the drum machine.
package preset

import (
	"errors"
	"strings"

	"github.com/cwbudde/algo-acid/dsp/osc"
	"github.com/cwbudde/algo-acid/sequencer"
)

// ErrNotFound is returned when no preset or pattern has the requested name.
var ErrNotFound = errors.New("preset: not found")

// Preset is a complete synth setup: a pattern plus the voice parameters and
// tempo it was written for.
type Preset struct {
	Name      string
	Steps     sequencer.Pattern
	Tempo     float64
	Cutoff    float64
	Resonance float64
	EnvMod    float64
	DecayMS   float64
	Waveform  osc.Waveform
}

// Count returns the number of synth presets.
func Count() int { return len(acid) }

// At returns the preset at index i, wrapping around in both directions so
// hosts can step through the list.
func At(i int) Preset {
	n := len(acid)

	return acid[((i%n)+n)%n]
}

// Names returns the preset names in order.
func Names() []string {
	names := make([]string, len(acid))
	for i, p := range acid {
		names[i] = p.Name
	}

	return names
}

// Lookup finds a preset by case-insensitive name.
func Lookup(name string) (Preset, bool) {
	for _, p := range acid {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}

	return Preset{}, false
}
