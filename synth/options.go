package synth

import (
	"github.com/cwbudde/algo-acid/dsp/core"
	"github.com/cwbudde/algo-acid/dsp/envelope"
	"github.com/cwbudde/algo-acid/dsp/osc"
)

const (
	defaultCutoffHz  = 1000.0
	defaultResonance = 0.5
	defaultEnvMod    = 0.5
	defaultAccent    = 0.7
	defaultDecayMS   = 200.0
	defaultDrive     = 0.3

	// defaultSlideMS is 1000 samples at 44.1 kHz.
	defaultSlideMS = 1000 / 44.1
)

// Option mutates construction-time voice parameters. Values are clamped
// exactly as the matching setters clamp them.
type Option func(*config)

type config struct {
	waveform  osc.Waveform
	cutoffHz  float64
	resonance float64
	envMod    float64
	accent    float64
	decayMS   float64
	slideMS   float64
	drive     float64
}

func defaultConfig() config {
	return config{
		waveform:  osc.WaveformSaw,
		cutoffHz:  defaultCutoffHz,
		resonance: defaultResonance,
		envMod:    defaultEnvMod,
		accent:    defaultAccent,
		decayMS:   defaultDecayMS,
		slideMS:   defaultSlideMS,
		drive:     defaultDrive,
	}
}

// WithWaveform selects the oscillator waveform.
func WithWaveform(w osc.Waveform) Option {
	return func(cfg *config) { cfg.waveform = w }
}

// WithCutoff sets the base filter cutoff in Hz, clamped to [20, 20000].
func WithCutoff(hz float64) Option {
	return func(cfg *config) { cfg.cutoffHz = core.Clamp(hz, MinCutoffHz, MaxCutoffHz) }
}

// WithResonance sets the base resonance, clamped to [0, 1].
func WithResonance(r float64) Option {
	return func(cfg *config) { cfg.resonance = core.Clamp(r, 0, 1) }
}

// WithEnvMod sets the envelope-to-cutoff depth, clamped to [0, 1].
func WithEnvMod(depth float64) Option {
	return func(cfg *config) { cfg.envMod = core.Clamp(depth, 0, 1) }
}

// WithAccent sets the accent amount, clamped to [0, 1].
func WithAccent(amount float64) Option {
	return func(cfg *config) { cfg.accent = core.Clamp(amount, 0, 1) }
}

// WithDecay sets the envelope decay in milliseconds, clamped to [10, 5000].
func WithDecay(ms float64) Option {
	return func(cfg *config) { cfg.decayMS = core.Clamp(ms, envelope.MinDecayMS, envelope.MaxDecayMS) }
}

// WithSlideTime sets the glide time constant in milliseconds.
func WithSlideTime(ms float64) Option {
	return func(cfg *config) { cfg.slideMS = nonNegative(ms) }
}

// WithDistortion sets the distortion drive, clamped to [0, 1].
func WithDistortion(drive float64) Option {
	return func(cfg *config) { cfg.drive = core.Clamp(drive, 0, 1) }
}

// nonNegative maps negative and NaN durations to zero.
func nonNegative(ms float64) float64 {
	if !(ms > 0) {
		return 0
	}

	return ms
}
