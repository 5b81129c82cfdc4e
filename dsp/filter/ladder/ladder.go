package ladder

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-acid/dsp/core"
)

const (
	defaultCutoffHz  = 1000.0
	defaultResonance = 0.0

	// MinCutoffHz is the lowest accepted cutoff frequency.
	MinCutoffHz = 20.0
	// MaxCutoffRatio bounds the cutoff relative to the sample rate.
	MaxCutoffRatio = 0.49

	// maxFeedback is the feedback gain reached at resonance 1.
	maxFeedback = 4.0
	stateLimit  = 32.0
)

// Option mutates constructor configuration.
type Option func(*config)

type config struct {
	cutoffHz  float64
	resonance float64
}

// WithCutoffHz sets the initial cutoff in Hz. The value is clamped to
// [20, 0.49*sampleRate] at construction.
func WithCutoffHz(cutoffHz float64) Option {
	return func(cfg *config) {
		cfg.cutoffHz = cutoffHz
	}
}

// WithResonance sets the initial resonance, clamped to [0, 1].
func WithResonance(resonance float64) Option {
	return func(cfg *config) {
		cfg.resonance = resonance
	}
}

// State contains the three stage integrator memories and the previous
// third-stage output used by the feedback path.
type State struct {
	Stage  [3]float64
	Output float64
}

// Filter is a 3-pole low-pass filter with saturated resonance feedback.
type Filter struct {
	sampleRate float64
	cutoffHz   float64
	resonance  float64

	g float64 // per-stage gain G = g/(1+g)
	k float64 // feedback gain

	state State
}

// New constructs a filter at 1 kHz cutoff and zero resonance unless
// overridden by options.
func New(sampleRate float64, opts ...Option) (*Filter, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("ladder: %w", err)
	}

	cfg := config{cutoffHz: defaultCutoffHz, resonance: defaultResonance}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	f := &Filter{sampleRate: sampleRate}
	f.SetCutoffHz(cfg.cutoffHz)
	f.SetResonance(cfg.resonance)

	return f, nil
}

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// CutoffHz returns the cutoff frequency in Hz.
func (f *Filter) CutoffHz() float64 { return f.cutoffHz }

// Resonance returns the normalized resonance in [0, 1].
func (f *Filter) Resonance() float64 { return f.resonance }

// SetCutoffHz updates the cutoff, clamped to [20, 0.49*sampleRate].
func (f *Filter) SetCutoffHz(cutoffHz float64) {
	f.cutoffHz = core.Clamp(cutoffHz, MinCutoffHz, MaxCutoffRatio*f.sampleRate)

	g := math.Tan(math.Pi * f.cutoffHz / f.sampleRate)
	f.g = g / (1 + g)
}

// SetResonance updates resonance, clamped to [0, 1]. Resonance maps linearly
// onto a feedback gain of 0..4.
func (f *Filter) SetResonance(resonance float64) {
	f.resonance = core.Clamp(resonance, 0, 1)
	f.k = f.resonance * maxFeedback
}

// Reset clears all stage memories.
func (f *Filter) Reset() {
	f.state = State{}
}

// State returns a copy of the current filter state.
func (f *Filter) State() State {
	return f.state
}

// SetState restores an externally saved filter state.
func (f *Filter) SetState(state State) error {
	for _, v := range state.Stage {
		if !core.IsFinite(v) {
			return fmt.Errorf("ladder: state contains NaN or Inf")
		}
	}

	if !core.IsFinite(state.Output) {
		return fmt.Errorf("ladder: state contains NaN or Inf")
	}

	f.state = state

	return nil
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(input float64) float64 {
	if !core.IsFinite(input) {
		input = 0
	}

	s := &f.state

	u := input - math.Tanh(f.k*s.Output)

	y0 := f.stage(&s.Stage[0], u)
	y1 := f.stage(&s.Stage[1], y0)
	y2 := f.stage(&s.Stage[2], y1)
	s.Output = clipState(y2)

	return core.Sanitize(SoftClip(y2))
}

// stage runs one trapezoidal one-pole low-pass and returns its output.
// The memory holds the integrator state, so after the call it differs from
// the stage output by v.
func (f *Filter) stage(mem *float64, x float64) float64 {
	v := f.g * (x - *mem)
	y := v + *mem
	*mem = clipState(core.FlushDenormals(y + v))
	return y
}

// ProcessInPlace filters buf in place.
func (f *Filter) ProcessInPlace(buf []float64) {
	for i := range buf {
		buf[i] = f.ProcessSample(buf[i])
	}
}

// ProcessTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessTo(dst, src []float64) {
	n := len(src)
	if n == 0 {
		return
	}

	_ = dst[n-1]
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// SoftClip is the identity on [-1, 1] and saturates exponentially toward
// ±1.5 outside it. It is continuous with unit slope at ±1.
func SoftClip(x float64) float64 {
	switch {
	case x > 1:
		return 1 + 0.5*(1-math.Exp(-2*(x-1)))
	case x < -1:
		return -1 - 0.5*(1-math.Exp(2*(x+1)))
	default:
		return x
	}
}

func clipState(value float64) float64 {
	if value > stateLimit {
		return stateLimit
	}

	if value < -stateLimit {
		return -stateLimit
	}

	return value
}
