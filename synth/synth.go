// Package synth implements the acid bass voice: a band-limited oscillator
// into a resonant 3-pole lowpass swept by a decay envelope, an envelope VCA
// and tanh overdrive, played from a 16-step sequencer with accent and slide.
package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-acid/dsp/core"
	"github.com/cwbudde/algo-acid/dsp/effects"
	"github.com/cwbudde/algo-acid/dsp/envelope"
	"github.com/cwbudde/algo-acid/dsp/filter/ladder"
	"github.com/cwbudde/algo-acid/dsp/osc"
	"github.com/cwbudde/algo-acid/sequencer"
)

const (
	// MinCutoffHz and MaxCutoffHz bound both the base and the modulated
	// filter cutoff.
	MinCutoffHz = 20.0
	MaxCutoffHz = 20000.0

	// EnvModRangeHz is the cutoff sweep at full envelope and full depth.
	EnvModRangeHz = 10000.0

	accentResonanceBoost = 0.2

	vcaBase    = 0.3
	vcaEnvGain = 0.7
	outputGain = 0.5

	// slideSnap is the distance in semitones at which a glide completes.
	slideSnap = 0.01
)

// Synth is the melodic voice and its sequencer.
type Synth struct {
	sampleRate float64

	osc    *osc.Oscillator
	filter *ladder.Filter
	env    *envelope.Decay
	dist   *effects.Distortion
	seq    *sequencer.Sequencer

	cutoffHz  float64
	resonance float64
	envMod    float64
	accent    float64
	slideMS   float64
	slideRate float64

	currentNote float64
	targetNote  float64
	sliding     bool
	gate        bool
}

// New builds a voice at sampleRate.
func New(sampleRate float64, opts ...Option) (*Synth, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	o, err := osc.New(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	f, err := ladder.New(sampleRate, ladder.WithCutoffHz(cfg.cutoffHz), ladder.WithResonance(cfg.resonance))
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	env, err := envelope.New(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	dist, err := effects.NewDistortion(sampleRate, effects.WithDistortionDrive(cfg.drive))
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	seq, err := sequencer.New(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	s := &Synth{
		sampleRate:  sampleRate,
		osc:         o,
		filter:      f,
		env:         env,
		dist:        dist,
		seq:         seq,
		cutoffHz:    cfg.cutoffHz,
		resonance:   cfg.resonance,
		envMod:      cfg.envMod,
		accent:      cfg.accent,
		currentNote: sequencer.DefaultNote,
		targetNote:  sequencer.DefaultNote,
	}

	s.osc.SetWaveform(cfg.waveform)
	s.env.SetDecayMS(cfg.decayMS)
	s.SetSlideTime(cfg.slideMS)

	return s, nil
}

// NoteOn starts note (a MIDI note number, clamped to [0, 127]). With slide
// set and the gate already open the pitch glides to note without
// retriggering the envelope; otherwise the pitch jumps and the envelope
// restarts. Accent raises the envelope peak of a retriggered note by the
// accent amount, and the filter resonance by 0.2 until the next note.
func (s *Synth) NoteOn(note float64, accent, slide bool) {
	note = core.Clamp(note, 0, sequencer.MaxNote)

	if slide && s.gate {
		s.targetNote = note
		s.sliding = true
	} else {
		s.currentNote = note
		s.targetNote = note
		s.sliding = false

		peak := 1.0
		if accent {
			peak += s.accent
		}

		s.env.Trigger(peak)
	}

	s.gate = true

	if accent {
		s.filter.SetResonance(math.Min(s.resonance+accentResonanceBoost, 1))
	} else {
		s.filter.SetResonance(s.resonance)
	}
}

// NoteOff closes the gate. The envelope keeps decaying on its own and the
// voice settles at the VCA base level.
func (s *Synth) NoteOff() {
	s.gate = false
}

// Gate reports whether a note is held.
func (s *Synth) Gate() bool { return s.gate }

// Note returns the current, possibly gliding, note number.
func (s *Synth) Note() float64 { return s.currentNote }

// Sliding reports whether a glide is in progress.
func (s *Synth) Sliding() bool { return s.sliding }

// Envelope returns the current envelope level.
func (s *Synth) Envelope() float64 { return s.env.Value() }

// SampleRate returns the voice sample rate.
func (s *Synth) SampleRate() float64 { return s.sampleRate }

// SetWaveform selects the oscillator waveform.
func (s *Synth) SetWaveform(w osc.Waveform) { s.osc.SetWaveform(w) }

// Waveform returns the oscillator waveform.
func (s *Synth) Waveform() osc.Waveform { return s.osc.Waveform() }

// SetCutoff sets the base filter cutoff in Hz, clamped to [20, 20000].
func (s *Synth) SetCutoff(hz float64) {
	s.cutoffHz = core.Clamp(hz, MinCutoffHz, MaxCutoffHz)
}

// Cutoff returns the base filter cutoff in Hz.
func (s *Synth) Cutoff() float64 { return s.cutoffHz }

// SetResonance sets the base resonance in [0, 1] and applies it at once.
func (s *Synth) SetResonance(r float64) {
	s.resonance = core.Clamp(r, 0, 1)
	s.filter.SetResonance(s.resonance)
}

// Resonance returns the base resonance.
func (s *Synth) Resonance() float64 { return s.resonance }

// SetEnvMod sets the envelope-to-cutoff depth in [0, 1].
func (s *Synth) SetEnvMod(depth float64) {
	s.envMod = core.Clamp(depth, 0, 1)
}

// EnvMod returns the envelope-to-cutoff depth.
func (s *Synth) EnvMod() float64 { return s.envMod }

// SetDecay sets the envelope decay in milliseconds, clamped to [10, 5000].
func (s *Synth) SetDecay(ms float64) { s.env.SetDecayMS(ms) }

// Decay returns the envelope decay in milliseconds.
func (s *Synth) Decay() float64 { return s.env.DecayMS() }

// SetAccent sets the accent amount in [0, 1].
func (s *Synth) SetAccent(amount float64) {
	s.accent = core.Clamp(amount, 0, 1)
}

// Accent returns the accent amount.
func (s *Synth) Accent() float64 { return s.accent }

// SetSlideTime sets the glide time constant in milliseconds. Each sample
// the pitch covers 1/samples of the remaining distance.
func (s *Synth) SetSlideTime(ms float64) {
	s.slideMS = nonNegative(ms)
	s.slideRate = 1 / math.Max(s.slideMS/1000*s.sampleRate, 1)
}

// SlideTime returns the glide time constant in milliseconds.
func (s *Synth) SlideTime() float64 { return s.slideMS }

// SetDistortion sets the overdrive amount in [0, 1].
func (s *Synth) SetDistortion(drive float64) { s.dist.SetDrive(drive) }

// Distortion returns the overdrive amount.
func (s *Synth) Distortion() float64 { return s.dist.Drive() }

// ProcessSample renders one sample.
func (s *Synth) ProcessSample() float64 {
	if s.sliding {
		if math.Abs(s.currentNote-s.targetNote) > slideSnap {
			s.currentNote += (s.targetNote - s.currentNote) * s.slideRate
		} else {
			s.currentNote = s.targetNote
			s.sliding = false
		}
	}

	s.osc.SetFrequency(core.MIDIToFreq(s.currentNote))
	x := s.osc.ProcessSample()

	env := s.env.ProcessSample()
	s.filter.SetCutoffHz(core.Clamp(s.cutoffHz+env*s.envMod*EnvModRangeHz, MinCutoffHz, MaxCutoffHz))
	y := s.filter.ProcessSample(x)

	vca := vcaBase + env*vcaEnvGain

	return s.dist.ProcessSample(y*vca) * outputGain
}

// Process renders len(dst) samples without ticking the sequencer.
func (s *Synth) Process(dst []float64) {
	for i := range dst {
		dst[i] = s.ProcessSample()
	}
}

// Render fills a host buffer, ticking the sequencer once per sample.
func (s *Synth) Render(dst []float32) {
	for i := range dst {
		s.Tick()
		dst[i] = float32(s.ProcessSample())
	}
}

// Reset zeroes the envelope, clears glide and gate, and rewinds the
// oscillator and filter. The pattern and parameters are kept.
func (s *Synth) Reset() {
	s.osc.Reset()
	s.filter.Reset()
	s.env.Reset()
	s.gate = false
	s.sliding = false
	s.currentNote = s.targetNote
}
