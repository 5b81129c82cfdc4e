package drums

import (
	"math"

	"github.com/cwbudde/algo-acid/dsp/core"
	"github.com/cwbudde/algo-acid/dsp/noise"
)

const (
	snareToneHz     = 180.0
	snareToneSweep  = 0.5
	snareHighpassHz = 360.0
	snareLowpassHz  = 2500.0
	snareDrive      = 2.0
	snareLevel      = 0.7

	defaultSnareDecay = 0.3
	defaultSnareTone  = 0.4
	defaultSnareSnap  = 0.7
)

// Snare is a 909-style snare: a sine body bent upward by its own envelope
// plus LFSR noise through a one-pole highpass/lowpass cascade. Body and
// noise decay independently; the sum is driven into tanh.
type Snare struct {
	sampleRate float64
	noise      *noise.LFSR

	phase    float64
	toneEnv  float64
	noiseEnv float64
	hp, lp   float64
	active   bool

	toneRate  float64
	noiseRate float64
	hpCoeff   float64
	lpCoeff   float64

	decay float64
	tone  float64
	snap  float64
}

// NewSnare returns an idle snare with decay 0.3 and tone 0.4.
func NewSnare(sampleRate float64) (*Snare, error) {
	if err := validate("snare", sampleRate); err != nil {
		return nil, err
	}

	s := &Snare{
		sampleRate: sampleRate,
		noise:      noise.NewLFSR(noise.SeedSnare),
		hpCoeff:    math.Exp(-2 * math.Pi * snareHighpassHz / sampleRate),
		lpCoeff:    1 - math.Exp(-2*math.Pi*snareLowpassHz/sampleRate),
		tone:       defaultSnareTone,
		snap:       defaultSnareSnap,
	}
	s.SetDecay(defaultSnareDecay)

	return s, nil
}

// SetDecay maps decay in [0, 1] to a body decay of 30-130 ms and a noise
// decay of 50-250 ms.
func (s *Snare) SetDecay(decay float64) {
	s.decay = core.Clamp(decay, 0, 1)
	s.toneRate = decayRate(30+100*s.decay, s.sampleRate)
	s.noiseRate = decayRate(50+200*s.decay, s.sampleRate)
}

// SetTone sets the body/noise balance in [0, 1]; higher is more body.
func (s *Snare) SetTone(tone float64) {
	s.tone = core.Clamp(tone, 0, 1)
}

// SetSnap stores the attack control in [0, 1]. It does not change the sound.
func (s *Snare) SetSnap(snap float64) {
	s.snap = core.Clamp(snap, 0, 1)
}

// Decay returns the normalized decay control.
func (s *Snare) Decay() float64 { return s.decay }

// Tone returns the body/noise balance.
func (s *Snare) Tone() float64 { return s.tone }

// Snap returns the stored attack control.
func (s *Snare) Snap() float64 { return s.snap }

// Trigger restarts both envelopes at full level.
func (s *Snare) Trigger() {
	s.phase = 0
	s.toneEnv = 1
	s.noiseEnv = 1
	s.active = true
}

// Active reports whether the snare is sounding.
func (s *Snare) Active() bool { return s.active }

// Reset silences the snare and rewinds its noise source.
func (s *Snare) Reset() {
	s.phase = 0
	s.toneEnv, s.noiseEnv = 0, 0
	s.hp, s.lp = 0, 0
	s.active = false
	s.noise.Reset()
}

// ProcessSample returns the next sample.
func (s *Snare) ProcessSample() float64 {
	if !s.active {
		return 0
	}

	body := math.Sin(2 * math.Pi * s.phase)

	s.phase += snareToneHz * (1 + s.toneEnv*snareToneSweep) / s.sampleRate
	if s.phase >= 1 {
		s.phase--
	}

	s.hp = s.hpCoeff * (s.hp + s.noise.Next() - s.lp)
	s.lp += s.lpCoeff * (s.hp - s.lp)

	out := body*s.toneEnv*s.tone + s.lp*s.noiseEnv*(1-0.5*s.tone)

	s.toneEnv *= s.toneRate
	s.noiseEnv *= s.noiseRate

	if s.toneEnv < SilenceThreshold && s.noiseEnv < SilenceThreshold {
		s.active = false
	}

	return math.Tanh(snareDrive*out) * snareLevel
}
