package drums

import (
	"math"

	"github.com/cwbudde/algo-acid/dsp/core"
)

const (
	kickPitchAmountHz = 150.0
	kickDrive         = 1.5

	defaultKickDecay = 0.5
	defaultKickPitch = 0.25
)

// Kick is an 808-style bass drum: a sine whose frequency starts
// pitchAmount above the base and falls back on a fast envelope while a
// slower envelope shapes the amplitude. The result is tanh-saturated.
type Kick struct {
	sampleRate float64

	phase    float64
	ampEnv   float64
	pitchEnv float64
	active   bool

	decay     float64
	pitch     float64
	baseFreq  float64
	ampRate   float64
	pitchRate float64
}

// NewKick returns an idle kick with decay 0.5 and a 50 Hz base.
func NewKick(sampleRate float64) (*Kick, error) {
	if err := validate("kick", sampleRate); err != nil {
		return nil, err
	}

	k := &Kick{sampleRate: sampleRate}
	k.SetDecay(defaultKickDecay)
	k.SetPitch(defaultKickPitch)

	return k, nil
}

// SetDecay maps decay in [0, 1] to an amplitude decay of 50-500 ms and a
// pitch decay of 10-50 ms.
func (k *Kick) SetDecay(decay float64) {
	k.decay = core.Clamp(decay, 0, 1)
	k.ampRate = decayRate(50+450*k.decay, k.sampleRate)
	k.pitchRate = decayRate(10+40*k.decay, k.sampleRate)
}

// SetPitch maps pitch in [0, 1] to a 40-80 Hz base frequency.
func (k *Kick) SetPitch(pitch float64) {
	k.pitch = core.Clamp(pitch, 0, 1)
	k.baseFreq = 40 + 40*k.pitch
}

// Decay returns the normalized decay control.
func (k *Kick) Decay() float64 { return k.decay }

// Pitch returns the normalized pitch control.
func (k *Kick) Pitch() float64 { return k.pitch }

// BaseFreq returns the frequency the sweep settles on.
func (k *Kick) BaseFreq() float64 { return k.baseFreq }

// Trigger restarts the kick from phase zero at full level.
func (k *Kick) Trigger() {
	k.phase = 0
	k.ampEnv = 1
	k.pitchEnv = 1
	k.active = true
}

// Active reports whether the kick is sounding.
func (k *Kick) Active() bool { return k.active }

// Reset silences the kick.
func (k *Kick) Reset() {
	k.phase = 0
	k.ampEnv = 0
	k.pitchEnv = 0
	k.active = false
}

// ProcessSample returns the next sample.
func (k *Kick) ProcessSample() float64 {
	if !k.active {
		return 0
	}

	freq := k.baseFreq + k.pitchEnv*kickPitchAmountHz
	out := math.Sin(2*math.Pi*k.phase) * k.ampEnv

	k.phase += freq / k.sampleRate
	if k.phase >= 1 {
		k.phase--
	}

	k.ampEnv *= k.ampRate
	k.pitchEnv *= k.pitchRate

	if k.ampEnv < SilenceThreshold {
		k.active = false
	}

	return math.Tanh(kickDrive * out)
}
