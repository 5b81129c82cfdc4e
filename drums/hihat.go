package drums

import (
	"math"

	"github.com/cwbudde/algo-acid/dsp/noise"
)

// metalRatios are the inharmonic partial ratios of the 808 cymbal bank.
var metalRatios = [6]float64{1, 1.4471, 1.6170, 1.9265, 2.5028, 2.6637}

const (
	metalBaseHz     = 400.0
	metalNoiseLevel = 0.3
	hihatLevel      = 0.5

	closedCenterHz = 2830.0
	closedDamping  = 0.7
	closedDecayMS  = 104.0

	openCenterHz = 2470.0
	openDamping  = 0.6
	openDecayMS  = 783.0
	openChokeMS  = 15.6
)

// metal sums six naive square oscillators at metalRatios, adds LFSR noise
// and runs the mix through a two-state resonant bandpass.
type metal struct {
	phases  [6]float64
	incs    [6]float64
	noise   *noise.LFSR
	coeff   float64
	damping float64
	bp, lp  float64
}

func newMetal(sampleRate float64, seed uint16, centerHz, damping float64) metal {
	m := metal{
		noise:   noise.NewLFSR(seed),
		coeff:   2 * math.Sin(math.Pi*math.Min(centerHz, sampleRate/8)/sampleRate),
		damping: damping,
	}

	for i, r := range metalRatios {
		m.incs[i] = metalBaseHz * r / sampleRate
	}

	return m
}

func (m *metal) next() float64 {
	sum := 0.0

	for i := range m.phases {
		if m.phases[i] < 0.5 {
			sum++
		} else {
			sum--
		}

		m.phases[i] += m.incs[i]
		if m.phases[i] >= 1 {
			m.phases[i]--
		}
	}

	x := sum/float64(len(m.phases)) + metalNoiseLevel*m.noise.Next()

	m.bp += m.coeff * (x - m.bp - m.damping*m.lp)
	m.lp += m.coeff * m.bp

	return m.bp
}

func (m *metal) reset() {
	m.phases = [6]float64{}
	m.bp, m.lp = 0, 0
	m.noise.Reset()
}

// ClosedHihat is a short metallic tick.
type ClosedHihat struct {
	metal

	env    float64
	rate   float64
	active bool
}

// NewClosedHihat returns an idle closed hihat.
func NewClosedHihat(sampleRate float64) (*ClosedHihat, error) {
	if err := validate("closed hihat", sampleRate); err != nil {
		return nil, err
	}

	return &ClosedHihat{
		metal: newMetal(sampleRate, noise.SeedClosedHihat, closedCenterHz, closedDamping),
		rate:  decayRate(closedDecayMS, sampleRate),
	}, nil
}

// Trigger restarts the envelope at full level.
func (h *ClosedHihat) Trigger() {
	h.env = 1
	h.active = true
}

// Active reports whether the hihat is sounding.
func (h *ClosedHihat) Active() bool { return h.active }

// Reset silences the hihat.
func (h *ClosedHihat) Reset() {
	h.metal.reset()
	h.env = 0
	h.active = false
}

// ProcessSample returns the next sample.
func (h *ClosedHihat) ProcessSample() float64 {
	if !h.active {
		return 0
	}

	out := h.next() * h.env

	h.env *= h.rate
	if h.env < SilenceThreshold {
		h.active = false
	}

	return out * hihatLevel
}

// OpenHihat is a sustained metallic wash that a closed hihat can choke.
type OpenHihat struct {
	metal

	env       float64
	rate      float64
	chokeRate float64
	choking   bool
	active    bool
}

// NewOpenHihat returns an idle open hihat.
func NewOpenHihat(sampleRate float64) (*OpenHihat, error) {
	if err := validate("open hihat", sampleRate); err != nil {
		return nil, err
	}

	return &OpenHihat{
		metal:     newMetal(sampleRate, noise.SeedOpenHihat, openCenterHz, openDamping),
		rate:      decayRate(openDecayMS, sampleRate),
		chokeRate: decayRate(openChokeMS, sampleRate),
	}, nil
}

// Trigger restarts the envelope at full level and cancels a pending choke.
func (h *OpenHihat) Trigger() {
	h.env = 1
	h.active = true
	h.choking = false
}

// Choke switches a sounding hihat to the fast choke decay for the rest of
// its life. It has no effect on an idle hihat.
func (h *OpenHihat) Choke() {
	if h.active {
		h.choking = true
	}
}

// Choking reports whether the choke decay is in effect.
func (h *OpenHihat) Choking() bool { return h.choking }

// Active reports whether the hihat is sounding.
func (h *OpenHihat) Active() bool { return h.active }

// Reset silences the hihat.
func (h *OpenHihat) Reset() {
	h.metal.reset()
	h.env = 0
	h.choking = false
	h.active = false
}

// ProcessSample returns the next sample.
func (h *OpenHihat) ProcessSample() float64 {
	if !h.active {
		return 0
	}

	out := h.next() * h.env

	if h.choking {
		h.env *= h.chokeRate
	} else {
		h.env *= h.rate
	}

	if h.env < SilenceThreshold {
		h.active = false
	}

	return out * hihatLevel
}
