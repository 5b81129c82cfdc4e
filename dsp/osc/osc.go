package osc

import (
	"fmt"

	"github.com/cwbudde/algo-acid/dsp/core"
)

const (
	// MinFrequencyHz is the lowest accepted oscillator frequency.
	MinFrequencyHz = 20.0
	// MaxFrequencyHz is the highest accepted oscillator frequency.
	MaxFrequencyHz = 20000.0

	defaultFrequencyHz = 440.0
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	// WaveformSaw is a rising sawtooth from -1 to 1.
	WaveformSaw Waveform = iota
	// WaveformSquare is a 50% duty pulse, +1 for the first half period.
	WaveformSquare
)

func (w Waveform) String() string {
	switch w {
	case WaveformSaw:
		return "saw"
	case WaveformSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseWaveform maps "saw" or "square" to a Waveform.
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "saw", "sawtooth":
		return WaveformSaw, nil
	case "square", "pulse":
		return WaveformSquare, nil
	default:
		return WaveformSaw, fmt.Errorf("osc: unknown waveform: %q", name)
	}
}

// Oscillator is a PolyBLEP saw/square generator.
type Oscillator struct {
	sampleRate float64
	frequency  float64
	waveform   Waveform
	phase      float64
}

// New constructs an oscillator at 440 Hz producing a sawtooth.
func New(sampleRate float64) (*Oscillator, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("osc: %w", err)
	}

	return &Oscillator{
		sampleRate: sampleRate,
		frequency:  defaultFrequencyHz,
		waveform:   WaveformSaw,
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (o *Oscillator) SampleRate() float64 { return o.sampleRate }

// Frequency returns the oscillator frequency in Hz.
func (o *Oscillator) Frequency() float64 { return o.frequency }

// Waveform returns the active waveform.
func (o *Oscillator) Waveform() Waveform { return o.waveform }

// Phase returns the normalized phase in [0, 1).
func (o *Oscillator) Phase() float64 { return o.phase }

// SetFrequency sets the frequency, clamped to [20, 20000] Hz.
func (o *Oscillator) SetFrequency(hz float64) {
	o.frequency = core.Clamp(hz, MinFrequencyHz, MaxFrequencyHz)
}

// SetWaveform selects the waveform. Unknown values fall back to sawtooth.
func (o *Oscillator) SetWaveform(w Waveform) {
	if w != WaveformSquare {
		w = WaveformSaw
	}
	o.waveform = w
}

// Reset rewinds the phase to zero.
func (o *Oscillator) Reset() {
	o.phase = 0
}

// ProcessSample returns one output sample and advances the phase.
func (o *Oscillator) ProcessSample() float64 {
	dt := o.frequency / o.sampleRate

	var out float64
	if o.waveform == WaveformSquare {
		out = square(o.phase, dt)
	} else {
		out = saw(o.phase, dt)
	}

	o.phase += dt
	if o.phase >= 1 {
		o.phase -= 1
	}

	return out
}

// Process fills dst with consecutive samples.
func (o *Oscillator) Process(dst []float64) {
	for i := range dst {
		dst[i] = o.ProcessSample()
	}
}

func saw(phase, dt float64) float64 {
	return 2*phase - 1 - PolyBLEP(phase, dt)
}

func square(phase, dt float64) float64 {
	out := -1.0
	if phase < 0.5 {
		out = 1
	}

	falling := phase + 0.5
	if falling >= 1 {
		falling -= 1
	}

	return out + PolyBLEP(phase, dt) - PolyBLEP(falling, dt)
}

// PolyBLEP returns the two-sample polynomial band-limited step residual for
// a unit step located at phase 0, evaluated at normalized phase t with phase
// increment dt. The residual is zero outside the window (dt, 1-dt).
func PolyBLEP(t, dt float64) float64 {
	switch {
	case dt <= 0:
		return 0
	case t < dt:
		t /= dt
		return t + t - t*t - 1
	case t > 1-dt:
		t = (t - 1) / dt
		return t*t + t + t + 1
	default:
		return 0
	}
}
