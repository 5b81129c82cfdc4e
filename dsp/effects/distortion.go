package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-acid/dsp/core"
)

const (
	defaultDistortionDrive = 0.3
	defaultDistortionMix   = 1.0

	// bypassDrive is the drive below which the input passes untouched.
	bypassDrive = 0.01

	driveGainScale    = 10.0
	driveCompensation = 0.5
)

// DistortionOption mutates construction-time parameters.
type DistortionOption func(*distortionConfig)

type distortionConfig struct {
	drive float64
	mix   float64
}

func defaultDistortionConfig() distortionConfig {
	return distortionConfig{
		drive: defaultDistortionDrive,
		mix:   defaultDistortionMix,
	}
}

// WithDistortionDrive sets the drive amount, clamped to [0, 1].
func WithDistortionDrive(drive float64) DistortionOption {
	return func(cfg *distortionConfig) {
		cfg.drive = core.Clamp(drive, 0, 1)
	}
}

// WithDistortionMix sets the dry/wet mix, clamped to [0, 1].
func WithDistortionMix(mix float64) DistortionOption {
	return func(cfg *distortionConfig) {
		cfg.mix = core.Clamp(mix, 0, 1)
	}
}

// Distortion is a tanh overdrive with loudness compensation and dry/wet mix.
//
// The wet path is tanh(x*(1+10*drive)) / (1+0.5*drive). Drive below 0.01
// bypasses the stage entirely.
type Distortion struct {
	sampleRate float64
	drive      float64
	mix        float64
	gain       float64
	comp       float64
}

// NewDistortion creates a distortion stage.
func NewDistortion(sampleRate float64, opts ...DistortionOption) (*Distortion, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("distortion: %w", err)
	}

	cfg := defaultDistortionConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	d := &Distortion{sampleRate: sampleRate, mix: cfg.mix}
	d.SetDrive(cfg.drive)

	return d, nil
}

// SetDrive sets the drive amount, clamped to [0, 1].
func (d *Distortion) SetDrive(drive float64) {
	d.drive = core.Clamp(drive, 0, 1)
	d.gain = 1 + driveGainScale*d.drive
	d.comp = 1 / (1 + driveCompensation*d.drive)
}

// SetMix sets the dry/wet mix, clamped to [0, 1].
func (d *Distortion) SetMix(mix float64) {
	d.mix = core.Clamp(mix, 0, 1)
}

// SampleRate returns the configured sample rate.
func (d *Distortion) SampleRate() float64 { return d.sampleRate }

// Drive returns the drive amount.
func (d *Distortion) Drive() float64 { return d.drive }

// Mix returns the dry/wet mix.
func (d *Distortion) Mix() float64 { return d.mix }

// Bypassed reports whether the current drive skips processing.
func (d *Distortion) Bypassed() bool { return d.drive < bypassDrive }

// ProcessSample processes one sample.
func (d *Distortion) ProcessSample(input float64) float64 {
	if d.drive < bypassDrive {
		return input
	}

	wet := math.Tanh(input*d.gain) * d.comp

	return input + d.mix*(wet-input)
}

// ProcessInPlace applies distortion to buf in place.
func (d *Distortion) ProcessInPlace(buf []float64) {
	if d.drive < bypassDrive {
		return
	}

	for i := range buf {
		buf[i] = d.ProcessSample(buf[i])
	}
}
