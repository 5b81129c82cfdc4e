package studio

import (
	"github.com/cwbudde/algo-acid/dsp/core"
	"github.com/cwbudde/algo-acid/sequencer"
)

const (
	defaultSynthVolume  = 0.8
	defaultDrumVolume   = 0.8
	defaultMasterVolume = 0.8
	defaultSpectrumSize = 2048
)

// Option mutates construction-time studio parameters.
type Option func(*config)

type config struct {
	blockSize    int
	tempo        float64
	synthVolume  float64
	drumVolume   float64
	masterVolume float64
	spectrumSize int
}

func defaultConfig() config {
	return config{
		blockSize:    core.DefaultProcessorConfig().BlockSize,
		synthVolume:  defaultSynthVolume,
		drumVolume:   defaultDrumVolume,
		masterVolume: defaultMasterVolume,
		spectrumSize: defaultSpectrumSize,
	}
}

// WithBlockSize sets the internal render block. Non-positive sizes keep the
// default.
func WithBlockSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.blockSize = n
		}
	}
}

// WithTempo overrides the tempo of the initial preset, clamped to [60, 300].
func WithTempo(bpm float64) Option {
	return func(cfg *config) { cfg.tempo = core.Clamp(bpm, sequencer.MinTempo, sequencer.MaxTempo) }
}

// WithSynthVolume sets the melodic voice level in [0, 1].
func WithSynthVolume(v float64) Option {
	return func(cfg *config) { cfg.synthVolume = core.Clamp(v, 0, 1) }
}

// WithDrumVolume sets the drum kit level in [0, 1].
func WithDrumVolume(v float64) Option {
	return func(cfg *config) { cfg.drumVolume = core.Clamp(v, 0, 1) }
}

// WithMasterVolume sets the output level in [0, 1].
func WithMasterVolume(v float64) Option {
	return func(cfg *config) { cfg.masterVolume = core.Clamp(v, 0, 1) }
}

// WithSpectrumSize sets the FFT size of the output analyzer. See
// spectrum.WithFFTSize for the accepted sizes.
func WithSpectrumSize(n int) Option {
	return func(cfg *config) { cfg.spectrumSize = n }
}
