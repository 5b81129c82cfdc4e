// Package studio runs the acid voice and the drum machine under one
// transport and mixes them into a mono host buffer.
package studio

import (
	"fmt"

	"github.com/cwbudde/algo-acid/drums"
	"github.com/cwbudde/algo-acid/dsp/core"
	"github.com/cwbudde/algo-acid/dsp/spectrum"
	"github.com/cwbudde/algo-acid/preset"
	"github.com/cwbudde/algo-acid/sequencer"
	"github.com/cwbudde/algo-acid/synth"
	"github.com/cwbudde/algo-vecmath"
)

// Studio owns both instruments, their shared tempo and the output mix.
// It is not safe for concurrent use.
type Studio struct {
	proc core.ProcessorConfig

	synth    *synth.Synth
	drums    *drums.Machine
	analyzer *spectrum.Analyzer

	synthVolume  float64
	drumVolume   float64
	masterVolume float64

	playing     bool
	stepChanged bool

	synthBuf []float64
	drumBuf  []float64
	mixBuf   []float64
}

// New builds a studio at sampleRate with the first acid preset and the
// Basic Beat drum pattern loaded.
func New(sampleRate float64, opts ...Option) (*Studio, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("studio: %w", err)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	proc := core.ApplyProcessorOptions(
		core.WithSampleRate(sampleRate),
		core.WithBlockSize(cfg.blockSize),
	)

	syn, err := synth.New(proc.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("studio: %w", err)
	}

	kit, err := drums.NewMachine(proc.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("studio: %w", err)
	}

	analyzer, err := spectrum.NewAnalyzer(proc.SampleRate, spectrum.WithFFTSize(cfg.spectrumSize))
	if err != nil {
		return nil, fmt.Errorf("studio: %w", err)
	}

	s := &Studio{
		proc:         proc,
		synth:        syn,
		drums:        kit,
		analyzer:     analyzer,
		synthVolume:  cfg.synthVolume,
		drumVolume:   cfg.drumVolume,
		masterVolume: cfg.masterVolume,
		synthBuf:     make([]float64, proc.BlockSize),
		drumBuf:      make([]float64, proc.BlockSize),
		mixBuf:       make([]float64, proc.BlockSize),
	}

	s.applyPreset(preset.At(0))

	if cfg.tempo > 0 {
		s.SetTempo(cfg.tempo)
	}

	return s, nil
}

// SampleRate returns the output sample rate.
func (s *Studio) SampleRate() float64 { return s.proc.SampleRate }

// BlockSize returns the internal render block length.
func (s *Studio) BlockSize() int { return s.proc.BlockSize }

// Synth returns the melodic voice.
func (s *Studio) Synth() *synth.Synth { return s.synth }

// Drums returns the drum machine.
func (s *Studio) Drums() *drums.Machine { return s.drums }

// Start rewinds both sequencers to step 0 and starts the transport.
func (s *Studio) Start() {
	s.synth.Start()
	s.drums.Start()
	s.playing = true
}

// Stop halts both sequencers. Sounding notes and drums ring out.
func (s *Studio) Stop() {
	s.synth.Stop()
	s.drums.Stop()
	s.playing = false
}

// Playing reports whether the transport runs.
func (s *Studio) Playing() bool { return s.playing }

// SetTempo sets the shared tempo in BPM, clamped to [60, 300].
func (s *Studio) SetTempo(bpm float64) {
	s.synth.SetTempo(bpm)
	s.drums.SetTempo(bpm)
}

// Tempo returns the shared tempo.
func (s *Studio) Tempo() float64 { return s.synth.Tempo() }

// SynthStep returns the melodic step sounding now, or -1 when stopped or
// before the first step of a run.
func (s *Studio) SynthStep() int {
	if !s.playing {
		return -1
	}

	return s.synth.Sequencer().LastStep()
}

// DrumStep returns the drum step sounding now, or -1 when stopped or before
// the first step of a run.
func (s *Studio) DrumStep() int {
	if !s.playing {
		return -1
	}

	return s.drums.Sequencer().LastStep()
}

// StepChanged reports whether either sequencer emitted a step during the
// last Process call.
func (s *Studio) StepChanged() bool { return s.stepChanged }

// LoadPreset applies the named acid preset to the voice and sets the shared
// tempo to the preset's.
func (s *Studio) LoadPreset(name string) error {
	p, ok := preset.Lookup(name)
	if !ok {
		return fmt.Errorf("studio: preset %q: %w", name, preset.ErrNotFound)
	}

	s.applyPreset(p)

	return nil
}

func (s *Studio) applyPreset(p preset.Preset) {
	s.synth.ApplyPreset(p)
	s.drums.SetTempo(s.synth.Tempo())
}

// LoadDrumPattern loads the named drum pattern. The tempo is unchanged.
func (s *Studio) LoadDrumPattern(name string) error {
	p, ok := preset.LookupDrum(name)
	if !ok {
		return fmt.Errorf("studio: drum pattern %q: %w", name, preset.ErrNotFound)
	}

	s.drums.Sequencer().LoadPattern(p.Pattern)

	return nil
}

// SetSynthStep programs one melodic step.
func (s *Studio) SetSynthStep(i int, step sequencer.Step) { s.synth.SetStep(i, step) }

// SetDrumStep switches one drum hit on or off.
func (s *Studio) SetDrumStep(i int, t sequencer.Track, on bool) {
	s.drums.Sequencer().SetStep(i, t, on)
}

// SetSynthVolume sets the melodic voice level in [0, 1].
func (s *Studio) SetSynthVolume(v float64) { s.synthVolume = core.Clamp(v, 0, 1) }

// SetDrumVolume sets the drum kit level in [0, 1].
func (s *Studio) SetDrumVolume(v float64) { s.drumVolume = core.Clamp(v, 0, 1) }

// SetMasterVolume sets the output level in [0, 1].
func (s *Studio) SetMasterVolume(v float64) { s.masterVolume = core.Clamp(v, 0, 1) }

// Volumes returns the synth, drum and master levels.
func (s *Studio) Volumes() (synthVol, drumVol, master float64) {
	return s.synthVolume, s.drumVolume, s.masterVolume
}

// Spectrum returns the smoothed output level in dBFS at each of freqs.
func (s *Studio) Spectrum(freqs []float64) []float64 { return s.analyzer.CurveDB(freqs) }

// Analyzer returns the output spectrum analyzer.
func (s *Studio) Analyzer() *spectrum.Analyzer { return s.analyzer }

// Process fills dst with the mixed output, clamped to [-1, 1]. Both
// sequencers are ticked once per sample while the transport runs.
func (s *Studio) Process(dst []float32) {
	s.stepChanged = false

	for off := 0; off < len(dst); off += s.proc.BlockSize {
		n := min(s.proc.BlockSize, len(dst)-off)
		s.processBlock(dst[off : off+n])
	}
}

func (s *Studio) processBlock(dst []float32) {
	n := len(dst)
	syn := s.synthBuf[:n]
	kit := s.drumBuf[:n]
	mix := s.mixBuf[:n]

	for i := range n {
		if s.playing {
			if s.synth.Tick() >= 0 {
				s.stepChanged = true
			}

			if _, ok := s.drums.Tick(); ok {
				s.stepChanged = true
			}
		}

		syn[i] = s.synth.ProcessSample()
		kit[i] = s.drums.ProcessSample()
	}

	vecmath.ScaleBlock(mix, syn, s.synthVolume)
	vecmath.ScaleBlock(syn, kit, s.drumVolume)
	vecmath.AddBlockInPlace(mix, syn)
	vecmath.ScaleBlock(kit, mix, s.masterVolume)

	s.analyzer.Write(kit)
	core.StoreFloat32(dst, kit, 1)
}

// Reset rewinds both instruments, clears the analyzer and stops the
// transport. Patterns and parameters are kept.
func (s *Studio) Reset() {
	s.Stop()
	s.synth.Reset()
	s.drums.Reset()
	s.analyzer.Reset()
	s.stepChanged = false
}
