package synth

import (
	"github.com/cwbudde/algo-acid/preset"
	"github.com/cwbudde/algo-acid/sequencer"
)

// Sequencer returns the voice's step sequencer.
func (s *Synth) Sequencer() *sequencer.Sequencer { return s.seq }

// SetStep programs step i.
func (s *Synth) SetStep(i int, step sequencer.Step) { s.seq.SetStep(i, step) }

// Step returns step i.
func (s *Synth) Step(i int) (sequencer.Step, bool) { return s.seq.Step(i) }

// ToggleStep flips the Active flag of step i.
func (s *Synth) ToggleStep(i int) { s.seq.ToggleStep(i) }

// LoadPattern replaces the whole pattern.
func (s *Synth) LoadPattern(p sequencer.Pattern) { s.seq.LoadPattern(p) }

// ClearPattern deactivates every step.
func (s *Synth) ClearPattern() { s.seq.Clear() }

// SetTempo sets the sequencer tempo in BPM, clamped to [60, 300].
func (s *Synth) SetTempo(bpm float64) { s.seq.SetTempo(bpm) }

// Tempo returns the sequencer tempo.
func (s *Synth) Tempo() float64 { return s.seq.Tempo() }

// Start rewinds the sequencer and starts playing.
func (s *Synth) Start() { s.seq.Start() }

// Stop stops the sequencer and releases the gate.
func (s *Synth) Stop() {
	s.seq.Stop()
	s.NoteOff()
}

// Playing reports whether the sequencer is running.
func (s *Synth) Playing() bool { return s.seq.Playing() }

// Tick advances the sequencer one sample and plays the emitted step. It
// returns the position that will play next, or -1 when no step was emitted.
func (s *Synth) Tick() int {
	ev, ok := s.seq.Tick()
	if !ok {
		return -1
	}

	s.Play(ev.Step)

	return s.seq.CurrentStep()
}

// Play sounds one step: an active step starts its note, a rest closes the
// gate.
func (s *Synth) Play(step sequencer.Step) {
	if !step.Active {
		s.NoteOff()
		return
	}

	s.NoteOn(float64(step.Note), step.Accent, step.Slide)
}

// ApplyPreset loads the preset's pattern, tempo and voice settings.
func (s *Synth) ApplyPreset(p preset.Preset) {
	s.seq.LoadPattern(p.Steps)
	s.SetTempo(p.Tempo)
	s.SetCutoff(p.Cutoff)
	s.SetResonance(p.Resonance)
	s.SetEnvMod(p.EnvMod)
	s.SetDecay(p.DecayMS)
	s.SetWaveform(p.Waveform)
}
