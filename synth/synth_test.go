package synth

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-acid/dsp/osc"
	"github.com/cwbudde/algo-acid/internal/testutil"
	"github.com/cwbudde/algo-acid/preset"
	"github.com/cwbudde/algo-acid/sequencer"
)

func newSynth(t *testing.T, opts ...Option) *Synth {
	t.Helper()

	s, err := New(44100, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	return s
}

func render(s *Synth, n int) []float64 {
	out := make([]float64, n)
	s.Process(out)

	return out
}

func TestNewDefaults(t *testing.T) {
	s := newSynth(t)

	if s.Cutoff() != 1000 || s.Resonance() != 0.5 || s.EnvMod() != 0.5 || s.Accent() != 0.7 {
		t.Fatalf("defaults cutoff=%v res=%v envmod=%v accent=%v", s.Cutoff(), s.Resonance(), s.EnvMod(), s.Accent())
	}

	if s.Decay() != 200 || s.Distortion() != 0.3 || s.Waveform() != osc.WaveformSaw {
		t.Fatalf("defaults decay=%v drive=%v wave=%v", s.Decay(), s.Distortion(), s.Waveform())
	}

	if s.Note() != 36 || s.Gate() || s.Sliding() || s.Playing() {
		t.Fatalf("defaults note=%v gate=%v sliding=%v playing=%v", s.Note(), s.Gate(), s.Sliding(), s.Playing())
	}

	if _, err := New(math.Inf(1)); err == nil {
		t.Fatal("expected error for infinite sample rate")
	}
}

func TestOptionsClamp(t *testing.T) {
	s := newSynth(t,
		WithWaveform(osc.WaveformSquare),
		WithCutoff(1e6),
		WithResonance(-3),
		WithEnvMod(2),
		WithAccent(-1),
		WithDecay(1),
		WithSlideTime(-5),
		WithDistortion(9),
		nil,
	)

	if s.Waveform() != osc.WaveformSquare || s.Cutoff() != MaxCutoffHz || s.Resonance() != 0 {
		t.Fatalf("wave=%v cutoff=%v res=%v", s.Waveform(), s.Cutoff(), s.Resonance())
	}

	if s.EnvMod() != 1 || s.Accent() != 0 || s.Decay() != 10 || s.SlideTime() != 0 || s.Distortion() != 1 {
		t.Fatalf("envmod=%v accent=%v decay=%v slide=%v drive=%v",
			s.EnvMod(), s.Accent(), s.Decay(), s.SlideTime(), s.Distortion())
	}
}

func TestSettersClamp(t *testing.T) {
	s := newSynth(t)

	s.SetCutoff(5)
	s.SetResonance(4)
	s.SetEnvMod(math.NaN())
	s.SetAccent(3)
	s.SetDecay(1e9)
	s.SetDistortion(-2)

	if s.Cutoff() != MinCutoffHz || s.Resonance() != 1 || s.EnvMod() != 0 {
		t.Fatalf("cutoff=%v res=%v envmod=%v", s.Cutoff(), s.Resonance(), s.EnvMod())
	}

	if s.Accent() != 1 || s.Decay() != 5000 || s.Distortion() != 0 {
		t.Fatalf("accent=%v decay=%v drive=%v", s.Accent(), s.Decay(), s.Distortion())
	}

	if s.filter.Resonance() != 1 {
		t.Fatalf("filter resonance = %v, want applied immediately", s.filter.Resonance())
	}
}

func TestDronesAtBaseLevelBeforeNoteOn(t *testing.T) {
	s := newSynth(t)

	out := render(s, 4096)
	testutil.RequireFinite(t, out)

	if s.Envelope() != 0 {
		t.Fatalf("envelope %v before any note", s.Envelope())
	}

	if testutil.Peak(out) <= 0.001 {
		t.Fatalf("peak %v, want the base level to sound without a note", testutil.Peak(out))
	}
}

func TestNoteOnIsAudible(t *testing.T) {
	s := newSynth(t)
	s.NoteOn(48, false, false)

	out := render(s, 128)

	if testutil.Peak(out) <= 0.001 {
		t.Fatalf("peak %v after note on, want audible output", testutil.Peak(out))
	}

	testutil.RequireInRange(t, out, -0.5, 0.5)
}

func rms(x []float64) float64 {
	return math.Sqrt(testutil.Energy(x) / float64(len(x)))
}

func TestNoteOffDecaysToBaseLevel(t *testing.T) {
	s := newSynth(t)
	s.NoteOn(40, true, false)
	render(s, 100)
	s.NoteOff()

	if s.Gate() {
		t.Fatal("gate open after note off")
	}

	// 200 ms decay from an accented peak reaches zero well within a second.
	out := render(s, 44100)

	if s.Envelope() != 0 {
		t.Fatalf("envelope %v a second after note off", s.Envelope())
	}

	if level := rms(out[len(out)-1000:]); level <= 0.001 {
		t.Fatalf("tail rms %v, want the base level to keep sounding", level)
	}
}

func TestNoteOffKeepsLevelAfterEnvelopeEnds(t *testing.T) {
	released, held := newSynth(t), newSynth(t)

	for _, s := range []*Synth{released, held} {
		s.NoteOn(48, false, false)
		render(s, 44100)

		if s.Envelope() != 0 {
			t.Fatalf("envelope %v after a second", s.Envelope())
		}
	}

	released.NoteOff()

	got, want := render(released, 2000), render(held, 2000)
	testutil.RequireSliceNearlyEqual(t, got, want, 0)

	if level := rms(got); level <= 0.001 {
		t.Fatalf("rms %v after note off, want the base level", level)
	}
}

func TestSlideGlidesAndSnaps(t *testing.T) {
	s := newSynth(t)
	s.NoteOn(36, false, false)
	render(s, 10)

	env := s.Envelope()
	s.NoteOn(48, true, true)

	if !s.Sliding() || s.Note() != 36 {
		t.Fatalf("sliding=%v note=%v right after slide note on", s.Sliding(), s.Note())
	}

	if s.Envelope() != env {
		t.Fatalf("slide retriggered the envelope: %v -> %v", env, s.Envelope())
	}

	if s.filter.Resonance() != 0.7 {
		t.Fatalf("accented slide resonance = %v, want 0.7", s.filter.Resonance())
	}

	prev := s.Note()
	for n := 0; s.Sliding(); n++ {
		if n > 20000 {
			t.Fatalf("glide still running after %d samples at note %v", n, s.Note())
		}

		s.ProcessSample()

		if s.Note() < prev || s.Note() > 48 {
			t.Fatalf("glide not monotonic toward 48: %v -> %v", prev, s.Note())
		}

		prev = s.Note()
	}

	if s.Note() != 48 {
		t.Fatalf("glide ended at %v, want exactly 48", s.Note())
	}
}

func TestSlideWithoutGateJumps(t *testing.T) {
	s := newSynth(t)
	s.NoteOn(50, false, true)

	if s.Sliding() || s.Note() != 50 {
		t.Fatalf("sliding=%v note=%v, want immediate jump", s.Sliding(), s.Note())
	}

	s.NoteOff()
	s.NoteOn(60, false, true)

	if s.Sliding() || s.Note() != 60 {
		t.Fatalf("slide after note off: sliding=%v note=%v", s.Sliding(), s.Note())
	}
}

func TestSlideTimeFollowsSampleRate(t *testing.T) {
	s, _ := New(1000, WithSlideTime(10))

	if math.Abs(s.slideRate-0.1) > 1e-12 {
		t.Fatalf("slide rate = %v, want 0.1", s.slideRate)
	}

	s.SetSlideTime(0)
	if s.slideRate != 1 {
		t.Fatalf("zero slide time rate = %v, want 1", s.slideRate)
	}
}

func TestAccentBoostsEnvelopeAndResonance(t *testing.T) {
	s := newSynth(t)
	s.SetResonance(0.9)

	s.NoteOn(36, true, false)

	if got := s.Envelope(); math.Abs(got-1.7) > 1e-12 {
		t.Fatalf("accented peak = %v, want 1.7", got)
	}

	if got := s.filter.Resonance(); got != 1 {
		t.Fatalf("accented resonance = %v, want min(0.9+0.2, 1)", got)
	}

	s.NoteOn(36, false, false)

	if s.Envelope() != 1 || s.filter.Resonance() != 0.9 {
		t.Fatalf("plain note peak=%v res=%v", s.Envelope(), s.filter.Resonance())
	}
}

func TestAccentIsLouder(t *testing.T) {
	level := func(accent bool) float64 {
		s := newSynth(t)
		s.NoteOn(36, accent, false)

		return testutil.Energy(render(s, 4410))
	}

	if plain, acc := level(false), level(true); acc <= plain {
		t.Fatalf("accent energy %v not above plain %v", acc, plain)
	}
}

func TestNoteClamp(t *testing.T) {
	s := newSynth(t)

	s.NoteOn(500, false, false)
	if s.Note() != 127 {
		t.Fatalf("note = %v, want 127", s.Note())
	}

	s.NoteOn(-3, false, false)
	if s.Note() != 0 {
		t.Fatalf("note = %v, want 0", s.Note())
	}

	testutil.RequireFinite(t, render(s, 512))
}

func TestOutputBoundedAcrossSettings(t *testing.T) {
	for _, w := range []osc.Waveform{osc.WaveformSaw, osc.WaveformSquare} {
		s := newSynth(t, WithWaveform(w), WithResonance(1), WithEnvMod(1), WithCutoff(20000), WithAccent(1))

		for _, note := range []float64{0, 24, 48, 96, 127} {
			s.NoteOn(note, true, false)

			out := render(s, 2048)
			testutil.RequireFinite(t, out)
			testutil.RequireInRange(t, out, -0.5, 0.5)
		}
	}
}

func TestReset(t *testing.T) {
	s := newSynth(t)
	s.NoteOn(36, false, false)
	s.NoteOn(48, false, true)
	render(s, 10)

	s.Reset()

	if s.Gate() || s.Sliding() || s.Note() != 48 || s.Envelope() != 0 {
		t.Fatalf("after reset gate=%v sliding=%v note=%v env=%v", s.Gate(), s.Sliding(), s.Note(), s.Envelope())
	}

	render(s, 100)
	if s.Envelope() != 0 || s.Note() != 48 {
		t.Fatalf("reset voice moved: env=%v note=%v", s.Envelope(), s.Note())
	}
}

func TestApplyPreset(t *testing.T) {
	s := newSynth(t)

	p, ok := preset.Lookup("Mentasm")
	if !ok {
		t.Fatal("missing preset")
	}

	s.ApplyPreset(p)

	if s.Tempo() != p.Tempo || s.Cutoff() != p.Cutoff || s.Resonance() != p.Resonance {
		t.Fatalf("tempo=%v cutoff=%v res=%v", s.Tempo(), s.Cutoff(), s.Resonance())
	}

	if s.EnvMod() != p.EnvMod || s.Decay() != p.DecayMS || s.Waveform() != osc.WaveformSquare {
		t.Fatalf("envmod=%v decay=%v wave=%v", s.EnvMod(), s.Decay(), s.Waveform())
	}

	if s.Sequencer().Pattern() != p.Steps {
		t.Fatal("pattern not loaded")
	}
}

func TestSequencerDrivesVoice(t *testing.T) {
	s := newSynth(t)

	p := sequencer.EmptyPattern()
	p[0] = sequencer.Step{Note: 48, Accent: true, Active: true}
	p[2] = sequencer.Step{Note: 55, Slide: true, Active: true}
	s.LoadPattern(p)
	s.SetTempo(300)
	s.Start()

	sps := s.Sequencer().SamplesPerStep()

	var fired []int
	for range 3 * sps {
		if next := s.Tick(); next >= 0 {
			fired = append(fired, next)

			switch next {
			case 1:
				if !s.Gate() || s.Note() != 48 || s.Envelope() != 1.7 {
					t.Fatalf("step 0: gate=%v note=%v env=%v", s.Gate(), s.Note(), s.Envelope())
				}
			case 2:
				if s.Gate() {
					t.Fatal("rest step left the gate open")
				}
			case 3:
				// The gate was closed by the rest, so the slide flag cannot glide.
				if s.Sliding() || s.Note() != 55 {
					t.Fatalf("step 2: sliding=%v note=%v", s.Sliding(), s.Note())
				}
			}
		}

		s.ProcessSample()
	}

	if len(fired) != 3 || fired[0] != 1 || fired[2] != 3 {
		t.Fatalf("tick results = %v, want [1 2 3]", fired)
	}

	s.Stop()

	if s.Playing() || s.Gate() {
		t.Fatal("stop left the sequencer running or the gate open")
	}

	if s.Tick() != -1 {
		t.Fatal("tick fired while stopped")
	}
}

func TestStepPassThrough(t *testing.T) {
	s := newSynth(t)

	s.SetStep(5, sequencer.Step{Note: 60, Active: true})
	s.ToggleStep(5)

	if st, ok := s.Step(5); !ok || st.Note != 60 || st.Active {
		t.Fatalf("step 5 = %+v ok=%v", st, ok)
	}

	s.ToggleStep(5)
	s.ClearPattern()

	if st, _ := s.Step(5); st.Active {
		t.Fatal("clear left step 5 active")
	}
}

func TestRenderTicksSequencer(t *testing.T) {
	s := newSynth(t)
	s.ApplyPreset(preset.At(0))
	s.Start()

	buf := make([]float32, s.Sequencer().SamplesPerStep()+64)
	s.Render(buf)

	if s.Sequencer().LastStep() != 0 {
		t.Fatalf("last step = %d, want 0", s.Sequencer().LastStep())
	}

	peak := 0.0
	for _, y := range buf {
		peak = math.Max(peak, math.Abs(float64(y)))
	}

	if peak == 0 {
		t.Fatal("rendered silence after the first step")
	}
}
