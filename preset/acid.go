package preset

import (
	"github.com/cwbudde/algo-acid/dsp/osc"
	"github.com/cwbudde/algo-acid/sequencer"
)

// MIDI note numbers used by the patterns.
const (
	a1 = 33
	c2 = 36
	d2 = 38
	e2 = 40
	f2 = 41
	g2 = 43
	a2 = 45
	c3 = 48
	f3 = 53
)

var rest = sequencer.Step{Note: sequencer.DefaultNote}

func on(n uint8) sequencer.Step { return sequencer.Step{Note: n, Active: true} }

func accent(n uint8) sequencer.Step { return sequencer.Step{Note: n, Accent: true, Active: true} }

func slide(n uint8) sequencer.Step { return sequencer.Step{Note: n, Slide: true, Active: true} }

func accentSlide(n uint8) sequencer.Step {
	return sequencer.Step{Note: n, Accent: true, Slide: true, Active: true}
}

// acid holds the built-in synth presets in display order.
var acid = []Preset{
	{
		Name:  "Acid Tracks",
		Steps: sequencer.Pattern{
			accent(c2), on(c2), slide(c3), on(c2),
			accent(d2), rest, on(c2), slide(g2),
			accent(c2), rest, on(c3), slide(c2),
			accent(f2), on(c2), rest, on(c2),
		},
		Tempo:     126,
		Cutoff:    400,
		Resonance: 0.75,
		EnvMod:    0.8,
		DecayMS:   150,
		Waveform:  osc.WaveformSaw,
	},
	{
		Name:  "Higher State",
		Steps: sequencer.Pattern{
			accent(c2), on(c2), slide(d2), slide(e2),
			accent(f2), on(f2), slide(g2), slide(a2),
			accent(c3), on(c3), slide(a2), slide(g2),
			accent(f2), slide(d2), slide(c2), rest,
		},
		Tempo:     132,
		Cutoff:    300,
		Resonance: 0.85,
		EnvMod:    0.9,
		DecayMS:   120,
		Waveform:  osc.WaveformSaw,
	},
	{
		Name:  "Acperience",
		Steps: sequencer.Pattern{
			accent(c2), on(c2), on(c2), slide(c3),
			accent(c2), on(c2), slide(g2), on(c2),
			accent(c2), on(c2), on(c2), slide(f2),
			accent(c2), on(c2), slide(d2), on(c2),
		},
		Tempo:     138,
		Cutoff:    350,
		Resonance: 0.8,
		EnvMod:    0.7,
		DecayMS:   100,
		Waveform:  osc.WaveformSaw,
	},
	{
		Name:  "Voodoo Ray",
		Steps: sequencer.Pattern{
			accent(f2), rest, on(g2), slide(a2),
			accent(c3), rest, slide(a2), on(g2),
			accent(f2), rest, on(d2), slide(c2),
			accent(d2), rest, slide(f2), rest,
		},
		Tempo:     118,
		Cutoff:    500,
		Resonance: 0.65,
		EnvMod:    0.6,
		DecayMS:   200,
		Waveform:  osc.WaveformSaw,
	},
	{
		Name:  "Mentasm",
		Steps: sequencer.Pattern{
			accent(c2), on(c2), on(c2), rest,
			accent(c2), slide(g2), slide(c3), rest,
			accent(c2), on(c2), on(c2), rest,
			accent(c2), slide(f2), slide(c2), rest,
		},
		Tempo:     128,
		Cutoff:    600,
		Resonance: 0.7,
		EnvMod:    0.75,
		DecayMS:   180,
		Waveform:  osc.WaveformSquare,
	},
	{
		Name:  "Energy Flash",
		Steps: sequencer.Pattern{
			accent(c2), on(c2), accent(c2), on(c2),
			accent(g2), on(g2), accent(c2), on(c2),
			accent(c2), on(c2), accent(f2), on(f2),
			accent(d2), on(d2), accent(c2), on(c2),
		},
		Tempo:     130,
		Cutoff:    450,
		Resonance: 0.72,
		EnvMod:    0.65,
		DecayMS:   140,
		Waveform:  osc.WaveformSaw,
	},
	{
		Name:  "Squelch Classic",
		Steps: sequencer.Pattern{
			accent(c2), slide(c3), slide(c2), slide(c3),
			accent(c2), slide(g2), slide(c2), slide(f2),
			accent(c2), slide(c3), slide(c2), slide(a2),
			accent(c2), slide(g2), slide(c2), slide(d2),
		},
		Tempo:     125,
		Cutoff:    250,
		Resonance: 0.9,
		EnvMod:    0.95,
		DecayMS:   100,
		Waveform:  osc.WaveformSaw,
	},
	{
		Name:  "Minimal Techno",
		Steps: sequencer.Pattern{
			accent(c2), rest, rest, on(c2),
			rest, accent(c2), rest, rest,
			on(c2), rest, accentSlide(g2), rest,
			slide(c2), rest, rest, rest,
		},
		Tempo:     135,
		Cutoff:    800,
		Resonance: 0.5,
		EnvMod:    0.4,
		DecayMS:   250,
		Waveform:  osc.WaveformSaw,
	},
	{
		Name:  "Rave Anthem",
		Steps: sequencer.Pattern{
			accent(c2), on(c2), accent(g2), on(g2),
			accent(c3), on(c3), accent(g2), on(g2),
			accent(f2), on(f2), accent(g2), slide(c3),
			accent(f3), slide(c3), slide(g2), slide(c2),
		},
		Tempo:     140,
		Cutoff:    550,
		Resonance: 0.68,
		EnvMod:    0.7,
		DecayMS:   130,
		Waveform:  osc.WaveformSaw,
	},
	{
		Name:  "Warehouse",
		Steps: sequencer.Pattern{
			accent(a1), rest, on(a1), slide(c2),
			accent(a1), rest, slide(e2), slide(a1),
			accent(a1), rest, on(a1), slide(a2),
			accent(a1), rest, on(a1), rest,
		},
		Tempo:     122,
		Cutoff:    380,
		Resonance: 0.78,
		EnvMod:    0.82,
		DecayMS:   170,
		Waveform:  osc.WaveformSaw,
	},
}
