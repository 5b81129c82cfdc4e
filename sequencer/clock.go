package sequencer

import (
	"fmt"

	"github.com/cwbudde/algo-acid/dsp/core"
)

const (
	// Steps is the pattern length.
	Steps = 16

	// MinTempo and MaxTempo bound the tempo in beats per minute.
	MinTempo = 60.0
	MaxTempo = 300.0

	// DefaultTempo is the tempo of a new clock.
	DefaultTempo = 120.0

	stepsPerBeat = 4
)

// Clock is the shared transport state of a step sequencer: a
// Stopped/Playing flag, a sixteenth-note sample counter and the step
// position.
type Clock struct {
	sampleRate     float64
	tempo          float64
	samplesPerStep int
	elapsed        int
	current        int
	last           int
	playing        bool
}

// NewClock returns a stopped clock at DefaultTempo.
func NewClock(sampleRate float64) (*Clock, error) {
	c := &Clock{}
	if err := c.init(sampleRate); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Clock) init(sampleRate float64) error {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return fmt.Errorf("sequencer: %w", err)
	}

	c.sampleRate = sampleRate
	c.last = -1
	c.SetTempo(DefaultTempo)

	return nil
}

// SetTempo sets the tempo in BPM, clamped to [60, 300], and recomputes the
// step length. The running counter is kept below the new length, so a
// counter already past it fires on the next sample.
func (c *Clock) SetTempo(bpm float64) {
	c.tempo = core.Clamp(bpm, MinTempo, MaxTempo)

	stepsPerSecond := c.tempo / 60 * stepsPerBeat
	c.samplesPerStep = max(1, int(c.sampleRate/stepsPerSecond))
	c.elapsed = min(c.elapsed, c.samplesPerStep-1)
}

// Tempo returns the tempo in BPM.
func (c *Clock) Tempo() float64 { return c.tempo }

// SamplesPerStep returns the length of one sixteenth note in samples.
func (c *Clock) SamplesPerStep() int { return c.samplesPerStep }

// SampleRate returns the sample rate the clock counts in.
func (c *Clock) SampleRate() float64 { return c.sampleRate }

// Start rewinds to step 0, clears the counter and starts playing.
func (c *Clock) Start() {
	c.current = 0
	c.elapsed = 0
	c.last = -1
	c.playing = true
}

// Stop stops playing without moving the position.
func (c *Clock) Stop() {
	c.playing = false
}

// Playing reports whether the clock is running.
func (c *Clock) Playing() bool { return c.playing }

// CurrentStep returns the position that will be emitted next.
func (c *Clock) CurrentStep() int { return c.current }

// LastStep returns the position most recently emitted since Start, or -1.
func (c *Clock) LastStep() int { return c.last }

// advance counts one sample and reports the emitted position, if any.
func (c *Clock) advance() (int, bool) {
	if !c.playing {
		return 0, false
	}

	c.elapsed++
	if c.elapsed < c.samplesPerStep {
		return 0, false
	}

	c.elapsed = 0

	idx := c.current
	c.last = idx
	c.current = (idx + 1) % Steps

	return idx, true
}
