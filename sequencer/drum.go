package sequencer

import "fmt"

// Track names one drum voice lane.
type Track int

const (
	TrackKick Track = iota
	TrackSnare
	TrackClosedHihat
	TrackOpenHihat

	// NumTracks is the number of drum lanes.
	NumTracks = 4
)

// String returns the track name.
func (t Track) String() string {
	switch t {
	case TrackKick:
		return "kick"
	case TrackSnare:
		return "snare"
	case TrackClosedHihat:
		return "closed-hihat"
	case TrackOpenHihat:
		return "open-hihat"
	default:
		return fmt.Sprintf("Track(%d)", int(t))
	}
}

// DrumStep holds the four lanes of one drum pattern position.
type DrumStep struct {
	Kick        bool
	Snare       bool
	ClosedHihat bool
	OpenHihat   bool
}

// Has reports whether track t is set.
func (d DrumStep) Has(t Track) bool {
	switch t {
	case TrackKick:
		return d.Kick
	case TrackSnare:
		return d.Snare
	case TrackClosedHihat:
		return d.ClosedHihat
	case TrackOpenHihat:
		return d.OpenHihat
	default:
		return false
	}
}

// Any reports whether any lane is set.
func (d DrumStep) Any() bool {
	return d.Kick || d.Snare || d.ClosedHihat || d.OpenHihat
}

func (d *DrumStep) set(t Track, on bool) {
	switch t {
	case TrackKick:
		d.Kick = on
	case TrackSnare:
		d.Snare = on
	case TrackClosedHihat:
		d.ClosedHihat = on
	case TrackOpenHihat:
		d.OpenHihat = on
	}
}

// DrumPattern is a full four-lane drum pattern.
type DrumPattern [Steps]DrumStep

// Count returns how many positions have track t set.
func (p DrumPattern) Count(t Track) int {
	n := 0

	for _, s := range p {
		if s.Has(t) {
			n++
		}
	}

	return n
}

// DrumEvent is a drum step emitted by Tick together with its position.
type DrumEvent struct {
	Index int
	Step  DrumStep
}

// DrumSequencer plays a DrumPattern.
type DrumSequencer struct {
	Clock
	pattern DrumPattern
}

// NewDrum returns a stopped drum sequencer holding an empty pattern.
func NewDrum(sampleRate float64) (*DrumSequencer, error) {
	d := &DrumSequencer{}
	if err := d.init(sampleRate); err != nil {
		return nil, err
	}

	return d, nil
}

// SetStep sets or clears lane t at position i. Out-of-range positions and
// unknown tracks are ignored.
func (d *DrumSequencer) SetStep(i int, t Track, on bool) {
	if i < 0 || i >= Steps {
		return
	}

	d.pattern[i].set(t, on)
}

// ToggleStep flips lane t at position i.
func (d *DrumSequencer) ToggleStep(i int, t Track) {
	if i < 0 || i >= Steps {
		return
	}

	d.pattern[i].set(t, !d.pattern[i].Has(t))
}

// Step returns the lanes at position i.
func (d *DrumSequencer) Step(i int) (DrumStep, bool) {
	if i < 0 || i >= Steps {
		return DrumStep{}, false
	}

	return d.pattern[i], true
}

// LoadPattern replaces the whole pattern.
func (d *DrumSequencer) LoadPattern(p DrumPattern) { d.pattern = p }

// Pattern returns a copy of the pattern.
func (d *DrumSequencer) Pattern() DrumPattern { return d.pattern }

// Clear empties every lane.
func (d *DrumSequencer) Clear() { d.pattern = DrumPattern{} }

// Tick counts one sample. When a step boundary is reached it returns the
// lanes at the position before advancing.
func (d *DrumSequencer) Tick() (DrumEvent, bool) {
	idx, ok := d.advance()
	if !ok {
		return DrumEvent{}, false
	}

	return DrumEvent{Index: idx, Step: d.pattern[idx]}, true
}
