package sequencer

// DefaultNote is the MIDI note of an unprogrammed step (C2).
const DefaultNote = 36

// MaxNote is the highest MIDI note a step can hold.
const MaxNote = 127

// Step is one position of a melodic pattern.
type Step struct {
	Note   uint8
	Accent bool
	Slide  bool
	Active bool
}

// Pattern is a full melodic pattern.
type Pattern [Steps]Step

// EmptyPattern returns a pattern of inactive DefaultNote steps.
func EmptyPattern() Pattern {
	var p Pattern
	for i := range p {
		p[i].Note = DefaultNote
	}

	return p
}

// Event is a step emitted by Tick together with its position.
type Event struct {
	Index int
	Step  Step
}

// Sequencer plays a melodic Pattern.
type Sequencer struct {
	Clock
	pattern Pattern
}

// New returns a stopped sequencer holding an empty pattern.
func New(sampleRate float64) (*Sequencer, error) {
	s := &Sequencer{pattern: EmptyPattern()}
	if err := s.init(sampleRate); err != nil {
		return nil, err
	}

	return s, nil
}

// SetStep replaces the step at i. Out-of-range indices are ignored and the
// note is limited to MaxNote.
func (s *Sequencer) SetStep(i int, step Step) {
	if i < 0 || i >= Steps {
		return
	}

	s.pattern[i] = clampStep(step)
}

// Step returns the step at i.
func (s *Sequencer) Step(i int) (Step, bool) {
	if i < 0 || i >= Steps {
		return Step{}, false
	}

	return s.pattern[i], true
}

// ToggleStep flips the Active flag at i.
func (s *Sequencer) ToggleStep(i int) {
	if i < 0 || i >= Steps {
		return
	}

	s.pattern[i].Active = !s.pattern[i].Active
}

// LoadPattern replaces the whole pattern.
func (s *Sequencer) LoadPattern(p Pattern) {
	for i := range p {
		s.pattern[i] = clampStep(p[i])
	}
}

// Pattern returns a copy of the pattern.
func (s *Sequencer) Pattern() Pattern { return s.pattern }

// Clear deactivates every step, keeping notes and flags.
func (s *Sequencer) Clear() {
	for i := range s.pattern {
		s.pattern[i].Active = false
	}
}

// Tick counts one sample. When a step boundary is reached it returns the
// step at the position before advancing.
func (s *Sequencer) Tick() (Event, bool) {
	idx, ok := s.advance()
	if !ok {
		return Event{}, false
	}

	return Event{Index: idx, Step: s.pattern[idx]}, true
}

func clampStep(step Step) Step {
	if step.Note > MaxNote {
		step.Note = MaxNote
	}

	return step
}
