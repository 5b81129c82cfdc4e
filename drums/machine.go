package drums

import (
	"github.com/cwbudde/algo-acid/dsp/core"
	"github.com/cwbudde/algo-acid/preset"
	"github.com/cwbudde/algo-acid/sequencer"
)

const (
	defaultKickVolume   = 0.8
	defaultSnareVolume  = 0.7
	defaultHihatVolume  = 0.5
	defaultMasterVolume = 0.8
)

// Machine is the drum kit: four voices, their mix levels and the drum
// sequencer that plays them. A new machine holds preset.BasicBeat.
type Machine struct {
	kick        *Kick
	snare       *Snare
	closedHihat *ClosedHihat
	openHihat   *OpenHihat
	seq         *sequencer.DrumSequencer

	kickVol   float64
	snareVol  float64
	hihatVol  float64
	masterVol float64
}

// NewMachine builds a kit at sampleRate.
func NewMachine(sampleRate float64) (*Machine, error) {
	kick, err := NewKick(sampleRate)
	if err != nil {
		return nil, err
	}

	snare, err := NewSnare(sampleRate)
	if err != nil {
		return nil, err
	}

	closed, err := NewClosedHihat(sampleRate)
	if err != nil {
		return nil, err
	}

	open, err := NewOpenHihat(sampleRate)
	if err != nil {
		return nil, err
	}

	seq, err := sequencer.NewDrum(sampleRate)
	if err != nil {
		return nil, err
	}

	seq.LoadPattern(preset.BasicBeat)

	return &Machine{
		kick:        kick,
		snare:       snare,
		closedHihat: closed,
		openHihat:   open,
		seq:         seq,
		kickVol:     defaultKickVolume,
		snareVol:    defaultSnareVolume,
		hihatVol:    defaultHihatVolume,
		masterVol:   defaultMasterVolume,
	}, nil
}

// Kick returns the kick voice.
func (m *Machine) Kick() *Kick { return m.kick }

// Snare returns the snare voice.
func (m *Machine) Snare() *Snare { return m.snare }

// ClosedHihat returns the closed hihat voice.
func (m *Machine) ClosedHihat() *ClosedHihat { return m.closedHihat }

// OpenHihat returns the open hihat voice.
func (m *Machine) OpenHihat() *OpenHihat { return m.openHihat }

// Sequencer returns the drum sequencer.
func (m *Machine) Sequencer() *sequencer.DrumSequencer { return m.seq }

// Trigger fires the voice for track t. A closed hihat chokes a sounding
// open hihat first.
func (m *Machine) Trigger(t sequencer.Track) {
	switch t {
	case sequencer.TrackKick:
		m.kick.Trigger()
	case sequencer.TrackSnare:
		m.snare.Trigger()
	case sequencer.TrackClosedHihat:
		m.openHihat.Choke()
		m.closedHihat.Trigger()
	case sequencer.TrackOpenHihat:
		m.openHihat.Trigger()
	}
}

// Play triggers every lane set in step.
func (m *Machine) Play(step sequencer.DrumStep) {
	for t := range sequencer.Track(sequencer.NumTracks) {
		if step.Has(t) {
			m.Trigger(t)
		}
	}
}

// Tick advances the sequencer one sample and plays any emitted step.
func (m *Machine) Tick() (sequencer.DrumEvent, bool) {
	ev, ok := m.seq.Tick()
	if ok {
		m.Play(ev.Step)
	}

	return ev, ok
}

// ProcessSample returns the next mixed kit sample.
func (m *Machine) ProcessSample() float64 {
	sum := m.kick.ProcessSample()*m.kickVol +
		m.snare.ProcessSample()*m.snareVol +
		(m.closedHihat.ProcessSample()+m.openHihat.ProcessSample())*m.hihatVol

	return sum * m.masterVol
}

// Process fills dst with mixed kit samples without ticking the sequencer.
func (m *Machine) Process(dst []float64) {
	for i := range dst {
		dst[i] = m.ProcessSample()
	}
}

// Active reports whether any voice is sounding.
func (m *Machine) Active() bool {
	return m.kick.Active() || m.snare.Active() || m.closedHihat.Active() || m.openHihat.Active()
}

// Reset silences every voice. The sequencer is left as is.
func (m *Machine) Reset() {
	m.kick.Reset()
	m.snare.Reset()
	m.closedHihat.Reset()
	m.openHihat.Reset()
}

// Start rewinds and starts the sequencer.
func (m *Machine) Start() { m.seq.Start() }

// Stop stops the sequencer. Sounding voices ring out.
func (m *Machine) Stop() { m.seq.Stop() }

// Playing reports whether the sequencer is running.
func (m *Machine) Playing() bool { return m.seq.Playing() }

// SetTempo sets the sequencer tempo.
func (m *Machine) SetTempo(bpm float64) { m.seq.SetTempo(bpm) }

// SetKickVolume sets the kick level in [0, 1].
func (m *Machine) SetKickVolume(v float64) { m.kickVol = core.Clamp(v, 0, 1) }

// SetSnareVolume sets the snare level in [0, 1].
func (m *Machine) SetSnareVolume(v float64) { m.snareVol = core.Clamp(v, 0, 1) }

// SetHihatVolume sets the level of both hihats in [0, 1].
func (m *Machine) SetHihatVolume(v float64) { m.hihatVol = core.Clamp(v, 0, 1) }

// SetMasterVolume sets the kit output level in [0, 1].
func (m *Machine) SetMasterVolume(v float64) { m.masterVol = core.Clamp(v, 0, 1) }

// Volumes returns the kick, snare, hihat and master levels.
func (m *Machine) Volumes() (kick, snare, hihat, master float64) {
	return m.kickVol, m.snareVol, m.hihatVol, m.masterVol
}

// SetKickDecay forwards to Kick.SetDecay.
func (m *Machine) SetKickDecay(decay float64) { m.kick.SetDecay(decay) }

// SetKickPitch forwards to Kick.SetPitch.
func (m *Machine) SetKickPitch(pitch float64) { m.kick.SetPitch(pitch) }

// SetSnareTone forwards to Snare.SetTone.
func (m *Machine) SetSnareTone(tone float64) { m.snare.SetTone(tone) }

// SetSnareSnap forwards to Snare.SetSnap.
func (m *Machine) SetSnareSnap(snap float64) { m.snare.SetSnap(snap) }

// SetSnareDecay forwards to Snare.SetDecay.
func (m *Machine) SetSnareDecay(decay float64) { m.snare.SetDecay(decay) }
