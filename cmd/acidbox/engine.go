package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/cwbudde/algo-acid/preset"
	"github.com/cwbudde/algo-acid/studio"
)

const tempoStep = 5.0

// engine serializes access to the studio between the audio callback and
// the keyboard, and streams the mix as mono float32 little-endian PCM.
type engine struct {
	mu     sync.Mutex
	studio *studio.Studio
	buf    []float32

	presetIdx int
	drumIdx   int
}

func newEngine(s *studio.Studio) *engine {
	return &engine{studio: s}
}

// Read implements io.Reader for the audio player. A non-empty buffer too
// short for one float32 sample fails with io.ErrShortBuffer.
func (e *engine) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := len(p) / 4
	if n == 0 {
		return 0, io.ErrShortBuffer
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if cap(e.buf) < n {
		e.buf = make([]float32, n)
	}

	buf := e.buf[:n]
	e.studio.Process(buf)

	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}

	return 4 * n, nil
}

func (e *engine) selectPreset(i int) (string, error) {
	p := preset.At(i)
	e.presetIdx = ((i % preset.Count()) + preset.Count()) % preset.Count()

	if err := e.studio.LoadPreset(p.Name); err != nil {
		return "", err
	}

	return fmt.Sprintf("preset %q at %.0f BPM", p.Name, e.studio.Tempo()), nil
}

func (e *engine) selectDrums(i int) (string, error) {
	d := preset.DrumAt(i)
	e.drumIdx = ((i % preset.DrumCount()) + preset.DrumCount()) % preset.DrumCount()

	if err := e.studio.LoadDrumPattern(d.Name); err != nil {
		return "", err
	}

	return fmt.Sprintf("drums %q", d.Name), nil
}

// loadByName selects the named acid preset and drum pattern. Empty names
// keep the current selection.
func (e *engine) loadByName(presetName, drumName string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if presetName != "" {
		if err := e.studio.LoadPreset(presetName); err != nil {
			return err
		}

		e.presetIdx = indexOf(preset.Names(), presetName)
	}

	if drumName != "" {
		if err := e.studio.LoadDrumPattern(drumName); err != nil {
			return err
		}

		e.drumIdx = indexOf(preset.DrumNames(), drumName)
	}

	return nil
}

// handleKey applies one keypress and returns a status line. quit is set for
// q, Q, Escape and Ctrl-C.
func (e *engine) handleKey(b byte) (status string, quit bool, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.studio

	switch b {
	case 'q', 'Q', 0x1b, 0x03:
		return "bye", true, nil
	case ' ':
		if s.Playing() {
			s.Stop()
			return "stopped", false, nil
		}

		s.Start()

		return "playing", false, nil
	case 'n':
		status, err = e.selectPreset(e.presetIdx + 1)
	case 'p':
		status, err = e.selectPreset(e.presetIdx - 1)
	case 'd':
		status, err = e.selectDrums(e.drumIdx + 1)
	case '+', '=':
		s.SetTempo(s.Tempo() + tempoStep)
		status = fmt.Sprintf("tempo %.0f BPM", s.Tempo())
	case '-', '_':
		s.SetTempo(s.Tempo() - tempoStep)
		status = fmt.Sprintf("tempo %.0f BPM", s.Tempo())
	}

	return status, false, err
}

func (e *engine) start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.studio.Start()
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return i
		}
	}

	return 0
}
