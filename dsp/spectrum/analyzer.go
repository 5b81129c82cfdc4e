package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-acid/dsp/core"
)

const (
	defaultFFTSize   = 2048
	defaultOverlap   = 0.5
	defaultSmoothing = 0.6

	minOverlap   = 0.25
	maxOverlap   = 0.95
	maxSmoothing = 0.95
)

// Window selects the analysis window.
type Window int

const (
	WindowHann Window = iota
	WindowBlackmanHarris
)

// String returns the window name.
func (w Window) String() string {
	switch w {
	case WindowHann:
		return "hann"
	case WindowBlackmanHarris:
		return "blackmanharris"
	default:
		return fmt.Sprintf("Window(%d)", int(w))
	}
}

// AnalyzerOption mutates analyzer construction parameters.
type AnalyzerOption func(*analyzerConfig)

type analyzerConfig struct {
	fftSize   int
	overlap   float64
	smoothing float64
	window    Window
}

// WithFFTSize sets the frame length. Sizes other than a power of two in
// [256, 8192] fall back to 2048.
func WithFFTSize(n int) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		switch n {
		case 256, 512, 1024, 2048, 4096, 8192:
			cfg.fftSize = n
		default:
			cfg.fftSize = defaultFFTSize
		}
	}
}

// WithOverlap sets the frame overlap fraction, clamped to [0.25, 0.95].
func WithOverlap(overlap float64) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.overlap = core.Clamp(overlap, minOverlap, maxOverlap)
	}
}

// WithSmoothing sets the per-frame exponential smoothing of dB values,
// clamped to [0, 0.95]. Zero reports each frame unsmoothed.
func WithSmoothing(smoothing float64) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		cfg.smoothing = core.Clamp(smoothing, 0, maxSmoothing)
	}
}

// WithWindow selects the analysis window. Unknown values use Hann.
func WithWindow(w Window) AnalyzerOption {
	return func(cfg *analyzerConfig) {
		if w != WindowBlackmanHarris {
			w = WindowHann
		}

		cfg.window = w
	}
}

// Analyzer is a streaming magnitude analyzer. Samples are written into a
// ring buffer; every hop a windowed frame is transformed and folded into a
// smoothed single-sided dBFS spectrum. A full-scale sinusoid reads 0 dB.
type Analyzer struct {
	sampleRate float64
	cfg        analyzerConfig
	hop        int

	plan       *algofft.Plan[complex128]
	window     []float64
	windowGain float64

	ring    []float64
	frame   []float64
	in, out []complex128
	re, im  []float64
	mag     []float64
	db      []float64

	write    int
	filled   int
	sinceHop int
	frames   int
}

// NewAnalyzer creates an analyzer for sampleRate.
func NewAnalyzer(sampleRate float64, opts ...AnalyzerOption) (*Analyzer, error) {
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	cfg := analyzerConfig{
		fftSize:   defaultFFTSize,
		overlap:   defaultOverlap,
		smoothing: defaultSmoothing,
		window:    WindowHann,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := cfg.fftSize

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: init fft plan: %w", err)
	}

	win := makeWindow(cfg.window, n)

	sum := 0.0
	for _, w := range win {
		sum += w
	}

	bins := n/2 + 1

	a := &Analyzer{
		sampleRate: sampleRate,
		cfg:        cfg,
		hop:        max(1, int(math.Round(float64(n)*(1-cfg.overlap)))),
		plan:       plan,
		window:     win,
		windowGain: sum / float64(n),
		ring:       make([]float64, n),
		frame:      make([]float64, n),
		in:         make([]complex128, n),
		out:        make([]complex128, n),
		re:         make([]float64, bins),
		im:         make([]float64, bins),
		mag:        make([]float64, bins),
		db:         make([]float64, bins),
	}
	a.Reset()

	return a, nil
}

// Reset discards buffered samples and the accumulated spectrum.
func (a *Analyzer) Reset() {
	core.Zero(a.ring)

	for i := range a.db {
		a.db[i] = FloorDB
	}

	a.write = 0
	a.filled = 0
	a.sinceHop = 0
	a.frames = 0
}

// FFTSize returns the frame length.
func (a *Analyzer) FFTSize() int { return a.cfg.fftSize }

// HopSize returns the number of samples between frames.
func (a *Analyzer) HopSize() int { return a.hop }

// BinHz returns the frequency spacing of the bins.
func (a *Analyzer) BinHz() float64 { return a.sampleRate / float64(a.cfg.fftSize) }

// Ready reports whether at least one frame has been analyzed.
func (a *Analyzer) Ready() bool { return a.frames > 0 }

// Frames returns the number of frames analyzed since the last Reset.
func (a *Analyzer) Frames() int { return a.frames }

// Write feeds samples to the analyzer.
func (a *Analyzer) Write(samples []float64) {
	for _, x := range samples {
		a.WriteSample(x)
	}
}

// WriteSample feeds one sample to the analyzer.
func (a *Analyzer) WriteSample(x float64) {
	n := a.cfg.fftSize

	a.ring[a.write] = core.Sanitize(x)

	a.write++
	if a.write >= n {
		a.write = 0
	}

	if a.filled < n {
		a.filled++
	}

	a.sinceHop++
	if a.filled < n || a.sinceHop < a.hop {
		return
	}

	a.sinceHop = 0
	a.analyzeFrame()
}

func (a *Analyzer) analyzeFrame() {
	n := a.cfg.fftSize

	// Oldest sample first.
	copied := copy(a.frame, a.ring[a.write:])
	copy(a.frame[copied:], a.ring[:a.write])
	vecmath.MulBlockInPlace(a.frame, a.window)

	for i, s := range a.frame {
		a.in[i] = complex(s, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return
	}

	for k := range a.mag {
		a.re[k] = real(a.out[k])
		a.im[k] = imag(a.out[k])
	}

	vecmath.Magnitude(a.mag, a.re, a.im)

	norm := float64(n) * math.Max(a.windowGain, 1e-12)
	last := len(a.mag) - 1
	smooth := a.cfg.smoothing

	for k, m := range a.mag {
		m /= norm
		if k > 0 && k < last {
			m *= 2
		}

		v := AmplitudeDB(m)
		if a.frames == 0 {
			a.db[k] = v
			continue
		}

		a.db[k] = smooth*a.db[k] + (1-smooth)*v
	}

	a.frames++
}

// MagnitudeDB copies the current per-bin spectrum into dst, growing it as
// needed, and returns it.
func (a *Analyzer) MagnitudeDB(dst []float64) []float64 {
	dst = core.EnsureLen(dst, len(a.db))
	copy(dst, a.db)

	return dst
}

// CurveDB samples the spectrum at freqs by linear interpolation between
// bins. Before the first frame every point reads FloorDB.
func (a *Analyzer) CurveDB(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	if !a.Ready() {
		for i := range out {
			out[i] = FloorDB
		}

		return out
	}

	binHz := a.BinHz()
	last := len(a.db) - 1

	for i, f := range freqs {
		bin := core.Clamp(f, 0, a.sampleRate/2) / binHz

		switch {
		case bin <= 0:
			out[i] = a.db[0]
		case bin >= float64(last):
			out[i] = a.db[last]
		default:
			base := int(bin)
			frac := bin - float64(base)
			out[i] = a.db[base] + frac*(a.db[base+1]-a.db[base])
		}
	}

	return out
}

// PeakFrequency returns the centre frequency and level of the loudest bin,
// ignoring DC.
func (a *Analyzer) PeakFrequency() (hz, db float64) {
	best := 1
	for k := 2; k < len(a.db); k++ {
		if a.db[k] > a.db[best] {
			best = k
		}
	}

	return float64(best) * a.BinHz(), a.db[best]
}

func makeWindow(w Window, n int) []float64 {
	out := make([]float64, n)

	// Periodic windows, so overlapped frames sum evenly.
	for i := range out {
		x := 2 * math.Pi * float64(i) / float64(n)

		switch w {
		case WindowBlackmanHarris:
			out[i] = 0.35875 - 0.48829*math.Cos(x) + 0.14128*math.Cos(2*x) - 0.01168*math.Cos(3*x)
		default:
			out[i] = 0.5 - 0.5*math.Cos(x)
		}
	}

	return out
}
