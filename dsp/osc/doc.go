// Package osc provides band-limited periodic oscillators for subtractive
// synthesis.
//
// The Oscillator produces naive sawtooth and square waveforms and applies
// polynomial band-limited step (PolyBLEP) corrections around each
// discontinuity. The correction window is one phase increment wide, which
// suppresses most of the aliasing of the hard edges without oversampling.
//
// Oscillators are stateful, deterministic, and not safe for concurrent use.
package osc
