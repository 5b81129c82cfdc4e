// Package sequencer implements the 16-step pattern players that drive the
// synth voice and the drum machine.
//
// Both players share a sample-accurate Clock. Tick is called once per output
// sample; while playing, every SamplesPerStep ticks it emits the step at the
// current position and then advances the position modulo Steps. Patterns may
// be edited at any time; edits take effect the next time a position is
// reached.
package sequencer
