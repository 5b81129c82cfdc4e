// Package noise provides deterministic noise sources for percussion voices.
package noise

// Seeds used by the drum voices. Each voice owns its own generator so the
// sequences never interleave.
const (
	SeedSnare       uint16 = 0xACE1
	SeedClosedHihat uint16 = 0xBEEF
	SeedOpenHihat   uint16 = 0xCAFE

	// DefaultSeed replaces a zero seed, which would lock the register.
	DefaultSeed = SeedSnare
)

// LFSR is a 16-bit Fibonacci linear-feedback shift register with taps at
// bits 0, 2, 3 and 5. The same seed always yields the same sequence.
type LFSR struct {
	seed  uint16
	state uint16
}

// NewLFSR returns a generator started at seed.
func NewLFSR(seed uint16) *LFSR {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &LFSR{seed: seed, state: seed}
}

// Next advances the register one step and returns a sample in [-1, 1).
func (l *LFSR) Next() float64 {
	s := l.state
	bit := (s ^ s>>2 ^ s>>3 ^ s>>5) & 1
	l.state = s>>1 | bit<<15

	return float64(l.state)/32768 - 1
}

// State returns the current register contents.
func (l *LFSR) State() uint16 { return l.state }

// Seed returns the seed the generator restarts from.
func (l *LFSR) Seed() uint16 { return l.seed }

// Reset rewinds the generator to its seed.
func (l *LFSR) Reset() {
	l.state = l.seed
}
