package preset

import (
	"strings"

	"github.com/cwbudde/algo-acid/sequencer"
)

// Built-in drum patterns. Each lane string has one character per step;
// 'x' marks a hit.
var (
	BasicBeat = grid(
		"x...x...x...x...",
		"....x.......x...",
		"xxxxxxxxxxxxxxxx",
		"................",
	)

	Breakbeat = grid(
		"x.....x.....x..x",
		"..x..x....x..x..",
		"x.xxx.xxx.xxx.xx",
		".x...x...x...x..",
	)

	House909 = grid(
		"x...x...x...x..x",
		"....x.......x...",
		"xx.xxx.xxx.xxx.x",
		"..x...x...x...x.",
	)

	Minimal = grid(
		"x...x...x...x...",
		".......x......x.",
		"x.x.x.x.x.x.x.x.",
		"................",
	)

	AcidDrive = grid(
		"x.x.x.x.x.x.x.x.",
		"....x.......x...",
		"xxxxxxx.xxxxxx.x",
		".......x......x.",
	)
)

// DrumPreset is a named drum pattern.
type DrumPreset struct {
	Name    string
	Pattern sequencer.DrumPattern
}

var drumPatterns = []DrumPreset{
	{Name: "Basic Beat", Pattern: BasicBeat},
	{Name: "Breakbeat", Pattern: Breakbeat},
	{Name: "House 909", Pattern: House909},
	{Name: "Minimal", Pattern: Minimal},
	{Name: "Acid Drive", Pattern: AcidDrive},
}

// DrumCount returns the number of drum patterns.
func DrumCount() int { return len(drumPatterns) }

// DrumAt returns the drum pattern at index i, wrapping around.
func DrumAt(i int) DrumPreset {
	n := len(drumPatterns)

	return drumPatterns[((i%n)+n)%n]
}

// DrumNames returns the drum pattern names in order.
func DrumNames() []string {
	names := make([]string, len(drumPatterns))
	for i, d := range drumPatterns {
		names[i] = d.Name
	}

	return names
}

// LookupDrum finds a drum pattern by case-insensitive name.
func LookupDrum(name string) (DrumPreset, bool) {
	for _, d := range drumPatterns {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d, true
		}
	}

	return DrumPreset{}, false
}

// grid builds a pattern from kick, snare, closed and open hihat lanes.
func grid(lanes ...string) sequencer.DrumPattern {
	var p sequencer.DrumPattern

	for i := range p {
		p[i] = sequencer.DrumStep{
			Kick:        hit(lanes[0], i),
			Snare:       hit(lanes[1], i),
			ClosedHihat: hit(lanes[2], i),
			OpenHihat:   hit(lanes[3], i),
		}
	}

	return p
}

func hit(lane string, i int) bool {
	return i < len(lane) && lane[i] == 'x'
}
