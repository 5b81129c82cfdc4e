package spectrum

import (
	"math"

	"github.com/cwbudde/algo-acid/dsp/core"
)

// FloorDB is the lowest level reported by the dB helpers.
const FloorDB = -130.0

// AmplitudeDB converts a linear amplitude to dBFS, floored at FloorDB.
func AmplitudeDB(amplitude float64) float64 {
	if !(amplitude > 0) {
		return FloorDB
	}

	return math.Max(FloorDB, core.LinearToDB(amplitude))
}
