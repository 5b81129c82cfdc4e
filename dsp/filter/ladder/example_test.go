package ladder_test

import (
	"fmt"

	"github.com/cwbudde/algo-acid/dsp/filter/ladder"
)

func ExampleFilter() {
	f, err := ladder.New(44100, ladder.WithCutoffHz(500), ladder.WithResonance(0.6))
	if err != nil {
		panic(err)
	}

	// A DC step settles towards the feedback-reduced passband gain.
	var y float64
	for range 44100 {
		y = f.ProcessSample(0.5)
	}

	fmt.Printf("cutoff=%.0f resonance=%.1f y=%.3f\n", f.CutoffHz(), f.Resonance(), y)

	// Output:
	// cutoff=500 resonance=0.6 y=0.152
}
