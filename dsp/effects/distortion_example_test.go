package effects_test

import (
	"fmt"

	"github.com/cwbudde/algo-acid/dsp/effects"
)

func ExampleDistortion_ProcessSample() {
	d, err := effects.NewDistortion(48000,
		effects.WithDistortionDrive(0.5),
		effects.WithDistortionMix(1),
	)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f\n", d.ProcessSample(0.1))
	// Output: 0.4296
}
