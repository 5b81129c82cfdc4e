package envelope_test

import (
	"fmt"

	"github.com/cwbudde/algo-acid/dsp/envelope"
)

func ExampleDecay() {
	env, err := envelope.New(1000)
	if err != nil {
		panic(err)
	}

	env.SetDecayMS(100)
	env.Trigger(1.5)

	var v float64
	for range 101 {
		v = env.ProcessSample()
	}

	fmt.Printf("peak=%.1f after=%.3f\n", env.Peak(), v)

	// Output:
	// peak=1.5 after=0.015
}
