package drums_test

import (
	"fmt"

	"github.com/cwbudde/algo-acid/drums"
)

func ExampleKick() {
	kick, err := drums.NewKick(44100)
	if err != nil {
		panic(err)
	}

	kick.SetPitch(1)
	kick.Trigger()

	n := 0
	for kick.Active() {
		kick.ProcessSample()
		n++
	}

	fmt.Printf("%.0f Hz, %d ms\n", kick.BaseFreq(), n*1000/44100)
	// Output: 80 Hz, 275 ms
}
