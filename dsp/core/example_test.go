package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

func ExampleFloorPowerOfTwo() {
	fmt.Println(core.IsPowerOfTwo(250), core.FloorPowerOfTwo(250), core.NextPowerOfTwo(250))

	// Output:
	// false 128 256
}
