package time_test

import (
	"fmt"

	timestats "github.com/cwbudde/algo-spectral/stats/time"
)

func ExampleRMS() {
	r, err := timestats.RMS([]float64{3, -3, 3, -3})
	fmt.Printf("rms=%.1f err=%v\n", r, err)

	_, err = timestats.RMS(nil)
	fmt.Println(err)

	// Output:
	// rms=3.0 err=<nil>
	// stats: signal must contain at least one sample
}
