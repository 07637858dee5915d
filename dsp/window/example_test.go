package window

import "fmt"

func ExampleHann() {
	w, _ := Hann(4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleApplyHann() {
	samples := []float64{2, 2, 2, 2, 2}
	out := ApplyHann(samples)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", out[0], out[1], out[2], out[3], out[4])
	fmt.Println(samples)
	// Output:
	// 0.00 1.00 2.00 1.00 0.00
	// [2 2 2 2 2]
}
