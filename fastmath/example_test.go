package fastmath_test

import (
	"fmt"

	"github.com/cwbudde/algo-turbomath/fastmath"
)

func ExampleInvSqrt() {
	fmt.Printf("%.4f\n", fastmath.InvSqrt(4))
	// Output:
	// 0.5000
}

func ExampleAtan2() {
	fmt.Printf("%.3f %.3f\n", fastmath.Atan2(1, 1), fastmath.Atan2(1, 0))
	// Output:
	// 0.784 1.571
}

func ExampleAsin() {
	fmt.Printf("%.4f %.4f\n", fastmath.Asin(0.5), fastmath.Asin(1))
	// Output:
	// 0.5236 1.5708
}

func ExampleAlt() {
	fmt.Printf("%.2f %.2f\n", fastmath.Alt(101325), fastmath.Alt(50000))
	// Output:
	// -0.06 0.00
}
