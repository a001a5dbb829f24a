package geom_test

import (
	"fmt"

	"github.com/cwbudde/algo-turbomath/geom"
)

func ExampleVector_Cross() {
	x := geom.NewVector(1, 0, 0)
	y := geom.NewVector(0, 1, 0)
	fmt.Println(x.Cross(y))
	// Output:
	// {0 0 1}
}

func ExampleFromTwoUnitVectors() {
	q := geom.FromTwoUnitVectors(geom.NewVector(1, 0, 0), geom.NewVector(0, 1, 0))
	fmt.Printf("%.4f %.4f %.4f %.4f\n", q.W, q.X, q.Y, q.Z)
	// Output:
	// 0.7071 0.0000 0.0000 0.7071
}

func ExampleQuaternion_RPY() {
	q := geom.NewQuaternion(0.70710678, 0, 0, 0.70710678)
	roll, pitch, yaw := q.RPY()
	fmt.Printf("%.3f %.3f %.3f\n", roll, pitch, yaw)
	// Output:
	// 0.000 0.000 1.571
}
