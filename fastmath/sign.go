package fastmath

// Fsign returns -1, 0 or 1 according to the sign of y. NaN maps to 0.
func Fsign(y float32) float32 {
	switch {
	case y > 0:
		return 1
	case y < 0:
		return -1
	default:
		return 0
	}
}

// Fabs returns the absolute value of x.
func Fabs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
