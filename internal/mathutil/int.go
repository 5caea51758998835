package mathutil

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints (search: int-math).
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits v to [lo, hi]. When lo > hi, lo wins (search: int-math).
func IntClamp(v, lo, hi int) int {
	return IntMax(lo, IntMin(v, hi))
}
