package mathutil

import "testing"

func TestIntClamp(t *testing.T) {
	testCases := []struct {
		v, lo, hi int
		want      int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{7, 8, 2400, 8},
		{3, 5, 1, 5},
	}

	for _, tc := range testCases {
		if got := IntClamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Errorf("IntClamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}

func TestIntMinMax(t *testing.T) {
	if IntMin(3, -1) != -1 || IntMax(3, -1) != 3 {
		t.Error("IntMin/IntMax returned the wrong operand")
	}
}
