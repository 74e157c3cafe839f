package gradient

import (
	"errors"
	"math"
	"testing"
)

func TestFindSlope(t *testing.T) {
	testCases := []struct {
		first, second Point
		want          float32
	}{
		{Point{X: 0, Y: 2}, Point{X: 4, Y: 5}, 0.75},
		{Point{X: 0, Y: 1}, Point{X: 2, Y: 2}, 0.5},
		{Point{X: -2, Y: 1}, Point{X: 1, Y: 2}, 0.33333334},
	}
	for i, tc := range testCases {
		if got := FindSlope(tc.first, tc.second); got != tc.want {
			t.Errorf("%d: FindSlope(%v, %v) = %v, want %v", i, tc.first, tc.second, got, tc.want)
		}
		// swapping the points must not change the slope of the line
		if got := FindSlope(tc.second, tc.first); got != tc.want {
			t.Errorf("%d: FindSlope(%v, %v) = %v, want %v", i, tc.second, tc.first, got, tc.want)
		}
		// mirroring one point's offset flips the sign
		mirrored := Point{X: tc.second.X, Y: 2*tc.first.Y - tc.second.Y}
		if got := FindSlope(tc.first, mirrored); got != -tc.want {
			t.Errorf("%d: FindSlope(%v, %v) = %v, want %v", i, tc.first, mirrored, got, -tc.want)
		}
	}
}

func TestFindSlopeSameX(t *testing.T) {
	got := FindSlope(Point{X: 3, Y: 1}, Point{X: 3, Y: 4})
	if !math.IsInf(float64(got), 1) {
		t.Errorf("FindSlope with equal x = %v, want +Inf", got)
	}
}

func TestClosestWholeNumbers(t *testing.T) {
	testCases := []struct {
		x           float32
		left, right float32
	}{
		{0.1, 0, 1},
		{1, 1, 1},
		{4.4, 4, 5},
		{5, 5, 5},
		{8.4, 8, 9},
		{-0.5, -1, 0},
	}
	for _, tc := range testCases {
		left, right := ClosestWholeNumbers(tc.x)
		if left != tc.left || right != tc.right {
			t.Errorf("ClosestWholeNumbers(%v) = (%v, %v), want (%v, %v)",
				tc.x, left, right, tc.left, tc.right)
		}
	}
}

func TestFindY(t *testing.T) {
	known := []int8{12, 23, 30, 49, 53, 54, 41, 32, 29}

	testCases := []struct {
		x    float32
		want float32
	}{
		{0, 12},
		{1.4, 25.8},
		{2, 30},
		{2.2, 33.8},
		{3, 49},
		{3.8, 52.2},
		{4.8, 53.8},
		{5.8, 43.6},
		{8, 29},
	}
	for _, tc := range testCases {
		got, err := FindY(tc.x, known)
		if err != nil {
			t.Errorf("FindY(%v): %v", tc.x, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FindY(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestFindYWholePositionsAreExact(t *testing.T) {
	known := []int8{-128, -1, 0, 1, 127}
	for i, want := range known {
		got, err := FindY(float32(i), known)
		if err != nil {
			t.Fatal(err)
		}
		if got != float32(want) {
			t.Errorf("FindY(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestFindYBetweenKnots(t *testing.T) {
	known := []int8{-100, 100, 0}
	for _, f := range []float32{0.25, 0.5, 0.75} {
		for n := 0; n < len(known)-1; n++ {
			x := float32(n) + f
			got, err := FindY(x, known)
			if err != nil {
				t.Fatal(err)
			}
			want := float32(known[n]) + f*(float32(known[n+1])-float32(known[n]))
			if got != want {
				t.Errorf("FindY(%v) = %v, want %v", x, got, want)
			}
		}
	}
}

func TestFindYOutOfBounds(t *testing.T) {
	known := []int8{12, 23, 30}
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	testCases := []struct {
		x     float32
		known []int8
	}{
		{-1, known},
		{float32(len(known)), known},
		{-0.5, known},
		{2.5, known},
		{nan, known},
		{inf, known},
		{-inf, known},
		{0, nil},
		{0.5, []int8{7}},
	}
	for _, tc := range testCases {
		got, err := FindY(tc.x, tc.known)
		if !errors.Is(err, &BoundsError{}) {
			t.Errorf("FindY(%v, %v) = %v, %v, want a BoundsError", tc.x, tc.known, got, err)
		}
	}
}
