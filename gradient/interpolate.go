package gradient

import "math"

type Point struct {
	X float32
	Y float32
}

// FindSlope returns the slope of the line through first and second. The
// result is infinite or NaN when both points share the same x.
func FindSlope(first Point, second Point) float32 {
	return (second.Y - first.Y) / (second.X - first.X)
}

func ClosestWholeNumbers(x float32) (float32, float32) {
	return float32(math.Floor(float64(x))), float32(math.Ceil(float64(x)))
}

// FindY treats known as y values sampled at x = 0, 1, ..., len(known)-1 and
// returns the linearly interpolated y value at x.
//
// Whole positions are looked up directly. The fractional part is compared to
// zero exactly, so a position that is only nearly whole is interpolated.
// Since every whole position takes the lookup path, left and right below are
// always distinct and FindSlope never divides by zero.
func FindY(x float32, known []int8) (float32, error) {
	if _, fraction := math.Modf(float64(x)); fraction == 0 {
		index, err := knownIndex(x, known)
		if err != nil {
			return 0, err
		}
		return float32(known[index]), nil
	}

	leftX, rightX := ClosestWholeNumbers(x)
	left, err := knownIndex(leftX, known)
	if err != nil {
		return 0, &BoundsError{Position: x, Known: len(known)}
	}
	right, err := knownIndex(rightX, known)
	if err != nil {
		return 0, &BoundsError{Position: x, Known: len(known)}
	}

	leftY := float32(known[left])
	slope := FindSlope(
		Point{X: leftX, Y: leftY},
		Point{X: rightX, Y: float32(known[right])},
	)

	// Extend the line from the left point by however far x sits past it.
	// The explicit conversion keeps the product from being fused into the add.
	return leftY + float32(slope*(x-leftX)), nil
}

// knownIndex converts a whole position into an index of known.
func knownIndex(x float32, known []int8) (int, error) {
	// Written as a negation so that NaN is rejected too.
	if !(x >= 0 && x <= float32(len(known)-1)) {
		return 0, &BoundsError{Position: x, Known: len(known)}
	}
	return int(x), nil
}
