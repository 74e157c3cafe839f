package gradient

import (
	"fmt"
)

// RGB is a color with signed 8 bit components.
type RGB struct {
	R int8
	G int8
	B int8
}

// NewRGB builds a color from a red, green, blue sequence. Each value is
// narrowed to 8 bits without a range check, so 200 becomes -56.
func NewRGB(values []int) (RGB, error) {
	if len(values) != 3 {
		return RGB{}, fmt.Errorf("expected 3 color components, got %d", len(values))
	}
	return RGB{
		R: int8(values[0]),
		G: int8(values[1]),
		B: int8(values[2]),
	}, nil
}

func (c RGB) String() string {
	return fmt.Sprintf("RGB { r: %d, g: %d, b: %d }", c.R, c.G, c.B)
}

// narrow truncates toward zero and wraps into the int8 range.
func narrow(v float32) int8 {
	return int8(int32(v))
}
