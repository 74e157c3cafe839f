package gradient

import "fmt"

// SampleCount is the number of colors Calculate produces.
const SampleCount = 100

// Calculate spreads SampleCount colors evenly from the first anchor towards
// the last one, interpolating each channel separately. The first color always
// equals the first anchor. The last one stops one step short of the last
// anchor.
func Calculate(anchors []RGB) ([]RGB, error) {
	// Distance in anchor index space between two neighbouring samples
	step := (float32(len(anchors)) - 1) / SampleCount
	channels := GetChannels(anchors)
	colors := make([]RGB, 0, SampleCount)

	for i := 0; i < SampleCount; i++ {
		x := float32(i) * step

		var components [3]int8
		for c, channel := range [][]int8{channels.Red, channels.Green, channels.Blue} {
			y, err := FindY(x, channel)
			if err != nil {
				return nil, fmt.Errorf("sample %d, %s channel: %w", i, channelNames[c], err)
			}
			components[c] = narrow(y)
		}
		colors = append(colors, RGB{R: components[0], G: components[1], B: components[2]})
	}

	return colors, nil
}

var channelNames = [3]string{"red", "green", "blue"}
