package gradient

type Channels struct {
	Red   []int8
	Green []int8
	Blue  []int8
}

// GetChannels pulls each component out of the colors into its own slice,
// keeping the input order.
func GetChannels(colors []RGB) Channels {
	channels := Channels{
		Red:   make([]int8, 0, len(colors)),
		Green: make([]int8, 0, len(colors)),
		Blue:  make([]int8, 0, len(colors)),
	}

	for _, color := range colors {
		channels.Red = append(channels.Red, color.R)
		channels.Green = append(channels.Green, color.G)
		channels.Blue = append(channels.Blue, color.B)
	}

	return channels
}
