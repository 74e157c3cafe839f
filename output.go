package main

import (
	"ColorGradient/gradient"
	"bufio"
	"fmt"
	"io"
)

// printGradient writes one color per line in generation order.
func printGradient(w io.Writer, colors []gradient.RGB, withSwatch bool) error {
	out := bufio.NewWriter(w)
	for _, color := range colors {
		if withSwatch {
			fmt.Fprintf(out, "%s %s\n", swatchBlock(color), color)
			continue
		}
		fmt.Fprintln(out, color)
	}
	return out.Flush()
}

// swatchBlock renders the color as a 24 bit ansi background. Components are
// reinterpreted as bytes, so -56 shows as 200.
func swatchBlock(color gradient.RGB) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm  \033[0m", uint8(color.R), uint8(color.G), uint8(color.B))
}
