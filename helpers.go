package main

import (
	"ColorGradient/misc"
	"flag"
	"log"
	"strings"
)

func parseArguments() {
	flag.StringVar(&settingsFile, "settingsFile", "", "Json file with the gradient anchors")
	flag.StringVar(&anchors, "anchors", "", "Comma separated hex anchors, overrides the settings file")
	flag.BoolVar(&swatch, "swatch", false, "Prefix each color with a swatch when writing to a terminal")
	flag.StringVar(&verbosity, "verbosity", "minimal", "Log verbosity: "+strings.Join(misc.Verbosities, ", "))

	// Service values
	flag.BoolVar(&serve, "serve", false, "Serve gradient calculations over rpc instead of printing")
	flag.StringVar(&serverAddress, "address", "", "Address to serve on (default <local address>:51000)")
	flag.StringVar(&remoteAddress, "remote", "", "Address of a gradient service to calculate with")

	flag.Parse()

	if !misc.ValidVerbosity(verbosity) {
		log.Fatalf("Unknown verbosity %q, expected one of %s", verbosity, strings.Join(misc.Verbosities, ", "))
	}
	if serve && remoteAddress != "" {
		log.Fatal("Please specify either -serve or -remote, not both")
	}
}

func splitAnchors(value string) []string {
	var hexAnchors []string
	for _, anchor := range strings.Split(value, ",") {
		if anchor = strings.TrimSpace(anchor); anchor != "" {
			hexAnchors = append(hexAnchors, anchor)
		}
	}
	return hexAnchors
}
