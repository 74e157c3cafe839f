package gradient

import (
	"ColorGradient/misc"
	"encoding/json"
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultAnchors are used when no anchors are configured.
var DefaultAnchors = []RGB{
	{R: 12, G: 16, B: 24},
	{R: 15, G: 19, B: 24},
	{R: 42, G: 14, B: 44},
}

// Settings describes the anchors of a gradient. Anchors holds red, green,
// blue triples and HexAnchors holds "#rrggbb" strings; triples come first.
type Settings struct {
	colors []RGB
	logger bslogger.Logger

	Anchors    [][]int
	HexAnchors []string
}

// NewSettings reads settings from a json file. An empty file name yields the
// defaults.
func NewSettings(settingsFile string, logger bslogger.Logger) (Settings, error) {
	s := Settings{logger: logger}
	if settingsFile != "" {
		fileBytes, err := misc.ReadFile(settingsFile)
		if err != nil {
			return Settings{}, err
		}
		if err = json.Unmarshal(fileBytes, &s); err != nil {
			return Settings{}, fmt.Errorf("unable to parse %s - %w", settingsFile, err)
		}
	}
	if err := s.Verify(); err != nil {
		return Settings{}, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nGradient settings\n"
	for i, color := range s.colors {
		output += fmt.Sprintf("Anchor %d: %s\n", i, color)
	}
	return output
}

// Colors returns the anchors resolved by Verify.
func (s *Settings) Colors() []RGB {
	return s.colors
}

func (s *Settings) Verify() error {
	s.colors = make([]RGB, 0, len(s.Anchors)+len(s.HexAnchors))

	for i, anchor := range s.Anchors {
		color, err := NewRGB(anchor)
		if err != nil {
			return &SettingsError{Field: "Anchors", Index: i, Message: err.Error()}
		}
		s.colors = append(s.colors, color)
	}

	for i, hex := range s.HexAnchors {
		c, err := colorful.Hex(hex)
		if err != nil {
			return &SettingsError{Field: "HexAnchors", Index: i, Message: err.Error()}
		}
		r, g, b := c.RGB255()
		color, _ := NewRGB([]int{int(r), int(g), int(b)})
		s.colors = append(s.colors, color)
	}

	if len(s.colors) == 0 {
		s.colors = append(s.colors, DefaultAnchors...)
		s.logger.Info("No anchors configured, using the default anchors")
	}

	return nil
}
