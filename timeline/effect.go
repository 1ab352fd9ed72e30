// Package timeline defines the zoom effect descriptors that the editing
// layer hands to the compositor, plus the lookup that maps a playback
// time to the active effect. The compositor only ever reads a snapshot
// of the effect collection; ownership and mutation stay with the editor.
package timeline

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Style selects how an effect's zoom level evolves across its window.
type Style uint8

const (
	// StyleInOut ramps the zoom up during the first half of the window
	// and back down during the second half, peaking at the midpoint.
	// This is the default style.
	StyleInOut Style = iota

	// StyleIn ramps the zoom up across the whole window, reaching the
	// effect's full level at the end.
	StyleIn

	// StyleOut starts at the effect's full level and decays back to
	// no zoom by the end of the window.
	StyleOut

	styleEndSentinel
)

// Wire tags for the style, as written by the effect editor.
const (
	tagInOut = "zoom-in-then-out"
	tagIn    = "zoom-in-only"
	tagOut   = "zoom-out-only"
)

// Returns the wire tag for the style.
func (self Style) String() string {
	switch self {
	case StyleInOut:
		return tagInOut
	case StyleIn:
		return tagIn
	case StyleOut:
		return tagOut
	default:
		panic("invalid Style")
	}
}

// ParseStyle converts a wire tag back to a [Style]. The empty string
// maps to [StyleInOut]; anything else unknown is an error.
func ParseStyle(tag string) (Style, error) {
	switch tag {
	case tagInOut, "":
		return StyleInOut, nil
	case tagIn:
		return StyleIn, nil
	case tagOut:
		return StyleOut, nil
	default:
		return StyleInOut, fmt.Errorf("unknown effect style %q", tag)
	}
}

func (self *Style) UnmarshalYAML(value *yaml.Node) error {
	var tag string
	if err := value.Decode(&tag); err != nil {
		return err
	}
	style, err := ParseStyle(tag)
	if err != nil {
		return err
	}
	*self = style
	return nil
}

func (self Style) MarshalYAML() (any, error) {
	return self.String(), nil
}

// Effect describes one time-bound zoom overlaid on the video. Times
// are in seconds on the playback clock, centers are normalized to the
// frame size, and Level is the peak zoom scale factor.
type Effect struct {
	ID       string  `yaml:"id"`
	Start    float64 `yaml:"start"`
	Duration float64 `yaml:"duration"`
	Level    float64 `yaml:"level"`
	CenterX  float64 `yaml:"center_x"`
	CenterY  float64 `yaml:"center_y"`
	Style    Style   `yaml:"style,omitempty"`
}

// End returns the end of the effect window.
func (self *Effect) End() float64 {
	return self.Start + self.Duration
}

// Contains reports whether t falls within the effect window.
// Both boundaries are inclusive.
func (self *Effect) Contains(t float64) bool {
	return t >= self.Start && t <= self.End()
}

// Validate checks the effect data invariants. The resolver relies on
// these (in particular Duration > 0), so collections coming from disk
// or from an editor must be validated before use.
func (self *Effect) Validate() error {
	if self.Start < 0 {
		return fmt.Errorf("effect %q: start must be >= 0, got %g", self.ID, self.Start)
	}
	if self.Duration <= 0 {
		return fmt.Errorf("effect %q: duration must be > 0, got %g", self.ID, self.Duration)
	}
	if self.Level < 1 {
		return fmt.Errorf("effect %q: level must be >= 1, got %g", self.ID, self.Level)
	}
	if self.CenterX < 0 || self.CenterX > 1 {
		return fmt.Errorf("effect %q: center_x must be in [0, 1], got %g", self.ID, self.CenterX)
	}
	if self.CenterY < 0 || self.CenterY > 1 {
		return fmt.Errorf("effect %q: center_y must be in [0, 1], got %g", self.ID, self.CenterY)
	}
	if self.Style >= styleEndSentinel {
		return fmt.Errorf("effect %q: invalid style value %d", self.ID, self.Style)
	}
	return nil
}
