// Package palette provides the fixed table of named colours that
// stimuli are drawn from.
package palette

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"image/color"
	"strings"
)

// Colour is a linear RGB colour with each channel in [0, 1].
// There is no alpha channel, every Colour is opaque.
type Colour = colorful.Color

var (
	Red    = Colour{R: 1, G: 0, B: 0}
	Green  = Colour{R: 0, G: 1, B: 0}
	Blue   = Colour{R: 0, G: 0, B: 1}
	Yellow = Colour{R: 1, G: 1, B: 0}
	Purple = Colour{R: 1, G: 0, B: 1}
	Black  = Colour{R: 0, G: 0, B: 0}
	White  = Colour{R: 1, G: 1, B: 1}
	Cyan   = Colour{R: 0, G: 1, B: 1}
)

// names holds the recognised colour names in table order.
var names = []string{"red", "green", "blue", "yellow", "purple", "black", "white", "cyan"}

// colours maps a colour name to its value. It is populated once
// and never written to afterwards.
var colours = map[string]Colour{
	"red":    Red,
	"green":  Green,
	"blue":   Blue,
	"yellow": Yellow,
	"purple": Purple,
	"black":  Black,
	"white":  White,
	"cyan":   Cyan,
}

// UnknownColourError is returned when a colour name is not
// present in the palette.
type UnknownColourError struct {
	Name string
}

func (e *UnknownColourError) Error() string {
	return fmt.Sprintf("unknown colour %q (choose from %s)", e.Name, strings.Join(names, ", "))
}

// Resolve returns the colour with the given name.
func Resolve(name string) (Colour, error) {
	c, ok := colours[name]
	if !ok {
		return Colour{}, &UnknownColourError{Name: name}
	}
	return c, nil
}

// Validate reports the first name in the list that cannot be
// resolved, or nil if every name is known.
func Validate(names []string) error {
	for _, name := range names {
		if _, err := Resolve(name); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the recognised colour names in table order.
func Names() []string {
	return append([]string(nil), names...)
}

// ToRGBA converts the colour to an opaque 8-bit per channel
// colour.RGBA.
func ToRGBA(c Colour) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
