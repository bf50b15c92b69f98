// Package cli implements the command line surface of gridstim.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"github.com/thelolagemann/gridstim/internal/palette"
	"github.com/thelolagemann/gridstim/internal/stimulus"
	"github.com/thelolagemann/gridstim/pkg/canvas"
	"io"
	"strings"
)

const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitInvalidInvocation = 2
)

const description = "generate stimuli for the ht familiarization phase."

// Defaults applied when a flag is not given.
const (
	DefaultCount  = 25
	DefaultWidth  = 800
	DefaultHeight = 800
)

// DefaultColours is the colour list used when -colors is not given.
var DefaultColours = []string{"red", "blue", "yellow", "purple", "black"}

// Invocation is a validated set of parameters for one batch.
type Invocation struct {
	Count     int
	Width     int
	Height    int
	Colours   []string
	OutputDir string
	Renderer  string
	Verbose   bool
}

// ParseInvocation parses and validates the command line arguments.
// Every error it returns is a *stimulus.InvalidParameterError, except
// flag.ErrHelp when help was requested.
func ParseInvocation(args []string, usage io.Writer) (Invocation, error) {
	fs := flag.NewFlagSet("gridstim", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: gridstim [flags] [-c colour [colour ...]]\n\n%s\n\n", description)
		fs.PrintDefaults()
	}

	count, width, height := positiveInt(DefaultCount), positiveInt(DefaultWidth), positiveInt(DefaultHeight)
	colours := &colourList{names: append([]string(nil), DefaultColours...)}
	var inv Invocation

	fs.Var(&count, "n", "The number of stimuli to generate [1, inf)")
	fs.Var(&count, "num-stimuli", "The number of stimuli to generate [1, inf)")
	fs.Var(&width, "w", "The width of the stimuli, must be larger than 0")
	fs.Var(&width, "width", "The width of the stimuli, must be larger than 0")
	fs.Var(&height, "H", "The height of the stimuli, must be larger than 0")
	fs.Var(&height, "height", "The height of the stimuli, must be larger than 0")

	choices := strings.Join(palette.Names(), ", ")
	fs.Var(colours, "c", "The colours used to generate the stimuli, one or more of: "+choices)
	fs.Var(colours, "colors", "The colours used to generate the stimuli, one or more of: "+choices)

	fs.StringVar(&inv.OutputDir, "out", stimulus.DefaultOutputDir, "The existing directory the images are written to")
	fs.StringVar(&inv.Renderer, "renderer", "auto", "The renderer to draw with: auto, "+strings.Join(canvas.Names(), ", "))
	fs.BoolVar(&inv.Verbose, "v", false, "Log every image written")

	// flag stops at the first non-flag argument. Names directly after
	// -c extend the colour list, and parsing resumes at the next flag,
	// so that "-c red blue -n 3" works.
	rest := args
	for len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return Invocation{}, err
			}
			return Invocation{}, &stimulus.InvalidParameterError{Param: "arguments", Value: strings.Join(args, " "), Reason: err.Error()}
		}

		consumed := rest[:len(rest)-fs.NArg()]
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}

		if !endsWithColourFlag(consumed) {
			return Invocation{}, &stimulus.InvalidParameterError{
				Param:  "arguments",
				Value:  strings.Join(rest, " "),
				Reason: "unrecognized arguments",
			}
		}
		for len(rest) > 0 && !isFlag(rest[0]) {
			if err := colours.add(rest[0]); err != nil {
				return Invocation{}, &stimulus.InvalidParameterError{Param: "colors", Value: rest[0], Reason: err.Error()}
			}
			rest = rest[1:]
		}
	}

	var unknown *palette.UnknownColourError
	if err := palette.Validate(colours.names); errors.As(err, &unknown) {
		return Invocation{}, &stimulus.InvalidParameterError{
			Param:  "colors",
			Value:  unknown.Name,
			Reason: "invalid choice (choose from " + choices + ")",
		}
	}

	if inv.Renderer != "auto" && canvas.GetDriver(inv.Renderer) == nil {
		return Invocation{}, &stimulus.InvalidParameterError{
			Param:  "renderer",
			Value:  inv.Renderer,
			Reason: "invalid choice (choose from auto, " + strings.Join(canvas.Names(), ", ") + ")",
		}
	}

	for _, p := range []struct {
		name  string
		value positiveInt
	}{
		{"width", width},
		{"height", height},
	} {
		if p.value > canvas.MaxSize {
			return Invocation{}, &stimulus.InvalidParameterError{
				Param:  p.name,
				Value:  p.value.String(),
				Reason: fmt.Sprintf("must be at most %d", canvas.MaxSize),
			}
		}
	}

	inv.Count = int(count)
	inv.Width = int(width)
	inv.Height = int(height)
	inv.Colours = colours.names
	return inv, nil
}
