// Package stimulus generates balanced colour grid stimuli and writes
// them to disk as PNG images.
package stimulus

import (
	"fmt"
	"github.com/thelolagemann/gridstim/internal/palette"
	"github.com/thelolagemann/gridstim/pkg/canvas"
	"github.com/thelolagemann/gridstim/pkg/log"
	"github.com/thelolagemann/gridstim/pkg/utils"
	"math/rand"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultOutputDir is the directory stimuli are written to unless
// WithOutputDir is used.
const DefaultOutputDir = "./stimuli/images"

// Generator renders colour grid stimuli. A Generator holds its own
// source of randomness and must not be used from more than one
// goroutine at a time.
type Generator struct {
	log.Logger

	rng      *rand.Rand
	renderer string
	dir      string
}

// New returns a Generator configured by opts.
func New(opts ...Opt) *Generator {
	g := &Generator{
		Logger:   log.NewNullLogger(),
		renderer: "auto",
		dir:      DefaultOutputDir,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g
}

// Filename returns the path stimulus n is written to.
func (g *Generator) Filename(n int) string {
	return filepath.Join(g.dir, "grid"+strconv.Itoa(n)+".png")
}

// Render allocates a width x height canvas and fills one cell per
// entry of the assignment.
func (g *Generator) Render(a *Assignment, width, height int) (canvas.Canvas, error) {
	c, err := canvas.New(g.renderer, width, height)
	if err != nil {
		return nil, err
	}

	k := a.Side()
	for row := 0; row < k; row++ {
		for col := 0; col < k; col++ {
			colour, err := palette.Resolve(a.At(row, col))
			if err != nil {
				return nil, err
			}
			x, y, w, h := Cell(width, height, k, row, col)
			c.FillRect(x, y, w, h, colour)
		}
	}

	return c, nil
}

// Generate creates stimulus n with a fresh assignment of colours and
// writes it to Filename(n).
func (g *Generator) Generate(n, width, height int, colours []string) error {
	a, err := NewAssignment(colours, g.rng)
	if err != nil {
		return err
	}

	c, err := g.Render(a, width, height)
	if err != nil {
		return fmt.Errorf("stimulus %d: %w", n, err)
	}

	path := g.Filename(n)
	if err := utils.SaveImage(path, c); err != nil {
		return &OutputError{Path: path, Err: err}
	}

	g.Debugf("wrote %s (%dx%d, layout %016x)", path, width, height, a.Fingerprint())
	return nil
}

// GenerateBatch writes count stimuli named grid0.png to
// grid<count-1>.png. Each stimulus is generated independently. The
// first error aborts the batch, leaving any images already written
// in place.
func (g *Generator) GenerateBatch(count, width, height int, colours []string) error {
	for _, p := range []struct {
		name  string
		value int
	}{
		{"count", count},
		{"width", width},
		{"height", height},
	} {
		if p.value < 1 {
			return &InvalidParameterError{Param: p.name, Value: strconv.Itoa(p.value), Reason: "must be greater than zero"}
		}
	}
	if len(colours) == 0 {
		return &InvalidParameterError{Param: "colours", Value: "", Reason: ErrNoColours.Error()}
	}

	g.Infof("generating %d stimuli (%dx%d, %dx%d grid) in %s", count, width, height, len(colours), len(colours), g.dir)
	for n := 0; n < count; n++ {
		if err := g.Generate(n, width, height, colours); err != nil {
			return err
		}
	}

	return nil
}
