package stimulus

import (
	"github.com/thelolagemann/gridstim/pkg/log"
	"math/rand"
)

// Opt is a function that modifies a Generator.
type Opt func(g *Generator)

// WithLogger sets the logger used to report progress.
func WithLogger(l log.Logger) Opt {
	return func(g *Generator) {
		g.Logger = l
	}
}

// WithRand sets the source of randomness used to shuffle each
// assignment. The source is not safe for concurrent use, so it
// must not be shared with another Generator running in parallel.
func WithRand(rng *rand.Rand) Opt {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithRenderer selects the canvas renderer by name.
func WithRenderer(name string) Opt {
	return func(g *Generator) {
		g.renderer = name
	}
}

// WithOutputDir sets the directory the images are written to. The
// directory must already exist.
func WithOutputDir(dir string) Opt {
	return func(g *Generator) {
		g.dir = dir
	}
}
