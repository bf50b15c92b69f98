package stimulus

import (
	"errors"
	"github.com/cespare/xxhash"
	"math/rand"
	"strings"
)

// ErrNoColours is returned when an assignment is requested for an
// empty colour list.
var ErrNoColours = errors.New("stimulus: at least one colour is required")

// Assignment is a k x k grid of colour names, where k is the number
// of colours it was built from. The length of the colour list is
// both the palette size and the side of the grid.
//
// Every occurrence of a name in the colour list appears exactly k
// times in the grid. Balance is global only, no row or column is
// guaranteed to contain each colour.
type Assignment struct {
	side  int
	cells []string // row-major, len side*side
}

// NewAssignment builds a balanced random assignment for colours,
// drawing the permutation from rng.
func NewAssignment(colours []string, rng *rand.Rand) (*Assignment, error) {
	k := len(colours)
	if k == 0 {
		return nil, ErrNoColours
	}

	// the whole list is repeated k times, rather than each colour
	cells := make([]string, 0, k*k)
	for i := 0; i < k; i++ {
		cells = append(cells, colours...)
	}

	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	return &Assignment{side: k, cells: cells}, nil
}

// Side returns the number of rows (and columns) in the grid.
func (a *Assignment) Side() int {
	return a.side
}

// At returns the colour name at the given row and column.
func (a *Assignment) At(row, col int) string {
	return a.cells[row*a.side+col]
}

// Cells returns a copy of the grid in row-major order.
func (a *Assignment) Cells() []string {
	return append([]string(nil), a.cells...)
}

// Counts returns the number of cells holding each colour name.
func (a *Assignment) Counts() map[string]int {
	counts := make(map[string]int)
	for _, c := range a.cells {
		counts[c]++
	}
	return counts
}

// Fingerprint returns a hash of the layout, so that two assignments
// can be compared cheaply.
func (a *Assignment) Fingerprint() uint64 {
	return xxhash.Sum64([]byte(a.String()))
}

// String returns the grid as rows separated by newlines, with cells
// separated by spaces.
func (a *Assignment) String() string {
	var b strings.Builder
	for row := 0; row < a.side; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(a.cells[row*a.side:(row+1)*a.side], " "))
	}
	return b.String()
}

// Cell returns the rectangle covered by the cell at row, col when a
// width x height canvas is split into a k x k grid. Coordinates are
// not rounded to whole pixels.
func Cell(width, height, k, row, col int) (x, y, w, h float64) {
	w = float64(width) / float64(k)
	h = float64(height) / float64(k)
	return float64(col) * w, float64(row) * h, w, h
}
