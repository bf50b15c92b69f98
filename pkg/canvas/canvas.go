// Package canvas provides in-memory raster surfaces that can fill
// axis-aligned rectangles at fractional pixel coordinates and export
// the result as a PNG.
//
// Renderers register themselves with Install in their init function,
// and are looked up by name with New.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Canvas is the interface that wraps the basic drawing methods
// of a raster surface. A new Canvas is opaque black.
type Canvas interface {
	// FillRect fills the rectangle with its top-left corner at
	// (x, y) and the given width and height. Coordinates are in
	// pixels, with the origin in the top-left corner of the canvas.
	FillRect(x, y, w, h float64, c color.Color)
	// Bounds returns the pixel bounds of the canvas.
	Bounds() image.Rectangle
	// Image returns the current contents of the canvas.
	Image() image.Image
	// EncodePNG writes the canvas to w as an opaque RGB PNG.
	EncodePNG(w io.Writer) error
}

// MaxSize is the largest width or height, in pixels, a canvas may
// have. It matches the limit of cairo image surfaces.
const MaxSize = 32767

// Driver allocates a canvas of the given size in pixels.
type Driver func(width, height int) (Canvas, error)

// InstalledDriver is a renderer that has been installed under
// a name.
type InstalledDriver struct {
	Name string
	Driver
}

// InstalledDrivers is the list of installed renderers, in the
// order they were installed.
var InstalledDrivers []*InstalledDriver

// Install registers a renderer with the given name.
func Install(name string, driver Driver) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:   name,
		Driver: driver,
	})
}

// GetDriver returns the renderer with the given name, or nil if
// no renderer with that name is installed. "auto" selects the
// first installed renderer.
func GetDriver(name string) Driver {
	if name == "auto" || name == "" {
		if len(InstalledDrivers) == 0 {
			return nil
		}
		return InstalledDrivers[0].Driver
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// Names returns the names of the installed renderers.
func Names() []string {
	names := make([]string, 0, len(InstalledDrivers))
	for _, driver := range InstalledDrivers {
		names = append(names, driver.Name)
	}
	return names
}

// New allocates a width x height canvas using the named renderer.
func New(name string, width, height int) (Canvas, error) {
	if width <= 0 || height <= 0 || width > MaxSize || height > MaxSize {
		return nil, fmt.Errorf("canvas: invalid size %dx%d (each side must be in [1, %d])", width, height, MaxSize)
	}
	driver := GetDriver(name)
	if driver == nil {
		return nil, fmt.Errorf("canvas: unknown renderer %q", name)
	}
	return driver(width, height)
}
