package canvas

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"image"
	"image/color"
	"io"
)

// pointsPerInch is the DPI at which one vg point is one pixel.
const pointsPerInch = 72

func init() {
	Install("plot", NewPlot)
}

// Plot is a canvas backed by a gonum vgimg canvas.
type Plot struct {
	c      *vgimg.Canvas
	height float64
}

// NewPlot returns an opaque black Plot canvas.
func NewPlot(width, height int) (Canvas, error) {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width), vg.Length(height)),
		vgimg.UseDPI(pointsPerInch),
		vgimg.UseBackgroundColor(color.Black),
	)
	return &Plot{c: c, height: float64(height)}, nil
}

func (p *Plot) FillRect(x, y, w, h float64, c color.Color) {
	// vg places the origin in the bottom-left corner
	bottom := p.height - y - h

	var path vg.Path
	path.Move(vg.Point{X: vg.Length(x), Y: vg.Length(bottom)})
	path.Line(vg.Point{X: vg.Length(x + w), Y: vg.Length(bottom)})
	path.Line(vg.Point{X: vg.Length(x + w), Y: vg.Length(bottom + h)})
	path.Line(vg.Point{X: vg.Length(x), Y: vg.Length(bottom + h)})
	path.Close()

	p.c.SetColor(c)
	p.c.Fill(path)
}

func (p *Plot) Bounds() image.Rectangle {
	return p.c.Image().Bounds()
}

func (p *Plot) Image() image.Image {
	return p.c.Image()
}

func (p *Plot) EncodePNG(w io.Writer) error {
	_, err := vgimg.PngCanvas{Canvas: p.c}.WriteTo(w)
	return err
}
