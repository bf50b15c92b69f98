package canvas

import (
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"image"
	"image/color"
	"image/png"
	"io"
)

func init() {
	Install("vector", NewVector)
}

// Vector is a canvas backed by an *image.RGBA and rasterized with
// golang.org/x/image/vector. Rectangle edges that fall between pixels
// are anti-aliased by their coverage, and no snapping to whole pixels
// is performed.
type Vector struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewVector returns an opaque black Vector canvas.
func NewVector(width, height int) (Canvas, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over

	return &Vector{img: img, z: z}, nil
}

func (v *Vector) FillRect(x, y, w, h float64, c color.Color) {
	b := v.img.Bounds()
	v.z.Reset(b.Dx(), b.Dy())
	v.z.DrawOp = draw.Over

	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	v.z.MoveTo(x0, y0)
	v.z.LineTo(x1, y0)
	v.z.LineTo(x1, y1)
	v.z.LineTo(x0, y1)
	v.z.ClosePath()

	v.z.Draw(v.img, b, image.NewUniform(c), image.Point{})
}

func (v *Vector) Bounds() image.Rectangle {
	return v.img.Bounds()
}

func (v *Vector) Image() image.Image {
	return v.img
}

func (v *Vector) EncodePNG(w io.Writer) error {
	return png.Encode(w, v.img)
}
