package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

// near reports whether every channel of a and b is within 1.
func near(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	within := func(x, y uint32) bool {
		x, y = x>>8, y>>8
		if x > y {
			return x-y <= 1
		}
		return y-x <= 1
	}
	return within(ar, br) && within(ag, bg) && within(ab, bb) && within(aa, ba)
}

func TestGetDriver(t *testing.T) {
	for _, name := range []string{"auto", "vector", "plot"} {
		if GetDriver(name) == nil {
			t.Errorf("GetDriver(%q) = nil", name)
		}
	}
	if GetDriver("cairo") != nil {
		t.Errorf("GetDriver(cairo) should be nil")
	}
	if names := Names(); len(names) < 2 {
		t.Errorf("Names() = %v, want at least vector and plot", names)
	}
}

func TestNewInvalid(t *testing.T) {
	testCases := []struct {
		name          string
		renderer      string
		width, height int
	}{
		{"zero width", "vector", 0, 10},
		{"negative height", "plot", 10, -1},
		{"unknown renderer", "cairo", 10, 10},
		{"too wide", "vector", MaxSize + 1, 10},
		{"too tall", "plot", 10, MaxSize + 1},
		{"huge", "vector", 1 << 30, 1 << 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.renderer, tc.width, tc.height)
			if err == nil {
				t.Errorf("New(%q, %d, %d) = %v, want error", tc.renderer, tc.width, tc.height, c)
			}
		})
	}
}

func TestFillRect(t *testing.T) {
	red := color.RGBA{R: 0xFF, A: 0xFF}
	blue := color.RGBA{B: 0xFF, A: 0xFF}

	for _, name := range []string{"vector", "plot"} {
		t.Run(name, func(t *testing.T) {
			c, err := New(name, 20, 10)
			if err != nil {
				t.Fatal(err)
			}
			if b := c.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
				t.Fatalf("Bounds() = %v, want 20x10", b)
			}

			// a new canvas is black
			if got := c.Image().At(5, 5); !near(got, color.Black) {
				t.Errorf("new canvas pixel = %v, want black", got)
			}

			c.FillRect(0, 0, 10, 10, red)
			c.FillRect(10, 0, 10, 10, blue)

			img := c.Image()
			if got := img.At(2, 3); !near(got, red) {
				t.Errorf("left pixel = %v, want red", got)
			}
			if got := img.At(17, 8); !near(got, blue) {
				t.Errorf("right pixel = %v, want blue", got)
			}
			// top-left origin, so the first row is filled too
			if got := img.At(2, 0); !near(got, red) {
				t.Errorf("top row pixel = %v, want red", got)
			}
		})
	}
}

func TestFractionalTiling(t *testing.T) {
	// 800 is not divisible by 3, cell edges fall between pixels
	const size, k = 800, 3
	c, err := New("vector", size, size)
	if err != nil {
		t.Fatal(err)
	}
	colours := []color.RGBA{
		{R: 0xFF, A: 0xFF},
		{G: 0xFF, A: 0xFF},
		{B: 0xFF, A: 0xFF},
	}
	cell := float64(size) / k
	for row := 0; row < k; row++ {
		for col := 0; col < k; col++ {
			c.FillRect(float64(col)*cell, float64(row)*cell, cell, cell, colours[(row+col)%k])
		}
	}

	img := c.Image()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r == 0 && g == 0 && b == 0 {
				t.Fatalf("pixel (%d, %d) left uncovered", x, y)
			}
		}
	}
}

func TestEncodePNG(t *testing.T) {
	for _, name := range []string{"vector", "plot"} {
		t.Run(name, func(t *testing.T) {
			c, err := New(name, 7, 5)
			if err != nil {
				t.Fatal(err)
			}
			c.FillRect(0, 0, 7, 5, color.RGBA{G: 0xFF, A: 0xFF})

			var buf bytes.Buffer
			if err := c.EncodePNG(&buf); err != nil {
				t.Fatal(err)
			}

			cfg, err := png.DecodeConfig(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Width != 7 || cfg.Height != 5 {
				t.Errorf("png size = %dx%d, want 7x5", cfg.Width, cfg.Height)
			}

			// IHDR bit depth and colour type: 8-bit truecolour, no alpha
			if hdr := buf.Bytes(); hdr[24] != 8 || hdr[25] != 2 {
				t.Errorf("png bit depth/colour type = %d/%d, want 8/2", hdr[24], hdr[25])
			}

			img, err := png.Decode(&buf)
			if err != nil {
				t.Fatal(err)
			}
			if got := img.At(3, 2); !near(got, color.RGBA{G: 0xFF, A: 0xFF}) {
				t.Errorf("decoded pixel = %v, want green", got)
			}
		})
	}
}
