package utils

import (
	"bufio"
	"io"
	"os"
)

// PNGEncoder is implemented by anything that can encode itself
// as a PNG.
type PNGEncoder interface {
	EncodePNG(w io.Writer) error
}

// SaveImage encodes img as a PNG to filename. The parent directory
// must already exist, it is never created. A partially written file
// may be left behind if encoding fails.
func SaveImage(filename string, img PNGEncoder) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	return writeImage(file, img)
}

// writeImage encodes img to w and closes it. The first error from
// encoding, flushing or closing is returned.
func writeImage(w io.WriteCloser, img PNGEncoder) (err error) {
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	buf := bufio.NewWriter(w)
	if err = img.EncodePNG(buf); err != nil {
		return err
	}

	return buf.Flush()
}
