package output

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/sevetis/ray-tracer/pkg/core"
)

// Image is a rectangular grid of linear colors
type Image interface {
	Size() (width, height int)
	At(x, y int) core.Vec3
}

// ToByte converts a linear color channel to an 8-bit gamma-2 value.
// Non-positive and NaN values map to 0; values above 1 saturate at 255.
func ToByte(c float64) uint8 {
	if !(c > 0) {
		return 0
	}
	return uint8(math.Floor(math.Min(math.Sqrt(c), 1) * 255.999))
}

// WritePPM writes img as a plain-text P3 PPM, rows top to bottom
func WritePPM(w io.Writer, img Image) error {
	width, height := img.Size()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", ToByte(c.X), ToByte(c.Y), ToByte(c.Z)); err != nil {
				return fmt.Errorf("writing ppm pixel (%d, %d): %w", x, y, err)
			}
		}
	}
	return bw.Flush()
}
