package output

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// ToRGBA gamma-corrects img into an 8-bit RGBA image
func ToRGBA(img Image) *image.RGBA {
	width, height := img.Size()
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(x, y)
			rgba.SetRGBA(x, y, color.RGBA{R: ToByte(c.X), G: ToByte(c.Y), B: ToByte(c.Z), A: 255})
		}
	}
	return rgba
}

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img Image) error {
	return png.Encode(w, ToRGBA(img))
}
