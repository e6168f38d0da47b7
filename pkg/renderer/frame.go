package renderer

import (
	"fmt"

	"github.com/sevetis/ray-tracer/pkg/core"
)

// Frame is a row-major buffer of averaged linear colors
type Frame struct {
	Width, Height int
	Pixels        []core.Vec3 // index row*Width + col
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Size returns the frame dimensions
func (f *Frame) Size() (int, int) {
	return f.Width, f.Height
}

// At returns the color of column x, row y
func (f *Frame) At(x, y int) core.Vec3 {
	return f.Pixels[f.index(x, y)]
}

// Set stores the color of column x, row y
func (f *Frame) Set(x, y int, color core.Vec3) {
	f.Pixels[f.index(x, y)] = color
}

func (f *Frame) index(x, y int) int {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		panic(fmt.Sprintf("renderer: pixel (%d, %d) outside %dx%d frame", x, y, f.Width, f.Height))
	}
	return y*f.Width + x
}
