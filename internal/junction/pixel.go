package junction

import (
	"fmt"
	"image"
)

// Pixel is a grid coordinate. Two pixels are equal iff both coordinates match.
type Pixel struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// ImagePoint converts p to image coordinates for an image whose bounds start
// at origin.
func (p Pixel) ImagePoint(origin image.Point) image.Point {
	return image.Pt(origin.X+p.Col, origin.Y+p.Row)
}

// ImagePoints converts pixels with ImagePoint.
func ImagePoints(pixels []Pixel, origin image.Point) []image.Point {
	points := make([]image.Point, len(pixels))
	for i, p := range pixels {
		points[i] = p.ImagePoint(origin)
	}
	return points
}

// AreSimilar reports whether a and b are closer than closeness on both axes.
func AreSimilar(a, b Pixel, closeness int) bool {
	return absInt(a.Row-b.Row) < closeness && absInt(a.Col-b.Col) < closeness
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
