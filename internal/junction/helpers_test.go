package junction

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// Stroke pixels use full intensity; background pixels use WhiteIntensity.
var (
	ink        = color.Gray{Y: 255}
	background = color.Gray{Y: WhiteIntensity}
)

// createTestImage creates a background-only grayscale image.
func createTestImage(rows, cols int) *image.Gray {
	return image.NewGray(image.Rect(0, 0, cols, rows))
}

// drawHLine draws a horizontal stroke of the given width starting at row.
func drawHLine(img *image.Gray, row, col0, col1, width int) {
	for t := 0; t < width; t++ {
		for c := col0; c <= col1; c++ {
			img.SetGray(c, row+t, ink)
		}
	}
}

// drawVLine draws a vertical stroke of the given width starting at col.
func drawVLine(img *image.Gray, col, row0, row1, width int) {
	for t := 0; t < width; t++ {
		for r := row0; r <= row1; r++ {
			img.SetGray(col+t, r, ink)
		}
	}
}

// drawCross draws a "+" centred at (row, col) with arms of the given length.
func drawCross(img *image.Gray, row, col, arm, width int) {
	drawHLine(img, row, col-arm, col+arm, width)
	drawVLine(img, col, row-arm, row+arm, width)
}

func mustGrid(t *testing.T, img *image.Gray) *BinaryGrid {
	t.Helper()
	grid, err := NewBinaryGrid(img)
	require.NoError(t, err)
	return grid
}

// crossGrid is the reference fixture: a single-pixel "+" off the sweep lattice.
func crossGrid(t *testing.T) *BinaryGrid {
	t.Helper()
	img := createTestImage(101, 101)
	drawCross(img, 52, 52, 20, 1)
	return mustGrid(t, img)
}
