package junction

import (
	"errors"
	"fmt"
	"image"
)

// ErrEmptyGrid is returned when a grid would have no rows or no columns.
var ErrEmptyGrid = errors.New("grid has no pixels")

// BinaryGrid is an immutable rows × columns field of whiteness flags.
type BinaryGrid struct {
	rows    int
	columns int
	white   []bool
}

// NewBinaryGrid discretizes a grayscale image. Row r and column c of the grid
// correspond to the pixel at (Bounds().Min.X+c, Bounds().Min.Y+r).
func NewBinaryGrid(img *image.Gray) (*BinaryGrid, error) {
	bounds := img.Bounds()
	rows, columns := bounds.Dy(), bounds.Dx()
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, columns, rows)
	}

	g := &BinaryGrid{
		rows:    rows,
		columns: columns,
		white:   make([]bool, rows*columns),
	}
	for r := 0; r < rows; r++ {
		offset := img.PixOffset(bounds.Min.X, bounds.Min.Y+r)
		line := img.Pix[offset : offset+columns]
		for c, v := range line {
			g.white[r*columns+c] = v == WhiteIntensity
		}
	}
	return g, nil
}

// NewBinaryGridFromRows discretizes a row-major intensity buffer. All rows
// must have the same, non-zero length.
func NewBinaryGridFromRows(intensities [][]uint8) (*BinaryGrid, error) {
	if len(intensities) == 0 || len(intensities[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	rows, columns := len(intensities), len(intensities[0])
	g := &BinaryGrid{
		rows:    rows,
		columns: columns,
		white:   make([]bool, rows*columns),
	}
	for r, line := range intensities {
		if len(line) != columns {
			return nil, fmt.Errorf("row %d has %d columns, want %d", r, len(line), columns)
		}
		for c, v := range line {
			g.white[r*columns+c] = v == WhiteIntensity
		}
	}
	return g, nil
}

// Rows returns the grid height.
func (g *BinaryGrid) Rows() int { return g.rows }

// Columns returns the grid width.
func (g *BinaryGrid) Columns() int { return g.columns }

// InBounds reports whether p addresses a cell of the grid.
func (g *BinaryGrid) InBounds(p Pixel) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.columns
}

// IsWhite reports whether p is a background pixel. It panics if p is outside
// the grid; callers only pass pixels produced by the sweep or by Neighbors.
func (g *BinaryGrid) IsWhite(p Pixel) bool {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("junction: pixel %v outside %dx%d grid", p, g.rows, g.columns))
	}
	return g.white[g.index(p)]
}

// Neighbors returns the in-bounds axis-aligned neighbours of p in the order
// (+row), (+col), (-row), (-col).
func (g *BinaryGrid) Neighbors(p Pixel) []Pixel {
	return g.AppendNeighbors(make([]Pixel, 0, 4), p)
}

// AppendNeighbors appends the neighbours of p to dst, in the same order as
// Neighbors, and returns the extended slice.
func (g *BinaryGrid) AppendNeighbors(dst []Pixel, p Pixel) []Pixel {
	candidates := [4]Pixel{
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col + 1},
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
	}
	for _, n := range candidates {
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

func (g *BinaryGrid) index(p Pixel) int {
	return p.Row*g.columns + p.Col
}
