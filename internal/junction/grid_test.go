package junction

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBinaryGrid_WhitenessRule(t *testing.T) {
	img := createTestImage(1, 4)
	img.SetGray(1, 0, color.Gray{Y: 1})
	img.SetGray(2, 0, color.Gray{Y: 128})
	img.SetGray(3, 0, color.Gray{Y: 255})

	grid := mustGrid(t, img)
	assert.Equal(t, 1, grid.Rows())
	assert.Equal(t, 4, grid.Columns())

	tests := []struct {
		col  int
		want bool
	}{
		{0, true},
		{1, false},
		{2, false},
		{3, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, grid.IsWhite(Pixel{Row: 0, Col: tt.col}), "col %d", tt.col)
	}
}

func TestNewBinaryGrid_Empty(t *testing.T) {
	for _, rect := range []image.Rectangle{
		image.Rect(0, 0, 0, 5),
		image.Rect(0, 0, 5, 0),
		image.Rect(0, 0, 0, 0),
	} {
		_, err := NewBinaryGrid(image.NewGray(rect))
		assert.ErrorIs(t, err, ErrEmptyGrid, "rect %v", rect)
	}
}

func TestNewBinaryGrid_BoundsOffset(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 15, 23))
	img.SetGray(12, 21, ink)

	grid := mustGrid(t, img)
	require.Equal(t, 3, grid.Rows())
	require.Equal(t, 5, grid.Columns())

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Columns(); c++ {
			want := !(r == 1 && c == 2)
			assert.Equal(t, want, grid.IsWhite(Pixel{Row: r, Col: c}), "pixel (%d,%d)", r, c)
		}
	}
}

func TestNewBinaryGrid_SubImage(t *testing.T) {
	img := createTestImage(10, 10)
	img.SetGray(6, 4, ink)
	sub := img.SubImage(image.Rect(5, 3, 8, 6)).(*image.Gray)

	grid := mustGrid(t, sub)
	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 3, grid.Columns())
	assert.False(t, grid.IsWhite(Pixel{Row: 1, Col: 1}))
	assert.True(t, grid.IsWhite(Pixel{Row: 0, Col: 0}))
}

func TestNewBinaryGridFromRows(t *testing.T) {
	grid, err := NewBinaryGridFromRows([][]uint8{
		{0, 9, 0},
		{0, 0, 255},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Rows())
	assert.Equal(t, 3, grid.Columns())
	assert.False(t, grid.IsWhite(Pixel{Row: 0, Col: 1}))
	assert.False(t, grid.IsWhite(Pixel{Row: 1, Col: 2}))
	assert.True(t, grid.IsWhite(Pixel{Row: 1, Col: 0}))

	_, err = NewBinaryGridFromRows(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewBinaryGridFromRows([][]uint8{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewBinaryGridFromRows([][]uint8{{0, 0}, {0}})
	assert.Error(t, err)
}

func TestIsWhite_OutOfBoundsPanics(t *testing.T) {
	grid := mustGrid(t, createTestImage(3, 3))

	for _, p := range []Pixel{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		assert.Panics(t, func() { grid.IsWhite(p) }, "pixel %v", p)
	}
}

func TestNeighbors_Order(t *testing.T) {
	grid := mustGrid(t, createTestImage(3, 3))

	tests := []struct {
		name string
		p    Pixel
		want []Pixel
	}{
		{"center", Pixel{1, 1}, []Pixel{{2, 1}, {1, 2}, {0, 1}, {1, 0}}},
		{"top-left", Pixel{0, 0}, []Pixel{{1, 0}, {0, 1}}},
		{"bottom-right", Pixel{2, 2}, []Pixel{{1, 2}, {2, 1}}},
		{"top-edge", Pixel{0, 1}, []Pixel{{1, 1}, {0, 2}, {0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, grid.Neighbors(tt.p)); diff != "" {
				t.Errorf("Neighbors(%v) mismatch (-want +got):\n%s", tt.p, diff)
			}
		})
	}
}

func TestNeighbors_SinglePixelGrid(t *testing.T) {
	grid := mustGrid(t, createTestImage(1, 1))
	assert.Empty(t, grid.Neighbors(Pixel{0, 0}))
}

func TestNeighbors_Properties(t *testing.T) {
	grid := mustGrid(t, createTestImage(4, 6))

	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Columns(); c++ {
			p := Pixel{Row: r, Col: c}
			seen := make(map[Pixel]bool)
			for _, n := range grid.Neighbors(p) {
				assert.True(t, grid.InBounds(n), "%v neighbour %v out of bounds", p, n)
				assert.NotEqual(t, p, n)
				assert.False(t, seen[n], "%v neighbour %v repeated", p, n)
				seen[n] = true
			}
		}
	}
}
