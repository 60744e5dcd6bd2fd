package junction

import (
	"bytes"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, img *image.Gray) ScanResult {
	t.Helper()
	return NewScanner(mustGrid(t, img)).Scan()
}

func TestScan_BackgroundOnly(t *testing.T) {
	for _, size := range []int{1, 7, 50, 100} {
		result := scan(t, createTestImage(size, size))
		assert.Zero(t, result.Count, "size %d", size)
		assert.Empty(t, result.Candidates, "size %d", size)
	}
}

func TestScan_StraightLines(t *testing.T) {
	tests := []struct {
		name string
		draw func(img *image.Gray)
	}{
		{"horizontal", func(img *image.Gray) { drawHLine(img, 50, 0, 99, 1) }},
		{"vertical", func(img *image.Gray) { drawVLine(img, 50, 0, 99, 1) }},
		{"thick horizontal", func(img *image.Gray) { drawHLine(img, 50, 0, 99, 3) }},
		{"diagonal", func(img *image.Gray) {
			for i := 0; i < 100; i++ {
				img.SetGray(i, i, ink)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createTestImage(100, 100)
			tt.draw(img)
			assert.Zero(t, scan(t, img).Count)
		})
	}
}

func TestScan_SingleCross(t *testing.T) {
	result := NewScanner(crossGrid(t)).Scan()

	assert.Equal(t, 1, result.Count)
	if diff := cmp.Diff([]Pixel{{50, 50}}, result.Candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_CrossVariants(t *testing.T) {
	tests := []struct {
		name               string
		center, arm, width int
		wantCandidates     []Pixel
	}{
		{"long arms", 52, 40, 1, []Pixel{{50, 50}}},
		{"short arms", 47, 15, 1, []Pixel{{45, 45}}},
		{"thick on lattice", 50, 20, 2, []Pixel{{45, 55}}},
		{"thick off lattice", 52, 30, 3, []Pixel{{50, 50}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createTestImage(101, 101)
			drawCross(img, tt.center, tt.center, tt.arm, tt.width)
			result := scan(t, img)

			assert.Equal(t, 1, result.Count)
			if diff := cmp.Diff(tt.wantCandidates, result.Candidates); diff != "" {
				t.Errorf("candidates mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// A one-pixel cross centred on a sweep point is missed: the nearest white
// seeds sit diagonally off the centre and their bounded growth only reaches
// two of the four arms.
func TestScan_CrossOnSweepLattice(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		center, arm int
	}{
		{"centre 50", 101, 50, 20},
		{"centre 150", 300, 150, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createTestImage(tt.size, tt.size)
			drawCross(img, tt.center, tt.center, tt.arm, 1)
			assert.Zero(t, scan(t, img).Count)
		})
	}
}

func TestScan_TwoSeparatedCrosses(t *testing.T) {
	img := createTestImage(130, 130)
	drawCross(img, 32, 32, 20, 1)
	drawCross(img, 92, 92, 20, 1)

	result := scan(t, img)
	assert.Equal(t, 2, result.Count)
	if diff := cmp.Diff([]Pixel{{30, 30}, {90, 90}}, result.Candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []Pixel{{30, 30}, {90, 90}}, result.Intersections())
}

func TestScan_CrossesSharingRowBand(t *testing.T) {
	// The row skip after the first hit moves the sweep below the second cross.
	img := createTestImage(105, 190)
	drawCross(img, 52, 52, 20, 1)
	drawCross(img, 52, 132, 20, 1)

	result := scan(t, img)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, []Pixel{{50, 50}}, result.Candidates)
}

func TestScan_JunctionShapes(t *testing.T) {
	tJunction := createTestImage(101, 101)
	drawHLine(tJunction, 52, 20, 80, 1)
	drawVLine(tJunction, 52, 52, 80, 1)

	corner := createTestImage(101, 101)
	drawHLine(corner, 52, 52, 80, 1)
	drawVLine(corner, 52, 52, 80, 1)

	solid := createTestImage(40, 40)
	drawHLine(solid, 0, 0, 39, 40)

	assert.Equal(t, 1, scan(t, tJunction).Count, "T junction")
	assert.Equal(t, 0, scan(t, corner).Count, "L corner")
	assert.Equal(t, 0, scan(t, solid).Count, "no background")
}

func TestScan_Deterministic(t *testing.T) {
	img := createTestImage(130, 130)
	drawCross(img, 32, 32, 20, 1)
	drawCross(img, 92, 92, 20, 1)
	grid := mustGrid(t, img)

	first := NewScanner(grid).Scan()
	second := NewScanner(grid).Scan()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("scans differ (-first +second):\n%s", diff)
	}
}

func TestSweep_RowSkipContinuesAlongNewRow(t *testing.T) {
	grid := mustGrid(t, createTestImage(30, 30))
	always := ClassifierFunc(func(Region) bool { return true })

	got := NewScanner(grid, WithClassifier(always)).Sweep()
	assert.Equal(t, []Pixel{{0, 0}, {20, 5}}, got)
}

func TestSweep_RowSkipPastLastRow(t *testing.T) {
	p := DefaultParams()
	p.RowSkip = MaxParamValue

	var got []Pixel
	assert.NotPanics(t, func() {
		got = NewScanner(crossGrid(t), WithParams(p)).Sweep()
	})
	assert.Equal(t, []Pixel{{50, 50}}, got)
}

func TestSweep_RowSkipZero(t *testing.T) {
	grid := mustGrid(t, createTestImage(10, 10))
	always := ClassifierFunc(func(Region) bool { return true })
	params := DefaultParams()
	params.RowSkip = 0

	got := NewScanner(grid, WithParams(params), WithClassifier(always)).Sweep()
	assert.Equal(t, []Pixel{{0, 0}, {0, 5}, {5, 0}, {5, 5}}, got)
}

func TestDeduplicate(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Pixel
		want       []bool
	}{
		{"empty", nil, []bool{}},
		{"single", []Pixel{{1, 1}}, []bool{false}},
		{"close pair", []Pixel{{0, 0}, {3, 3}, {10, 10}}, []bool{false, true, false}},
		{"chain marks through redundant", []Pixel{{0, 0}, {4, 0}, {8, 0}}, []bool{false, true, true}},
		{"threshold is exclusive", []Pixel{{0, 0}, {5, 0}, {0, 5}}, []bool{false, false, false}},
		{"duplicate coordinates", []Pixel{{7, 7}, {7, 7}, {7, 7}}, []bool{false, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Deduplicate(tt.candidates, DefaultCloseness))
		})
	}
}

func TestDeduplicate_Idempotent(t *testing.T) {
	candidates := []Pixel{{0, 0}, {4, 0}, {8, 0}, {30, 30}, {33, 31}, {60, 2}, {62, 4}, {90, 90}}

	once := Compact(candidates, Deduplicate(candidates, DefaultCloseness))
	twice := Compact(once, Deduplicate(once, DefaultCloseness))

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second pass changed the list (-once +twice):\n%s", diff)
	}
	assert.Equal(t, []Pixel{{0, 0}, {30, 30}, {60, 2}, {90, 90}}, once)
}

func TestCompact(t *testing.T) {
	candidates := []Pixel{{1, 1}, {2, 2}, {3, 3}}
	assert.Equal(t, []Pixel{{1, 1}, {3, 3}}, Compact(candidates, []bool{false, true, false}))
	assert.Equal(t, candidates, Compact(candidates, nil))
}

func TestNewScanner_InvalidParamsPanics(t *testing.T) {
	grid := mustGrid(t, createTestImage(5, 5))
	assert.Panics(t, func() { NewScanner(grid, WithParams(Params{})) })
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, DefaultParams().Validate())

	mutations := map[string]func(*Params){
		"zero stride":       func(p *Params) { p.Stride = 0 },
		"zero min":          func(p *Params) { p.MinIterations = 0 },
		"min above max":     func(p *Params) { p.MinIterations = p.MaxIterations + 1 },
		"negative close":    func(p *Params) { p.Closeness = -1 },
		"negative row skip": func(p *Params) { p.RowSkip = -1 },
		"huge stride":       func(p *Params) { p.Stride = MaxParamValue + 1 },
		"huge max":          func(p *Params) { p.MaxIterations = MaxParamValue + 1 },
		"huge closeness":    func(p *Params) { p.Closeness = MaxParamValue + 1 },
		"huge row skip":     func(p *Params) { p.RowSkip = MaxParamValue + 1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := DefaultParams()
			mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestScanner_LogsCandidates(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	NewScanner(crossGrid(t), WithLogger(logger)).Scan()

	out := buf.String()
	assert.Contains(t, out, `"component":"scanner"`)
	assert.Contains(t, out, `"message":"candidate intersection"`)
	assert.Contains(t, out, `"count":1`)
}

func TestCountIntersections(t *testing.T) {
	img := createTestImage(101, 101)
	drawCross(img, 52, 52, 20, 1)

	n, err := CountIntersections(img)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = CountIntersections(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrEmptyGrid)
}
