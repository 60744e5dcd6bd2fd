package junction

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"
)

// ScanResult is the outcome of a full sweep.
type ScanResult struct {
	// Candidates are the seeds classified as intersections, in sweep order.
	Candidates []Pixel `json:"candidates"`

	// Redundant is parallel to Candidates; true marks a candidate that lies
	// close to an earlier one.
	Redundant []bool `json:"redundant"`

	// Count is the number of candidates not marked redundant.
	Count int `json:"count"`
}

// Intersections returns the candidates that survived deduplication.
func (r ScanResult) Intersections() []Pixel {
	return Compact(r.Candidates, r.Redundant)
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithParams overrides the default heuristic values.
func WithParams(p Params) Option {
	return func(s *Scanner) {
		s.params = p
	}
}

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Scanner) {
		s.log = l
	}
}

// WithClassifier replaces the extremes-based classifier.
func WithClassifier(c Classifier) Option {
	return func(s *Scanner) {
		s.classifier = c
	}
}

// Scanner sweeps a BinaryGrid for intersections.
type Scanner struct {
	grid       *BinaryGrid
	params     Params
	grower     *RegionGrower
	classifier Classifier
	log        zerolog.Logger
}

// NewScanner creates a Scanner over grid. It panics if the configured
// Params are invalid; validate caller-supplied values with Params.Validate.
func NewScanner(grid *BinaryGrid, opts ...Option) *Scanner {
	s := &Scanner{
		grid:   grid,
		params: DefaultParams(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.params.Validate(); err != nil {
		panic(fmt.Sprintf("junction: %v", err))
	}
	if s.classifier == nil {
		s.classifier = ExtremesClassifier{Closeness: s.params.Closeness}
	}
	s.grower = NewRegionGrower(grid, s.params)
	s.log = s.log.With().Str("component", "scanner").Logger()
	return s
}

// Params returns the heuristic values in use.
func (s *Scanner) Params() Params {
	return s.params
}

// Sweep visits the grid row-major at Stride and returns every white seed whose
// region classifies as an intersection.
//
// After a hit the row cursor advances by RowSkip and the column sweep carries
// on along the new row, so the rest of the band below the hit is not probed
// again in the same pass. A skip past the last row ends the sweep.
func (s *Scanner) Sweep() []Pixel {
	rows, cols := s.grid.Rows(), s.grid.Columns()
	var candidates []Pixel

	for row := 0; row < rows; row += s.params.Stride {
		for col := 0; col < cols; col += s.params.Stride {
			seed := Pixel{Row: row, Col: col}
			if !s.grid.IsWhite(seed) {
				continue
			}

			region := s.grower.Grow(seed)
			if !s.classifier.Classify(region) {
				continue
			}

			stats := s.grower.LastStats()
			s.log.Debug().
				Int("row", seed.Row).
				Int("col", seed.Col).
				Int("region_size", len(region)).
				Int("white", stats.White).
				Int("black", stats.Black).
				Msg("candidate intersection")

			candidates = append(candidates, seed)
			if s.params.RowSkip >= rows-row {
				return candidates
			}
			row += s.params.RowSkip
		}
	}
	return candidates
}

// Scan runs the sweep and deduplicates its candidates.
func (s *Scanner) Scan() ScanResult {
	candidates := s.Sweep()
	redundant := Deduplicate(candidates, s.params.Closeness)

	count := 0
	for _, r := range redundant {
		if !r {
			count++
		}
	}

	s.log.Debug().
		Int("candidates", len(candidates)).
		Int("count", count).
		Msg("scan complete")

	return ScanResult{
		Candidates: candidates,
		Redundant:  redundant,
		Count:      count,
	}
}

// Deduplicate marks every candidate j that is similar to some earlier
// candidate i. A candidate is marked even when the earlier one is itself
// marked.
func Deduplicate(candidates []Pixel, closeness int) []bool {
	redundant := make([]bool, len(candidates))
	for i := range candidates {
		for j := i + 1; j < len(candidates); j++ {
			if AreSimilar(candidates[i], candidates[j], closeness) {
				redundant[j] = true
			}
		}
	}
	return redundant
}

// Compact returns the candidates whose redundant flag is false, preserving order.
func Compact(candidates []Pixel, redundant []bool) []Pixel {
	kept := make([]Pixel, 0, len(candidates))
	for i, p := range candidates {
		if i < len(redundant) && redundant[i] {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// CountIntersections discretizes img and returns its intersection count using
// the default parameters.
func CountIntersections(img *image.Gray) (int, error) {
	grid, err := NewBinaryGrid(img)
	if err != nil {
		return 0, err
	}
	return NewScanner(grid).Scan().Count, nil
}
