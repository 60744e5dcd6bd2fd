package junction

import "fmt"

// WhiteIntensity is the 8-bit intensity that marks a background pixel.
const WhiteIntensity uint8 = 0

// Default heuristic values.
const (
	DefaultStride        = 5
	DefaultMinIterations = 200
	DefaultMaxIterations = 400
	DefaultCloseness     = 5
	DefaultRowSkip       = 20
)

// MaxParamValue bounds every field of Params. It keeps scratch allocations
// and cursor arithmetic finite for caller-supplied values.
const MaxParamValue = 1 << 20

// Params groups the tuning constants of the sweep, the region growth and the
// shape classification.
type Params struct {
	// Stride is the row and column step of the sweep.
	Stride int `json:"stride"`

	// MinIterations is the number of pixels a growth must count before the
	// white/black balance may stop it.
	MinIterations int `json:"min_iterations"`

	// MaxIterations is the hard cap on pixels counted by one growth.
	MaxIterations int `json:"max_iterations"`

	// Closeness is the exclusive per-axis distance below which two pixels are
	// considered similar.
	Closeness int `json:"closeness"`

	// RowSkip is added to the row cursor after every candidate.
	RowSkip int `json:"row_skip"`
}

// DefaultParams returns the calibrated heuristic values.
func DefaultParams() Params {
	return Params{
		Stride:        DefaultStride,
		MinIterations: DefaultMinIterations,
		MaxIterations: DefaultMaxIterations,
		Closeness:     DefaultCloseness,
		RowSkip:       DefaultRowSkip,
	}
}

// Validate reports whether the parameters can drive a scan.
func (p Params) Validate() error {
	if p.Stride <= 0 {
		return fmt.Errorf("stride must be positive, got %d", p.Stride)
	}
	if p.MinIterations <= 0 || p.MaxIterations <= 0 {
		return fmt.Errorf("iteration bounds must be positive, got %d/%d", p.MinIterations, p.MaxIterations)
	}
	if p.MinIterations > p.MaxIterations {
		return fmt.Errorf("min iterations %d exceed max iterations %d", p.MinIterations, p.MaxIterations)
	}
	if p.Closeness <= 0 {
		return fmt.Errorf("closeness must be positive, got %d", p.Closeness)
	}
	if p.RowSkip < 0 {
		return fmt.Errorf("row skip must not be negative, got %d", p.RowSkip)
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"stride", p.Stride},
		{"min iterations", p.MinIterations},
		{"max iterations", p.MaxIterations},
		{"closeness", p.Closeness},
		{"row skip", p.RowSkip},
	} {
		if f.value > MaxParamValue {
			return fmt.Errorf("%s %d exceeds limit %d", f.name, f.value, MaxParamValue)
		}
	}
	return nil
}
