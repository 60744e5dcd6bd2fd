package junction

// Extremes holds the four bounding pixels of a region. Ties on the extreme
// coordinate resolve to the pixel met first in the region's order.
type Extremes struct {
	MinRow Pixel `json:"min_row"` // leftmost
	MaxRow Pixel `json:"max_row"` // rightmost
	MinCol Pixel `json:"min_col"` // lowest
	MaxCol Pixel `json:"max_col"` // highest
}

// FindExtremes returns the extreme pixels of region. The second result is
// false when the region is empty.
func FindExtremes(region Region) (Extremes, bool) {
	if len(region) == 0 {
		return Extremes{}, false
	}

	first := region[0]
	e := Extremes{MinRow: first, MaxRow: first, MinCol: first, MaxCol: first}
	for _, p := range region[1:] {
		if p.Row < e.MinRow.Row {
			e.MinRow = p
		}
		if p.Row > e.MaxRow.Row {
			e.MaxRow = p
		}
		if p.Col < e.MinCol.Col {
			e.MinCol = p
		}
		if p.Col > e.MaxCol.Col {
			e.MaxCol = p
		}
	}
	return e, true
}

// Points returns the extremes in the order MinRow, MaxRow, MinCol, MaxCol.
func (e Extremes) Points() [4]Pixel {
	return [4]Pixel{e.MinRow, e.MaxRow, e.MinCol, e.MaxCol}
}

// Collapsed reports whether any two of the four extremes are similar.
func (e Extremes) Collapsed(closeness int) bool {
	pts := e.Points()
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			if AreSimilar(pts[i], pts[j], closeness) {
				return true
			}
		}
	}
	return false
}

// IsIntersection reports whether region spreads out in enough directions to
// be a junction: its four extremes must be pairwise dissimilar.
//
// An empty region is never an intersection. Its extremes would all coincide,
// so this matches treating the missing pixels as one shared default.
func IsIntersection(region Region, closeness int) bool {
	e, ok := FindExtremes(region)
	if !ok {
		return false
	}
	return !e.Collapsed(closeness)
}

// Classifier decides whether a grown region is an intersection.
type Classifier interface {
	Classify(region Region) bool
}

// ExtremesClassifier is the default Classifier, backed by IsIntersection.
type ExtremesClassifier struct {
	Closeness int
}

// Classify implements Classifier.
func (c ExtremesClassifier) Classify(region Region) bool {
	return IsIntersection(region, c.Closeness)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(region Region) bool

// Classify implements Classifier.
func (f ClassifierFunc) Classify(region Region) bool {
	return f(region)
}
