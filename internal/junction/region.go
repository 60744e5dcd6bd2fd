package junction

import "fmt"

// Region is the list of black pixels met by one growth, in visitation order.
type Region []Pixel

// GrowStats holds the counters of a finished growth. Black includes the seed,
// which is always counted as one black unit.
type GrowStats struct {
	White int `json:"white"`
	Black int `json:"black"`
}

// Total returns the number of units counted against the iteration bounds.
func (s GrowStats) Total() int {
	return s.White + s.Black
}

// RegionGrower performs bounded breadth-first growth over a BinaryGrid.
//
// The visited buffer and the queue are reused across calls, so a grower must
// not be shared between goroutines.
type RegionGrower struct {
	grid      *BinaryGrid
	params    Params
	visited   []bool
	queue     []Pixel
	neighbors []Pixel
	last      GrowStats
}

// NewRegionGrower creates a grower for grid using the iteration bounds in params.
func NewRegionGrower(grid *BinaryGrid, params Params) *RegionGrower {
	cells := grid.rows * grid.columns
	return &RegionGrower{
		grid:      grid,
		params:    params,
		visited:   make([]bool, cells),
		queue:     make([]Pixel, 0, min(params.MaxIterations*2, cells)),
		neighbors: make([]Pixel, 0, 4),
	}
}

// Grow explores 4-connected pixels from seed, which must be inside the grid,
// and returns the non-white pixels it dequeued.
//
// Before each dequeue the growth stops once MaxIterations units were counted,
// or once MinIterations units were counted and white/black (integer division)
// is non-zero. The seed starts the black counter at one, and is counted again
// by colour when it is dequeued.
func (g *RegionGrower) Grow(seed Pixel) Region {
	if !g.grid.InBounds(seed) {
		panic(fmt.Sprintf("junction: seed %v outside %dx%d grid", seed, g.grid.rows, g.grid.columns))
	}

	clear(g.visited)
	g.queue = append(g.queue[:0], seed)
	g.visited[g.grid.index(seed)] = true

	stats := GrowStats{Black: 1}
	var region Region
	for head := 0; head < len(g.queue) && !g.shouldStop(stats); head++ {
		next := g.queue[head]
		if g.grid.IsWhite(next) {
			stats.White++
		} else {
			stats.Black++
			region = append(region, next)
		}

		g.neighbors = g.grid.AppendNeighbors(g.neighbors[:0], next)
		for _, n := range g.neighbors {
			idx := g.grid.index(n)
			if g.visited[idx] {
				continue
			}
			g.visited[idx] = true
			g.queue = append(g.queue, n)
		}
	}

	g.last = stats
	return region
}

// LastStats returns the counters of the most recent call to Grow.
func (g *RegionGrower) LastStats() GrowStats {
	return g.last
}

func (g *RegionGrower) shouldStop(s GrowStats) bool {
	total := s.Total()
	if total >= g.params.MaxIterations {
		return true
	}
	return total >= g.params.MinIterations && s.White/s.Black != 0
}
