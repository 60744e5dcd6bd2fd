// Package junction counts intersections in binary line drawings.
//
// A drawing is first reduced to a BinaryGrid, a fixed field of booleans where
// true marks a background ("white") pixel. The scanner then sweeps the grid at
// a fixed stride. Every white pixel it lands on is used as a seed for a bounded
// breadth-first region growth, and the black pixels collected by that growth
// are classified by their four extreme pixels. Seeds whose regions spread out
// in several directions become candidates, and candidates that lie close to an
// earlier candidate are discarded before counting.
//
// # Coordinate System
//
// Pixels are addressed as (Row, Col), both 0-based. Row corresponds to the
// image Y axis and Col to the X axis, relative to the image bounds origin.
//
// # Whiteness Rule
//
// A pixel is white iff its 8-bit intensity equals WhiteIntensity (0). This is a
// fixed discretization rule and not a brightness threshold: every non-zero
// intensity is treated as part of a drawn stroke.
//
// # Tuning Constants
//
// All numeric heuristics live in Params. DefaultParams returns the values the
// counts are calibrated against; changing any of them changes results on real
// drawings.
//
// # Limitations
//
// The classifier only looks at a bounded neighbourhood around each seed. A seed
// whose growth meets no black pixel at all produces an empty region, which is
// never an intersection. Two junctions sharing a horizontal band of rows can be
// reported once because the sweep skips ahead after every hit.
//
// Detection depends on where a junction falls relative to the Stride lattice.
// A one-pixel cross whose centre is itself a sweep point is not found: the
// closest white seeds lie diagonally beside the centre, and their bounded
// growth sees only the two arms that enclose that quadrant, which looks like
// a corner. The same cross moved off the lattice counts as one.
//
// # Thread Safety
//
// BinaryGrid is immutable and may be shared. RegionGrower and Scanner own a
// reusable scratch buffer and must not be used from several goroutines at once.
package junction
