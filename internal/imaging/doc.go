// Package imaging loads drawings for the junction detector and renders its
// results.
//
// Images are decoded with github.com/disintegration/imaging, which handles PNG,
// JPEG, GIF, TIFF and BMP. The detector works on single-channel intensities:
// grayscale sources are passed through untouched, everything else is reduced
// to luminance first.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with (0,0) at the
// top-left corner, X increasing rightward and Y increasing downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Annotation functions never
// modify their source image.
//
// # Error Handling
//
// Functions return wrapped errors for:
//   - File I/O errors during loading or saving
//   - Undecodable image data
//   - Invalid marker colors
package imaging
