package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Default marker appearance.
const (
	DefaultMarkerColor  = "#FF0000"
	DefaultMarkerRadius = 6
)

// AnnotateOptions controls how markers are drawn.
type AnnotateOptions struct {
	// Color is a hex color, "#RGB" or "#RRGGBB". Empty means DefaultMarkerColor.
	Color string

	// Radius is the half-size of the square marker. Zero means DefaultMarkerRadius.
	Radius int
}

// AnnotateResult contains an annotated image encoded as base64 PNG.
type AnnotateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Markers     int    `json:"markers"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Annotate returns a copy of img with a square outline drawn around every
// point. Marker pixels falling outside the image are skipped.
func Annotate(img image.Image, points []image.Point, opts AnnotateOptions) (*image.NRGBA, error) {
	marker, err := parseMarkerColor(opts.Color)
	if err != nil {
		return nil, err
	}
	radius := opts.Radius
	if radius <= 0 {
		radius = DefaultMarkerRadius
	}

	// Clone rebases the copy at (0,0).
	origin := img.Bounds().Min
	result := imaging.Clone(img)
	for _, p := range points {
		drawSquare(result, p.X-origin.X, p.Y-origin.Y, radius, marker)
	}
	return result, nil
}

// EncodeAnnotation annotates img and returns the result as base64 PNG.
func EncodeAnnotation(img image.Image, points []image.Point, opts AnnotateOptions) (*AnnotateResult, error) {
	annotated, err := Annotate(img, points, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, annotated, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       annotated.Bounds().Dx(),
		Height:      annotated.Bounds().Dy(),
		Markers:     len(points),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveAnnotation annotates img and writes it to path. The output format is
// chosen from the file extension.
func SaveAnnotation(img image.Image, points []image.Point, opts AnnotateOptions, path string) error {
	annotated, err := Annotate(img, points, opts)
	if err != nil {
		return err
	}
	if err := imaging.Save(annotated, path); err != nil {
		return fmt.Errorf("failed to save annotated image: %w", err)
	}
	return nil
}

// parseMarkerColor parses "#RGB" or "#RRGGBB" into an opaque color.
func parseMarkerColor(hex string) (color.NRGBA, error) {
	if hex == "" {
		hex = DefaultMarkerColor
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid marker color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// drawSquare draws the outline of a square of half-size radius centred on (cx, cy).
func drawSquare(img *image.NRGBA, cx, cy, radius int, c color.NRGBA) {
	bounds := img.Bounds()
	set := func(x, y int) {
		if image.Pt(x, y).In(bounds) {
			img.SetNRGBA(x, y, c)
		}
	}
	for d := -radius; d <= radius; d++ {
		set(cx+d, cy-radius)
		set(cx+d, cy+radius)
		set(cx-radius, cy+d)
		set(cx+radius, cy+d)
	}
}
