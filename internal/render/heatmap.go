package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/podolab/podo-analyzer/internal/pressure"
)

// Options controls heatmap geometry and annotations.
type Options struct {
	// Scale is the output pixel edge length of one sensor cell.
	Scale int

	// Sigma is the gaussian smoothing radius in cell units. Zero disables
	// smoothing.
	Sigma float64

	// Annotation toggles.
	ShowMidlines bool
	ShowZones    bool
	ShowCoP      bool
	ShowLabels   bool
}

// DefaultOptions returns the standard heatmap settings.
func DefaultOptions() Options {
	return Options{
		Scale:        32,
		Sigma:        0.5,
		ShowMidlines: true,
		ShowZones:    true,
		ShowCoP:      true,
		ShowLabels:   true,
	}
}

// HeatmapResult wraps an encoded heatmap for JSON transport.
type HeatmapResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render produces the annotated heatmap for one analysis result.
//
// An all-zero grid still renders: the colormap floor fills the image and
// annotations tied to absent fields (zones, CoP, labels) are skipped.
func Render(res *pressure.Result, opts Options) (*image.RGBA, error) {
	rows, cols := res.Cleaned.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("cannot render an empty grid")
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	// One pixel per cell, normalized against the grid maximum.
	base := image.NewRGBA(image.Rect(0, 0, cols, rows))
	maxVal := res.Cleaned.Max()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			t := 0.0
			if maxVal > 0 {
				t = float64(res.Cleaned[r][c]) / float64(maxVal)
			}
			base.SetRGBA(c, r, plasmaColor(t))
		}
	}

	width, height := cols*opts.Scale, rows*opts.Scale
	upscaled := imaging.Resize(base, width, height, imaging.Linear)

	var canvas *image.RGBA
	if opts.Sigma > 0 {
		canvas = blur.Gaussian(upscaled, opts.Sigma*float64(opts.Scale))
	} else {
		canvas = image.NewRGBA(upscaled.Bounds())
		draw.Draw(canvas, canvas.Bounds(), upscaled, image.Point{}, draw.Src)
	}

	annotate(canvas, res, rows, cols, opts)
	return canvas, nil
}

// RenderPNG renders and PNG-encodes the heatmap.
func RenderPNG(res *pressure.Result, opts Options) ([]byte, error) {
	img, err := Render(res, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode heatmap: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBase64 renders the heatmap and wraps it for JSON transport.
func RenderBase64(res *pressure.Result, opts Options) (*HeatmapResult, error) {
	img, err := Render(res, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode heatmap: %w", err)
	}
	return &HeatmapResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// RenderToFile renders the heatmap and writes it to path. The format
// follows the file extension.
func RenderToFile(res *pressure.Result, opts Options, path string) error {
	img, err := Render(res, opts)
	if err != nil {
		return err
	}
	return imaging.Save(img, path)
}
