// Package render turns analysis results into annotated pressure heatmaps.
//
// The cleaned grid is mapped through a plasma colormap (one pixel per
// sensor cell), upscaled with bilinear interpolation, smoothed with a
// gaussian blur, and annotated with the grid midlines, the zone boundary
// lines, the center-of-pressure marker and per-zone percentage labels.
//
// Output is available as an image.Image, raw PNG bytes, a base64 PNG
// wrapper for JSON transport, or a file on disk. The analysis core knows
// nothing about images; this package is the only consumer of the
// intermediate grids kept on pressure.Result.
package render
