package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/podolab/podo-analyzer/internal/pressure"
)

var (
	midlineColor = color.RGBA{255, 255, 255, 255}
	zoneColor    = color.RGBA{255, 255, 255, 255}
	copColor     = color.RGBA{220, 30, 30, 255}
	labelFg      = color.RGBA{255, 255, 255, 255}
	labelBg      = color.RGBA{0, 0, 0, 180}
)

// annotate draws midlines, zone boundaries, the CoP marker and the
// per-zone percentage labels onto the rendered canvas. Annotations tied
// to absent result fields are skipped.
func annotate(canvas *image.RGBA, res *pressure.Result, rows, cols int, opts Options) {
	scale := opts.Scale

	if opts.ShowMidlines {
		drawVerticalDotted(canvas, (cols/2)*scale, midlineColor)
		drawHorizontalDotted(canvas, (rows/2)*scale, midlineColor)
	}

	if opts.ShowZones && res.Zones != nil {
		drawHorizontalDashed(canvas, res.Zones.Mid.Start*scale, zoneColor)
		drawHorizontalDashed(canvas, res.Zones.Fore.Start*scale, zoneColor)
	}

	if opts.ShowCoP && res.CoP != nil {
		x := int((res.CoP.Col + 0.5) * float64(scale))
		y := int((res.CoP.Row + 0.5) * float64(scale))
		drawCrossMarker(canvas, x, y, scale/2, copColor)
	}

	if opts.ShowLabels && res.Zones != nil && len(res.Distribution) > 0 {
		zones := []struct {
			initial string
			span    pressure.ZoneSpan
		}{
			{"H", res.Zones.Hind},
			{"M", res.Zones.Mid},
			{"F", res.Zones.Fore},
		}
		for _, z := range zones {
			y := (z.span.Start + z.span.Stop) * scale / 2
			if left, ok := res.Distribution["L"+z.initial]; ok {
				text := fmt.Sprintf("L%s %.1f", z.initial, left)
				drawLabel(canvas, cols*scale/4, y, text, labelFg, labelBg)
			}
			if right, ok := res.Distribution["R"+z.initial]; ok {
				text := fmt.Sprintf("R%s %.1f", z.initial, right)
				drawLabel(canvas, 3*cols*scale/4, y, text, labelFg, labelBg)
			}
		}
	}
}

// drawVerticalDotted draws a dotted vertical line over the full height.
func drawVerticalDotted(img *image.RGBA, x int, c color.RGBA) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X {
		return
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		if y%6 < 3 {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawHorizontalDotted draws a dotted horizontal line over the full width.
func drawHorizontalDotted(img *image.RGBA, y int, c color.RGBA) {
	bounds := img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		if x%6 < 3 {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawHorizontalDashed draws a dashed horizontal line over the full width.
func drawHorizontalDashed(img *image.RGBA, y int, c color.RGBA) {
	bounds := img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return
	}
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		if x%12 < 8 {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawCrossMarker draws an X of the given arm length, two pixels thick.
func drawCrossMarker(img *image.RGBA, cx, cy, arm int, c color.RGBA) {
	if arm < 3 {
		arm = 3
	}
	bounds := img.Bounds()
	set := func(x, y int) {
		if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
			img.SetRGBA(x, y, c)
		}
	}
	for d := -arm; d <= arm; d++ {
		set(cx+d, cy+d)
		set(cx+d+1, cy+d)
		set(cx+d, cy-d)
		set(cx+d+1, cy-d)
	}
}

// glyphs is a 3x5 bitmap font covering the characters used in zone
// labels: digits, the decimal point, and the side/zone initials.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'.': {"000", "000", "000", "000", "010"},
	'L': {"100", "100", "100", "100", "111"},
	'R': {"110", "101", "110", "101", "101"},
	'H': {"101", "101", "111", "101", "101"},
	'M': {"101", "111", "111", "101", "101"},
	'F': {"111", "100", "110", "100", "100"},
}

// drawLabel draws a small text label with a background box, centered
// horizontally on x.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	const charWidth = 4
	labelWidth := len(text) * charWidth
	labelHeight := 7
	x -= labelWidth / 2

	bounds := img.Bounds()
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			px, py := x+dx, y+dy
			if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
				img.SetRGBA(px, py, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth // unknown runes and spaces advance the cursor
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					px, py := cx+col, y+row
					if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
						img.SetRGBA(px, py, fg)
					}
				}
			}
		}
		cx += charWidth
	}
}
