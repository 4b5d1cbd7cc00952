package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// plasmaStop anchors the plasma colormap at evenly spaced positions.
type plasmaStop struct {
	pos   float64
	color colorful.Color
}

// plasma is the matplotlib plasma gradient, sampled at nine anchors and
// linearly blended between them.
var plasma = []plasmaStop{
	{0.000, mustHex("#0d0887")},
	{0.125, mustHex("#46039f")},
	{0.250, mustHex("#7201a8")},
	{0.375, mustHex("#9c179e")},
	{0.500, mustHex("#bd3786")},
	{0.625, mustHex("#d8576b")},
	{0.750, mustHex("#ed7953")},
	{0.875, mustHex("#fb9f3a")},
	{1.000, mustHex("#f0f921")},
}

// plasmaColor maps a normalized intensity in [0,1] to its gradient color.
// Out-of-range values clamp to the gradient ends.
func plasmaColor(t float64) color.RGBA {
	if t <= 0 {
		return toRGBA(plasma[0].color)
	}
	if t >= 1 {
		return toRGBA(plasma[len(plasma)-1].color)
	}
	for i := 0; i < len(plasma)-1; i++ {
		lo, hi := plasma[i], plasma[i+1]
		if t <= hi.pos {
			frac := (t - lo.pos) / (hi.pos - lo.pos)
			return toRGBA(lo.color.BlendRgb(hi.color, frac))
		}
	}
	return toRGBA(plasma[len(plasma)-1].color)
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad colormap stop " + s)
	}
	return c
}
