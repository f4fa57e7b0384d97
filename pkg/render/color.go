// pkg/render/color.go
package render

import "image/color"

// Palette holds every colour the renderers need.
type Palette struct {
	Background color.RGBA
	Turret     color.RGBA
	Projectile color.RGBA
	Text       color.RGBA
	HealthHigh color.RGBA
	HealthMid  color.RGBA
	HealthLow  color.RGBA
	Dying      color.RGBA
}

// Band is a health bucket: 0 low, 1 medium, 2 high.
type Band int

const (
	BandLow Band = iota
	BandMedium
	BandHigh
)

// HealthColor picks the bar colour for a band.
func (p Palette) HealthColor(b Band) color.RGBA {
	switch b {
	case BandHigh:
		return p.HealthHigh
	case BandMedium:
		return p.HealthMid
	}
	return p.HealthLow
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade scales the alpha of c by f, clamped to [0, 1]. Colours are
// premultiplied, so the channels scale too.
func Fade(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
