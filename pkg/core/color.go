package core

import (
	"image/color"
	"math"
)

// Color is an additive linear RGB value; components are unbounded until conversion
type Color struct {
	R, G, B float64
}

// Black is the additive identity
var Black = Color{}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of c and every other color
func (c Color) Add(others ...Color) Color {
	for _, o := range others {
		c.R += o.R
		c.G += o.G
		c.B += o.B
	}
	return c
}

// Scale returns the color multiplied by a scalar
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k}
}

// Reduce returns the color divided by k; non-positive k yields black
func (c Color) Reduce(k float64) Color {
	if k <= 0 {
		return Black
	}
	return Color{c.R / k, c.G / k, c.B / k}
}

// Multiply returns the component-wise product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Luminance returns the perceptual luminance of the color
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Equals reports whether two colors match within tolerance on every channel
func (c Color) Equals(other Color, tolerance float64) bool {
	return math.Abs(c.R-other.R) <= tolerance &&
		math.Abs(c.G-other.G) <= tolerance &&
		math.Abs(c.B-other.B) <= tolerance
}

// Clamp returns a color with components clamped to [min, max]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// ToRGBA converts to 8-bit RGBA, applying gamma correction when gamma > 0 and != 1
func (c Color) ToRGBA(gamma float64) color.RGBA {
	if gamma > 0 && gamma != 1 {
		inv := 1.0 / gamma
		c = Color{
			R: math.Pow(max(0, c.R), inv),
			G: math.Pow(max(0, c.G), inv),
			B: math.Pow(max(0, c.B), inv),
		}
	}
	c = c.Clamp(0, 1)
	return color.RGBA{
		R: uint8(255*c.R + 0.5),
		G: uint8(255*c.G + 0.5),
		B: uint8(255*c.B + 0.5),
		A: 255,
	}
}
