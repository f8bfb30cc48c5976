package math

var (
	ColourWhite   = Colour{1.0, 1.0, 1.0, 1.0}
	ColourBlack   = Colour{0.0, 0.0, 0.0, 1.0}
	ColourCyan    = Colour{0.0, 1.0, 1.0, 1.0}
	ColourCrimson = Colour{0.86, 0.08, 0.24, 1.0}
	ColourOrange  = Colour{1.0, 0.65, 0.0, 1.0}
	ColourPurple  = Colour{0.5, 0.0, 0.5, 1.0}
	ColourTeal    = Colour{0.04, 0.27, 0.27, 1.0}
)

// NewColourRGB returns an opaque colour with every channel clamped to [0, 1].
func NewColourRGB(r, g, b float32) Colour {
	return Colour{Clamp(r, 0, 1), Clamp(g, 0, 1), Clamp(b, 0, 1), 1.0}
}

// NewColourGrey returns an opaque grey of the given intensity.
func NewColourGrey(intensity float32) Colour {
	return NewColourRGB(intensity, intensity, intensity)
}
