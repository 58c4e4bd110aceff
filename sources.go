package blit

// SolidSource fills the whole sprite with one opaque color.
type SolidSource struct {
	Color Pixel
}

// PixelAt returns the solid color regardless of position.
func (s SolidSource) PixelAt(u, v int) Pixel {
	return s.Color
}

// Channel selects a color channel of a Pixel.
type Channel uint8

// Color channels drivable by a gradient axis.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// GradientSource ramps one color channel along each axis of the sprite:
// the horizontal axis drives XChannel upward from 0 across Width, the
// vertical axis drives YChannel across Height. Column u gets u*256/Width
// (capped at 255), so the last column reaches 255 only when Width is at
// least 256. The remaining channel stays zero.
type GradientSource struct {
	Width, Height      int
	XChannel, YChannel Channel
}

// NewGradientSource returns a gradient source for a sprite of the given
// size. Width and height must be positive.
func NewGradientSource(width, height int, xc, yc Channel) GradientSource {
	return GradientSource{Width: width, Height: height, XChannel: xc, YChannel: yc}
}

// PixelAt returns the opaque gradient color at (u, v).
func (g GradientSource) PixelAt(u, v int) Pixel {
	var p Pixel
	setChannel(&p, g.XChannel, ramp(u, g.Width))
	setChannel(&p, g.YChannel, ramp(v, g.Height))
	return p
}

// ramp maps position i in [0,n) to a byte in [0,255].
func ramp(i, n int) uint8 {
	r := i * 256 / n
	if r > 255 {
		r = 255
	}
	return uint8(r)
}

func setChannel(p *Pixel, c Channel, val uint8) {
	switch c {
	case ChannelR:
		p.R = val
	case ChannelG:
		p.G = val
	case ChannelB:
		p.B = val
	}
}
