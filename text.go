package blit

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextSource rasterizes a string into a sprite source. The string is drawn
// once at construction into an alpha mask; PixelAt then returns the text
// color where the mask is set and transparent pixels elsewhere.
type TextSource struct {
	mask   *image.Alpha
	color  Pixel
	width  int
	height int
}

// NewTextSource renders text in the given color using the built-in 7x13
// bitmap face.
func NewTextSource(text string, color Pixel) *TextSource {
	return NewTextSourceFace(text, color, basicfont.Face7x13)
}

// NewTextSourceFace renders text in the given color using an arbitrary
// font face.
func NewTextSourceFace(text string, color Pixel, face font.Face) *TextSource {
	width := font.MeasureString(face, text).Ceil()
	if width < 1 {
		width = 1
	}
	metrics := face.Metrics()
	height := metrics.Height.Ceil()
	if height < 1 {
		height = 1
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	return &TextSource{mask: mask, color: color, width: width, height: height}
}

// Width returns the rendered text width in pixels.
func (t *TextSource) Width() int { return t.width }

// Height returns the rendered text height in pixels.
func (t *TextSource) Height() int { return t.height }

// PixelAt returns the text color where a glyph covers (u, v), transparent
// elsewhere.
func (t *TextSource) PixelAt(u, v int) Pixel {
	if u < 0 || u >= t.width || v < 0 || v >= t.height {
		return Transparent()
	}
	if t.mask.AlphaAt(u, v).A == 0 {
		return Transparent()
	}
	return t.color
}
