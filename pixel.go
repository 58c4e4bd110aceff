package blit

// Pixel is one pixel of a sprite: an RGB color that is either fully opaque
// or fully transparent. When Transparent is set the color channels are
// ignored by the renderer.
type Pixel struct {
	R, G, B     uint8
	Transparent bool
}

// Opaque returns a fully opaque pixel with the given color.
func Opaque(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Transparent returns a fully transparent pixel.
func Transparent() Pixel {
	return Pixel{Transparent: true}
}

// PixelPacker encodes an opaque RGB color into the 32-bit pixel word stored
// in the framebuffer. Packers must be pure functions of their inputs: the
// renderer calls them concurrently from multiple workers.
type PixelPacker func(r, g, b uint8) uint32

// PackARGB8888 is the reference packer. It produces ARGB8888 words with the
// alpha channel forced to 0xFF: A in bits 24-31, R in 16-23, G in 8-15 and
// B in 0-7. Stored little-endian this yields the B,G,R,A byte order common
// to streaming textures.
func PackARGB8888(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
