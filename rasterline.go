package blit

import (
	"encoding/binary"

	"github.com/gogpu/blit/internal/inline"
)

// linePixel is one column cell of a rasterLine: the sprites whose first
// visible pixel on this scanline sits exactly at this column.
type linePixel struct {
	begins inline.Vector[*Sprite]
}

// rasterLine renders one scanline of the frame. It holds per-column lists
// of sprite activations filled during distribution, plus a reusable active
// stack used while rendering.
//
// A rasterLine is owned by exactly one worker at a time: a single
// distribution block writes its cells, and a single rasterization worker
// renders and clears it.
type rasterLine struct {
	width  int
	pixels []linePixel

	// active is the stack of sprites covering the current column, ordered
	// by ascending layer so the topmost sprite is at the back. The slice is
	// reused across frames.
	active []*Sprite
}

func newRasterLine(width int) rasterLine {
	return rasterLine{
		width:  width,
		pixels: make([]linePixel, width),
	}
}

// addSprite registers a sprite whose first visible column on this scanline
// is firstX. firstX must already be clipped to [0, width).
func (l *rasterLine) addSprite(spr *Sprite, firstX int32) {
	l.pixels[firstX].begins.Put(spr)
}

// clear empties every activation list, restoring the between-frames
// invariant. Storage is retained.
func (l *rasterLine) clear() {
	for i := range l.pixels {
		l.pixels[i].begins.Clear()
	}
}

// insertActive pushes a newly activated sprite into the active stack,
// keeping ascending layer order. The scan starts at the top of the stack,
// so insertion is cheap when the new sprite belongs near the top. It stops
// at the first entry whose layer is not larger than the new one, which
// places a sprite above earlier arrivals of equal layer.
func (l *rasterLine) insertActive(spr *Sprite) {
	layer := spr.Layer
	stack := l.active
	i := len(stack)
	for i > 0 && stack[i-1].Layer > layer {
		i--
	}
	stack = append(stack, nil)
	copy(stack[i+1:], stack[i:])
	stack[i] = spr
	l.active = stack
}

// compactActive removes every sprite the column x is already past, keeping
// the stack order of the remainder.
func (l *rasterLine) compactActive(x int32) {
	kept := l.active[:0]
	for _, spr := range l.active {
		if spr.Position.LastX() >= x {
			kept = append(kept, spr)
		}
	}
	// Zero the tail so removed sprites are not retained.
	clear(l.active[len(kept):])
	l.active = kept
}

// resolvePixel walks the active stack from the top and returns the pixel of
// the first opaque sprite at column x, or a transparent pixel if every
// active sprite is transparent there.
//
// Stale sprites (ones x is already past) are removed on the way: a stale
// top of stack is popped in O(1); a stale entry further down triggers a
// single compaction pass, since the stack below it must be walked anyway.
func (l *rasterLine) resolvePixel(x, y int) Pixel {
retry:
	for {
		stack := l.active
		for i := len(stack) - 1; i >= 0; i-- {
			spr := stack[i]
			if spr.Position.LastX() < int32(x) {
				if i == len(stack)-1 {
					stack[i] = nil
					l.active = stack[:i]
				} else {
					l.compactActive(int32(x))
				}
				continue retry
			}

			p := spr.Source.PixelAt(x-int(spr.Position.X), y-int(spr.Position.Y))
			if !p.Transparent {
				return p
			}
		}
		return Pixel{Transparent: true}
	}
}

// render rasterizes this scanline into target, which must hold width
// packed 32-bit pixels. y is the scanline's row in the frame.
func (l *rasterLine) render(target []byte, y int, pack PixelPacker) {
	l.active = l.active[:0]

	for x := 0; x < l.width; x++ {
		begins := &l.pixels[x].begins
		for i := 0; i < begins.Len(); i++ {
			l.insertActive(begins.At(i))
		}

		p := l.resolvePixel(x, y)
		if p.Transparent {
			// No sprite covers this pixel; the background is opaque black.
			p = Pixel{}
		}
		binary.LittleEndian.PutUint32(target[x*4:], pack(p.R, p.G, p.B))
	}

	// Drop sprite references left in the stack's backing array.
	full := l.active[:cap(l.active)]
	clear(full)
	l.active = full[:0]
}
