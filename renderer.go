package blit

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/blit/internal/parallel"
)

// blockHeight is the number of consecutive scanlines distributed as one
// unit. Striping distribution by blocks gives each worker exclusive write
// access to a contiguous run of rasterLines, so no locks are needed.
const blockHeight = 8

// Scratch hygiene bounds for the per-block distribution lists. A block list
// whose capacity exceeds maxWastageFactor times the frame's sprite count
// (but at least minBlockCapacity) is reallocated at minExtraFactor times
// the count, so a transient sprite spike does not pin memory forever.
const (
	minExtraFactor   = 2
	maxWastageFactor = 4
	minBlockCapacity = 128
)

// lineBlock accumulates the sprites intersecting one stripe of scanlines
// during distribution. Its slice persists across frames.
type lineBlock struct {
	sprites []*Sprite
}

// Renderer rasterizes layered sprites into a caller-supplied framebuffer.
//
// A Renderer is constructed once for a fixed frame size and reused across
// frames; its scanline scratch storage persists between Render calls to
// avoid per-frame allocation.
//
// Thread safety: a Renderer must not have Render called concurrently on the
// same instance. Distinct instances are independent.
type Renderer struct {
	width, height int
	packer        PixelPacker
	lines         []rasterLine
	blocks        []lineBlock
	pool          *parallel.Pool
}

// Option configures a Renderer during creation.
type Option func(*rendererOptions)

type rendererOptions struct {
	workers int
}

// WithWorkers sets the number of worker goroutines used for rendering.
// Zero or negative selects GOMAXPROCS. Output is byte-identical for any
// worker count.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// New creates a renderer producing width x height frames, encoding pixels
// with the given packer. Width and height must be positive and packer must
// be non-nil; New panics otherwise.
func New(width, height int, packer PixelPacker, opts ...Option) *Renderer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("blit: invalid frame size %dx%d", width, height))
	}
	if packer == nil {
		panic("blit: nil PixelPacker")
	}

	var o rendererOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		width:  width,
		height: height,
		packer: packer,
		lines:  make([]rasterLine, height),
		blocks: make([]lineBlock, (height+blockHeight-1)/blockHeight),
		pool:   parallel.NewPool(o.workers),
	}
	for y := range r.lines {
		r.lines[y] = newRasterLine(width)
	}

	Logger().Debug("blit: renderer created",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("workers", r.pool.Workers()))
	return r
}

// Width returns the frame width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the frame height in pixels.
func (r *Renderer) Height() int { return r.height }

// Workers returns the number of workers rendering frames.
func (r *Renderer) Workers() int { return r.pool.Workers() }

// Close releases the renderer's worker pool. The renderer must not be used
// after Close.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Render rasterizes sprites into framebuffer.
//
// framebuffer is interpreted as height rows of pitch bytes each; pitch must
// be at least width*4 and a multiple of 4, and len(framebuffer) must be at
// least height*pitch. The first width*4 bytes of every row are overwritten
// with packed 32-bit pixels; any remaining bytes of each row are untouched.
// Render panics if the framebuffer or pitch violates these preconditions.
//
// The sprite slice and every sprite Source are borrowed for the duration of
// the call and must not be mutated concurrently. On return, all internal
// scratch state is empty again, so the same inputs render to byte-identical
// output on every call regardless of worker count.
func (r *Renderer) Render(sprites []Sprite, framebuffer []byte, pitch int) {
	if pitch < r.width*4 || pitch%4 != 0 {
		panic(fmt.Sprintf("blit: pitch %d invalid for width %d", pitch, r.width))
	}
	if len(framebuffer) < r.height*pitch {
		panic(fmt.Sprintf("blit: framebuffer too small: %d bytes, need %d",
			len(framebuffer), r.height*pitch))
	}

	r.distribute(sprites)
	r.rasterize(framebuffer, pitch)
}

// distribute is Pass A: it fans sprites out to the rasterLines they cover.
//
// Sprites are first binned serially into row blocks, in input order. The
// blocks are then processed in parallel; each block writes activation cells
// only for its own rows, so the pass is race-free by partitioning. The
// barrier at the end of the pass makes every activation visible to the
// rasterization workers.
func (r *Renderer) distribute(sprites []Sprite) {
	viewport := RectI{Width: int32(r.width), Height: int32(r.height)}

	for i := range r.blocks {
		r.blocks[i].sprites = r.blocks[i].sprites[:0]
	}
	for i := range sprites {
		spr := &sprites[i]
		visible := viewport.Intersection(spr.Position)
		if visible.IsEmpty() {
			continue
		}
		first := visible.Y / blockHeight
		last := visible.LastY() / blockHeight
		for b := first; b <= last; b++ {
			r.blocks[b].sprites = append(r.blocks[b].sprites, spr)
		}
	}

	batch := make([]func(), len(r.blocks))
	for b := range r.blocks {
		block := &r.blocks[b]
		stripe := RectI{
			Y:      int32(b) * blockHeight,
			Width:  int32(r.width),
			Height: blockHeight,
		}.Intersection(viewport)

		batch[b] = func() {
			for _, spr := range block.sprites {
				visible := stripe.Intersection(spr.Position)
				if visible.IsEmpty() {
					continue
				}
				lastY := visible.LastY()
				for y := visible.Y; y <= lastY; y++ {
					r.lines[y].addSprite(spr, visible.X)
				}
			}
		}
	}
	r.pool.Run(batch)

	r.resetBlocks(len(sprites))
}

// resetBlocks drops the sprite references held by the block lists and
// shrinks any list that ballooned past the hygiene bound.
func (r *Renderer) resetBlocks(spriteCount int) {
	limit := spriteCount * maxWastageFactor
	if limit < minBlockCapacity {
		limit = minBlockCapacity
	}
	for i := range r.blocks {
		block := &r.blocks[i]
		if cap(block.sprites) > limit {
			block.sprites = make([]*Sprite, 0, spriteCount*minExtraFactor)
			continue
		}
		full := block.sprites[:cap(block.sprites)]
		clear(full)
		block.sprites = full[:0]
	}
}

// rasterize is Pass B: every scanline renders independently into its slice
// of the framebuffer and clears its own scratch, restoring the empty-lines
// invariant by the time the pass's barrier releases.
func (r *Renderer) rasterize(framebuffer []byte, pitch int) {
	rowBytes := r.width * 4

	batch := make([]func(), r.height)
	for y := range batch {
		row := y
		batch[y] = func() {
			line := &r.lines[row]
			target := framebuffer[row*pitch : row*pitch+rowBytes]
			line.render(target, row, r.packer)
			line.clear()
		}
	}
	r.pool.Run(batch)
}
