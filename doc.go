// Package blit provides a parallel CPU sprite compositor for Go.
//
// # Overview
//
// blit renders a set of layered, axis-aligned rectangular sprites into a
// caller-supplied framebuffer using a two-pass scanline algorithm. It is a
// software renderer in the GoGPU ecosystem for workloads where sprites are
// the primitive: tile maps, 2D game scenes, compositing of pre-rendered
// elements.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	r := blit.New(1600, 900, blit.PackARGB8888)
//	defer r.Close()
//
//	sprites := []blit.Sprite{
//		{
//			Position: blit.RectI{X: 100, Y: 100, Width: 64, Height: 64},
//			Source:   blit.SolidSource{Color: blit.Opaque(255, 0, 0)},
//			Layer:    1,
//		},
//	}
//
//	// framebuffer is height rows of pitch bytes, 4 bytes per pixel.
//	r.Render(sprites, framebuffer, pitch)
//
// # Architecture
//
// A render call runs in two barriered passes. Pass A distributes sprites
// onto the scanlines they intersect, striped into blocks of rows so that
// each worker writes a disjoint stripe without locks. Pass B rasterizes
// every scanline independently: an ordered stack of active sprites is
// maintained left to right and each pixel resolves to the topmost opaque
// sprite covering it, or opaque black.
//
// The library is organized into:
//   - Public API: Renderer, Sprite, PixelSource, Rect
//   - Sprite sources: SolidSource, GradientSource, BitmapSource, TextSource
//   - Internal: parallel (worker pool), inline (small-vector storage)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Sprite positions are signed, so sprites may lie partially or entirely
// outside the viewport; they are clipped during distribution.
//
// # Transparency
//
// Sprite pixels are either fully opaque or fully transparent. A transparent
// pixel falls through to the next sprite below; uncovered pixels are opaque
// black. There is no alpha blending.
//
// # Performance
//
// Both passes run on a work-stealing worker pool. Scanlines are independent
// once distribution completes, so rendering scales with core count. Output
// is byte-identical for any worker count.
package blit

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
