package blit

import (
	"image"
	_ "image/png" // register PNG for LoadBitmapSource
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// opaqueAlphaThreshold is the smallest source alpha treated as opaque.
// Sprite pixels are binary, so partially transparent image pixels snap to
// one side or the other.
const opaqueAlphaThreshold = 0x80

// BitmapSource serves sprite pixels from decoded image data. The image is
// converted to straight-alpha RGBA once at construction; PixelAt is then a
// plain array lookup, safe for concurrent use.
type BitmapSource struct {
	pix    []uint8 // NRGBA, 4 bytes per pixel, row-major
	width  int
	height int
}

// NewBitmapSource copies img into a bitmap source at its natural size.
func NewBitmapSource(img image.Image) *BitmapSource {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return &BitmapSource{pix: dst.Pix, width: b.Dx(), height: b.Dy()}
}

// NewScaledBitmapSource copies img into a bitmap source of the given size,
// resampling with nearest-neighbor so hard sprite edges stay hard. Scaling
// happens once at load time; the renderer itself never scales.
func NewScaledBitmapSource(img image.Image, width, height int) *BitmapSource {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return &BitmapSource{pix: dst.Pix, width: width, height: height}
}

// LoadBitmapSource reads and decodes an image file into a bitmap source.
// PNG is supported out of the box; blank-import additional image formats to
// extend that.
func LoadBitmapSource(path string) (*BitmapSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open bitmap")
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode bitmap %s", path)
	}
	return NewBitmapSource(img), nil
}

// Width returns the bitmap width in pixels.
func (b *BitmapSource) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *BitmapSource) Height() int { return b.height }

// PixelAt returns the bitmap pixel at (u, v). Pixels whose alpha falls
// below the opacity threshold are transparent; coordinates outside the
// bitmap are transparent as well.
func (b *BitmapSource) PixelAt(u, v int) Pixel {
	if u < 0 || u >= b.width || v < 0 || v >= b.height {
		return Transparent()
	}
	i := (v*b.width + u) * 4
	if b.pix[i+3] < opaqueAlphaThreshold {
		return Transparent()
	}
	return Opaque(b.pix[i], b.pix[i+1], b.pix[i+2])
}
