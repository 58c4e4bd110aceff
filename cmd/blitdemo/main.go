// Command blitdemo renders an animated sprite scene into an SDL window.
//
// It fills the background with a grid of solid-color tiles whose colors
// vary with tile position, scatters bouncing
// gradient sprites on top and overlays a text banner, then streams each
// frame through a locked ARGB8888 texture. Frame rate is reported
// periodically through the blit logger.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gopxl/mainthread/v2"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/blit"
)

var (
	width      = flag.Int("width", 1600, "window width in pixels")
	height     = flag.Int("height", 900, "window height in pixels")
	foreground = flag.Int("sprites", 1000, "number of bouncing foreground sprites")
	workers    = flag.Int("workers", 0, "render workers (0 = GOMAXPROCS)")
	seed       = flag.Int64("seed", 1, "seed for sprite placement")
)

const (
	backgroundTileSize = 32
	foregroundSize     = 16
	maxSpriteSpeed     = 3

	fpsReportInterval = 5 * time.Second
)

// bouncer moves one sprite of the scene, reflecting off the viewport edges.
// It addresses the sprite by index so the scene slice may grow after setup.
type bouncer struct {
	index          int
	bounds         blit.RectI
	xSpeed, ySpeed int32
}

func (b *bouncer) tick(sprites []blit.Sprite) {
	pos := &sprites[b.index].Position
	if b.bounds.X > pos.X {
		b.xSpeed = abs32(b.xSpeed)
	}
	if b.bounds.LastX() < pos.LastX() {
		b.xSpeed = -abs32(b.xSpeed)
	}
	if b.bounds.Y > pos.Y {
		b.ySpeed = abs32(b.ySpeed)
	}
	if b.bounds.LastY() < pos.LastY() {
		b.ySpeed = -abs32(b.ySpeed)
	}
	pos.X += b.xSpeed
	pos.Y += b.ySpeed
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// makeBackground tiles the viewport with static solid-color sprites; each
// tile's red and green channels follow its x and y position.
func makeBackground(layer *uint32) []blit.Sprite {
	var sprites []blit.Sprite
	for x := int32(0); x < int32(*width); x += backgroundTileSize {
		for y := int32(0); y < int32(*height); y += backgroundTileSize {
			tx, ty := uint8(x%256), uint8(y%256)
			sprites = append(sprites, blit.Sprite{
				Position: blit.RectI{X: x, Y: y, Width: backgroundTileSize, Height: backgroundTileSize},
				Source: blit.SolidSource{
					Color: blit.Opaque(tx, ty, 0),
				},
				Layer: *layer,
			})
			*layer++
		}
	}
	return sprites
}

// makeForeground places bouncing gradient sprites at random positions with
// random speeds.
func makeForeground(rng *rand.Rand, sprites []blit.Sprite, layer *uint32) ([]blit.Sprite, []bouncer) {
	bounds := blit.RectI{Width: int32(*width), Height: int32(*height)}
	bouncers := make([]bouncer, 0, *foreground)

	for i := 0; i < *foreground; i++ {
		x := int32(rng.Intn(*width - foregroundSize + 1))
		y := int32(rng.Intn(*height - foregroundSize + 1))

		var src blit.GradientSource
		if i%2 == 1 {
			src = blit.NewGradientSource(foregroundSize, foregroundSize, blit.ChannelR, blit.ChannelG)
		} else {
			src = blit.NewGradientSource(foregroundSize, foregroundSize, blit.ChannelR, blit.ChannelB)
		}

		sprites = append(sprites, blit.Sprite{
			Position: blit.RectI{X: x, Y: y, Width: foregroundSize, Height: foregroundSize},
			Source:   src,
			Layer:    *layer,
		})
		*layer++

		bouncers = append(bouncers, bouncer{
			index:  len(sprites) - 1,
			bounds: bounds,
			xSpeed: int32(rng.Intn(2*maxSpriteSpeed+1) - maxSpriteSpeed),
			ySpeed: int32(rng.Intn(2*maxSpriteSpeed+1) - maxSpriteSpeed),
		})
	}
	return sprites, bouncers
}

func main() {
	flag.Parse()
	blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	mainthread.Run(run)
}

func run() {
	log := blit.Logger()

	var layer uint32
	sprites := makeBackground(&layer)
	rng := rand.New(rand.NewSource(*seed))
	sprites, bouncers := makeForeground(rng, sprites, &layer)

	banner := blit.NewTextSource("blit sprite compositor", blit.Opaque(255, 255, 255))
	sprites = append(sprites, blit.Sprite{
		Position: blit.RectI{X: 16, Y: 16, Width: int32(banner.Width()), Height: int32(banner.Height())},
		Source:   banner,
		Layer:    layer,
	})

	var (
		window   *sdl.Window
		renderer *sdl.Renderer
		texture  *sdl.Texture
	)
	err := mainthread.CallErr(func() error {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return err
		}
		var err error
		window, err = sdl.CreateWindow("blitdemo",
			sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
			int32(*width), int32(*height), 0)
		if err != nil {
			return err
		}
		renderer, err = sdl.CreateRenderer(window, -1, 0)
		if err != nil {
			return err
		}
		texture, err = renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
			sdl.TEXTUREACCESS_STREAMING, int32(*width), int32(*height))
		return err
	})
	if err != nil {
		log.Error("blitdemo: SDL setup failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer mainthread.Call(func() {
		texture.Destroy()
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
	})

	compositor := blit.New(*width, *height, blit.PackARGB8888, blit.WithWorkers(*workers))
	defer compositor.Close()

	lastReport := time.Now()
	frames := 0

	for {
		quit := false
		mainthread.Call(func() {
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				if _, ok := event.(*sdl.QuitEvent); ok {
					quit = true
				}
			}
		})
		if quit {
			return
		}

		for i := range bouncers {
			bouncers[i].tick(sprites)
		}

		var (
			pixels []byte
			pitch  int
		)
		if err := mainthread.CallErr(func() error {
			var err error
			pixels, pitch, err = texture.Lock(nil)
			return err
		}); err != nil {
			log.Error("blitdemo: texture lock failed", slog.Any("error", err))
			return
		}

		compositor.Render(sprites, pixels, pitch)

		if err := mainthread.CallErr(func() error {
			texture.Unlock()
			if err := renderer.Clear(); err != nil {
				return err
			}
			if err := renderer.Copy(texture, nil, nil); err != nil {
				return err
			}
			renderer.Present()
			return nil
		}); err != nil {
			log.Error("blitdemo: present failed", slog.Any("error", err))
			return
		}

		frames++
		if elapsed := time.Since(lastReport); elapsed >= fpsReportInterval {
			log.Info("blitdemo: frame rate",
				slog.Float64("fps", float64(frames)/elapsed.Seconds()))
			lastReport = time.Now()
			frames = 0
		}
	}
}
