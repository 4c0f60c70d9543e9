package renderer

import (
	"context"
	"image"
	"image/color"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/glasscast/glasscast/internal/logger"
	"github.com/glasscast/glasscast/pkg/core"
	"github.com/glasscast/glasscast/pkg/scene"
	"github.com/glasscast/glasscast/pkg/tracer"
)

// Config contains rendering configuration
type Config struct {
	TileSize int // Pixel edge length of a worker tile
	Workers  int // Number of worker goroutines; 0 means runtime.NumCPU()
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize: 64,
	}
}

// Renderer traces every pixel of a scene into an image. The viewport is
// split into tiles and the tiles are rendered by a pool of workers. Pixels
// are independent, so workers write disjoint image regions without locking
// and the output does not depend on the worker count.
type Renderer struct {
	tracer *tracer.Tracer
	camera *Camera
	width  int
	height int
	config Config
}

// NewRenderer creates a renderer for a scene at the given viewport size
func NewRenderer(sc *scene.Scene, width, height int, config Config) *Renderer {
	return &Renderer{
		tracer: tracer.New(sc),
		camera: NewCamera(sc.Camera, width, height),
		width:  width,
		height: height,
		config: config,
	}
}

// Render traces the full viewport and returns the assembled image.
// Cancelling the context abandons tiles that have not started and returns
// the context error instead of a partial image.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	tileSize := r.config.TileSize
	if tileSize <= 0 {
		tileSize = DefaultConfig().TileSize
	}

	tiles := NewTileGrid(r.width, r.height, tileSize)
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	logger.Log.Debug("render started",
		zap.Int("width", r.width),
		zap.Int("height", r.height),
		zap.Int("tiles", len(tiles)),
		zap.Int("workers", workers))

	runTiles(ctx, tiles, workers, func(tile Tile) {
		r.renderTile(img, tile)
	})

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Width:       r.width,
		Height:      r.height,
		Tiles:       len(tiles),
		Workers:     workers,
		PrimaryRays: r.width * r.height,
		Elapsed:     time.Since(start),
	}

	logger.Log.Debug("render complete",
		zap.Int("tiles", stats.Tiles),
		zap.Duration("elapsed", stats.Elapsed))

	return img, stats, nil
}

// renderTile traces every pixel inside the tile bounds
func (r *Renderer) renderTile(img *image.RGBA, tile Tile) {
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			pixel := r.tracer.Trace(r.camera.RayAt(x, y))
			img.SetRGBA(x, y, vec3ToColor(pixel))
		}
	}
}

// vec3ToColor converts a color vector to an opaque 8-bit RGBA pixel.
// Traced colors are already display-ready, so components are clamped
// but not gamma corrected.
func vec3ToColor(v mgl64.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(255 * core.Clamp01(v.X())),
		G: uint8(255 * core.Clamp01(v.Y())),
		B: uint8(255 * core.Clamp01(v.Z())),
		A: 255,
	}
}
