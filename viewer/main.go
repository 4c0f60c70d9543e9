package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"

	"github.com/glasscast/glasscast/internal/logger"
	"github.com/glasscast/glasscast/pkg/renderer"
	"github.com/glasscast/glasscast/pkg/scene"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	orbitStep = 1.5 * math.Pi / 180 // per frame while an arrow key is held
	maxPitch  = 1.45                // keep the camera off the vertical axis
)

// frame is a finished render handed back to the game loop
type frame struct {
	pix     []byte // RGBA pixels at window size
	elapsed time.Duration
	native  bool
}

// Game cycles through the registered scenes and orbits their cameras,
// rendering off the game loop and blitting finished frames
type Game struct {
	names   []string
	index   int
	divisor int // preview renders trace 1/(divisor^2) of the pixels

	yaw    float64 // orbit angle around the vertical axis
	pitch  float64 // orbit angle above the horizon
	native bool

	dirty     bool // settings changed since the last render started
	rendering bool
	results   chan frame

	surface *ebiten.Image
	elapsed time.Duration
	mode    string
}

func NewGame(start string, divisor int) (*Game, error) {
	g := &Game{
		names:   scene.Names(),
		divisor: divisor,
		results: make(chan frame, 1),
		dirty:   true,
	}

	found := false
	for i, name := range g.names {
		if name == start {
			g.index = i
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("unknown scene %q", start)
	}
	return g, nil
}

// Update handles input, starts renders and collects finished frames.
// At most one render is in flight; settings changed meanwhile stay
// dirty and trigger the next render as soon as the current one lands.
func (g *Game) Update() error {
	if g.surface == nil {
		g.surface = ebiten.NewImage(ScreenWidth, ScreenHeight)
	}

	select {
	case result := <-g.results:
		g.surface.WritePixels(result.pix)
		g.elapsed = result.elapsed
		g.mode = "preview"
		if result.native {
			g.mode = "native"
		}
		g.rendering = false
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.index = (g.index + 1) % len(g.names)
		g.yaw, g.pitch = 0, 0
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.native = !g.native
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.yaw -= orbitStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.yaw += orbitStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.pitch += orbitStep
		g.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.pitch -= orbitStep
		g.dirty = true
	}

	if g.dirty && !g.rendering {
		g.startRender()
	}
	return nil
}

// startRender launches a render with the current settings off the game loop
func (g *Game) startRender() {
	g.dirty = false
	g.rendering = true

	name := g.names[g.index]
	yaw, pitch := g.yaw, g.pitch
	native := g.native

	go func() {
		sc, err := scene.ByName(name)
		if err != nil {
			logger.Log.Error("scene lookup failed", zap.String("scene", name), zap.Error(err))
			return
		}
		sc.Camera = orbitCamera(sc.Camera, yaw, pitch)

		width, height := ScreenWidth, ScreenHeight
		if !native {
			width /= g.divisor
			height /= g.divisor
		}

		start := time.Now()
		r := renderer.NewRenderer(sc, width, height, renderer.DefaultConfig())
		img, _, err := r.Render(context.Background())
		if err != nil {
			logger.Log.Error("render failed", zap.String("scene", name), zap.Error(err))
			return
		}
		if !native {
			img = upscale(img, ScreenWidth, ScreenHeight)
		}

		g.results <- frame{pix: img.Pix, elapsed: time.Since(start), native: native}
	}()
}

// orbitCamera swings the camera position around the look-at point,
// keeping the viewing distance
func orbitCamera(cfg scene.CameraConfig, yaw, pitch float64) scene.CameraConfig {
	offset := cfg.Position.Sub(cfg.LookAt)
	radius := offset.Len()

	theta := math.Atan2(offset.X(), offset.Z()) + yaw
	phi := math.Asin(offset.Y()/radius) + pitch
	phi = math.Max(-maxPitch, math.Min(maxPitch, phi))

	cfg.Position = cfg.LookAt.Add(mgl64.Vec3{
		radius * math.Cos(phi) * math.Sin(theta),
		radius * math.Sin(phi),
		radius * math.Cos(phi) * math.Cos(theta),
	})
	return cfg
}

// upscale resamples a preview render to the window size
func upscale(src *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// Draw blits the latest frame and the HUD
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface != nil {
		screen.DrawImage(g.surface, nil)
	}

	hud := fmt.Sprintf("scene: %s (%d/%d)", g.names[g.index], g.index+1, len(g.names))
	if g.rendering || g.dirty {
		hud += "  rendering..."
	} else if g.mode != "" {
		hud += fmt.Sprintf("  %s  %dms", g.mode, g.elapsed.Milliseconds())
	}
	hud += "\ntab: scene  arrows: orbit  f: full res  esc: quit"
	ebitenutil.DebugPrint(screen, hud)
}

// Layout reports the fixed render surface size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func main() {
	start := flag.String("scene", "demo", "Scene to show first")
	divisor := flag.Int("scale", 2, "Preview downscale divisor (1 disables preview scaling)")
	flag.Parse()

	logger.Init()

	if *divisor < 1 {
		*divisor = 1
	}

	game, err := NewGame(*start, *divisor)
	if err != nil {
		logger.Log.Fatal("viewer startup failed", zap.Error(err))
	}

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Glasscast")

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.Fatal("viewer exited", zap.Error(err))
	}
}
