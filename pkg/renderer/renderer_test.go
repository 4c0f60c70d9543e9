package renderer

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/glasscast/glasscast/pkg/scene"
)

func TestRenderer_Render_ImageDimensions(t *testing.T) {
	sc := scene.NewDemoScene()
	r := NewRenderer(sc, 80, 60, DefaultConfig())

	img, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Expected render to succeed, got error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 80 || bounds.Dy() != 60 {
		t.Errorf("Expected 80x60 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if stats.Width != 80 || stats.Height != 60 {
		t.Errorf("Expected 80x60 in stats, got %dx%d", stats.Width, stats.Height)
	}
	// 80x60 at the default tile size of 64 splits into two columns.
	if stats.Tiles != 2 {
		t.Errorf("Expected 2 tiles, got %d", stats.Tiles)
	}
	if stats.PrimaryRays != 80*60 {
		t.Errorf("Expected %d primary rays, got %d", 80*60, stats.PrimaryRays)
	}
	if stats.Workers <= 0 {
		t.Errorf("Expected resolved worker count, got %d", stats.Workers)
	}
}

func TestRenderer_Render_WorkerCountInvariance(t *testing.T) {
	sc := scene.NewDemoScene()
	const width, height = 96, 64

	single := NewRenderer(sc, width, height, Config{TileSize: 32, Workers: 1})
	pooled := NewRenderer(sc, width, height, Config{TileSize: 32, Workers: 4})

	first, _, err := single.Render(context.Background())
	if err != nil {
		t.Fatalf("Expected single-worker render to succeed, got error: %v", err)
	}
	second, _, err := pooled.Render(context.Background())
	if err != nil {
		t.Fatalf("Expected pooled render to succeed, got error: %v", err)
	}

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Errorf("Expected identical pixels from 1 and 4 workers")
	}
}

func TestRenderer_Render_CancelledContext(t *testing.T) {
	sc := scene.NewDemoScene()
	r := NewRenderer(sc, 64, 64, Config{TileSize: 16, Workers: 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := r.Render(ctx)
	if err == nil {
		t.Fatal("Expected an error from a cancelled context, got nil")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Errorf("Expected no image on cancellation, got %v", img.Bounds())
	}
}

func TestRenderer_Render_BackgroundPixels(t *testing.T) {
	// No objects and no floor plane, so every ray reports the background.
	sc := &scene.Scene{
		Background: mgl64.Vec3{0.1, 0.1, 0.15},
		Camera: scene.CameraConfig{
			Position: mgl64.Vec3{0, 0, 4},
			LookAt:   mgl64.Vec3{0, 0, 0},
			Up:       mgl64.Vec3{0, 1, 0},
			VFov:     60,
		},
		Width:  16,
		Height: 16,
	}
	r := NewRenderer(sc, 16, 16, Config{TileSize: 8, Workers: 1})

	img, _, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Expected render to succeed, got error: %v", err)
	}

	want := color.RGBA{R: 25, G: 25, B: 38, A: 255}
	for _, point := range []struct{ x, y int }{{0, 0}, {7, 7}, {15, 15}} {
		if got := img.RGBAAt(point.x, point.y); got != want {
			t.Errorf("Expected background pixel %v at (%d, %d), got %v", want, point.x, point.y, got)
		}
	}
}

func TestVec3ToColor(t *testing.T) {
	tests := []struct {
		name  string
		input mgl64.Vec3
		want  color.RGBA
	}{
		{name: "Black", input: mgl64.Vec3{0, 0, 0}, want: color.RGBA{0, 0, 0, 255}},
		{name: "White", input: mgl64.Vec3{1, 1, 1}, want: color.RGBA{255, 255, 255, 255}},
		{name: "Clamps above one", input: mgl64.Vec3{2, 1.5, 10}, want: color.RGBA{255, 255, 255, 255}},
		{name: "Clamps negative", input: mgl64.Vec3{-1, -0.5, 0.5}, want: color.RGBA{0, 0, 127, 255}},
		{name: "Background tint", input: mgl64.Vec3{0.1, 0.1, 0.15}, want: color.RGBA{25, 25, 38, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vec3ToColor(tt.input); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
