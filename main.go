package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/glasscast/glasscast/internal/logger"
	"github.com/glasscast/glasscast/pkg/renderer"
	"github.com/glasscast/glasscast/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "demo", "Scene to render: "+strings.Join(scene.Names(), ", "))
	width := flag.Int("width", 0, "Image width in pixels (0 uses the scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 uses the scene default)")
	workers := flag.Int("workers", 0, "Worker goroutines (0 uses all CPUs)")
	tileSize := flag.Int("tile-size", 0, "Tile edge length in pixels (0 uses the default)")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Glasscast")
		fmt.Println("Usage: glasscast [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.List() {
			fmt.Printf("  %s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	logger.Init()

	selected, err := scene.ByName(*sceneName)
	if err != nil {
		logger.Log.Fatal("scene lookup failed", zap.Error(err))
	}

	renderWidth, renderHeight := resolveSize(selected, *width, *height)

	config := renderer.DefaultConfig()
	config.Workers = *workers
	if *tileSize > 0 {
		config.TileSize = *tileSize
	}

	// Ctrl-C abandons the remaining tiles and exits without writing a file.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Log.Info("rendering",
		zap.String("scene", *sceneName),
		zap.Int("width", renderWidth),
		zap.Int("height", renderHeight))

	r := renderer.NewRenderer(selected, renderWidth, renderHeight, config)
	img, stats, err := r.Render(ctx)
	if err != nil {
		logger.Log.Fatal("render aborted", zap.Error(err))
	}

	logger.Log.Info("render complete",
		zap.Duration("elapsed", stats.Elapsed),
		zap.Int("tiles", stats.Tiles),
		zap.Int("workers", stats.Workers))

	filename := outputPath(*output, *sceneName, time.Now())
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Log.Fatal("creating output directory failed", zap.Error(err))
		}
	}

	if err := savePNG(filename, img); err != nil {
		logger.Log.Fatal("saving png failed", zap.Error(err))
	}

	logger.Log.Info("render saved", zap.String("path", filename))
}

// resolveSize fills unset dimensions from the scene defaults
func resolveSize(sc *scene.Scene, width, height int) (int, int) {
	if width <= 0 {
		width = sc.Width
	}
	if height <= 0 {
		height = sc.Height
	}
	return width, height
}

// outputPath returns the override unchanged, or a timestamped path under
// the per-scene output directory
func outputPath(override, sceneName string, now time.Time) string {
	if override != "" {
		return override
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
