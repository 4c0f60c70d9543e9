package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	Tiles       int           // Number of tiles rendered
	Workers     int           // Workers that rendered them
	PrimaryRays int           // Rays traced, one per pixel
	Elapsed     time.Duration // Wall-clock render time
}
