package renderer

import (
	"context"
	"sync"
)

// runTiles distributes tiles across worker goroutines and blocks until the
// queue is drained. Tiles write to disjoint image regions, so workers need
// no coordination beyond the queue. Cancelling the context abandons tiles
// that have not started.
func runTiles(ctx context.Context, tiles []Tile, workers int, renderTile func(Tile)) {
	taskQueue := make(chan Tile, len(tiles))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range taskQueue {
				if ctx.Err() != nil {
					continue // drain remaining tiles without rendering
				}
				renderTile(tile)
			}
		}()
	}

	for _, tile := range tiles {
		taskQueue <- tile
	}
	close(taskQueue)
	wg.Wait()
}
