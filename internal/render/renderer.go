package render

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/voxelmon/server/internal/metrics"
	"github.com/voxelmon/server/internal/raycast"
	"github.com/voxelmon/server/internal/texture"
	"github.com/voxelmon/server/internal/voxel"
)

// Renderer owns the per-session immutable inputs (world, textures, camera)
// and produces one framebuffer per frame. World and Textures are shared
// read-only across every row worker within a frame; Camera's Position is
// mutated only between frames, never during one.
type Renderer struct {
	World    *voxel.World
	Textures *texture.Table
	Camera   *Camera

	// Workers is the number of goroutines row ranges are divided across.
	// Zero means runtime.NumCPU().
	Workers int

	Metrics *metrics.Registry
}

// Render fills fb for the camera's current position, casting one ray per
// pixel, in parallel across disjoint contiguous row ranges (§5). It's a
// fork/join barrier: Render does not return until every row worker has
// finished writing its rows.
func (r *Renderer) Render(fb *Framebuffer) error {
	start := time.Now()

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > BufHeight {
		workers = BufHeight
	}

	rowsPerWorker := (BufHeight + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		y0 := w * rowsPerWorker
		y1 := y0 + rowsPerWorker
		if y1 > BufHeight {
			y1 = BufHeight
		}
		if y0 >= y1 {
			continue
		}
		g.Go(func() error {
			r.renderRows(fb, y0, y1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if r.Metrics != nil {
		r.Metrics.ObserveFrameRender(time.Since(start))
	}
	return nil
}

// renderRows computes pixels for rows [y0, y1) end to end: ray
// construction, trace, texture sample, write. No cross-row or cross-worker
// communication happens here.
func (r *Renderer) renderRows(fb *Framebuffer, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := fb.Row(y)
		for x := 0; x < BufWidth; x++ {
			start, dir := r.Camera.PixelRay(x, y)
			hit, ok := raycast.Trace(r.World, start, dir)
			if !ok {
				row[x] = texture.Sky
				continue
			}
			row[x] = r.Textures.Sample(hit)
		}
	}
}
