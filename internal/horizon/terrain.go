package horizon

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// Terrain is a loaded elevation dataset ready for horizon queries: the
// immutable grid, its geotransform and the projector derived from the
// file's spatial reference. Queries are deterministic and free of side
// effects, so a single Terrain serves any number of callers.
type Terrain struct {
	grid      *Grid
	transform Affine
	projector Projector
}

// NewTerrain assembles a queryable terrain. The transform must have
// non-zero pixel resolutions.
func NewTerrain(grid *Grid, transform Affine, projector Projector) (*Terrain, error) {
	if grid == nil {
		return nil, fmt.Errorf("terrain needs a grid")
	}
	if transform.PixelWidth() == 0 || transform.PixelHeight() == 0 {
		return nil, fmt.Errorf("degenerate geotransform: zero pixel resolution")
	}
	if projector == nil {
		return nil, fmt.Errorf("terrain needs a projector")
	}

	return &Terrain{
		grid:      grid,
		transform: transform,
		projector: projector,
	}, nil
}

// Grid returns the underlying elevation grid.
func (t *Terrain) Grid() *Grid {
	return t.grid
}

// Locate resolves a WGS84 coordinate to a fractional pixel position.
func (t *Terrain) Locate(lat, lng float64) (px, py float64, err error) {
	x, y, err := t.projector.Project(lat, lng)
	if err != nil {
		return 0, 0, fmt.Errorf("project %f/%f: %w", lat, lng, err)
	}

	px, py = t.transform.PixelOf(x, y)
	return px, py, nil
}

// observerElevation resolves the base elevation for an observer pixel.
// Observers outside the grid fall through to the missing-sample value
// of 0, which skews every angle in the profile; rejecting such
// observers instead is a one-line change here.
func (t *Terrain) observerElevation(px, py float64) float64 {
	return t.grid.SampleAt(int(math.Floor(px)), int(math.Floor(py)))
}

// ElevationAt returns the stored sample under the given coordinate,
// or 0 when it falls outside the grid.
func (t *Terrain) ElevationAt(lat, lng float64) (float64, error) {
	px, py, err := t.Locate(lat, lng)
	if err != nil {
		return 0, err
	}

	return t.observerElevation(px, py), nil
}

// Horizon scans every integer compass direction in [start, end] and
// returns one Result per direction in ascending order. The observer
// position and base elevation are resolved once and shared by all
// scans. start > end yields an empty profile; ranges do not wrap
// through 360/0.
//
// Directions are scanned concurrently, bounded by the CPU count; each
// result lands in its direction-indexed slot so ordering never needs a
// sort.
func (t *Terrain) Horizon(lat, lng float64, start, end int) ([]Result, error) {
	px, py, err := t.Locate(lat, lng)
	if err != nil {
		return nil, err
	}
	base := t.observerElevation(px, py)

	if start > end {
		return []Result{}, nil
	}

	results := make([]Result, end-start+1)

	wg := sync.WaitGroup{}
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			sem.Acquire(context.Background(), 1)
			results[i] = ScanDirection(t.grid, px, py, start+i, base)
			sem.Release(1)
		}(i)
	}
	wg.Wait()

	return results, nil
}
