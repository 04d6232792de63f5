package horizon

import (
	"fmt"
	"math"

	"github.com/BridgerB/horizon/internal/raster"
)

// Load opens the georeferenced raster at path and prepares it for
// horizon queries. The projection comes from the file's own spatial
// reference; files without georeferencing fail here.
func Load(path string) (*Terrain, error) {
	ds, err := raster.Open(path)
	if err != nil {
		return nil, err
	}

	transform := Affine(ds.GeoTransform)

	grid, err := NewGrid(ds.Samples, ds.Width, ds.Height, math.Abs(transform.PixelWidth()))
	if err != nil {
		return nil, fmt.Errorf("build elevation grid: %w", err)
	}

	projector, err := NewCRSProjector(ds.Projection)
	if err != nil {
		return nil, err
	}

	return NewTerrain(grid, transform, projector)
}
