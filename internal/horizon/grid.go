package horizon

import "fmt"

// Grid is an immutable elevation raster held fully in memory: width x
// height samples in row-major order plus the pixel size in meters.
// It is populated once at load and only read afterwards, so lookups
// are safe from any number of goroutines.
type Grid struct {
	samples   []float32
	width     int
	height    int
	pixelSize float64
}

// NewGrid wraps a materialized sample buffer. The buffer length must
// match width*height and the pixel size must be positive.
func NewGrid(samples []float32, width, height int, pixelSize float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("sample buffer holds %d values, grid needs %d", len(samples), width*height)
	}
	if pixelSize <= 0 {
		return nil, fmt.Errorf("invalid pixel size %f", pixelSize)
	}

	return &Grid{
		samples:   samples,
		width:     width,
		height:    height,
		pixelSize: pixelSize,
	}, nil
}

// InBounds reports whether the pixel index lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// SampleAt returns the elevation at the given pixel. Indexes outside
// the grid resolve to 0, the missing-sample value.
func (g *Grid) SampleAt(x, y int) float64 {
	if !g.InBounds(x, y) {
		return 0
	}

	return float64(g.samples[y*g.width+x])
}

// Width returns the number of sample columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of sample rows.
func (g *Grid) Height() int {
	return g.height
}

// PixelSizeMeters returns the ground size of one pixel. Pixels are
// assumed square.
func (g *Grid) PixelSizeMeters() float64 {
	return g.pixelSize
}
