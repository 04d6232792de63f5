package horizon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// projectorFunc adapts a plain function to the Projector interface.
type projectorFunc func(lat, lng float64) (float64, float64, error)

func (f projectorFunc) Project(lat, lng float64) (float64, float64, error) {
	return f(lat, lng)
}

// testTerrain wraps a grid with a 10 m north-up transform and a fake
// projection under which latitude maps straight to the pixel row and
// longitude to the pixel column. Queries can then name pixels directly.
func testTerrain(t *testing.T, g *Grid) *Terrain {
	t.Helper()

	transform := Affine{0, 10, 0, 0, 0, -10}
	projector := projectorFunc(func(lat, lng float64) (float64, float64, error) {
		return lng * 10, lat * -10, nil
	})

	terrain, err := NewTerrain(g, transform, projector)
	require.NoError(t, err)
	return terrain
}

func TestNewTerrainValidation(t *testing.T) {
	g := uniformGrid(t, 8, 0)
	projector := projectorFunc(func(lat, lng float64) (float64, float64, error) {
		return lng, lat, nil
	})

	_, err := NewTerrain(nil, Affine{0, 10, 0, 0, 0, -10}, projector)
	assert.Error(t, err)

	_, err = NewTerrain(g, Affine{0, 0, 0, 0, 0, -10}, projector)
	assert.Error(t, err)

	_, err = NewTerrain(g, Affine{0, 10, 0, 0, 0, 0}, projector)
	assert.Error(t, err)

	_, err = NewTerrain(g, Affine{0, 10, 0, 0, 0, -10}, nil)
	assert.Error(t, err)
}

func TestHorizonFullCircle(t *testing.T) {
	terrain := testTerrain(t, uniformGrid(t, 32, 50))

	results, err := terrain.Horizon(16, 16, 0, 359)
	require.NoError(t, err)
	require.Len(t, results, 360)

	for i, r := range results {
		assert.Equal(t, i, r.Direction)
		assert.Equal(t, 0.0, r.Angle)
	}
}

func TestHorizonPartialRange(t *testing.T) {
	terrain := testTerrain(t, uniformGrid(t, 32, 50))

	results, err := terrain.Horizon(16, 16, 90, 180)
	require.NoError(t, err)
	require.Len(t, results, 91)

	assert.Equal(t, 90, results[0].Direction)
	assert.Equal(t, 180, results[len(results)-1].Direction)
}

func TestHorizonEmptyRange(t *testing.T) {
	terrain := testTerrain(t, uniformGrid(t, 32, 50))

	// no wraparound through 360/0: an inverted range is empty
	results, err := terrain.Horizon(16, 16, 350, 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestHorizonSinglePeak(t *testing.T) {
	g := gridWithPeaks(t, 64, 0, map[[2]int]float32{{32, 22}: 100})
	terrain := testTerrain(t, g)

	results, err := terrain.Horizon(32, 32, 0, 359)
	require.NoError(t, err)
	require.Len(t, results, 360)

	north := results[0]
	assert.InDelta(t, 45.0, north.Angle, 1e-9)
	assert.InDelta(t, 0.1, north.Distance, 1e-9)

	// due south sees only flat terrain
	south := results[180]
	assert.Equal(t, 0.0, south.Angle)
}

func TestHorizonDeterministic(t *testing.T) {
	g := gridWithPeaks(t, 64, 10, map[[2]int]float32{
		{32, 22}: 100,
		{40, 40}: 75,
		{10, 32}: 220,
	})
	terrain := testTerrain(t, g)

	first, err := terrain.Horizon(32, 32, 0, 359)
	require.NoError(t, err)

	second, err := terrain.Horizon(32, 32, 0, 359)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHorizonObserverOutsideGrid(t *testing.T) {
	terrain := testTerrain(t, uniformGrid(t, 16, 100))

	// base elevation silently degrades to the missing-sample value 0,
	// so in-bounds terrain at 100 m shows up as a positive horizon
	results, err := terrain.Horizon(-5, 8, 180, 180)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Greater(t, results[0].Angle, 0.0)
}

func TestHorizonObserverAtCorner(t *testing.T) {
	terrain := testTerrain(t, uniformGrid(t, 16, 100))

	results, err := terrain.Horizon(0, 0, 315, 315)
	require.NoError(t, err)
	require.Len(t, results, 1)

	// ray leaves the grid before its first sample: zero sentinel
	assert.Equal(t, 0.0, results[0].Angle)
	assert.Equal(t, 0.0, results[0].Distance)
}

func TestElevationAt(t *testing.T) {
	g := gridWithPeaks(t, 16, 5, map[[2]int]float32{{3, 7}: 42})
	terrain := testTerrain(t, g)

	elevation, err := terrain.ElevationAt(7, 3)
	require.NoError(t, err)
	assert.Equal(t, 42.0, elevation)

	elevation, err = terrain.ElevationAt(100, 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, elevation)
}

func TestLocate(t *testing.T) {
	terrain := testTerrain(t, uniformGrid(t, 16, 0))

	px, py, err := terrain.Locate(7.5, 3.25)
	require.NoError(t, err)
	assert.InDelta(t, 3.25, px, 1e-12)
	assert.InDelta(t, 7.5, py, 1e-12)
}
