package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BridgerB/horizon/internal/horizon"
)

func TestHorizonFeatureCollection(t *testing.T) {
	results := []horizon.Result{
		{Direction: 0, Angle: 1.5, Distance: 2.0},
		{Direction: 1, Angle: 0, Distance: 0},
	}

	fc := HorizonFeatureCollection(10, 20, results)

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 2)

	north := fc.Features[0]
	assert.Equal(t, "Feature", north.Type)
	assert.Equal(t, "Point", north.Geometry.Type)
	assert.Equal(t, 0, north.Properties["direction"])
	assert.Equal(t, 1.5, north.Properties["elevationAngleDegrees"])
	assert.Equal(t, 2.0, north.Properties["distanceKm"])
	// 2 km due north moves latitude up, longitude stays put
	assert.Greater(t, north.Geometry.Coordinates[1], 10.0)
	assert.InDelta(t, 20.0, north.Geometry.Coordinates[0], 1e-6)

	// zero sentinel collapses onto the observer
	sentinel := fc.Features[1]
	assert.InDelta(t, 20.0, sentinel.Geometry.Coordinates[0], 1e-9)
	assert.InDelta(t, 10.0, sentinel.Geometry.Coordinates[1], 1e-9)
}
