// Package geo handles geographic data structures and coordinate conversions.
package geo

import "github.com/BridgerB/horizon/internal/horizon"

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties"`
	Type       string                 `json:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature (Point, Polygon, etc.).
type GeoJSONGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat]
}

// HorizonFeatureCollection places a horizon profile on the map: one
// Point feature per scanned direction, positioned where the horizon
// sample lies relative to the observer, with the scan numbers kept as
// properties. Zero-sentinel results collapse onto the observer itself.
func HorizonFeatureCollection(lat, lng float64, results []horizon.Result) GeoJSONFeatureCollection {
	fc := GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, len(results)),
	}

	for _, r := range results {
		destLat, destLng := Destination(lat, lng, float64(r.Direction), r.Distance*1000)

		fc.Features = append(fc.Features, GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "Point",
				Coordinates: []float64{destLng, destLat},
			},
			Properties: map[string]interface{}{
				"direction":             r.Direction,
				"elevationAngleDegrees": r.Angle,
				"distanceKm":            r.Distance,
			},
		})
	}

	return fc
}
