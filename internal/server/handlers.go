// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/BridgerB/horizon/internal/geo"
)

// HandleHorizon serves the horizon profile for an observer coordinate.
// Query: lat, lng required; start, end optional (both or neither);
// format=geojson switches the payload to a feature collection.
func (s *ServerContext) HandleHorizon(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, lng, ok := s.coordinate(w, query)
	if !ok {
		return
	}

	start, end := s.DefaultStart, s.DefaultEnd
	if query.Has("start") || query.Has("end") {
		var err1, err2 error
		start, err1 = strconv.Atoi(query.Get("start"))
		end, err2 = strconv.Atoi(query.Get("end"))
		if err1 != nil || err2 != nil {
			badRequest(w, "start and end must both be integers")
			return
		}
	}

	results, err := s.Terrain.Horizon(lat, lng, start, end)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("Horizon query failed")
		http.Error(w, "horizon query failed", http.StatusInternalServerError)
		return
	}

	if query.Get("format") == "geojson" {
		writeJSON(w, "application/geo+json", geo.HorizonFeatureCollection(lat, lng, results))
		return
	}

	writeJSON(w, "application/json", results)
}

// HandleElevation serves the raw elevation sample under a coordinate.
func (s *ServerContext) HandleElevation(w http.ResponseWriter, r *http.Request) {
	lat, lng, ok := s.coordinate(w, r.URL.Query())
	if !ok {
		return
	}

	elevation, err := s.Terrain.ElevationAt(lat, lng)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("Elevation query failed")
		http.Error(w, "elevation query failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, "application/json", map[string]float64{
		"latitude":  lat,
		"longitude": lng,
		"elevation": elevation,
	})
}

// coordinate parses the mandatory lat/lng query parameters, answering
// the request itself when they are missing or malformed.
func (s *ServerContext) coordinate(w http.ResponseWriter, query url.Values) (lat, lng float64, ok bool) {
	lat, err1 := strconv.ParseFloat(query.Get("lat"), 64)
	lng, err2 := strconv.ParseFloat(query.Get("lng"), 64)
	if err1 != nil || err2 != nil {
		badRequest(w, "lat and lng must be decimal degrees")
		return 0, 0, false
	}

	return lat, lng, true
}

func badRequest(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, contentType string, payload interface{}) {
	w.Header().Set("Content-Type", contentType)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(payload)
}
