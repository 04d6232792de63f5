package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/BridgerB/horizon/internal/geo"
	"github.com/BridgerB/horizon/internal/horizon"
	"github.com/BridgerB/horizon/internal/logger"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Dataset string `short:"d" long:"dataset" env:"HORIZON_DATASET" description:"Path to georeferenced elevation raster" required:"true"`
	GeoJSON bool   `short:"g" long:"geojson" description:"Emit a GeoJSON feature collection instead of the plain result array"`

	Args struct {
		Latitude   float64 `positional-arg-name:"LAT" description:"Observer latitude (WGS84 decimal degrees)" required:"yes"`
		Longitude  float64 `positional-arg-name:"LNG" description:"Observer longitude (WGS84 decimal degrees)" required:"yes"`
		Directions []int   `positional-arg-name:"DIRECTION" description:"Optional start and end direction (degrees, both or neither)"`
	} `positional-args:"yes"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	start, end := 0, 359
	switch len(opts.Args.Directions) {
	case 0:
	case 2:
		start, end = opts.Args.Directions[0], opts.Args.Directions[1]
	default:
		log.Fatal().Msg("Pass both a start and an end direction, or neither")
	}

	terrain, err := horizon.Load(opts.Dataset)
	if err != nil {
		log.Fatal().Err(err).Str("dataset", opts.Dataset).Msg("Failed to load elevation raster")
	}

	grid := terrain.Grid()
	log.Info().
		Int("width", grid.Width()).
		Int("height", grid.Height()).
		Float64("pixel_size_m", grid.PixelSizeMeters()).
		Float64("lat", opts.Args.Latitude).
		Float64("lng", opts.Args.Longitude).
		Int("start", start).
		Int("end", end).
		Msg("Scanning horizon")

	results, err := terrain.Horizon(opts.Args.Latitude, opts.Args.Longitude, start, end)
	if err != nil {
		log.Fatal().Err(err).Msg("Horizon query failed")
	}

	for _, r := range results {
		log.Debug().
			Int("direction", r.Direction).
			Float64("angle", r.Angle).
			Float64("distance_km", r.Distance).
			Msg("Direction scanned")
	}

	var payload interface{} = results
	if opts.GeoJSON {
		payload = geo.HorizonFeatureCollection(opts.Args.Latitude, opts.Args.Longitude, results)
	}

	outputData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal results")
	}

	fmt.Println(string(outputData))
}
