package server

import (
	"github.com/rs/zerolog/log"

	"github.com/BridgerB/horizon/internal/config"
	"github.com/BridgerB/horizon/internal/horizon"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Terrain *horizon.Terrain

	// Direction range used when a query omits start/end.
	DefaultStart int
	DefaultEnd   int
}

// NewServerContext wires the loaded terrain and config defaults into a
// handler context.
func NewServerContext(cfg *config.Config, terrain *horizon.Terrain) *ServerContext {
	grid := terrain.Grid()

	log.Info().
		Int("width", grid.Width()).
		Int("height", grid.Height()).
		Float64("pixel_size_m", grid.PixelSizeMeters()).
		Int("default_start", cfg.StartDirection).
		Int("default_end", cfg.EndDirection).
		Msg("Initializing server context")

	return &ServerContext{
		Terrain:      terrain,
		DefaultStart: cfg.StartDirection,
		DefaultEnd:   cfg.EndDirection,
	}
}
