package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"github.com/BridgerB/horizon/internal/config"
	"github.com/BridgerB/horizon/internal/horizon"
	"github.com/BridgerB/horizon/internal/logger"
	"github.com/BridgerB/horizon/internal/server"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config" env:"CONFIG_FILE"    description:"Path to configuration file" default:"config.yaml"`
	Addr       string `short:"a" long:"addr"   env:"LISTEN_ADDRESS" description:"Address to listen on (overrides config)"`
	Port       int    `short:"p" long:"port"   env:"LISTEN_PORT"    description:"Port to listen on (overrides config)"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}
	if opts.Port > 0 {
		cfg.Port = opts.Port
	}

	terrain, err := horizon.Load(cfg.Dataset)
	if err != nil {
		log.Fatal().Err(err).Str("dataset", cfg.Dataset).Msg("Failed to load elevation raster")
	}

	srvCtx := server.NewServerContext(cfg, terrain)

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/horizon", srvCtx.HandleHorizon)
	mux.HandleFunc("/api/elevation", srvCtx.HandleElevation)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", cfg.Addr, cfg.Port)
	log.Info().
		Str("addr", listenAddr).
		Str("dataset", cfg.Dataset).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
