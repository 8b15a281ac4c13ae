package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/logger"
	"github.com/woozymasta/geojson/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE"    description:"Path to configuration file"`
	Addr       string `short:"a" long:"addr"     env:"LISTEN_ADDRESS" description:"Address to listen on"                      default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"     env:"LISTEN_PORT"    description:"Port to listen on"                         default:"8080"`
	MaxBody    int64  `short:"m" long:"max-body" env:"MAX_BODY_SIZE"  description:"Maximum request body size in bytes"`
	Strict     bool   `short:"s" long:"strict"   env:"STRICT"         description:"Treat warnings as validation failures"`
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
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	if opts.MaxBody > 0 {
		cfg.MaxBodySize = opts.MaxBody
	}
	if opts.Strict {
		cfg.Strict = true
	}

	srvCtx := server.NewServerContext(cfg)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	srv := &http.Server{
		Addr:              listenAddr,
		Handler:           srvCtx.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().
		Str("addr", listenAddr).
		Bool("strict", cfg.Strict).
		Msg("Validation server started")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
