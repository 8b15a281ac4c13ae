package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/lint"
	"github.com/woozymasta/geojson/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string   `short:"c" long:"config"      env:"CONFIG_FILE"   description:"Path to configuration file"`
	Concurrency  int      `short:"p" long:"concurrency" env:"CONCURRENCY"   description:"Number of documents linted in parallel"`
	AllowedTypes []string `short:"t" long:"type"        env:"ALLOWED_TYPES" env-delim:"," description:"Allow only these object types (repeatable)"`
	Strict       bool     `short:"s" long:"strict"      env:"STRICT"        description:"Treat warnings as failures"`
	Report       string   `short:"r" long:"report"      description:"Print reports to stdout" choice:"none" choice:"json" choice:"yaml" default:"none"`
	Timeout      int      `long:"timeout"               description:"HTTP timeout for remote sources in seconds" default:"15"`

	Args struct {
		Sources []string `positional-arg-name:"SOURCE" description:"Files, http(s) URLs or - for stdin" required:"1"`
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

	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	if opts.Concurrency > 0 {
		cfg.Concurrency = opts.Concurrency
	}
	if len(opts.AllowedTypes) > 0 {
		cfg.AllowedTypes = opts.AllowedTypes
	}
	if opts.Strict {
		cfg.Strict = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid options")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := &http.Client{Timeout: time.Duration(opts.Timeout) * time.Second}

	log.Info().
		Int("sources", len(opts.Args.Sources)).
		Int("concurrency", cfg.Concurrency).
		Bool("strict", cfg.Strict).
		Msg("Starting lint")

	reports := lint.LintFiles(ctx, client, opts.Args.Sources, cfg)

	failed := 0
	for _, rep := range reports {
		for _, w := range rep.Warnings {
			log.Warn().
				Str("source", rep.Source).
				Str("path", w.Path).
				Msg(w.Message)
		}
		for _, e := range rep.Errors {
			log.Error().
				Str("source", rep.Source).
				Str("path", e.Path).
				Str("kind", e.Kind).
				Msg(e.Message)
		}
		if !rep.Valid {
			failed++
		}
	}

	switch opts.Report {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			log.Fatal().Err(err).Msg("Failed to write report")
		}
	case "yaml":
		if err := yaml.NewEncoder(os.Stdout).Encode(reports); err != nil {
			log.Fatal().Err(err).Msg("Failed to write report")
		}
	}

	log.Info().
		Int("total", len(reports)).
		Int("failed", failed).
		Msg("Lint finished")

	if failed > 0 {
		os.Exit(1)
	}
}
