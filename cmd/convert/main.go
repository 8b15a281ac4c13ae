package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/geojson/internal/config"
	"github.com/woozymasta/geojson/internal/lint"
	"github.com/woozymasta/geojson/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input      string `short:"i" long:"in"          description:"Input file path or http(s) URL. Reads from stdin if empty"`
	Output     string `short:"o" long:"out"         description:"Output file path. Writes to stdout if empty"`
	InFormat   string `short:"I" long:"in-format"   description:"Input format, guessed from the file extension if empty" choice:"json" choice:"yaml"`
	Format     string `short:"f" long:"format"      description:"Output format" choice:"json" choice:"yaml" choice:"wkt" default:"json"`
	ConfigFile string `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to configuration file"`
	Precision  int    `short:"P" long:"precision"   description:"Significant digits kept for numbers, 0 keeps them as is"`
	Indent     bool   `short:"n" long:"indent"      description:"Pretty print JSON output"`
	Strict     bool   `short:"s" long:"strict"      description:"Treat warnings as failures"`
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
	if opts.Strict {
		cfg.Strict = true
	}

	precision := cfg.Precision
	if opts.Precision > 0 {
		precision = opts.Precision
	}

	// Read Input
	source := opts.Input
	if source == "" {
		source = "-"
	}

	client := &http.Client{Timeout: 15 * time.Second}
	data, err := lint.Read(context.Background(), client, source)
	if err != nil {
		log.Fatal().Err(err).Str("source", source).Msg("Failed to read input")
	}

	inFormat := lint.Format(opts.InFormat)
	if inFormat == "" {
		inFormat = lint.FormatFromPath(source)
	}

	rep := lint.Inspect(data, inFormat, cfg)
	for _, w := range rep.Warnings {
		log.Warn().Str("path", w.Path).Msg(w.Message)
	}
	if !rep.Valid {
		for _, e := range rep.Errors {
			log.Error().Str("path", e.Path).Str("kind", e.Kind).Msg(e.Message)
		}
		log.Fatal().Str("source", source).Int("errors", len(rep.Errors)).Msg("Invalid document")
	}

	// marshal
	out, err := lint.Render(rep.Document, lint.Format(opts.Format), lint.RenderOptions{
		Precision: precision,
		Indent:    opts.Indent,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render document")
	}

	if opts.Output == "" {
		_, _ = os.Stdout.Write(out)
		return
	}

	if err := lint.WriteFile(opts.Output, out); err != nil {
		log.Fatal().Err(err).Str("path", opts.Output).Msg("Failed to write output file")
	}

	log.Info().
		Str("type", rep.Type).
		Str("out", opts.Output).
		Str("format", opts.Format).
		Msg("Document converted")
}
