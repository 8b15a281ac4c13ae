package lint

import (
	"context"
	"net/http"
	"sync"

	"github.com/woozymasta/geojson/internal/config"

	"github.com/rs/zerolog/log"
)

type job struct {
	Index  int
	Source string
}

type result struct {
	Index  int
	Report Report
}

// LintFiles validates every source with cfg.Concurrency workers. Reports are
// returned in the order of sources.
func LintFiles(ctx context.Context, client *http.Client, sources []string, cfg *config.Config) []Report {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	if concurrency > len(sources) {
		concurrency = len(sources)
	}

	jobs := make(chan job, len(sources))
	results := make(chan result, len(sources))

	go func() {
		for i, s := range sources {
			jobs <- job{Index: i, Source: s}
		}
		close(jobs)
	}()

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- result{Index: j.Index, Report: lintOne(ctx, client, j.Source, cfg)}
			}
		}()
	}
	wg.Wait()
	close(results)

	reports := make([]Report, len(sources))
	for res := range results {
		reports[res.Index] = res.Report
	}

	return reports
}

func lintOne(ctx context.Context, client *http.Client, source string, cfg *config.Config) Report {
	if err := ctx.Err(); err != nil {
		return Report{
			Source:   source,
			Errors:   []Issue{{Kind: "io", Message: err.Error()}},
			Warnings: []Issue{},
		}
	}

	data, err := Read(ctx, client, source)
	if err != nil {
		log.Trace().
			Err(err).
			Str("source", source).
			Msg("Failed to read document")

		return Report{
			Source:   source,
			Errors:   []Issue{{Kind: "io", Message: err.Error()}},
			Warnings: []Issue{},
		}
	}

	format := FormatFromPath(source)
	rep := Inspect(data, format, cfg)
	rep.Source = source

	log.Debug().
		Str("source", source).
		Str("type", rep.Type).
		Bool("valid", rep.Valid).
		Int("errors", len(rep.Errors)).
		Int("warnings", len(rep.Warnings)).
		Msg("Document linted")

	return rep
}
