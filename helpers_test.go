package geojson

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// fieldErrors asserts err is a *ValidationError and returns its entries.
func fieldErrors(t *testing.T, err error) []*FieldError {
	t.Helper()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	return verr.Errors
}

// captureLog redirects the global logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func square(x, y, size float64) []any {
	return []any{
		[]any{x, y},
		[]any{x + size, y},
		[]any{x + size, y + size},
		[]any{x, y + size},
		[]any{x, y},
	}
}
