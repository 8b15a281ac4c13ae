package lint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

const jsonMediaType = "application/json"

// RenderOptions controls Render output.
type RenderOptions struct {
	// Precision is the number of significant digits kept for numbers, 0
	// keeps them as is.
	Precision int
	// Indent pretty prints JSON output.
	Indent bool
}

// Render encodes a validated document in the requested format.
func Render(doc *Document, format Format, opts RenderOptions) ([]byte, error) {
	if opts.Precision > 0 {
		reduced, err := reducePrecision(doc, opts.Precision)
		if err != nil {
			return nil, err
		}
		doc = reduced
	}

	switch format {
	case FormatJSON, "":
		data, err := json.Marshal(doc.Value)
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		if !opts.Indent {
			return data, nil
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return nil, fmt.Errorf("indent json: %w", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil

	case FormatYAML:
		data, err := yaml.Marshal(doc.Value)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil

	case FormatWKT:
		lines := doc.WKT()
		if len(lines) == 0 {
			return nil, nil
		}
		return []byte(strings.Join(lines, "\n") + "\n"), nil
	}

	return nil, fmt.Errorf("unsupported output format %q", format)
}

// Minify compacts a JSON document, rounding numbers to precision
// significant digits when precision is positive.
func Minify(data []byte, precision int) ([]byte, error) {
	m := minify.New()
	m.Add(jsonMediaType, &minjson.Minifier{Precision: precision})

	out, err := m.Bytes(jsonMediaType, data)
	if err != nil {
		return nil, fmt.Errorf("minify json: %w", err)
	}
	return out, nil
}

// reducePrecision rounds every number of the document and validates the
// result again, since rounding may collapse distinct positions.
func reducePrecision(doc *Document, precision int) (*Document, error) {
	data, err := json.Marshal(doc.Value)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}

	data, err = Minify(data, precision)
	if err != nil {
		return nil, err
	}

	obj, err := Decode(data, FormatJSON)
	if err != nil {
		return nil, err
	}

	reduced, err := Parse(obj)
	if err != nil {
		return nil, fmt.Errorf("precision %d: %w", precision, err)
	}
	return reduced, nil
}

// WriteFile writes rendered output to path, creating parent directories.
func WriteFile(path string, data []byte) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
			if err == nil {
				err = closeErr
			}
		}
	}()

	_, err = f.Write(data)
	return err
}
