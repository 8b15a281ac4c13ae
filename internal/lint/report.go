package lint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/woozymasta/geojson"
	"github.com/woozymasta/geojson/internal/config"
)

// Issue is one error or warning in a Report.
type Issue struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Report is the outcome of validating one document.
type Report struct {
	Source   string  `json:"source,omitempty" yaml:"source,omitempty"`
	Type     string  `json:"type,omitempty" yaml:"type,omitempty"`
	Valid    bool    `json:"valid" yaml:"valid"`
	Errors   []Issue `json:"errors" yaml:"errors"`
	Warnings []Issue `json:"warnings" yaml:"warnings"`
	WKT      string  `json:"wkt,omitempty" yaml:"wkt,omitempty"`

	// Document is the validated value, nil when invalid.
	Document *Document `json:"-" yaml:"-"`
}

// Inspect decodes, validates and checks data against the configuration.
// A nil cfg means config.Default.
func Inspect(data []byte, format Format, cfg *config.Config) Report {
	if cfg == nil {
		cfg = config.Default()
	}

	rep := Report{Errors: []Issue{}, Warnings: []Issue{}}

	obj, err := Decode(data, format)
	if err != nil {
		rep.Errors = append(rep.Errors, Issue{Kind: "syntax", Message: err.Error()})
		return rep
	}
	if m, ok := obj.(map[string]any); ok {
		if t, ok := m["type"].(string); ok {
			rep.Type = t
		}
	}

	doc, err := Parse(obj)
	if err != nil {
		rep.Errors = append(rep.Errors, issuesOf(err)...)
		return rep
	}

	for _, w := range doc.Warnings {
		rep.Warnings = append(rep.Warnings, Issue{Path: w.Path.String(), Message: w.Message})
	}

	seen := make(map[geojson.Type]bool)
	for _, t := range doc.Types() {
		if seen[t] || cfg.Allows(string(t)) {
			continue
		}
		seen[t] = true
		rep.Errors = append(rep.Errors, Issue{
			Kind:    "policy",
			Message: fmt.Sprintf("type %s is not allowed", t),
		})
	}

	if cfg.Strict && len(rep.Warnings) > 0 {
		rep.Errors = append(rep.Errors, Issue{
			Kind:    "policy",
			Message: fmt.Sprintf("strict mode: %d warning(s)", len(rep.Warnings)),
		})
	}

	rep.Valid = len(rep.Errors) == 0
	if rep.Valid {
		rep.Document = doc
		rep.WKT = strings.Join(doc.WKT(), "\n")
	}
	return rep
}

// issuesOf flattens a parse error into report entries.
func issuesOf(err error) []Issue {
	var verr *geojson.ValidationError
	if errors.As(err, &verr) {
		issues := make([]Issue, len(verr.Errors))
		for i, fe := range verr.Errors {
			issues[i] = Issue{Path: fe.Path.String(), Kind: fe.Kind.String(), Message: fe.Message}
		}
		return issues
	}

	var unknown *geojson.UnknownTypeError
	switch {
	case errors.As(err, &unknown):
		return []Issue{{Path: "type", Kind: geojson.KindDiscriminator.String(), Message: err.Error()}}
	case errors.Is(err, geojson.ErrMissingType):
		return []Issue{{Path: "type", Kind: geojson.KindMissing.String(), Message: err.Error()}}
	}
	return []Issue{{Kind: geojson.KindType.String(), Message: err.Error()}}
}
