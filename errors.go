package geojson

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingType is returned by ParseGeometry when the input has no "type" member.
var ErrMissingType = errors.New("geojson: missing 'type' member")

// UnknownTypeError is returned by ParseGeometry when "type" names no geometry.
type UnknownTypeError struct {
	Type any
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("geojson: unknown type: %v", e.Type)
}

// ErrorKind classifies a FieldError.
type ErrorKind uint8

const (
	// KindStructural covers nesting, arity, dimensionality and ring closure.
	KindStructural ErrorKind = iota
	// KindDiscriminator means the "type" tag is missing or not permitted.
	KindDiscriminator
	// KindBBox means the bounding box has the wrong length or axis order.
	KindBBox
	// KindMissing means a required member is absent.
	KindMissing
	// KindType means a value has the wrong JSON type.
	KindType
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindDiscriminator:
		return "discriminator"
	case KindBBox:
		return "bbox"
	case KindMissing:
		return "missing"
	case KindType:
		return "type"
	}
	return "unknown"
}

// Path locates a value inside a document. Elements are member names (string)
// or array indices (int).
type Path []any

func (p Path) key(k string) Path {
	return append(p[:len(p):len(p)], k)
}

func (p Path) index(i int) Path {
	return append(p[:len(p):len(p)], i)
}

// String renders the path as "geometry.coordinates[0][3]".
func (p Path) String() string {
	var b strings.Builder
	for _, e := range p {
		switch v := e.(type) {
		case int:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(v))
			b.WriteByte(']')
		default:
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			fmt.Fprint(&b, v)
		}
	}
	return b.String()
}

// FieldError is a single validation failure.
type FieldError struct {
	Path    Path
	Kind    ErrorKind
	Message string
}

func (e *FieldError) Error() string {
	if len(e.Path) == 0 {
		return e.Message
	}
	return e.Path.String() + ": " + e.Message
}

// ValidationError carries every FieldError found while validating one input.
type ValidationError struct {
	Model  string
	Errors []*FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d validation error", len(e.Errors))
	if len(e.Errors) != 1 {
		b.WriteByte('s')
	}
	fmt.Fprintf(&b, " for %s", e.Model)
	for _, fe := range e.Errors {
		b.WriteString("\n  ")
		b.WriteString(fe.Error())
	}
	return b.String()
}

// Unwrap exposes the individual field errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, fe := range e.Errors {
		errs[i] = fe
	}
	return errs
}

// Has reports whether any field error is of the given kind.
func (e *ValidationError) Has(kind ErrorKind) bool {
	for _, fe := range e.Errors {
		if fe.Kind == kind {
			return true
		}
	}
	return false
}

// Warning is a non-fatal finding: the input is legal GeoJSON but likely malformed.
type Warning struct {
	Path    Path
	Message string
}

func (w Warning) String() string {
	if len(w.Path) == 0 {
		return w.Message
	}
	return w.Path.String() + ": " + w.Message
}
