package geojson

import "math"

// BBox is an axis-aligned extent: (min_x, min_y, [min_z], max_x, max_y, [max_z]).
// A nil BBox means the member is absent.
//
// min_x may exceed max_x: such a box crosses the antimeridian.
type BBox []float64

// NewBBox returns a 2D bounding box.
func NewBBox(minX, minY, maxX, maxY float64) BBox {
	return BBox{minX, minY, maxX, maxY}
}

// NewBBoxZ returns a 3D bounding box.
func NewBBoxZ(minX, minY, minZ, maxX, maxY, maxZ float64) BBox {
	return BBox{minX, minY, minZ, maxX, maxY, maxZ}
}

// Is3D reports whether the box carries a Z range.
func (b BBox) Is3D() bool { return len(b) == 6 }

// Min returns the lower corner.
func (b BBox) Min() Position {
	switch len(b) {
	case 4:
		return NewPosition(b[0], b[1])
	case 6:
		return NewPositionZ(b[0], b[1], b[2])
	}
	return Position{}
}

// Max returns the upper corner.
func (b BBox) Max() Position {
	switch len(b) {
	case 4:
		return NewPosition(b[2], b[3])
	case 6:
		return NewPositionZ(b[3], b[4], b[5])
	}
	return Position{}
}

// CrossesAntimeridian reports whether min_x > max_x.
func (b BBox) CrossesAntimeridian() bool {
	if len(b) != 4 && len(b) != 6 {
		return false
	}
	return b[0] > b[len(b)/2]
}

// Polygon returns the rectangle spanned by the 2D extent of the box.
func (b BBox) Polygon() *Polygon {
	lo, hi := b.Min(), b.Max()
	return NewPolygonFromBounds(lo.X, lo.Y, hi.X, hi.Y)
}

func (b BBox) value() any {
	if b == nil {
		return nil
	}
	return []float64(b)
}

// bbox validates an optional bbox member. Only Y and Z are order checked.
func (d *decoder) bbox(path Path, v any) BBox {
	if v == nil {
		return nil
	}

	seq, ok := asSeq(v)
	if !ok {
		d.fail(path, KindType, "bbox must be an array of numbers, got %s", describe(v))
		return nil
	}
	if len(seq) != 4 && len(seq) != 6 {
		d.fail(path, KindBBox, "bbox must have 4 or 6 values, got %d", len(seq))
		return nil
	}

	box := make(BBox, len(seq))
	valid := true
	for i, e := range seq {
		f, isNum := asNumber(e)
		switch {
		case !isNum:
			d.fail(path.index(i), KindType, "expected a number, got %s", describe(e))
			valid = false
			continue
		case math.IsNaN(f) || math.IsInf(f, 0):
			d.fail(path.index(i), KindBBox, "expected a finite number, got %v", f)
			valid = false
			continue
		}
		box[i] = f
	}
	if !valid {
		return nil
	}

	offset := len(box) / 2
	if box.CrossesAntimeridian() {
		d.warn(path, "bbox crosses the antimeridian, min X (%v) > max X (%v)", box[0], box[offset])
	}

	valid = true
	if box[1] > box[1+offset] {
		d.fail(path, KindBBox, "invalid bbox: min Y (%v) must be <= max Y (%v)", box[1], box[1+offset])
		valid = false
	}
	if box.Is3D() && box[2] > box[2+offset] {
		d.fail(path, KindBBox, "invalid bbox: min Z (%v) must be <= max Z (%v)", box[2], box[2+offset])
		valid = false
	}
	if !valid {
		return nil
	}
	return box
}
