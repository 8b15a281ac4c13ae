package geojson

import (
	"strconv"
	"strings"
)

// writeWKT renders "<TYPE> [Z ](<body>)" or "<TYPE> EMPTY".
func writeWKT(tag Type, hasZ, empty bool, body func(b *strings.Builder)) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(string(tag)))
	if empty {
		b.WriteString(" EMPTY")
		return b.String()
	}

	if hasZ {
		b.WriteString(" Z ")
	} else {
		b.WriteByte(' ')
	}
	b.WriteByte('(')
	body(&b)
	b.WriteByte(')')
	return b.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func writePosition(b *strings.Builder, p Position) {
	b.WriteString(formatNumber(p.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(p.Y))
	if p.HasZ {
		b.WriteByte(' ')
		b.WriteString(formatNumber(p.Z))
	}
}

func writePositions(b *strings.Builder, ps []Position) {
	for i, p := range ps {
		if i > 0 {
			b.WriteString(", ")
		}
		writePosition(b, p)
	}
}

func writeLines[L ~[]Position](b *strings.Builder, lines []L) {
	for i, l := range lines {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		writePositions(b, l)
		b.WriteByte(')')
	}
}

func positionsHaveZ(ps []Position) bool {
	for _, p := range ps {
		if p.HasZ {
			return true
		}
	}
	return false
}

func linesHaveZ[L ~[]Position](lines []L) bool {
	for _, l := range lines {
		if positionsHaveZ(l) {
			return true
		}
	}
	return false
}
