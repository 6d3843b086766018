// Package layout provides pure functions for panel geometry: converting the
// CSS-like widths of the style scope into terminal cells and placing the nav,
// filter and main panels.
package layout

import (
	"math"
	"strconv"
	"strings"
)

// PixelsPerCell is the horizontal pixel size assumed for one terminal cell
// when a width is given in px.
const PixelsPerCell = 8

// MaxCells is the largest length ParseLength accepts.
const MaxCells = math.MaxInt32

// ParseLength converts a CSS-like length into terminal cells. Supported units:
// none, "ch", "col" and "cols" (cells), "px" (PixelsPerCell px per cell) and
// "%" (of total). ok is false for empty, negative, malformed or oversized
// (above MaxCells) values.
func ParseLength(value string, total int) (cells int, ok bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return 0, false
	}

	num, unit := splitUnit(v)
	n, err := strconv.ParseFloat(num, 64)
	if err != nil || n < 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}

	var f float64
	switch unit {
	case "", "ch", "col", "cols":
		f = math.Round(n)
	case "px":
		if n == 0 {
			return 0, true
		}
		f = max(1, math.Round(n/PixelsPerCell))
	case "%":
		if total <= 0 {
			return 0, n <= MaxCells
		}
		f = math.Round(float64(total) * n / 100)
	default:
		return 0, false
	}
	if f > MaxCells {
		return 0, false
	}
	return int(f), true
}

func splitUnit(v string) (num, unit string) {
	i := len(v)
	for i > 0 {
		c := v[i-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		i--
	}
	return v[:i], strings.TrimSpace(v[i:])
}
