package xsize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size constants in IEC binary units.
const (
	MB int64 = 1 << 20
	GB int64 = 1 << 30
)

// ParseError indicates that a size expression couldn't be parsed. It carries
// the normalized (trimmed and uppercased) input for the error message.
type ParseError struct {
	Input string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid size format: %s. "+
		"Use a format like '1MB', '2.5GB', or a plain number of bytes", e.Input)
}

// Parse converts a size expression into an exact byte count.
// Examples: "1000" (raw bytes), "1MB", "2.5GB".
// Suffixes are case-insensitive and use binary units (MB=1024², GB=1024³);
// fractional values are truncated, not rounded. The input is trimmed of
// surrounding whitespace. Negative values are passed through unchanged.
func Parse(s string) (int64, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))

	var mult int64
	switch {
	case strings.HasSuffix(norm, "GB"):
		mult = GB
	case strings.HasSuffix(norm, "MB"):
		mult = MB
	default:
		n, err := strconv.ParseInt(norm, 10, 64)
		if err != nil {
			return 0, &ParseError{Input: norm}
		}
		return n, nil
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(norm[:len(norm)-2]), 64)
	if err != nil || math.IsInf(val, 0) || math.IsNaN(val) {
		return 0, &ParseError{Input: norm}
	}

	return int64(val * float64(mult)), nil
}

// Format renders a byte count in the same notation Parse accepts, using the
// largest unit that divides it evenly. It round-trips through Parse.
func Format(n int64) string {
	switch {
	case n >= GB && n%GB == 0:
		return strconv.FormatInt(n/GB, 10) + "GB"
	case n >= MB && n%MB == 0:
		return strconv.FormatInt(n/MB, 10) + "MB"
	default:
		return strconv.FormatInt(n, 10)
	}
}
