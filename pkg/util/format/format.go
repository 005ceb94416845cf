package format

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	_  = iota
	KB = 1 << (10 * iota)
	MB
	GB
	TB
)

// FormatBytes renders a byte count in human-readable units, avoiding .00
// for whole numbers.
func FormatBytes(b int64) string {
	val := float64(b)
	var unit string

	switch {
	case b >= TB:
		val /= float64(TB)
		unit = "TB"
	case b >= GB:
		val /= float64(GB)
		unit = "GB"
	case b >= MB:
		val /= float64(MB)
		unit = "MB"
	case b >= KB:
		val /= float64(KB)
		unit = "KB"
	default:
		return fmt.Sprintf("%dB", b)
	}

	if val == float64(int(val)) {
		return fmt.Sprintf("%.0f%s", val, unit)
	}
	return fmt.Sprintf("%.2f%s", val, unit)
}

// ParseBytes parses a human-readable size such as "32", "4KB" or "1.5MB"
// into a byte count.
func ParseBytes(s string) (uint64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	mul := uint64(1)
	switch {
	case strings.HasSuffix(s, "TB"):
		mul, s = TB, s[:len(s)-2]
	case strings.HasSuffix(s, "GB"):
		mul, s = GB, s[:len(s)-2]
	case strings.HasSuffix(s, "MB"):
		mul, s = MB, s[:len(s)-2]
	case strings.HasSuffix(s, "KB"):
		mul, s = KB, s[:len(s)-2]
	case strings.HasSuffix(s, "B"):
		s = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative size %q", s)
	}
	return uint64(v * float64(mul)), nil
}
