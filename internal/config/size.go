package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type suffixMultiplier struct {
	suffix     string
	multiplier float64
}

// longer suffixes first so "kib" is not matched as "b"
var sizeSuffixes = []suffixMultiplier{
	{"kib", 1 << 10}, {"kb", 1 << 10}, {"ki", 1 << 10}, {"k", 1 << 10},
	{"mib", 1 << 20}, {"mb", 1 << 20}, {"mi", 1 << 20}, {"m", 1 << 20},
	{"gib", 1 << 30}, {"gb", 1 << 30}, {"gi", 1 << 30}, {"g", 1 << 30},
	{"b", 1},
}

// parseSizeString converts "128KiB", "1 mb" or "4096" into a byte count. An
// empty string is zero.
func parseSizeString(size string) (int64, error) {
	value := strings.ToLower(strings.TrimSpace(size))
	if value == "" {
		return 0, nil
	}

	multiplier := float64(1)
	for _, s := range sizeSuffixes {
		if strings.HasSuffix(value, s.suffix) {
			value = strings.TrimSpace(value[:len(value)-len(s.suffix)])
			multiplier = s.multiplier
			break
		}
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", size, err)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("invalid size %q: not a number", size)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid size %q: negative value not allowed", size)
	}

	bytes := v * multiplier
	if bytes >= math.MaxInt64 {
		return 0, fmt.Errorf("invalid size %q: too large", size)
	}

	return int64(bytes), nil
}
