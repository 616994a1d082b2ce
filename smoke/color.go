package smoke

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseClearColor parses an "r,g,b,a" flag value into RGBA components,
// clamped to [0,1].
func ParseClearColor(s string) ([4]float32, error) {
	var c [4]float32
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return c, fmt.Errorf("clear color %q: want 4 comma-separated components", s)
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return c, fmt.Errorf("clear color component %q: %w", part, err)
		}
		c[i] = clamp(float32(v), 0, 1)
	}
	return c, nil
}
