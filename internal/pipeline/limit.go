package pipeline

import (
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
)

// Limit returns the first n items. A non-positive n leaves items unchanged.
func Limit(items []resource.Resource, n int) []resource.Resource {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n:n]
}

// ParseLimit returns 0 unless s is a positive integer.
func ParseLimit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
