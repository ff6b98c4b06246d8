package pipeline

import "github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"

// Resolve merges the canonical set with custom overrides. A canonical record
// whose id appears in custom is dropped entirely; surviving canonical records
// come first, then custom records, each in input order. Repeated ids within
// one input keep the last occurrence at the first occurrence's position.
func Resolve(canonical, custom []resource.Resource) []resource.Resource {
	overridden := make(map[string]struct{}, len(custom))
	for _, r := range custom {
		overridden[r.ID] = struct{}{}
	}

	out := make([]resource.Resource, 0, len(canonical)+len(custom))
	pos := make(map[string]int, len(canonical)+len(custom))

	put := func(r resource.Resource) {
		if i, ok := pos[r.ID]; ok {
			out[i] = r
			return
		}
		pos[r.ID] = len(out)
		out = append(out, r)
	}

	for _, r := range canonical {
		if _, ok := overridden[r.ID]; ok {
			continue
		}
		put(r)
	}
	for _, r := range custom {
		put(r)
	}

	return out
}
