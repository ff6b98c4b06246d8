package pipeline

import (
	"strings"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"golang.org/x/text/cases"
)

// Criteria holds the optional listing filters. Zero values impose no constraint.
type Criteria struct {
	Featured bool
	Tag      string
	Search   string
	// Facets maps a facet parameter (author, industry, ...) to its value.
	Facets map[string]string
}

func (c Criteria) IsEmpty() bool {
	if c.Featured || strings.TrimSpace(c.Tag) != "" || strings.TrimSpace(c.Search) != "" {
		return false
	}
	for _, v := range c.Facets {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Active returns the non-empty filter values keyed by query parameter name.
func (c Criteria) Active() map[string]string {
	out := make(map[string]string)
	if c.Featured {
		out["featured"] = "true"
	}
	if v := strings.TrimSpace(c.Tag); v != "" {
		out["tag"] = v
	}
	if v := strings.TrimSpace(c.Search); v != "" {
		out["search"] = v
	}
	for k, v := range c.Facets {
		if v = strings.TrimSpace(v); v != "" {
			out[k] = v
		}
	}
	return out
}

type facetFilter struct {
	facet resource.Facet
	value string
}

// Filter keeps the resources matching every criterion. Facets the kind does
// not define are ignored.
func Filter(items []resource.Resource, spec resource.KindSpec, c Criteria) []resource.Resource {
	if c.IsEmpty() {
		return items
	}

	fold := cases.Fold()
	tag := fold.String(strings.TrimSpace(c.Tag))
	search := fold.String(strings.TrimSpace(c.Search))

	var facets []facetFilter
	for param, value := range c.Facets {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		f, ok := spec.Facet(param)
		if !ok {
			continue
		}
		facets = append(facets, facetFilter{facet: f, value: fold.String(value)})
	}

	out := make([]resource.Resource, 0, len(items))
	for _, r := range items {
		if c.Featured && !r.Featured {
			continue
		}
		if tag != "" && !hasTag(fold, r.Tags, tag) {
			continue
		}
		if !matchFacets(fold, r, facets) {
			continue
		}
		if search != "" && !strings.Contains(fold.String(SearchText(r)), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func hasTag(fold cases.Caser, tags []string, want string) bool {
	for _, t := range tags {
		if fold.String(strings.TrimSpace(t)) == want {
			return true
		}
	}
	return false
}

func matchFacets(fold cases.Caser, r resource.Resource, facets []facetFilter) bool {
	for _, ff := range facets {
		matched := false
		for _, v := range ff.facet.Values(r) {
			v = fold.String(v)
			switch ff.facet.Match {
			case resource.MatchExact:
				matched = v == ff.value
			default:
				matched = strings.Contains(v, ff.value)
			}
			if matched {
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// SearchText concatenates every searchable language variant and tag of r.
// Content holds rendered markup and is not searched.
func SearchText(r resource.Resource) string {
	var b strings.Builder
	for _, m := range []resource.MultilingualText{r.Title, r.Description, r.Challenge, r.Solution, r.Results} {
		for _, v := range m.Variants() {
			b.WriteString(v)
			b.WriteByte('\n')
		}
	}
	for _, t := range r.Tags {
		b.WriteString(t)
		b.WriteByte('\n')
	}
	return b.String()
}
