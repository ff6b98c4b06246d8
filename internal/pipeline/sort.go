package pipeline

import (
	"cmp"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"golang.org/x/mod/semver"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}

var priorityRank = map[string]int{
	"critical": 4,
	"high":     3,
	"medium":   2,
	"low":      1,
}

type compareFunc func(a, b resource.Resource) int

func comparator(field string) compareFunc {
	switch field {
	case resource.SortByTitle:
		col := collate.New(language.English, collate.Loose)
		return func(a, b resource.Resource) int {
			return col.CompareString(a.Title.Get(resource.LangEnglish), b.Title.Get(resource.LangEnglish))
		}
	case resource.SortByReadTime:
		return func(a, b resource.Resource) int { return cmp.Compare(a.ReadTime, b.ReadTime) }
	case resource.SortByPriority:
		return func(a, b resource.Resource) int {
			return cmp.Compare(priorityRank[strings.ToLower(a.Priority)], priorityRank[strings.ToLower(b.Priority)])
		}
	case resource.SortByVersion:
		return func(a, b resource.Resource) int {
			return semver.Compare(canonicalVersion(a.Version), canonicalVersion(b.Version))
		}
	default:
		return compareDates
	}
}

func compareDates(a, b resource.Resource) int {
	ta, _ := resource.ParseDate(a.Date)
	tb, _ := resource.ParseDate(b.Date)
	return ta.Compare(tb)
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// Sort returns a stably sorted copy of items. Unknown fields sort by date and
// any order other than Asc is descending.
// Kinds that pin critical priority place every critical record first.
func Sort(items []resource.Resource, spec resource.KindSpec, field string, order Order) []resource.Resource {
	if field == "" || !spec.SupportsSort(field) {
		field = resource.SortByDate
	}
	base := comparator(field)
	if order != Asc {
		asc := base
		base = func(a, b resource.Resource) int { return -asc(a, b) }
	}

	compare := base
	if spec.PinCritical {
		compare = func(a, b resource.Resource) int {
			ca, cb := a.IsCritical(), b.IsCritical()
			if ca != cb {
				if ca {
					return -1
				}
				return 1
			}
			return base(a, b)
		}
	}

	out := slices.Clone(items)
	slices.SortStableFunc(out, compare)
	return out
}
