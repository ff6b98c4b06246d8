package resource

import "fmt"

type Kind string

const (
	KindBlog        Kind = "blog"
	KindCaseStudies Kind = "case-studies"
	KindNews        Kind = "news"
	KindUpdates     Kind = "updates"
)

// Kinds lists every content kind in aggregate listing order.
var Kinds = []Kind{KindBlog, KindCaseStudies, KindNews, KindUpdates}

type MatchMode int

const (
	// MatchSubstring is a case-insensitive substring match, for free-text facets.
	MatchSubstring MatchMode = iota
	// MatchExact is a case-insensitive equality match, for enumerable facets.
	MatchExact
)

// Facet is a filterable dimension of a kind.
type Facet struct {
	Param    string
	DebugKey string
	Match    MatchMode
	Values   func(Resource) []string
}

// KindSpec configures the listing pipeline for one kind.
type KindSpec struct {
	Kind            Kind
	RoutePrefix     string
	Collection      string
	DefaultReadTime int
	Facets          []Facet
	SortFields      []string
	AcceptsSort     bool
	PinCritical     bool
}

func (s KindSpec) Facet(param string) (Facet, bool) {
	for _, f := range s.Facets {
		if f.Param == param {
			return f, true
		}
	}
	return Facet{}, false
}

func (s KindSpec) SupportsSort(field string) bool {
	for _, f := range s.SortFields {
		if f == field {
			return true
		}
	}
	return false
}

const (
	SortByDate     = "date"
	SortByTitle    = "title"
	SortByReadTime = "readTime"
	SortByPriority = "priority"
	SortByVersion  = "version"
)

var genericSortFields = []string{SortByDate, SortByTitle, SortByReadTime}

func one(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

var (
	authorFacet = Facet{
		Param: "author", DebugKey: "availableAuthors", Match: MatchSubstring,
		Values: func(r Resource) []string { return one(r.Author.Name) },
	}
	clientFacet = Facet{
		Param: "client", DebugKey: "availableClients", Match: MatchSubstring,
		Values: func(r Resource) []string { return one(r.Client) },
	}
	industryFacet = Facet{
		Param: "industry", DebugKey: "availableIndustries", Match: MatchExact,
		Values: func(r Resource) []string { return one(r.Industry) },
	}
	priorityFacet = Facet{
		Param: "priority", DebugKey: "availablePriorities", Match: MatchExact,
		Values: func(r Resource) []string { return one(r.Priority) },
	}
	updateCategoryFacet = Facet{
		Param: "updateCategory", DebugKey: "availableUpdateCategories", Match: MatchExact,
		Values: func(r Resource) []string { return one(r.UpdateCategory) },
	}
	changeTypeFacet = Facet{
		Param: "changeType", DebugKey: "availableChangeTypes", Match: MatchExact,
		Values: func(r Resource) []string { return one(r.ChangeType) },
	}
	versionFacet = Facet{
		Param: "version", DebugKey: "availableVersions", Match: MatchSubstring,
		Values: func(r Resource) []string { return one(r.Version) },
	}
	affectedProductFacet = Facet{
		Param: "affectedProduct", DebugKey: "availableProducts", Match: MatchSubstring,
		Values: func(r Resource) []string { return r.AffectedProducts },
	}
	typeFacet = Facet{
		Param: "type", DebugKey: "availableTypes", Match: MatchExact,
		Values: func(r Resource) []string { return one(string(r.Type)) },
	}
)

var specs = map[Kind]KindSpec{
	KindBlog: {
		Kind:            KindBlog,
		RoutePrefix:     "blog",
		Collection:      "posts",
		DefaultReadTime: 5,
		Facets:          []Facet{authorFacet},
		SortFields:      genericSortFields,
	},
	KindCaseStudies: {
		Kind:            KindCaseStudies,
		RoutePrefix:     "case-studies",
		Collection:      "caseStudies",
		DefaultReadTime: 5,
		Facets:          []Facet{clientFacet, industryFacet},
		SortFields:      genericSortFields,
	},
	KindNews: {
		Kind:            KindNews,
		RoutePrefix:     "news",
		Collection:      "news",
		DefaultReadTime: 3,
		Facets:          []Facet{authorFacet},
		SortFields:      genericSortFields,
	},
	KindUpdates: {
		Kind:            KindUpdates,
		RoutePrefix:     "updates",
		Collection:      "updates",
		DefaultReadTime: 2,
		Facets: []Facet{
			priorityFacet, updateCategoryFacet, changeTypeFacet, versionFacet, affectedProductFacet,
		},
		SortFields:  append(append([]string(nil), genericSortFields...), SortByPriority, SortByVersion),
		AcceptsSort: true,
		PinCritical: true,
	},
}

// AggregateSpec configures the combined listing over every kind.
var AggregateSpec = KindSpec{
	Kind:        "",
	Collection:  "resources",
	Facets:      []Facet{typeFacet, authorFacet},
	SortFields:  genericSortFields,
	AcceptsSort: false,
}

func SpecFor(kind Kind) (KindSpec, error) {
	s, ok := specs[kind]
	if !ok {
		return KindSpec{}, fmt.Errorf("unknown resource kind: %q", kind)
	}
	return s, nil
}

func MustSpec(kind Kind) KindSpec {
	s, err := SpecFor(kind)
	if err != nil {
		panic(err)
	}
	return s
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := specs[k]; !ok {
		return "", fmt.Errorf("unknown resource kind: %q", s)
	}
	return k, nil
}
