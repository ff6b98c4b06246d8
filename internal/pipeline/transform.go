package pipeline

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/resource-hub/internal/domain/resource"
	"github.com/goliatone/go-slug"
)

// Transform normalizes a raw record into a Resource. The second return value
// is false when the record lacks one of id, title or date.
func Transform(spec resource.KindSpec, raw resource.RawRecord) (resource.Resource, bool) {
	id := raw.String("id")
	title := raw.Multilingual("title")
	date := raw.String("date")
	if id == "" || title.IsEmpty() || date == "" {
		return resource.Resource{}, false
	}

	description := raw.Multilingual("description")
	if description.IsEmpty() {
		description = raw.Multilingual("summary")
	}
	if description.IsEmpty() {
		description = raw.Multilingual("excerpt")
	}
	if description == nil {
		description = resource.MultilingualText{}
	}

	tags := raw.Strings("tags")
	if tags == nil {
		tags = []string{}
	}

	readTime, ok := raw.Int("readTime")
	if !ok || readTime <= 0 {
		readTime = spec.DefaultReadTime
	}

	s := raw.String("slug")
	if s == "" {
		s = slugFor(id, title)
	}

	customURL := raw.String("customUrl")
	if customURL == "" {
		customURL = fmt.Sprintf("/resources/%s/%s", spec.RoutePrefix, s)
	}

	return resource.Resource{
		ID:          id,
		Type:        spec.Kind,
		Title:       title,
		Description: description,
		Date:        date,
		Tags:        tags,
		Author:      raw.Author("author"),
		Featured:    raw.Bool("featured"),
		Slug:        s,
		CustomURL:   customURL,
		ReadTime:    readTime,
		Image:       raw.String("image"),
		Content:     raw.Multilingual("content"),

		Client:    raw.String("client"),
		Industry:  raw.String("industry"),
		Challenge: raw.Multilingual("challenge"),
		Solution:  raw.Multilingual("solution"),
		Results:   raw.Multilingual("results"),

		Category: raw.String("category"),
		Source:   raw.String("source"),

		Version:          raw.String("version"),
		Priority:         strings.ToLower(raw.String("priority")),
		ChangeType:       raw.String("changeType"),
		UpdateCategory:   raw.String("updateCategory"),
		AffectedProducts: raw.Strings("affectedProducts"),
	}, true
}

func slugFor(id string, title resource.MultilingualText) string {
	if s, err := slug.Normalize(title.Get(resource.LangEnglish)); err == nil && s != "" {
		return s
	}
	if s, err := slug.Normalize(id); err == nil && s != "" {
		return s
	}
	return id
}

// TransformAll transforms every record and drops the rejected ones.
func TransformAll(spec resource.KindSpec, raws []resource.RawRecord) (items []resource.Resource, rejected int) {
	items = make([]resource.Resource, 0, len(raws))
	for _, raw := range raws {
		r, ok := Transform(spec, raw)
		if !ok {
			rejected++
			continue
		}
		items = append(items, r)
	}
	return items, rejected
}
