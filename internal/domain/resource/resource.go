package resource

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RawRecord is a loosely structured content item as stored in a dataset.
type RawRecord map[string]any

type Author struct {
	Name string           `json:"name"`
	Role MultilingualText `json:"role"`
}

// Resource is the normalized representation of a content record shared by
// every listing and detail view.
type Resource struct {
	ID          string           `json:"id"`
	Type        Kind             `json:"type"`
	Title       MultilingualText `json:"title"`
	Description MultilingualText `json:"description"`
	Date        string           `json:"date"`
	Tags        []string         `json:"tags"`
	Author      Author           `json:"author"`
	Featured    bool             `json:"featured"`
	Slug        string           `json:"slug"`
	CustomURL   string           `json:"customUrl"`
	ReadTime    int              `json:"readTime"`
	Image       string           `json:"image,omitempty"`
	Content     MultilingualText `json:"content,omitempty"`

	// Case studies
	Client    string           `json:"client,omitempty"`
	Industry  string           `json:"industry,omitempty"`
	Challenge MultilingualText `json:"challenge,omitempty"`
	Solution  MultilingualText `json:"solution,omitempty"`
	Results   MultilingualText `json:"results,omitempty"`

	// News
	Category string `json:"category,omitempty"`
	Source   string `json:"source,omitempty"`

	// Updates
	Version          string   `json:"version,omitempty"`
	Priority         string   `json:"priority,omitempty"`
	ChangeType       string   `json:"changeType,omitempty"`
	UpdateCategory   string   `json:"updateCategory,omitempty"`
	AffectedProducts []string `json:"affectedProducts,omitempty"`
}

const PriorityCritical = "critical"

// IsCritical reports an exact "critical" priority. Transform lowercases
// priorities, so dataset casing does not matter for listed records.
func (r Resource) IsCritical() bool {
	return r.Priority == PriorityCritical
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date string.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// String returns the field as a trimmed string. Numbers are formatted,
// times rendered as ISO-8601.
func (r RawRecord) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	}
	return ""
}

func (r RawRecord) Bool(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	}
	return false
}

func (r RawRecord) Int(key string) (int, bool) {
	switch v := r[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

// Strings reads a list of strings. A single string is a one element list.
func (r RawRecord) Strings(key string) []string {
	switch v := r[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// Records converts decoded maps into records. Decoders that fill a
// []RawRecord directly may also type nested maps as RawRecord.
func Records(maps []map[string]any) []RawRecord {
	if maps == nil {
		return nil
	}
	out := make([]RawRecord, len(maps))
	for i, m := range maps {
		out[i] = RawRecord(m)
	}
	return out
}

func (r RawRecord) Multilingual(key string) MultilingualText {
	return ToMultilingual(r[key])
}

func (r RawRecord) Author(key string) Author {
	switch v := r[key].(type) {
	case string:
		return Author{Name: v, Role: MultilingualText{}}
	case RawRecord:
		return RawRecord{key: map[string]any(v)}.Author(key)
	case map[string]any:
		a := Author{Role: ToMultilingual(v["role"])}
		if name, ok := v["name"].(string); ok {
			a.Name = name
		}
		if a.Role == nil {
			a.Role = MultilingualText{}
		}
		return a
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			if ks, ok := k.(string); ok {
				m[ks] = val
			}
		}
		return RawRecord{key: m}.Author(key)
	}
	return Author{Role: MultilingualText{}}
}
