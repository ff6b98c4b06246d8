package resource

import "strings"

type Lang string

const (
	LangEnglish   Lang = "en"
	LangHungarian Lang = "hu"
	LangGerman    Lang = "de"
)

var DefaultLang = LangEnglish

var SupportedLangs = []Lang{LangEnglish, LangHungarian, LangGerman}

// MultilingualText maps a language code to display text.
type MultilingualText map[string]string

// Get returns the text for lang, falling back to English.
func (m MultilingualText) Get(lang Lang) string {
	if v := m[string(lang)]; v != "" {
		return v
	}
	return m[string(DefaultLang)]
}

func (m MultilingualText) IsEmpty() bool {
	for _, v := range m {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Variants returns every populated language variant, recognised languages first.
func (m MultilingualText) Variants() []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, l := range SupportedLangs {
		if v, ok := m[string(l)]; ok && v != "" {
			out = append(out, v)
			seen[string(l)] = true
		}
	}
	for k, v := range m {
		if !seen[k] && v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ToMultilingual reads a raw value as multilingual text. A plain string
// becomes the English variant; non-string map values are skipped.
func ToMultilingual(v any) MultilingualText {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if t == "" {
			return nil
		}
		return MultilingualText{string(DefaultLang): t}
	case MultilingualText:
		return t
	case map[string]string:
		return MultilingualText(t)
	case RawRecord:
		return ToMultilingual(map[string]any(t))
	case map[string]any:
		out := make(MultilingualText, len(t))
		for k, val := range t {
			if s, ok := val.(string); ok {
				out[k] = s
			}
		}
		return out
	case map[any]any:
		out := make(MultilingualText, len(t))
		for k, val := range t {
			ks, kok := k.(string)
			s, vok := val.(string)
			if kok && vok {
				out[ks] = s
			}
		}
		return out
	}
	return nil
}
