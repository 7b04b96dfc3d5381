package models

import "encoding/json"

// Keys every item record carries; anything else is preserved verbatim in
// Extra across updates and serialization.
const (
	itemKeyCategoryID = "category-id"
	itemKeyText       = "multiline_text"
	itemKeyLanguages  = "languages"
)

// Item is a single catalog entry. Text is the packed multi-language field:
// newline-delimited segments in the dataset's fixed language order
// (en, ta, hi, te, kn, ml). The segment count is allowed to differ from the
// declared language count.
type Item struct {
	CategoryID string
	Text       string
	Languages  []string
	Extra      map[string]any
}

// ItemFromMap builds an Item from a decoded JSON object, coercing the known
// keys and keeping everything else in Extra.
func ItemFromMap(raw map[string]any) Item {
	var it Item
	it.Extra = make(map[string]any)
	for k, v := range raw {
		it.set(k, v)
	}
	return it
}

func (it *Item) set(key string, value any) {
	switch key {
	case itemKeyCategoryID:
		if s, ok := value.(string); ok {
			it.CategoryID = s
		}
	case itemKeyText:
		if s, ok := value.(string); ok {
			it.Text = s
		}
	case itemKeyLanguages:
		it.Languages = toStringSlice(value)
	default:
		if it.Extra == nil {
			it.Extra = make(map[string]any)
		}
		it.Extra[key] = value
	}
}

// Merge applies a partial update with shallow-merge semantics: incoming keys
// override, everything else is retained.
func (it *Item) Merge(patch map[string]any) {
	for k, v := range patch {
		it.set(k, v)
	}
}

// SupportsLanguage reports whether the item declares the given language code.
func (it Item) SupportsLanguage(code string) bool {
	for _, l := range it.Languages {
		if l == code {
			return true
		}
	}
	return false
}

// Clone returns a copy sharing no mutable state with the receiver.
func (it Item) Clone() Item {
	out := it
	out.Languages = append([]string(nil), it.Languages...)
	out.Extra = make(map[string]any, len(it.Extra))
	for k, v := range it.Extra {
		out.Extra[k] = v
	}
	return out
}

func (it Item) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(it.Extra)+3)
	for k, v := range it.Extra {
		m[k] = v
	}
	m[itemKeyCategoryID] = it.CategoryID
	m[itemKeyText] = it.Text
	languages := it.Languages
	if languages == nil {
		languages = []string{}
	}
	m[itemKeyLanguages] = languages
	return json.Marshal(m)
}

func (it *Item) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*it = ItemFromMap(raw)
	return nil
}

func toStringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
