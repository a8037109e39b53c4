package ingest

// RawRecord is one externally-sourced recipe as decoded from the payload.
// Every field is untrusted: values may carry control characters, markup or
// embedded links, and no invariants hold until normalization establishes
// them.
type RawRecord map[string]any

// stringField returns the named field as a string, or "" when the field is
// absent or not a string.
func (r RawRecord) stringField(key string) string {
	s, _ := r[key].(string)
	return s
}

// listField returns the named field as a string slice. Non-list values and
// non-string elements are dropped; sanitization decides later whether the
// record still has enough substance to survive.
func (r RawRecord) listField(key string) []string {
	raw, _ := r[key].([]any)
	items := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			items = append(items, s)
		}
	}
	return items
}

// Identity names the record in error messages: the raw slug when present,
// otherwise the raw title, otherwise a placeholder.
func (r RawRecord) Identity() string {
	if s := r.stringField("slug"); s != "" {
		return s
	}
	if t := r.stringField("title"); t != "" {
		return t
	}
	return "(unnamed record)"
}

// Meta is the allow-listed metadata block of a sanitized record. Field
// names outside this set are never propagated to output regardless of their
// content; empty values are omitted at emission.
type Meta struct {
	Title    string
	Date     string
	Summary  string
	Tags     []string
	PrepTime string
	CookTime string
	Serves   string
	Image    string
	Source   string
}

// Recipe is the validated, sanitized output of normalization. It is never
// constructed with empty Ingredients or Steps; Normalize fails instead.
type Recipe struct {
	Slug        string
	Meta        Meta
	Ingredients []string
	Steps       []string
	Notes       []string
}
