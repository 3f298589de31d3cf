package model

// LocalizedText holds display text keyed by language tag ("en", "hi").
type LocalizedText map[string]string

// Get returns the text for the given language, falling back to English.
func (t LocalizedText) Get(lang string) string {
	if s, ok := t[lang]; ok && s != "" {
		return s
	}
	return t[LangEnglish]
}

// LocalizedList holds an ordered list of strings keyed by language tag.
type LocalizedList map[string][]string

// Get returns the list for the given language, falling back to English.
func (l LocalizedList) Get(lang string) []string {
	if items, ok := l[lang]; ok && len(items) > 0 {
		return items
	}
	return l[LangEnglish]
}

// Supported language tags.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// SchemeRecord is a single welfare scheme in the catalog. Records are loaded
// once at startup and never mutated.
type SchemeRecord struct {
	ID          string        `json:"id" yaml:"id"`
	Name        LocalizedText `json:"name" yaml:"name"`
	Description LocalizedText `json:"description" yaml:"description"`
	Criteria    LocalizedList `json:"criteria" yaml:"criteria"`
	Benefits    LocalizedText `json:"benefits" yaml:"benefits"`
	Category    LocalizedText `json:"category" yaml:"category"`
	SourceURL   string        `json:"source_url" yaml:"source_url"`

	// StateScope restricts the scheme to one state. Empty means nationwide.
	StateScope string `json:"state_scope,omitempty" yaml:"state_scope,omitempty"`
}

// Nationwide reports whether the scheme applies in every state.
func (s SchemeRecord) Nationwide() bool {
	return s.StateScope == ""
}

// RankedResult is a catalog entry annotated with a match score. MatchScore is
// a rule-assigned priority in (0, 1], used for ordering only — it is not a
// calibrated probability. Results live for a single request.
type RankedResult struct {
	Scheme     SchemeRecord `json:"scheme"`
	MatchScore float64      `json:"match_score"`
}
