package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Renderer writes recommendations to the terminal and to report files.
type Renderer struct {
	lang string
}

// NewRenderer creates a renderer for the given display language
func NewRenderer(lang string) *Renderer {
	return &Renderer{lang: lang}
}

// RenderText writes a human-readable result table. The ranked list is always
// printed in full, before any narrative, so it stays useful when narration
// fell back.
func (r *Renderer) RenderText(w io.Writer, rec *Recommendation) error {
	if len(rec.Results) == 0 {
		fmt.Fprintln(w, "No matching schemes found for this profile.")
		fmt.Fprintln(w, "Re-check the age, income, occupation and state you entered.")
		return nil
	}

	fmt.Fprintf(w, "Matched %d scheme(s):\n\n", len(rec.Results))
	for i, res := range rec.Results {
		scope := "Nationwide"
		if !res.Scheme.Nationwide() {
			scope = res.Scheme.StateScope
		}
		fmt.Fprintf(w, "%d. %s  [%.2f]  (%s)\n", i+1, res.Scheme.Name.Get(r.lang), res.MatchScore, scope)
		fmt.Fprintf(w, "   %s\n", res.Scheme.Description.Get(r.lang))
		fmt.Fprintf(w, "   Benefits: %s\n", res.Scheme.Benefits.Get(r.lang))
		fmt.Fprintf(w, "   Source:   %s\n\n", res.Scheme.SourceURL)
	}

	if rec.Narrative != "" {
		fmt.Fprintln(w, strings.Repeat("─", 60))
		fmt.Fprintln(w, rec.Narrative)
	}

	return nil
}

// RenderJSON writes the recommendation as pretty-printed JSON
func (r *Renderer) RenderJSON(rec *Recommendation, path string) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recommendation: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write JSON: %w", err)
	}
	return nil
}

// RenderMarkdown writes a Markdown report
func (r *Renderer) RenderMarkdown(rec *Recommendation, path string) error {
	var b strings.Builder

	b.WriteString("# Scheme Recommendations\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", rec.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Profile: age %d, income ₹%d, %s, %s, %s\n\n",
		rec.Profile.Age, rec.Profile.Income, rec.Profile.Occupation, rec.Profile.State, rec.Profile.Gender)

	if len(rec.Results) == 0 {
		b.WriteString("No matching schemes were found for this profile.\n")
	} else {
		b.WriteString("| # | Scheme | Score | Scope | Benefits |\n")
		b.WriteString("|---|--------|-------|-------|----------|\n")
		for i, res := range rec.Results {
			scope := "Nationwide"
			if !res.Scheme.Nationwide() {
				scope = res.Scheme.StateScope
			}
			fmt.Fprintf(&b, "| %d | [%s](%s) | %.2f | %s | %s |\n", i+1,
				res.Scheme.Name.Get(r.lang), res.Scheme.SourceURL, res.MatchScore, scope,
				res.Scheme.Benefits.Get(r.lang))
		}
	}

	if rec.Narrative != "" {
		b.WriteString("\n## Summary\n\n")
		b.WriteString(rec.Narrative)
		b.WriteString("\n")
	}

	b.WriteString("\n---\n*Advisory guidance only, not a legal eligibility determination.*\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
