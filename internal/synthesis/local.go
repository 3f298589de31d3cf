package synthesis

import (
	"context"
	"fmt"
	"strings"

	"github.com/civicgrid/yojana/internal/model"
)

// LocalProvider is a deterministic, network-free backend. It assembles prose
// directly from the ranked results, so demos and tests work without any API
// credential. Grounding holds trivially: it only ever reads the result set.
type LocalProvider struct{}

// NewLocalProvider creates a new local provider
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{}
}

// Name returns the provider name
func (p *LocalProvider) Name() string {
	return "local"
}

// IsAvailable always reports true; there is nothing to configure
func (p *LocalProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// Narrate assembles a template summary from the ranked results
func (p *LocalProvider) Narrate(ctx context.Context, req NarrateRequest) (string, error) {
	if len(req.Results) == 0 {
		if req.Language == model.LangHindi {
			return "आपकी प्रोफ़ाइल से मेल खाने वाली कोई योजना नहीं मिली। कृपया अपनी जानकारी जाँच कर दोबारा प्रयास करें।", nil
		}
		return "No scheme in the catalog matched your profile. Please re-check your details and try again.", nil
	}

	var b strings.Builder
	if req.Language == model.LangHindi {
		fmt.Fprintf(&b, "आपकी प्रोफ़ाइल के आधार पर %d योजनाएँ मिलीं:\n\n", len(req.Results))
	} else {
		fmt.Fprintf(&b, "Based on your profile, %d scheme(s) may fit you:\n\n", len(req.Results))
	}
	for i, r := range req.Results {
		fmt.Fprintf(&b, "%d. %s — %s\n", i+1, r.Scheme.Name.Get(req.Language), r.Scheme.Description.Get(req.Language))
		fmt.Fprintf(&b, "   %s\n", r.Scheme.Benefits.Get(req.Language))
	}
	if req.Language == model.LangHindi {
		b.WriteString("\nयह केवल मार्गदर्शन है, कानूनी पात्रता निर्धारण नहीं।")
	} else {
		b.WriteString("\nThis is advisory guidance only, not a legal eligibility determination.")
	}
	return b.String(), nil
}

// Chat answers by quoting the schemes whose text mentions words from the
// question. Crude, but deterministic and strictly grounded.
func (p *LocalProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if len(req.Results) == 0 {
		return "No schemes matched your profile, so there is nothing to ask about yet.", nil
	}

	words := strings.Fields(strings.ToLower(req.Message))
	var hits []model.RankedResult
	for _, r := range req.Results {
		haystack := strings.ToLower(
			r.Scheme.Name.Get(req.Language) + " " +
				r.Scheme.Description.Get(req.Language) + " " +
				r.Scheme.Benefits.Get(req.Language) + " " +
				r.Scheme.Category.Get(req.Language))
		for _, w := range words {
			if len(w) >= 4 && strings.Contains(haystack, w) {
				hits = append(hits, r)
				break
			}
		}
	}
	if len(hits) == 0 {
		hits = req.Results
	}

	var b strings.Builder
	b.WriteString("From your matched schemes:\n")
	for _, r := range hits {
		fmt.Fprintf(&b, "- %s: %s More at %s\n",
			r.Scheme.Name.Get(req.Language), r.Scheme.Benefits.Get(req.Language), r.Scheme.SourceURL)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
