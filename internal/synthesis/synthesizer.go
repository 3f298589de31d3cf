package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/civicgrid/yojana/internal/cache"
	"github.com/civicgrid/yojana/internal/model"
	"github.com/civicgrid/yojana/internal/worker"
)

// Fixed fallback strings. The ranked list is always shown regardless of
// narration success, so these only replace the prose.
const (
	NarrationUnavailable = "A written summary is not available right now. The matched schemes listed above are still accurate — follow their source links for details."
	ChatApology          = "Sorry, I could not answer that right now. Please try again in a moment."
)

// Synthesizer wraps a Provider and absorbs its failures. Callers always get
// a string back; transport errors end as fallback text, never as errors.
type Synthesizer struct {
	provider Provider
	cache    cache.Cache     // optional narration cache
	limiter  *worker.Limiter // optional, shared in batch mode
	config   Config
}

// NewSynthesizer creates a synthesizer from configuration. An empty provider
// name yields a disabled synthesizer, which is valid: Narrate and Reply then
// return the fixed fallbacks.
func NewSynthesizer(config Config) (*Synthesizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Synthesizer{provider: provider, config: config}, nil
}

// WithCache attaches a narration cache
func (s *Synthesizer) WithCache(c cache.Cache) *Synthesizer {
	s.cache = c
	return s
}

// WithLimiter attaches a rate limiter shared across narration calls
func (s *Synthesizer) WithLimiter(l *worker.Limiter) *Synthesizer {
	s.limiter = l
	return s
}

// Enabled reports whether a provider is configured
func (s *Synthesizer) Enabled() bool {
	return s.provider != nil
}

// ProviderName returns the configured provider's name, or ""
func (s *Synthesizer) ProviderName() string {
	if s.provider == nil {
		return ""
	}
	return s.provider.Name()
}

// Narrate produces the results summary. It never fails: disabled or broken
// providers degrade to the fixed placeholder.
func (s *Synthesizer) Narrate(ctx context.Context, profile model.UserProfile, results []model.RankedResult, lang string) string {
	if s.provider == nil {
		return NarrationUnavailable
	}

	key := narrationKey(profile, results, lang)
	if s.cache != nil {
		if cached, found := s.cache.Get(key); found {
			return string(cached)
		}
	}

	if !s.provider.IsAvailable(ctx) {
		return NarrationUnavailable
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
			return NarrationUnavailable
		}
	}

	text, err := s.provider.Narrate(ctx, NarrateRequest{
		Profile:  profile,
		Results:  results,
		Language: lang,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: narration failed: %v\n", err)
		return NarrationUnavailable
	}

	if s.cache != nil {
		if err := s.cache.Set(key, []byte(text), 0); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: narration cache write failed: %v\n", err)
		}
	}

	return text
}

// Reply answers a follow-up question grounded in the ranked results. Like
// Narrate, it degrades to a fixed apology instead of failing. Replies are
// not cached; transcripts rarely repeat.
func (s *Synthesizer) Reply(ctx context.Context, transcript []model.ChatTurn, message string, results []model.RankedResult, lang string) string {
	if s.provider == nil {
		return ChatApology
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
			return ChatApology
		}
	}

	text, err := s.provider.Chat(ctx, ChatRequest{
		Transcript: transcript,
		Message:    message,
		Results:    results,
		Language:   lang,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: chat reply failed: %v\n", err)
		return ChatApology
	}

	return text
}

func narrationKey(profile model.UserProfile, results []model.RankedResult, lang string) string {
	encoded, _ := json.Marshal(profile)
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Scheme.ID
	}
	return cache.Key(string(encoded), strings.Join(ids, ","), lang)
}
