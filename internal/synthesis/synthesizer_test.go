package synthesis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/civicgrid/yojana/internal/cache"
	"github.com/civicgrid/yojana/internal/model"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	narration string
	reply     string
	err       error
	calls     int
}

func (m *MockProvider) Name() string { return m.name }

func (m *MockProvider) Narrate(ctx context.Context, req NarrateRequest) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.narration, nil
}

func (m *MockProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool { return m.available }

func sampleResults() []model.RankedResult {
	return []model.RankedResult{
		{
			Scheme: model.SchemeRecord{
				ID:          "pm-kisan",
				Name:        model.LocalizedText{"en": "PM-KISAN"},
				Description: model.LocalizedText{"en": "Income support for farmers."},
				Benefits:    model.LocalizedText{"en": "₹6,000 per year."},
				SourceURL:   "https://pmkisan.gov.in/",
			},
			MatchScore: 0.9,
		},
		{
			Scheme: model.SchemeRecord{
				ID:          "ayushman-bharat",
				Name:        model.LocalizedText{"en": "Ayushman Bharat PM-JAY"},
				Description: model.LocalizedText{"en": "Health cover for low-income families."},
				Benefits:    model.LocalizedText{"en": "₹5 lakh cover per year."},
				SourceURL:   "https://pmjay.gov.in/",
			},
			MatchScore: 0.8,
		},
	}
}

func TestNewSynthesizer_Disabled(t *testing.T) {
	s, err := NewSynthesizer(Config{Provider: ""})
	if err != nil {
		t.Fatalf("NewSynthesizer: %v", err)
	}

	if s.Enabled() {
		t.Error("expected synthesizer to be disabled")
	}
	if s.ProviderName() != "" {
		t.Errorf("ProviderName = %q, want empty", s.ProviderName())
	}

	got := s.Narrate(context.Background(), model.UserProfile{}, sampleResults(), model.LangEnglish)
	if got != NarrationUnavailable {
		t.Errorf("Narrate = %q, want the fixed placeholder", got)
	}
	if reply := s.Reply(context.Background(), nil, "what now?", sampleResults(), model.LangEnglish); reply != ChatApology {
		t.Errorf("Reply = %q, want the fixed apology", reply)
	}
}

func TestNewSynthesizer_UnknownProvider(t *testing.T) {
	if _, err := NewSynthesizer(Config{Provider: "quantum"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestSynthesizer_NarrateSuccess(t *testing.T) {
	mock := &MockProvider{name: "mock", available: true, narration: "You may qualify for PM-KISAN."}
	s := &Synthesizer{provider: mock}

	got := s.Narrate(context.Background(), model.UserProfile{Age: 30}, sampleResults(), model.LangEnglish)
	if got != "You may qualify for PM-KISAN." {
		t.Errorf("Narrate = %q", got)
	}
}

func TestSynthesizer_NarrateTransportFailure(t *testing.T) {
	mock := &MockProvider{name: "mock", available: true, err: errors.New("connection refused")}
	s := &Synthesizer{provider: mock}

	got := s.Narrate(context.Background(), model.UserProfile{}, sampleResults(), model.LangEnglish)
	if got != NarrationUnavailable {
		t.Errorf("Narrate = %q, want the fixed placeholder on transport failure", got)
	}
}

func TestSynthesizer_NarrateProviderUnavailable(t *testing.T) {
	mock := &MockProvider{name: "mock", available: false, narration: "should not appear"}
	s := &Synthesizer{provider: mock}

	got := s.Narrate(context.Background(), model.UserProfile{}, sampleResults(), model.LangEnglish)
	if got != NarrationUnavailable {
		t.Errorf("Narrate = %q, want the fixed placeholder when unavailable", got)
	}
	if mock.calls != 0 {
		t.Errorf("provider called %d times despite being unavailable", mock.calls)
	}
}

func TestSynthesizer_NarrateUsesCache(t *testing.T) {
	mock := &MockProvider{name: "mock", available: true, narration: "cached summary"}
	s := (&Synthesizer{provider: mock}).WithCache(cache.NewMemoryCache(time.Minute, time.Minute))

	profile := model.UserProfile{Age: 30, State: "Delhi"}
	first := s.Narrate(context.Background(), profile, sampleResults(), model.LangEnglish)
	second := s.Narrate(context.Background(), profile, sampleResults(), model.LangEnglish)

	if first != second || first != "cached summary" {
		t.Errorf("narrations differ: %q vs %q", first, second)
	}
	if mock.calls != 1 {
		t.Errorf("provider called %d times, want 1 (second hit should come from cache)", mock.calls)
	}

	// A different language is a different narration
	_ = s.Narrate(context.Background(), profile, sampleResults(), model.LangHindi)
	if mock.calls != 2 {
		t.Errorf("provider called %d times, want 2 after language change", mock.calls)
	}
}

func TestSynthesizer_ReplyFailure(t *testing.T) {
	mock := &MockProvider{name: "mock", available: true, err: errors.New("boom")}
	s := &Synthesizer{provider: mock}

	transcript := []model.ChatTurn{
		model.NewTurn(model.RoleUser, "am I eligible?"),
		model.NewTurn(model.RoleAssistant, "possibly"),
	}
	got := s.Reply(context.Background(), transcript, "which documents?", sampleResults(), model.LangEnglish)
	if got != ChatApology {
		t.Errorf("Reply = %q, want the fixed apology", got)
	}
}

func TestBuildNarratePrompt_GroundsOnResults(t *testing.T) {
	req := NarrateRequest{
		Profile:  model.UserProfile{Age: 30, Income: 100_000, Occupation: "Farmer", State: "Delhi", Gender: "Male", Category: "General"},
		Results:  sampleResults(),
		Language: model.LangEnglish,
	}

	prompt := BuildNarratePrompt(req)

	for _, want := range []string{"PM-KISAN", "Ayushman Bharat PM-JAY", "ONLY schemes"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildNarratePrompt_EmptyResults(t *testing.T) {
	prompt := BuildNarratePrompt(NarrateRequest{Language: model.LangEnglish})
	if !strings.Contains(prompt, "(no matching schemes)") {
		t.Error("prompt does not flag the empty result set")
	}
}

func TestBuildChatPrompt_IncludesTranscriptAndContext(t *testing.T) {
	req := ChatRequest{
		Transcript: []model.ChatTurn{
			model.NewTurn(model.RoleUser, "tell me about the health scheme"),
			model.NewTurn(model.RoleAssistant, "Ayushman Bharat covers hospitalisation."),
		},
		Message:  "how much cover?",
		Results:  sampleResults(),
		Language: model.LangEnglish,
	}

	prompt := BuildChatPrompt(req)

	for _, want := range []string{"tell me about the health scheme", "how much cover?", "PM-KISAN"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
