// Package synthesis turns ranked results into prose through a generative
// language backend, and answers follow-up questions grounded in the same
// results. The ranked list is authoritative; everything here is best-effort
// decoration and degrades to fixed fallback text instead of failing.
package synthesis

import (
	"context"

	"github.com/civicgrid/yojana/internal/model"
)

// Provider is a narrative backend.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Narrate explains the ranked results to the user in the target language
	Narrate(ctx context.Context, req NarrateRequest) (string, error)

	// Chat answers a follow-up question grounded in the ranked results
	Chat(ctx context.Context, req ChatRequest) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// NarrateRequest carries everything a provider needs for the initial summary.
type NarrateRequest struct {
	Profile model.UserProfile

	// Results is the STRICT grounding set: the provider must not introduce
	// schemes that are absent from it.
	Results []model.RankedResult

	// Language is the target language tag ("en", "hi")
	Language string
}

// ChatRequest carries a follow-up question plus its grounding context.
type ChatRequest struct {
	// Transcript is the conversation so far, oldest first
	Transcript []model.ChatTurn

	// Message is the new user question
	Message string

	// Results is the same ranked set used for the initial narration
	Results []model.RankedResult

	// Language is the target language tag
	Language string
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai", "gemini", "local", "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for hosted providers
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// ConfigFromModel converts model.LLMConfig to synthesis.Config.
func ConfigFromModel(c model.LLMConfig) Config {
	return Config{
		Provider:  c.Provider,
		Model:     c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
		Timeout:   c.Timeout,
		MaxTokens: c.MaxTokens,
	}
}
