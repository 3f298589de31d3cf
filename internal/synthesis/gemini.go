package synthesis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements the Provider interface using the Google
// Generative AI SDK. A genai.Client is created per call so the caller's
// context governs the connection and the client is always closed after use.
type GeminiProvider struct {
	config Config
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(config Config) (*GeminiProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	return &GeminiProvider{config: config}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is configured. No probe request is made;
// a bad key surfaces on the first real call and the caller falls back anyway.
func (p *GeminiProvider) IsAvailable(ctx context.Context) bool {
	return p.config.APIKey != ""
}

// Narrate generates the results summary
func (p *GeminiProvider) Narrate(ctx context.Context, req NarrateRequest) (string, error) {
	return p.complete(ctx, BuildNarratePrompt(req))
}

// Chat answers a follow-up question grounded in the ranked results
func (p *GeminiProvider) Chat(ctx context.Context, req ChatRequest) (string, error) {
	return p.complete(ctx, BuildChatPrompt(req))
}

func (p *GeminiProvider) complete(ctx context.Context, prompt string) (string, error) {
	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := genai.NewClient(ctxWithTimeout, option.WithAPIKey(p.config.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer client.Close()

	modelName := p.config.Model
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	m := client.GenerativeModel(modelName)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	maxOut := int32(p.config.MaxTokens)
	if maxOut == 0 {
		maxOut = 800
	}
	m.MaxOutputTokens = &maxOut
	temp := float32(0.3)
	m.Temperature = &temp

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	var parts []string
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				parts = append(parts, string(t))
			}
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini response contained no text content")
	}
	return strings.TrimSpace(strings.Join(parts, "")), nil
}
