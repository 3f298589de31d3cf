package synthesis

import (
	"fmt"
	"strings"
)

// NewProvider creates a narrative provider based on configuration.
func NewProvider(config Config) (Provider, error) {
	provider := strings.ToLower(config.Provider)

	switch provider {
	case "openai":
		return NewOpenAIProvider(config)

	case "gemini", "google":
		return NewGeminiProvider(config)

	case "local":
		return NewLocalProvider(), nil

	case "":
		// No provider configured - narration disabled
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: openai, gemini, local)", config.Provider)
	}
}
