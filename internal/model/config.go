package model

import "time"

// Config is the full application configuration.
type Config struct {
	Language    string            `yaml:"language" json:"language"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// LLMConfig configures the narrative synthesizer backend.
type LLMConfig struct {
	// Provider name: "openai", "gemini", "local", "" (disabled)
	Provider string `yaml:"provider" json:"provider"`

	// Model name (provider-specific)
	Model string `yaml:"model" json:"model"`

	// APIKey for hosted providers. Prefer environment variables
	// (OPENAI_API_KEY, GEMINI_API_KEY) over putting keys in the config file.
	APIKey string `yaml:"api_key,omitempty" json:"-"`

	// BaseURL overrides the provider endpoint (useful for proxies and tests)
	BaseURL string `yaml:"base_url,omitempty" json:"base_url,omitempty"`

	// Timeout for a single completion request, in seconds
	Timeout int `yaml:"timeout" json:"timeout"`

	// MaxTokens caps the response length
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`
}

// CacheConfig configures the narrative cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir" json:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig configures batch evaluation.
type ConcurrencyConfig struct {
	// Workers is the number of concurrent profile evaluations in batch mode
	Workers int `yaml:"workers" json:"workers"`

	// NarrationRPS rate-limits narration calls per provider
	NarrationRPS float64 `yaml:"narration_rps" json:"narration_rps"`

	// NarrationBurst is the limiter burst size
	NarrationBurst int `yaml:"narration_burst" json:"narration_burst"`
}

// OutputConfig configures rendering.
type OutputConfig struct {
	Verbose      bool   `yaml:"verbose" json:"verbose"`
	JSONPath     string `yaml:"json_path,omitempty" json:"json_path,omitempty"`
	MarkdownPath string `yaml:"markdown_path,omitempty" json:"markdown_path,omitempty"`
}

// DefaultConfig returns sensible defaults. The synthesizer is disabled until
// a provider is configured; the ranked list works without it.
func DefaultConfig() *Config {
	return &Config{
		Language: LangEnglish,
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 800,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       defaultCacheDir(),
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers:        4,
			NarrationRPS:   1,
			NarrationBurst: 2,
		},
		Output: OutputConfig{},
	}
}
