// Package pipeline orchestrates a recommendation request: validate the
// profile, run the eligibility engine, then decorate the ranked list with a
// best-effort narrative.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/civicgrid/yojana/internal/cache"
	"github.com/civicgrid/yojana/internal/catalog"
	"github.com/civicgrid/yojana/internal/engine"
	"github.com/civicgrid/yojana/internal/model"
	"github.com/civicgrid/yojana/internal/profile"
	"github.com/civicgrid/yojana/internal/synthesis"
	"github.com/civicgrid/yojana/internal/worker"
)

// Pipeline wires the catalog, engine, and synthesizer together.
type Pipeline struct {
	catalog *catalog.Catalog
	engine  *engine.Engine
	synth   *synthesis.Synthesizer
	config  *model.Config
}

// New builds a pipeline from configuration. The catalog is loaded once and
// checked against the rule registry; a mismatch fails here, at startup,
// never at query time.
func New(cfg *model.Config) (*Pipeline, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	rules := engine.DefaultRegistry()
	if err := rules.Verify(cat.All()); err != nil {
		return nil, fmt.Errorf("rule registry: %w", err)
	}

	synth, err := synthesis.NewSynthesizer(synthesis.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("synthesizer: %w", err)
	}
	if cfg.Cache.Enabled && synth.Enabled() {
		synth.WithCache(cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL))
	}
	if cfg.Concurrency.NarrationRPS > 0 {
		synth.WithLimiter(worker.NewLimiter(cfg.Concurrency.NarrationRPS, cfg.Concurrency.NarrationBurst))
	}

	return &Pipeline{
		catalog: cat,
		engine:  engine.NewWithRegistry(rules),
		synth:   synth,
		config:  cfg,
	}, nil
}

// Recommendation is the complete answer for one profile.
type Recommendation struct {
	Profile     model.UserProfile    `json:"profile"`
	Results     []model.RankedResult `json:"results"`
	Narrative   string               `json:"narrative,omitempty"`
	Language    string               `json:"language"`
	GeneratedAt time.Time            `json:"generated_at"`
}

// Recommend validates the form, evaluates the catalog, and narrates the
// outcome. A validation failure is the only error path; an empty result set
// is a valid recommendation, and a failed narration falls back to fixed text
// without affecting the ranked list.
func (p *Pipeline) Recommend(ctx context.Context, form profile.Form) (*Recommendation, error) {
	// 1. Validate and coerce the profile
	prof, err := profile.Validate(form)
	if err != nil {
		return nil, err
	}

	// 2. Evaluate eligibility
	results := p.engine.Evaluate(prof, p.catalog.All())

	rec := &Recommendation{
		Profile:     prof,
		Results:     results,
		Language:    p.config.Language,
		GeneratedAt: time.Now().UTC(),
	}

	// 3. Narrate, if a provider is configured (never affects the results)
	if p.synth.Enabled() {
		rec.Narrative = p.synth.Narrate(ctx, prof, results, p.config.Language)
	}

	return rec, nil
}

// Reply answers a follow-up question grounded in a prior recommendation.
func (p *Pipeline) Reply(ctx context.Context, transcript []model.ChatTurn, message string, rec *Recommendation) string {
	return p.synth.Reply(ctx, transcript, message, rec.Results, p.config.Language)
}

// Catalog exposes the loaded catalog for listing commands.
func (p *Pipeline) Catalog() *catalog.Catalog {
	return p.catalog
}

// NarrationEnabled reports whether a narrative provider is configured.
func (p *Pipeline) NarrationEnabled() bool {
	return p.synth.Enabled()
}

// ProviderName returns the configured narrative provider's name, or "".
func (p *Pipeline) ProviderName() string {
	return p.synth.ProviderName()
}
