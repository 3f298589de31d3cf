// Package engine is the eligibility core: a pure function from a user
// profile and the scheme catalog to a scored, descending-sorted result list.
package engine

import (
	"sort"

	"github.com/civicgrid/yojana/internal/model"
)

// Decision classifies the outcome of evaluating one scheme for one profile.
type Decision int

const (
	// NotApplicable: the scheme is scoped to a different state. It never
	// reaches its eligibility rule and is absent from the output entirely.
	NotApplicable Decision = iota

	// Ineligible: the region gate passed but the scheme's criterion failed.
	Ineligible

	// Eligible: the criterion held; Outcome.Score carries the rule's score.
	Eligible
)

// Outcome is the explicit per-scheme result. Collapsing the decision and the
// score into one value means no provisional state can leak into the results:
// a region-matched scheme whose criterion fails ends as Ineligible, full stop.
type Outcome struct {
	Decision Decision
	Score    float64
}

// Engine evaluates profiles against a rule registry. It holds no mutable
// state, so a single Engine is safe for concurrent use.
type Engine struct {
	rules Registry
}

// New returns an engine backed by the shipped rule set.
func New() *Engine {
	return NewWithRegistry(DefaultRegistry())
}

// NewWithRegistry returns an engine backed by a custom registry.
func NewWithRegistry(rules Registry) *Engine {
	return &Engine{rules: rules}
}

// Evaluate maps a profile to the eligible subset of the catalog, sorted by
// descending match score. Deterministic, side-effect free, and total: an
// empty result means "no matches", never an error. The catalog is never
// mutated and every returned result wraps an existing catalog record.
func (e *Engine) Evaluate(p model.UserProfile, records []model.SchemeRecord) []model.RankedResult {
	results := make([]model.RankedResult, 0, len(records))
	for _, rec := range records {
		out := e.EvaluateOne(p, rec)
		if out.Decision == Eligible && out.Score > 0 {
			results = append(results, model.RankedResult{Scheme: rec, MatchScore: out.Score})
		}
	}

	// Stable sort: equal scores keep catalog order. Only the descending
	// order is contractual.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})
	return results
}

// EvaluateOne applies the region gate and then the scheme's rule. A scheme
// without a registered rule is treated as not applicable; Registry.Verify
// rejects that situation at startup, so it cannot occur on the shipped
// catalog.
func (e *Engine) EvaluateOne(p model.UserProfile, rec model.SchemeRecord) Outcome {
	if !rec.Nationwide() && rec.StateScope != p.State {
		return Outcome{Decision: NotApplicable}
	}
	rule, ok := e.rules[rec.ID]
	if !ok {
		return Outcome{Decision: NotApplicable}
	}
	if rule.Match(p) {
		return Outcome{Decision: Eligible, Score: rule.Score}
	}
	return Outcome{Decision: Ineligible}
}
