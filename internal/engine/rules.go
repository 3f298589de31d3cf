package engine

import (
	"fmt"
	"strings"

	"github.com/civicgrid/yojana/internal/model"
)

// Rule is the single eligibility predicate attached to a scheme id, paired
// with the score assigned when the predicate holds.
type Rule struct {
	Score float64
	Match func(p model.UserProfile) bool
}

// Registry maps scheme id to its rule. Rules are independent of each other
// and of catalog order; each id has exactly one rule.
type Registry map[string]Rule

// Verify checks registry and catalog against each other: every rule must
// resolve to a catalog record and every record must carry a rule. A mismatch
// is a configuration defect to reject at startup, never at query time.
func (r Registry) Verify(records []model.SchemeRecord) error {
	ids := make(map[string]bool, len(records))
	for _, rec := range records {
		ids[rec.ID] = true
		if _, ok := r[rec.ID]; !ok {
			return fmt.Errorf("scheme %q has no eligibility rule", rec.ID)
		}
	}
	for id := range r {
		if !ids[id] {
			return fmt.Errorf("rule %q references no catalog scheme", id)
		}
	}
	return nil
}

// DefaultRegistry returns the shipped rule set.
//
// Occupation checks are case-insensitive substring matches, so "Wheat Farmer"
// qualifies for pm-kisan. Known looseness: so does an occupation like
// "Farmer Support Officer". Kept for compatibility with the rules as shipped.
func DefaultRegistry() Registry {
	return Registry{
		"pm-kisan": {
			Score: 0.9,
			Match: func(p model.UserProfile) bool {
				return occupationContains(p, "farmer")
			},
		},
		"pm-svanidhi": {
			Score: 0.9,
			Match: func(p model.UserProfile) bool {
				return occupationContains(p, "vendor")
			},
		},
		"ayushman-bharat": {
			Score: 0.8,
			Match: func(p model.UserProfile) bool {
				return p.Income < 500_000
			},
		},
		"atal-pension": {
			Score: 0.85,
			Match: func(p model.UserProfile) bool {
				return p.Age >= 18 && p.Age <= 40
			},
		},
		"sukanya-samriddhi": {
			Score: 0.95,
			Match: func(p model.UserProfile) bool {
				return p.Gender == model.GenderFemale && p.Age <= 10
			},
		},
		"ladli-behna": {
			Score: 0.95,
			Match: func(p model.UserProfile) bool {
				return p.Gender == model.GenderFemale &&
					p.Age >= 21 && p.Age <= 60 &&
					p.Income < 250_000
			},
		},
		"rythu-bandhu": {
			Score: 0.95,
			Match: func(p model.UserProfile) bool {
				return occupationContains(p, "farmer")
			},
		},
		"kanyashree": {
			Score: 0.95,
			Match: func(p model.UserProfile) bool {
				return p.Gender == model.GenderFemale &&
					p.Occupation == "Student" &&
					p.Age >= 13 && p.Age <= 18
			},
		},
		"punjab-power-subsidy": {
			Score: 0.9,
			// Every resident past the region gate qualifies.
			Match: func(p model.UserProfile) bool { return true },
		},
	}
}

func occupationContains(p model.UserProfile, want string) bool {
	return strings.Contains(strings.ToLower(p.Occupation), want)
}
