package engine

import (
	"reflect"
	"testing"

	"github.com/civicgrid/yojana/internal/catalog"
	"github.com/civicgrid/yojana/internal/model"
)

func loadCatalog(t *testing.T) []model.SchemeRecord {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Load catalog: %v", err)
	}
	return cat.All()
}

func resultIDs(results []model.RankedResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Scheme.ID
	}
	return ids
}

func scoreOf(t *testing.T, results []model.RankedResult, id string) float64 {
	t.Helper()
	for _, r := range results {
		if r.Scheme.ID == id {
			return r.MatchScore
		}
	}
	t.Fatalf("expected %s in results, got %v", id, resultIDs(results))
	return 0
}

func TestEvaluate_DelhiFarmer(t *testing.T) {
	eng := New()
	p := model.UserProfile{
		Age: 30, Income: 100_000,
		Occupation: "Wheat Farmer", State: "Delhi", Gender: model.GenderMale,
	}

	results := eng.Evaluate(p, loadCatalog(t))

	want := []string{"pm-kisan", "atal-pension", "ayushman-bharat"}
	if got := resultIDs(results); !reflect.DeepEqual(got, want) {
		t.Fatalf("result ids = %v, want %v", got, want)
	}
	if s := scoreOf(t, results, "pm-kisan"); s != 0.9 {
		t.Errorf("pm-kisan score = %v, want 0.9", s)
	}
	if s := scoreOf(t, results, "atal-pension"); s != 0.85 {
		t.Errorf("atal-pension score = %v, want 0.85", s)
	}
	if s := scoreOf(t, results, "ayushman-bharat"); s != 0.8 {
		t.Errorf("ayushman-bharat score = %v, want 0.8", s)
	}
}

func TestEvaluate_BengalGirlStudent(t *testing.T) {
	eng := New()
	p := model.UserProfile{
		Age: 8, Income: 50_000,
		Occupation: "Student", State: "West Bengal", Gender: model.GenderFemale,
	}

	results := eng.Evaluate(p, loadCatalog(t))

	want := []string{"sukanya-samriddhi", "ayushman-bharat"}
	if got := resultIDs(results); !reflect.DeepEqual(got, want) {
		t.Fatalf("result ids = %v, want %v", got, want)
	}

	// Region and gender match kanyashree, but age 8 is below its 13-18 band.
	// The scheme must be fully absent, not present with a leaked score.
	for _, r := range results {
		if r.Scheme.ID == "kanyashree" {
			t.Fatalf("kanyashree leaked into results with score %v", r.MatchScore)
		}
	}
}

func TestEvaluate_MadhyaPradeshHomemaker(t *testing.T) {
	eng := New()
	p := model.UserProfile{
		Age: 25, Income: 200_000,
		Occupation: "Homemaker", State: "Madhya Pradesh", Gender: model.GenderFemale,
	}

	results := eng.Evaluate(p, loadCatalog(t))

	if s := scoreOf(t, results, "ladli-behna"); s != 0.95 {
		t.Errorf("ladli-behna score = %v, want 0.95", s)
	}
	if s := scoreOf(t, results, "ayushman-bharat"); s != 0.8 {
		t.Errorf("ayushman-bharat score = %v, want 0.8", s)
	}
	if results[0].Scheme.ID != "ladli-behna" {
		t.Errorf("top result = %s, want ladli-behna", results[0].Scheme.ID)
	}
}

func TestEvaluate_NoMatches(t *testing.T) {
	eng := New()
	p := model.UserProfile{
		Age: 50, Income: 900_000,
		Occupation: "Salaried (Private)", State: "Karnataka", Gender: model.GenderMale,
	}

	results := eng.Evaluate(p, loadCatalog(t))

	if len(results) != 0 {
		t.Fatalf("expected empty result set, got %v", resultIDs(results))
	}
}

func TestEvaluate_RegionGateDropsForeignStateScheme(t *testing.T) {
	// A synthetic Delhi-scoped scheme must be completely absent for a
	// Maharashtra profile: dropped at the gate, not scored 0.
	records := []model.SchemeRecord{
		{
			ID:         "capital-housing-aid",
			Name:       model.LocalizedText{"en": "Capital Housing Aid"},
			StateScope: "Delhi",
		},
	}
	rules := Registry{
		"capital-housing-aid": {Score: 0.9, Match: func(model.UserProfile) bool { return true }},
	}
	eng := NewWithRegistry(rules)

	p := model.UserProfile{Age: 30, Income: 100_000, State: "Maharashtra"}
	if out := eng.EvaluateOne(p, records[0]); out.Decision != NotApplicable {
		t.Errorf("decision = %v, want NotApplicable", out.Decision)
	}
	if results := eng.Evaluate(p, records); len(results) != 0 {
		t.Errorf("expected empty results, got %v", resultIDs(results))
	}

	// Same scheme, matching state: now it passes the gate and its rule runs.
	p.State = "Delhi"
	if out := eng.EvaluateOne(p, records[0]); out.Decision != Eligible || out.Score != 0.9 {
		t.Errorf("outcome = %+v, want Eligible 0.9", out)
	}
}

func TestEvaluate_OrderNonIncreasing(t *testing.T) {
	eng := New()
	records := loadCatalog(t)

	profiles := []model.UserProfile{
		{Age: 30, Income: 100_000, Occupation: "Wheat Farmer", State: "Delhi", Gender: model.GenderMale},
		{Age: 8, Income: 50_000, Occupation: "Student", State: "West Bengal", Gender: model.GenderFemale},
		{Age: 25, Income: 200_000, Occupation: "Homemaker", State: "Madhya Pradesh", Gender: model.GenderFemale},
		{Age: 35, Income: 150_000, Occupation: "Vegetable Vendor", State: "Telangana", Gender: model.GenderFemale},
		{Age: 70, Income: 0, Occupation: "Other", State: "Punjab", Gender: model.GenderOther},
	}

	for _, p := range profiles {
		results := eng.Evaluate(p, records)
		for i := 1; i < len(results); i++ {
			if results[i-1].MatchScore < results[i].MatchScore {
				t.Errorf("profile %+v: score order violated at %d: %v then %v",
					p, i, results[i-1].MatchScore, results[i].MatchScore)
			}
		}
		for _, r := range results {
			if r.MatchScore <= 0 {
				t.Errorf("profile %+v: %s returned with score %v", p, r.Scheme.ID, r.MatchScore)
			}
			if !r.Scheme.Nationwide() && r.Scheme.StateScope != p.State {
				t.Errorf("profile %+v: %s scoped to %s leaked through the region gate",
					p, r.Scheme.ID, r.Scheme.StateScope)
			}
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	eng := New()
	records := loadCatalog(t)
	p := model.UserProfile{
		Age: 16, Income: 80_000,
		Occupation: "Student", State: "West Bengal", Gender: model.GenderFemale,
	}

	first := eng.Evaluate(p, records)
	second := eng.Evaluate(p, records)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differs:\nfirst:  %v\nsecond: %v",
			resultIDs(first), resultIDs(second))
	}
}

func TestEvaluate_DoesNotMutateCatalog(t *testing.T) {
	eng := New()
	records := loadCatalog(t)
	before := make([]model.SchemeRecord, len(records))
	copy(before, records)

	p := model.UserProfile{Age: 30, Income: 100_000, Occupation: "Farmer", State: "Telangana", Gender: model.GenderMale}
	_ = eng.Evaluate(p, records)

	if !reflect.DeepEqual(before, records) {
		t.Error("Evaluate mutated the catalog records")
	}
}

func TestRegistry_Verify(t *testing.T) {
	records := loadCatalog(t)

	if err := DefaultRegistry().Verify(records); err != nil {
		t.Errorf("shipped registry does not match shipped catalog: %v", err)
	}

	// A rule without a catalog record is a configuration defect
	broken := DefaultRegistry()
	broken["ghost-scheme"] = Rule{Score: 0.5, Match: func(model.UserProfile) bool { return true }}
	if err := broken.Verify(records); err == nil {
		t.Error("Verify accepted a rule with no catalog scheme")
	}

	// A record without a rule is equally a defect
	orphan := append([]model.SchemeRecord{}, records...)
	orphan = append(orphan, model.SchemeRecord{ID: "unruled", Name: model.LocalizedText{"en": "Unruled"}})
	if err := DefaultRegistry().Verify(orphan); err == nil {
		t.Error("Verify accepted a scheme with no rule")
	}
}
