// Package catalog loads the read-only scheme catalog embedded in the binary.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/civicgrid/yojana/internal/model"
)

//go:embed data/schemes.yaml
var schemesYAML []byte

// Catalog is the immutable ordered set of scheme records. It is safe to share
// across concurrent evaluations; nothing mutates it after Load.
type Catalog struct {
	records []model.SchemeRecord
	byID    map[string]int
}

type catalogFile struct {
	Schemes []model.SchemeRecord `yaml:"schemes"`
}

// Load parses the embedded catalog. It fails on duplicate ids, missing
// English display text, or a state scope outside the profile vocabulary —
// all configuration defects, rejected at startup rather than query time.
func Load() (*Catalog, error) {
	return Parse(schemesYAML)
}

// Parse builds a catalog from raw YAML. Exposed for tests.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Schemes) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byID := make(map[string]int, len(file.Schemes))
	for i, rec := range file.Schemes {
		if rec.ID == "" {
			return nil, fmt.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := byID[rec.ID]; dup {
			return nil, fmt.Errorf("duplicate scheme id %q", rec.ID)
		}
		if rec.Name.Get(model.LangEnglish) == "" {
			return nil, fmt.Errorf("scheme %q has no English name", rec.ID)
		}
		if !rec.Nationwide() && !knownState(rec.StateScope) {
			return nil, fmt.Errorf("scheme %q has unknown state scope %q", rec.ID, rec.StateScope)
		}
		byID[rec.ID] = i
	}

	return &Catalog{records: file.Schemes, byID: byID}, nil
}

// All returns the records in catalog order. Callers must not mutate.
func (c *Catalog) All() []model.SchemeRecord {
	return c.records
}

// Get returns the record with the given id.
func (c *Catalog) Get(id string) (model.SchemeRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.SchemeRecord{}, false
	}
	return c.records[i], true
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// IDs returns all scheme ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.records))
	for i, rec := range c.records {
		ids[i] = rec.ID
	}
	return ids
}

func knownState(state string) bool {
	for _, s := range model.States {
		if s == state {
			return true
		}
	}
	return false
}
