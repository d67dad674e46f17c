// Package importer reads checklist catalogues from YAML files.
package importer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"gopkg.in/yaml.v3"
)

// CatalogueFile is the top-level YAML structure:
//
//	checks:
//	  - id: aaa
//	    priority: 10
//	    description: Face on the picture matches face on the document
type CatalogueFile struct {
	Checks []CheckEntry `yaml:"checks"`
}

// CheckEntry is one check in a catalogue file. Priority is a pointer so a
// missing value can be reported instead of silently becoming zero.
type CheckEntry struct {
	ID          string `yaml:"id"`
	Priority    *int   `yaml:"priority"`
	Description string `yaml:"description"`
}

// Load reads and parses a catalogue file.
func Load(path string) (*CatalogueFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}
	return Parse(data)
}

// Parse decodes catalogue YAML. Unknown fields are rejected.
func Parse(data []byte) (*CatalogueFile, error) {
	var f CatalogueFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing catalogue: %w", err)
	}
	return &f, nil
}

// ToChecks converts the entries to domain checks, keeping file order as the
// arrival order.
func (f *CatalogueFile) ToChecks() []domain.Check {
	out := make([]domain.Check, 0, len(f.Checks))
	for _, e := range f.Checks {
		out = append(out, e.check())
	}
	return out
}

func (e CheckEntry) check() domain.Check {
	c := domain.Check{ID: e.ID, Description: e.Description}
	if e.Priority != nil {
		c.Priority = *e.Priority
	}
	return c
}
