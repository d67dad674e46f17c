package importer

import "fmt"

// Validate returns every problem found in the catalogue.
func Validate(f *CatalogueFile) []error {
	var errs []error
	if len(f.Checks) == 0 {
		errs = append(errs, fmt.Errorf("checks: at least one check is required"))
	}
	seen := make(map[string]int, len(f.Checks))
	for i, e := range f.Checks {
		if e.Priority == nil {
			errs = append(errs, fmt.Errorf("checks[%d].priority is required", i))
		}
		if err := e.check().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("checks[%d]: %w", i, err))
		}
		if first, dup := seen[e.ID]; dup && e.ID != "" {
			errs = append(errs, fmt.Errorf("checks[%d]: id %q already used by checks[%d]", i, e.ID, first))
		} else {
			seen[e.ID] = i
		}
	}
	return errs
}
