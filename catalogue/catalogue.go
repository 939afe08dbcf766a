// Package catalogue loads and validates guideline catalogues before they are
// handed to a search engine. Sources are the compiled-in catalogue, JSON or
// YAML files and a DynamoDB table.
package catalogue

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/letmevibethatforyou/guidex"
	"github.com/segmentio/ksuid"
)

// Validate checks the load-time invariants of a catalogue: every record has an
// ID, a name and a category, and IDs are unique. All violations are reported.
func Validate(records []guidex.Guideline) error {
	var errs []error
	seen := make(map[string]int, len(records))

	for i, g := range records {
		if err := validateGuideline(g); err != nil {
			errs = append(errs, errors.Wrapf(err, "record %d", i))
			continue
		}
		if first, dup := seen[g.ID]; dup {
			errs = append(errs, errors.Wrapf(guidex.ErrDuplicateID,
				"record %d reuses id %q of record %d", i, g.ID, first))
			continue
		}
		seen[g.ID] = i
	}

	return errors.Join(errs...)
}

func validateGuideline(g guidex.Guideline) error {
	switch {
	case strings.TrimSpace(g.ID) == "":
		return errors.Wrap(guidex.ErrInvalidGuideline, "id is empty")
	case strings.TrimSpace(g.Name) == "":
		return errors.Wrapf(guidex.ErrInvalidGuideline, "%s: name is empty", g.ID)
	case strings.TrimSpace(g.Category) == "":
		return errors.Wrapf(guidex.ErrInvalidGuideline, "%s: category is empty", g.ID)
	}
	return nil
}

// AssignMissingIDs gives every record without an ID a fresh KSUID and returns
// how many IDs were assigned. Records are modified in place.
func AssignMissingIDs(records []guidex.Guideline) int {
	assigned := 0
	for i := range records {
		if strings.TrimSpace(records[i].ID) == "" {
			records[i].ID = ksuid.New().String()
			assigned++
		}
	}
	return assigned
}
