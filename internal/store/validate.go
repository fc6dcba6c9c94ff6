package store

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidFieldType is returned when a field declares an unknown type.
	ErrInvalidFieldType = errors.New("field type must be one of: text, date, number, currency, textarea")

	// ErrInvalidFieldID is returned when a field or section id does not match
	// the required pattern.
	ErrInvalidFieldID = errors.New("id must match [a-z][a-z0-9_]*")

	// ErrDuplicateFieldID is returned when two fields in a template share an id.
	ErrDuplicateFieldID = errors.New("duplicate field id")

	idRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// ValidateFieldType checks that t is one of the accepted field types.
func ValidateFieldType(t string) error {
	switch t {
	case FieldText, FieldDate, FieldNumber, FieldCurrency, FieldTextarea:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFieldType, t)
	}
}

// ValidateSections checks ids and types across a template's section
// declarations. Field ids must be unique template-wide because they are the
// substitution keys of a single flat data mapping.
func ValidateSections(sections []Section) error {
	seen := make(map[string]bool)
	for _, s := range sections {
		if !idRe.MatchString(s.ID) {
			return fmt.Errorf("section %q: %w", s.ID, ErrInvalidFieldID)
		}
		for _, f := range s.Fields {
			if !idRe.MatchString(f.ID) {
				return fmt.Errorf("field %q: %w", f.ID, ErrInvalidFieldID)
			}
			if seen[f.ID] {
				return fmt.Errorf("%w: %q", ErrDuplicateFieldID, f.ID)
			}
			seen[f.ID] = true
			if err := ValidateFieldType(f.Type); err != nil {
				return fmt.Errorf("field %q: %w", f.ID, err)
			}
		}
	}
	return nil
}
