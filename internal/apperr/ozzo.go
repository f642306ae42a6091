package apperr

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FromOzzo converts an ozzo validation result into a *ValidationError
// with deterministic field ordering. A nil input stays nil; anything
// that is not a validation.Errors map is returned unchanged.
func FromOzzo(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validation.Errors)
	if !ok {
		return err
	}
	paths := make([]string, 0, len(verrs))
	for p := range verrs {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	fields := make([]FieldError, 0, len(paths))
	for _, p := range paths {
		if verrs[p] == nil {
			continue
		}
		fields = append(fields, FieldError{Path: p, Message: verrs[p].Error()})
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
