package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
)

var (
	ErrUnknownKind = errors.New("unknown record type")
)

// ValidationError lists every problem found in a single record.
type ValidationError struct {
	Kind     Kind
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(e.Problems, "; "))
}

// validate checks required fields through the `valid` struct tags and then
// appends the non-empty results of the numeric checks.
func validate(kind Kind, record any, checks ...string) error {
	var problems []string

	if _, err := govalidator.ValidateStruct(record); err != nil {
		byField := govalidator.ErrorsByField(err)
		fields := make([]string, 0, len(byField))
		for field := range byField {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			problems = append(problems, fmt.Sprintf("%s: %s", field, byField[field]))
		}
	}

	for _, check := range checks {
		if check != "" {
			problems = append(problems, check)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Kind: kind, Problems: problems}
}

func positive(field string, v int) string {
	if v > 0 {
		return ""
	}
	return field + " must be greater than 0"
}
