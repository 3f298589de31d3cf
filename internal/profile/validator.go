// Package profile turns raw form input into a fully-typed UserProfile.
package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/civicgrid/yojana/internal/model"
)

// Form is raw, possibly incomplete input as submitted by the user.
type Form struct {
	Age        string
	Income     string
	Occupation string
	State      string
	Gender     string
	Category   string
	Disability bool
}

// FieldError reports a single invalid or missing form field.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}

// Validate coerces a form into a UserProfile. Age and income must be present
// and parse as non-negative integers; every other field falls back to a fixed
// default when unset. Pure check-and-coerce, no side effects.
func Validate(form Form) (model.UserProfile, error) {
	age, err := parseCount("age", form.Age)
	if err != nil {
		return model.UserProfile{}, err
	}
	income, err := parseCount("income", form.Income)
	if err != nil {
		return model.UserProfile{}, err
	}

	return model.UserProfile{
		Age:        age,
		Income:     income,
		Occupation: orDefault(form.Occupation, model.DefaultOccupation),
		State:      orDefault(form.State, model.DefaultState),
		Gender:     orDefault(form.Gender, model.DefaultGender),
		Category:   orDefault(form.Category, model.DefaultCategory),
		Disability: form.Disability,
	}, nil
}

func parseCount(field, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: field, Reason: "is required"}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: field, Reason: "must be a whole number"}
	}
	if n < 0 {
		return 0, &FieldError{Field: field, Reason: "must not be negative"}
	}
	return n, nil
}

func orDefault(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
