package model

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 5000
	MinIntensity         = 1
	MaxIntensity         = 10
)

// ValidationCode classifies why a field was rejected.
type ValidationCode int

const (
	ValidationInvalid ValidationCode = iota
	ValidationTooSmall
	ValidationTooLarge
	ValidationTooShort
	ValidationTooLong
)

func (c ValidationCode) String() string {
	switch c {
	case ValidationTooSmall:
		return "too small"
	case ValidationTooLarge:
		return "too large"
	case ValidationTooShort:
		return "too short"
	case ValidationTooLong:
		return "too long"
	default:
		return "invalid"
	}
}

// ValidationError reports a rejected field.
type ValidationError struct {
	Field string
	Code  ValidationCode
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is %s", e.Field, e.Code)
}

// ValidateRegret checks the limits a regret form enforces before saving.
func ValidateRegret(r *FinancialRegret) error {
	if err := validateText("title", r.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateText("description", r.DescriptionText, MaxDescriptionLength); err != nil {
		return err
	}
	switch {
	case r.EmotionalIntensity < MinIntensity:
		return &ValidationError{Field: "emotional intensity", Code: ValidationTooSmall}
	case r.EmotionalIntensity > MaxIntensity:
		return &ValidationError{Field: "emotional intensity", Code: ValidationTooLarge}
	}
	if r.MoneyImpact.LessThan(decimal.Zero) {
		return &ValidationError{Field: "money impact", Code: ValidationTooSmall}
	}
	if !RegretStatus(r.Status).Valid() {
		return &ValidationError{Field: "status", Code: ValidationInvalid}
	}
	return nil
}

func validateText(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Code: ValidationTooShort}
	}
	if utf8.RuneCountInString(value) > max {
		return &ValidationError{Field: field, Code: ValidationTooLong}
	}
	return nil
}
