package service

import (
	"errors"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"regret-journal/internal/model"
	"regret-journal/internal/repository"
)

// Severity controls the log level used for a failure.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
)

// logError records err with its operation name. Reads fail at medium
// severity, writes at high.
func logError(log *logrus.Logger, err error, operation string, severity Severity) {
	entry := log.WithError(err).WithField("op", operation)
	switch severity {
	case SeverityLow:
		entry.Debug("operation failed")
	case SeverityMedium:
		entry.Warn("operation failed")
	default:
		entry.Error("operation failed")
	}
}

// ErrorCode is the coarse classification shown to users on the form path.
type ErrorCode int

const (
	CodeUnknown ErrorCode = iota
	CodeValueTooSmall
	CodeValueTooLarge
	CodeTextTooLong
	CodeTextTooShort
	CodeValidation
	CodeStoreType
	CodeStoreOperation
)

// Classify maps an error returned by a checked write onto an ErrorCode.
func Classify(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var verr *model.ValidationError
	if errors.As(err, &verr) {
		switch verr.Code {
		case model.ValidationTooSmall:
			return CodeValueTooSmall
		case model.ValidationTooLarge:
			return CodeValueTooLarge
		case model.ValidationTooLong:
			return CodeTextTooLong
		case model.ValidationTooShort:
			return CodeTextTooShort
		default:
			return CodeValidation
		}
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.Code {
		case sqlite3.ErrConstraint:
			return CodeValidation
		case sqlite3.ErrMismatch:
			return CodeStoreType
		default:
			return CodeStoreOperation
		}
	}

	switch {
	case errors.Is(err, gorm.ErrInvalidData), errors.Is(err, gorm.ErrInvalidField), errors.Is(err, gorm.ErrInvalidValue):
		return CodeStoreType
	case errors.Is(err, gorm.ErrInvalidTransaction), errors.Is(err, gorm.ErrInvalidDB), errors.Is(err, repository.ErrStore):
		return CodeStoreOperation
	}
	return CodeUnknown
}

// UserMessage returns the human readable text for a failed save.
func UserMessage(err error) string {
	switch Classify(err) {
	case CodeValueTooSmall:
		return "The value is too small. Please check your input."
	case CodeValueTooLarge:
		return "The value is too large. Please check your input."
	case CodeTextTooLong:
		return "The text is too long. Please shorten it."
	case CodeTextTooShort:
		return "The text is too short. Please provide more information."
	case CodeValidation:
		return "Validation error. Please check your input."
	case CodeStoreType, CodeStoreOperation:
		return "Unable to save data. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
