package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegret() *FinancialRegret {
	return &FinancialRegret{
		Title:              "New phone",
		DescriptionText:    "Bought it on launch day",
		MoneyImpact:        decimal.RequireFromString("999"),
		EmotionalIntensity: 6,
		Status:             string(StatusActive),
	}
}

func TestValidateRegretAcceptsLimits(t *testing.T) {
	r := validRegret()
	r.Title = strings.Repeat("é", MaxTitleLength)
	r.DescriptionText = strings.Repeat("x", MaxDescriptionLength)
	r.EmotionalIntensity = MaxIntensity
	r.MoneyImpact = decimal.Zero
	assert.NoError(t, ValidateRegret(r))

	r.EmotionalIntensity = MinIntensity
	assert.NoError(t, ValidateRegret(r))
}

func TestValidateRegretRejects(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(*FinancialRegret)
		field string
		code  ValidationCode
	}{
		{"blank title", func(r *FinancialRegret) { r.Title = "   " }, "title", ValidationTooShort},
		{"long title", func(r *FinancialRegret) { r.Title = strings.Repeat("a", MaxTitleLength+1) }, "title", ValidationTooLong},
		{"empty description", func(r *FinancialRegret) { r.DescriptionText = "" }, "description", ValidationTooShort},
		{"long description", func(r *FinancialRegret) { r.DescriptionText = strings.Repeat("a", MaxDescriptionLength+1) }, "description", ValidationTooLong},
		{"intensity zero", func(r *FinancialRegret) { r.EmotionalIntensity = 0 }, "emotional intensity", ValidationTooSmall},
		{"intensity eleven", func(r *FinancialRegret) { r.EmotionalIntensity = 11 }, "emotional intensity", ValidationTooLarge},
		{"negative money", func(r *FinancialRegret) { r.MoneyImpact = decimal.NewFromInt(-1) }, "money impact", ValidationTooSmall},
		{"unknown status", func(r *FinancialRegret) { r.Status = "Done" }, "status", ValidationInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRegret()
			tc.edit(r)
			err := ValidateRegret(r)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.code, verr.Code)
		})
	}
}
