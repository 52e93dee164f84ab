package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialRegret is one journaled money decision.
//
// LegacyCategory and CategoryID together persist a CategoryRef. They are
// written only through SetCategory so the two columns never drift apart.
type FinancialRegret struct {
	ID                 uuid.UUID       `gorm:"type:text;primaryKey"`
	Title              string          `gorm:"not null"`
	Date               time.Time       `gorm:"not null;index"`
	LegacyCategory     *string         `gorm:"column:category;index"`
	CategoryID         *uuid.UUID      `gorm:"type:text;index"`
	Category           *Category       `gorm:"foreignKey:CategoryID"`
	DescriptionText    string          `gorm:"not null"`
	MoneyImpact        decimal.Decimal `gorm:"type:text;not null"`
	EmotionalIntensity int             `gorm:"not null"`
	Status             string          `gorm:"not null;index"`
	InitialFeeling     *string
	LessonLearned      *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CategoryRef returns the stored category reference.
func (r *FinancialRegret) CategoryRef() CategoryRef {
	ref := CategoryRef{category: r.Category}
	if r.LegacyCategory != nil {
		ref.name = *r.LegacyCategory
	}
	switch {
	case r.CategoryID != nil:
		ref.id = *r.CategoryID
	case r.Category != nil:
		ref.id = r.Category.ID
	}
	return ref
}

// SetCategory writes ref into both persisted columns.
func (r *FinancialRegret) SetCategory(ref CategoryRef) {
	if ref.IsZero() {
		r.LegacyCategory = nil
		r.CategoryID = nil
		r.Category = nil
		return
	}

	name := ref.Name()
	r.LegacyCategory = &name
	if !ref.Linked() {
		r.CategoryID = nil
		r.Category = nil
		return
	}
	id := ref.id
	r.CategoryID = &id
	r.Category = ref.category
}

// CategoryName is the effective category label, empty when uncategorized.
func (r *FinancialRegret) CategoryName() string {
	return r.CategoryRef().Name()
}

// StatusValue parses the stored status.
func (r *FinancialRegret) StatusValue() RegretStatus {
	return ParseStatus(r.Status)
}

func (r *FinancialRegret) IsTransformed() bool {
	return r.StatusValue().IsTransformed()
}

// Lesson returns the lesson learned, or "" when none was recorded.
func (r *FinancialRegret) Lesson() string {
	if r.LessonLearned == nil {
		return ""
	}
	return *r.LessonLearned
}

// Feeling returns the initial feeling, or "" when none was recorded.
func (r *FinancialRegret) Feeling() string {
	if r.InitialFeeling == nil {
		return ""
	}
	return *r.InitialFeeling
}

// HasLesson reports whether a non-empty lesson is recorded.
func (r *FinancialRegret) HasLesson() bool {
	return r.Lesson() != ""
}
