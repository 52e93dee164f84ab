package model

import "github.com/google/uuid"

// DefaultCategoryColor is used when a category has no custom color.
const DefaultCategoryColor = "#A8CABA"

// Category groups regrets by area (shopping, housing, investing, etc.).
// Deleting a category never deletes its regrets.
type Category struct {
	ID          uuid.UUID         `gorm:"type:text;primaryKey"`
	Name        string            `gorm:"not null;index"`
	Order       int               `gorm:"column:sort_order;not null"`
	Regrets     []FinancialRegret `gorm:"foreignKey:CategoryID"`
	IconName    *string
	CustomColor *string
}

// Color returns the custom color or DefaultCategoryColor.
func (c Category) Color() string {
	if c.CustomColor != nil && *c.CustomColor != "" {
		return *c.CustomColor
	}
	return DefaultCategoryColor
}
