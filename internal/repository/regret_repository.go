package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"regret-journal/internal/model"
)

// RegretRepository handles CRUD and queries for regrets.
type RegretRepository struct {
	db *gorm.DB
}

func NewRegretRepository(db *gorm.DB) *RegretRepository {
	return &RegretRepository{db: db}
}

// Find returns regrets matching q, newest date first, with their category loaded.
func (r *RegretRepository) Find(ctx context.Context, q RegretQuery) ([]model.FinancialRegret, error) {
	var regrets []model.FinancialRegret
	db := q.apply(r.db.WithContext(ctx).Preload("Category"))
	if err := db.Order("date DESC").Order("created_at DESC").Find(&regrets).Error; err != nil {
		return nil, fmt.Errorf("find regrets: %w", err)
	}
	return regrets, nil
}

func (r *RegretRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FinancialRegret, error) {
	var regret model.FinancialRegret
	err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&regret).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find regret: %w", err)
	}
	return &regret, nil
}

func (r *RegretRepository) Create(ctx context.Context, regret *model.FinancialRegret) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(regret).Error; err != nil {
		return fmt.Errorf("create regret: %w", err)
	}
	return nil
}

func (r *RegretRepository) Save(ctx context.Context, regret *model.FinancialRegret) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(regret).Error; err != nil {
		return fmt.Errorf("save regret: %w", err)
	}
	return nil
}

func (r *RegretRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FinancialRegret{}).Error; err != nil {
		return fmt.Errorf("delete regret: %w", err)
	}
	return nil
}

// UnlinkCategory clears both category columns on regrets linked to categoryID.
func (r *RegretRepository) UnlinkCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return r.clearCategory(ctx, "category_id = ?", categoryID)
}

// ClearCategoryName clears both category columns on regrets whose stored name is name.
func (r *RegretRepository) ClearCategoryName(ctx context.Context, name string) (int64, error) {
	return r.clearCategory(ctx, "category = ?", name)
}

// RenameCategory rewrites the stored name on regrets linked to categoryID.
func (r *RegretRepository) RenameCategory(ctx context.Context, categoryID uuid.UUID, name string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.FinancialRegret{}).Where("category_id = ?", categoryID).
		UpdateColumn("category", name)
	if res.Error != nil {
		return 0, fmt.Errorf("rename regret category: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *RegretRepository) clearCategory(ctx context.Context, where string, arg any) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.FinancialRegret{}).Where(where, arg).
		UpdateColumns(map[string]any{"category": nil, "category_id": nil})
	if res.Error != nil {
		return 0, fmt.Errorf("clear regret category: %w", res.Error)
	}
	return res.RowsAffected, nil
}
