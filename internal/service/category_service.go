package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"regret-journal/internal/model"
	"regret-journal/internal/repository"
)

// CategoryUpdate carries a partial category edit. Nil fields keep their value.
type CategoryUpdate struct {
	Name        *string
	IconName    *string
	CustomColor *string
}

// CategoryStats summarizes the regrets filed under one category.
type CategoryStats struct {
	Count              int
	TransformationRate float64
}

// CategoryService provides CRUD and statistics around categories.
type CategoryService struct {
	store *repository.Store
	log   *logrus.Logger
}

func NewCategoryService(store *repository.Store, log *logrus.Logger) *CategoryService {
	return &CategoryService{store: store, log: log}
}

// FetchAll returns every category by display order. Store errors are logged
// and yield an empty list.
func (s *CategoryService) FetchAll(ctx context.Context) []model.Category {
	categories, err := s.store.Categories.List(ctx)
	if err != nil {
		logError(s.log, err, "fetch all categories", SeverityMedium)
		return []model.Category{}
	}
	return categories
}

// Create stores a new category at the end of the display order. It returns
// nil when the write fails; the failure is logged and rolled back.
func (s *CategoryService) Create(ctx context.Context, name string, iconName, customColor *string) *model.Category {
	category := &model.Category{
		ID:          uuid.New(),
		Name:        name,
		IconName:    iconName,
		CustomColor: customColor,
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		// Orders are never renumbered after a delete, so this may repeat one.
		n, err := tx.Categories.Count(ctx)
		if err != nil {
			return err
		}
		category.Order = int(n)
		return tx.Categories.Create(ctx, category)
	})
	if err != nil {
		logError(s.log, err, "create category", SeverityHigh)
		return nil
	}
	return category
}

// Update applies u to category. A rename is carried to the stored name of
// every linked regret. On failure category is left untouched.
func (s *CategoryService) Update(ctx context.Context, category *model.Category, u CategoryUpdate) {
	updated := *category
	if u.Name != nil {
		updated.Name = *u.Name
	}
	if u.IconName != nil {
		updated.IconName = u.IconName
	}
	if u.CustomColor != nil {
		updated.CustomColor = u.CustomColor
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Categories.Save(ctx, &updated); err != nil {
			return err
		}
		if updated.Name == category.Name {
			return nil
		}
		// Linked regrets keep the stored name equal to the row name.
		_, err := tx.Regrets.RenameCategory(ctx, updated.ID, updated.Name)
		return err
	})
	if err != nil {
		logError(s.log, err, "update category", SeverityHigh)
		return
	}
	*category = updated
}

// Delete removes category after detaching every regret that points at it,
// either by link or by stored name. Regrets themselves are kept.
func (s *CategoryService) Delete(ctx context.Context, category *model.Category) {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		if n, err := tx.Regrets.UnlinkCategory(ctx, category.ID); err != nil {
			logError(s.log, err, "delete category: unlink regrets", SeverityMedium)
		} else if n > 0 {
			s.log.WithFields(logrus.Fields{"category": category.Name, "regrets": n}).Debug("unlinked regrets")
		}
		if _, err := tx.Regrets.ClearCategoryName(ctx, category.Name); err != nil {
			logError(s.log, err, "delete category: clear regret names", SeverityMedium)
		}
		return tx.Categories.Delete(ctx, category.ID)
	})
	if err != nil {
		logError(s.log, err, "delete category", SeverityHigh)
	}
}

// Stats counts the regrets in regrets filed under category and the share of
// them that are transformed. The rate is 0 when none match.
func (s *CategoryService) Stats(category *model.Category, regrets []model.FinancialRegret) CategoryStats {
	return categoryStats(regrets, func(ref model.CategoryRef) bool {
		return ref.Matches(category)
	})
}

// StatsByName is Stats keyed by a category name, for regrets that only carry one.
func (s *CategoryService) StatsByName(name string, regrets []model.FinancialRegret) CategoryStats {
	return categoryStats(regrets, func(ref model.CategoryRef) bool {
		return ref.MatchesName(name)
	})
}

func categoryStats(regrets []model.FinancialRegret, match func(model.CategoryRef) bool) CategoryStats {
	var stats CategoryStats
	transformed := 0
	for i := range regrets {
		if !match(regrets[i].CategoryRef()) {
			continue
		}
		stats.Count++
		if regrets[i].IsTransformed() {
			transformed++
		}
	}
	if stats.Count == 0 {
		return CategoryStats{}
	}
	stats.TransformationRate = float64(transformed) / float64(stats.Count)
	return stats
}
