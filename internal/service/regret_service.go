package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"regret-journal/internal/model"
	"regret-journal/internal/repository"
)

// RegretInput represents data required to create a regret.
//
// Category wins over CategoryName. A CategoryName alone is linked to the
// category of that exact name when one exists and kept as a bare name otherwise.
type RegretInput struct {
	Title              string
	Date               time.Time
	Category           *model.Category
	CategoryName       string
	Description        string
	MoneyImpact        *decimal.Decimal
	EmotionalIntensity int
	InitialFeeling     *string
	Status             model.RegretStatus
}

// RegretUpdate carries a partial regret edit. Nil fields keep their value,
// except the category: Category sets it, CategoryName alone re-resolves it,
// and leaving both nil clears it. Callers editing other fields must pass the
// current category back to keep it.
type RegretUpdate struct {
	Title              *string
	Date               *time.Time
	Category           *model.Category
	CategoryName       *string
	Description        *string
	MoneyImpact        *decimal.Decimal
	EmotionalIntensity *int
	InitialFeeling     *string
	LessonLearned      *string
	Status             *model.RegretStatus
}

// RegretService wraps regret-related business logic.
type RegretService struct {
	store *repository.Store
	log   *logrus.Logger
	now   func() time.Time
}

func NewRegretService(store *repository.Store, log *logrus.Logger) *RegretService {
	return &RegretService{store: store, log: log, now: time.Now}
}

// FetchAll returns every regret, newest date first.
func (s *RegretService) FetchAll(ctx context.Context) []model.FinancialRegret {
	return s.find(ctx, repository.RegretQuery{}, "fetch all regrets")
}

// FetchByStatus returns the regrets whose stored status is status.
func (s *RegretService) FetchByStatus(ctx context.Context, status model.RegretStatus) []model.FinancialRegret {
	return s.find(ctx, repository.RegretQuery{Status: status}, "fetch regrets by status")
}

// FetchByCategory returns the regrets linked to category or carrying its name.
func (s *RegretService) FetchByCategory(ctx context.Context, category *model.Category) []model.FinancialRegret {
	return s.find(ctx, repository.RegretQuery{Category: category}, "fetch regrets by category")
}

// Search matches query, ignoring case, against the title, description,
// initial feeling and lesson. A blank query returns everything. category, when
// not nil, further restricts the result as FetchByCategory does.
func (s *RegretService) Search(ctx context.Context, query string, category *model.Category) []model.FinancialRegret {
	return s.find(ctx, repository.RegretQuery{Category: category, Text: query}, "search regrets")
}

// Transformed returns the healed and accepted regrets, newest date first.
func (s *RegretService) Transformed(ctx context.Context) []model.FinancialRegret {
	all := s.FetchAll(ctx)
	out := make([]model.FinancialRegret, 0, len(all))
	for _, r := range all {
		if r.IsTransformed() {
			out = append(out, r)
		}
	}
	return out
}

// Get loads one regret. It returns repository.ErrNotFound when id is unknown.
func (s *RegretService) Get(ctx context.Context, id uuid.UUID) (*model.FinancialRegret, error) {
	return s.store.Regrets.GetByID(ctx, id)
}

func (s *RegretService) find(ctx context.Context, q repository.RegretQuery, op string) []model.FinancialRegret {
	regrets, err := s.store.Regrets.Find(ctx, q)
	if err != nil {
		logError(s.log, err, op, SeverityMedium)
		return []model.FinancialRegret{}
	}
	return regrets
}

// Create stores a new regret. It returns nil when the write fails; the
// failure is logged and rolled back.
func (s *RegretService) Create(ctx context.Context, in RegretInput) *model.FinancialRegret {
	regret, err := s.create(ctx, in, false)
	if err != nil {
		return nil
	}
	return regret
}

// CreateChecked validates in and stores it, returning any failure so that
// the caller can show UserMessage(err).
func (s *RegretService) CreateChecked(ctx context.Context, in RegretInput) (*model.FinancialRegret, error) {
	return s.create(ctx, in, true)
}

func (s *RegretService) create(ctx context.Context, in RegretInput, validate bool) (*model.FinancialRegret, error) {
	now := s.now()
	status := in.Status
	if status == "" {
		status = model.StatusActive
	}
	regret := &model.FinancialRegret{
		ID:                 uuid.New(),
		Title:              in.Title,
		Date:               in.Date.UTC(),
		DescriptionText:    in.Description,
		MoneyImpact:        decimal.Zero,
		EmotionalIntensity: in.EmotionalIntensity,
		InitialFeeling:     in.InitialFeeling,
		Status:             string(status),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if in.MoneyImpact != nil {
		regret.MoneyImpact = *in.MoneyImpact
	}

	if validate {
		if err := model.ValidateRegret(regret); err != nil {
			return nil, err
		}
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		switch {
		case in.Category != nil:
			regret.SetCategory(model.CategoryOf(in.Category))
		case in.CategoryName != "":
			regret.SetCategory(s.resolveCategory(ctx, tx, in.CategoryName))
		}
		return tx.Regrets.Create(ctx, regret)
	})
	if err != nil {
		logError(s.log, err, "create regret", SeverityHigh)
		return nil, err
	}
	return regret, nil
}

// Update applies u to regret. On failure the change is logged and rolled
// back and regret is left untouched.
func (s *RegretService) Update(ctx context.Context, regret *model.FinancialRegret, u RegretUpdate) {
	_ = s.update(ctx, regret, u, false)
}

// UpdateChecked is Update with validation, returning any failure.
func (s *RegretService) UpdateChecked(ctx context.Context, regret *model.FinancialRegret, u RegretUpdate) error {
	return s.update(ctx, regret, u, true)
}

func (s *RegretService) update(ctx context.Context, regret *model.FinancialRegret, u RegretUpdate, validate bool) error {
	updated := *regret
	if u.Title != nil {
		updated.Title = *u.Title
	}
	if u.Date != nil {
		updated.Date = u.Date.UTC()
	}
	if u.Description != nil {
		updated.DescriptionText = *u.Description
	}
	if u.MoneyImpact != nil {
		updated.MoneyImpact = *u.MoneyImpact
	}
	if u.EmotionalIntensity != nil {
		updated.EmotionalIntensity = *u.EmotionalIntensity
	}
	if u.InitialFeeling != nil {
		updated.InitialFeeling = u.InitialFeeling
	}
	if u.LessonLearned != nil {
		updated.LessonLearned = u.LessonLearned
	}
	if u.Status != nil {
		updated.Status = string(*u.Status)
	}
	updated.UpdatedAt = s.now()

	if validate {
		if err := model.ValidateRegret(&updated); err != nil {
			return err
		}
	}

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		switch {
		case u.Category != nil:
			updated.SetCategory(model.CategoryOf(u.Category))
		case u.CategoryName != nil:
			updated.SetCategory(s.resolveCategory(ctx, tx, *u.CategoryName))
		default:
			// TODO: make "leave unchanged" the default once every caller passes the current category explicitly.
			updated.SetCategory(model.NoCategory())
		}
		return tx.Regrets.Save(ctx, &updated)
	})
	if err != nil {
		logError(s.log, err, "update regret", SeverityHigh)
		return err
	}
	*regret = updated
	return nil
}

// Delete removes regret. Categories are unaffected.
func (s *RegretService) Delete(ctx context.Context, regret *model.FinancialRegret) {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.Regrets.Delete(ctx, regret.ID)
	})
	if err != nil {
		logError(s.log, err, "delete regret", SeverityHigh)
	}
}

// GrowthProgress is the share of all regrets that are transformed, 0 when
// there are none.
func (s *RegretService) GrowthProgress(ctx context.Context) float64 {
	return growthProgress(s.FetchAll(ctx))
}

// TodaysReflection picks a transformed regret with a recorded lesson. The pick
// is stable for the calendar day of now. It returns nil when nothing qualifies.
func (s *RegretService) TodaysReflection(ctx context.Context, now time.Time) *model.FinancialRegret {
	var candidates []model.FinancialRegret
	for _, r := range s.Transformed(ctx) {
		if r.HasLesson() {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	n := int64(len(candidates))
	idx := day % n
	if idx < 0 {
		idx += n
	}
	pick := candidates[idx]
	return &pick
}

// resolveCategory links name to the category of that exact name. A miss, or
// a failed lookup, leaves a bare name reference.
func (s *RegretService) resolveCategory(ctx context.Context, tx *repository.Store, name string) model.CategoryRef {
	if name == "" {
		return model.NoCategory()
	}
	category, err := tx.Categories.FindByName(ctx, name)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logError(s.log, err, "resolve category", SeverityLow)
		}
		return model.CategoryNamed(name)
	}
	return model.CategoryOf(category)
}

func growthProgress(regrets []model.FinancialRegret) float64 {
	if len(regrets) == 0 {
		return 0
	}
	transformed := 0
	for i := range regrets {
		if regrets[i].IsTransformed() {
			transformed++
		}
	}
	return float64(transformed) / float64(len(regrets))
}
