package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"regret-journal/internal/logging"
	"regret-journal/internal/model"
	"regret-journal/internal/repository"
)

type testEnv struct {
	store      *repository.Store
	categories *CategoryService
	regrets    *RegretService
	insights   *InsightsService
}

// newTestEnv wires every service against a fresh journal file.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "journal.db"), logging.Discard())
	require.NoError(t, err)
	store := repository.NewStore(db)
	t.Cleanup(func() { store.Close() })

	log := logging.Discard()
	categories := NewCategoryService(store, log)
	regrets := NewRegretService(store, log)
	return &testEnv{
		store:      store,
		categories: categories,
		regrets:    regrets,
		insights:   NewInsightsService(regrets, categories, time.UTC),
	}
}

func input(title string, date time.Time) RegretInput {
	return RegretInput{
		Title:              title,
		Date:               date,
		Description:        title + " description",
		EmotionalIntensity: 5,
		Status:             model.StatusActive,
	}
}

func money(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func statusPtr(s model.RegretStatus) *model.RegretStatus { return &s }

func titles(regrets []model.FinancialRegret) []string {
	out := make([]string, len(regrets))
	for i := range regrets {
		out[i] = regrets[i].Title
	}
	return out
}
