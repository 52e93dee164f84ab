package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regret-journal/internal/model"
)

func TestCategoryCreateAppendsToOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	housing := env.categories.Create(ctx, "Housing", nil, nil)
	food := env.categories.Create(ctx, "Food", strPtr("cart"), strPtr("#E8A87C"))
	require.NotNil(t, housing)
	require.NotNil(t, food)
	assert.Equal(t, 0, housing.Order)
	assert.Equal(t, 1, food.Order)

	all := env.categories.FetchAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "Housing", all[0].Name)
	assert.Equal(t, "#E8A87C", all[1].Color())
	assert.Equal(t, model.DefaultCategoryColor, all[0].Color())
}

func TestCategoryUpdateIsPartial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cat := env.categories.Create(ctx, "Travel", strPtr("plane"), nil)
	require.NotNil(t, cat)

	env.categories.Update(ctx, cat, CategoryUpdate{CustomColor: strPtr("#6B8E7F")})
	assert.Equal(t, "Travel", cat.Name)
	assert.Equal(t, "#6B8E7F", cat.Color())

	env.categories.Update(ctx, cat, CategoryUpdate{Name: strPtr("Trips")})
	all := env.categories.FetchAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Trips", all[0].Name)
	require.NotNil(t, all[0].IconName)
	assert.Equal(t, "plane", *all[0].IconName)
	assert.Equal(t, "#6B8E7F", all[0].Color())
}

func TestCategoryDeleteClearsEveryReference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()

	shopping := env.categories.Create(ctx, "Shopping", nil, nil)
	food := env.categories.Create(ctx, "Food", nil, nil)
	require.NotNil(t, shopping)
	require.NotNil(t, food)

	linked := input("Linked", now)
	linked.Category = shopping
	named := input("Named", now)
	named.CategoryName = "Shopping"
	kept := input("Kept", now)
	kept.Category = food
	for _, in := range []RegretInput{linked, named, kept} {
		require.NotNil(t, env.regrets.Create(ctx, in))
	}

	// A legacy row that carries only the name.
	legacy := env.regrets.Create(ctx, input("Legacy", now))
	require.NotNil(t, legacy)
	legacy.SetCategory(model.CategoryNamed("Shopping"))
	require.NoError(t, env.store.Regrets.Save(ctx, legacy))

	env.categories.Delete(ctx, shopping)

	categories := env.categories.FetchAll(ctx)
	require.Len(t, categories, 1)
	assert.Equal(t, "Food", categories[0].Name)

	all := env.regrets.FetchAll(ctx)
	require.Len(t, all, 4)
	for _, r := range all {
		if r.Title == "Kept" {
			assert.Equal(t, "Food", r.CategoryName())
			assert.True(t, r.CategoryRef().Linked())
			continue
		}
		assert.Nil(t, r.LegacyCategory, r.Title)
		assert.Nil(t, r.CategoryID, r.Title)
		assert.Nil(t, r.Category, r.Title)
	}
}

func TestCategoryStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now()

	cat := env.categories.Create(ctx, "Investing", nil, nil)
	require.NotNil(t, cat)

	healed := input("Healed", now)
	healed.Category = cat
	healed.Status = model.StatusHealed
	active := input("Active", now)
	active.CategoryName = "Investing"
	accepted := input("Accepted", now)
	accepted.Category = cat
	accepted.Status = model.StatusAccepted
	elsewhere := input("Elsewhere", now)
	elsewhere.Status = model.StatusHealed
	for _, in := range []RegretInput{healed, active, accepted, elsewhere} {
		require.NotNil(t, env.regrets.Create(ctx, in))
	}

	all := env.regrets.FetchAll(ctx)
	stats := env.categories.Stats(cat, all)
	assert.Equal(t, 3, stats.Count)
	assert.InDelta(t, 2.0/3.0, stats.TransformationRate, 1e-9)

	byName := env.categories.StatsByName("Investing", all)
	assert.Equal(t, stats, byName)

	empty := env.categories.StatsByName("Nothing", all)
	assert.Equal(t, CategoryStats{}, empty)
	assert.Equal(t, CategoryStats{}, env.categories.Stats(cat, nil))
}

func TestCategoryReadsFailSoft(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	require.NotNil(t, env.categories.Create(ctx, "Housing", nil, nil))
	require.NoError(t, env.store.Close())

	all := env.categories.FetchAll(ctx)
	assert.NotNil(t, all)
	assert.Empty(t, all)
	assert.Nil(t, env.categories.Create(ctx, "Food", nil, nil))
}

func TestCategoryRenameKeepsLinkedRegretsInSync(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	food := env.categories.Create(ctx, "Food", nil, nil)
	require.NotNil(t, food)
	in := input("Dinner out", time.Now())
	in.Category = food
	require.NotNil(t, env.regrets.Create(ctx, in))

	env.categories.Update(ctx, food, CategoryUpdate{Name: strPtr("Meals")})

	r := env.regrets.FetchAll(ctx)[0]
	require.NotNil(t, r.LegacyCategory)
	assert.Equal(t, "Meals", *r.LegacyCategory)
	assert.Equal(t, "Meals", r.CategoryName())

	// A new category reusing the old name owns none of the renamed category's regrets.
	reused := env.categories.Create(ctx, "Food", nil, nil)
	require.NotNil(t, reused)
	assert.Empty(t, env.regrets.FetchByCategory(ctx, reused))
	assert.Len(t, env.regrets.FetchByCategory(ctx, food), 1)

	env.categories.Delete(ctx, reused)
	r = env.regrets.FetchAll(ctx)[0]
	assert.Equal(t, "Meals", r.CategoryName())
	assert.True(t, r.CategoryRef().Linked())
	require.NotNil(t, r.CategoryID)
	assert.Equal(t, food.ID, *r.CategoryID)
}

func TestCategoryUpdateFailureLeavesCategoryUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	cat := env.categories.Create(ctx, "Travel", strPtr("plane"), nil)
	require.NotNil(t, cat)
	before := *cat
	require.NoError(t, env.store.Close())

	env.categories.Update(ctx, cat, CategoryUpdate{Name: strPtr("Trips"), CustomColor: strPtr("#000000")})
	assert.Equal(t, before, *cat)
}
