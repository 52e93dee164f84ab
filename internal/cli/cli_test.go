package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regret-journal/internal/config"
	"regret-journal/internal/logging"
	"regret-journal/internal/model"
	"regret-journal/internal/repository"
	"regret-journal/internal/service"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	log := logging.Discard()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "journal.db"), log)
	require.NoError(t, err)
	store := repository.NewStore(db)
	t.Cleanup(func() { store.Close() })

	categories := service.NewCategoryService(store, log)
	regrets := service.NewRegretService(store, log)
	c := New(Services{
		Categories: categories,
		Regrets:    regrets,
		Insights:   service.NewInsightsService(regrets, categories, time.UTC),
		Scheduler:  service.NewSchedulerService(time.UTC, log),
		Reminder:   service.ReminderSchedule{Day: 1, Time: "10:00"},
	}, filepath.Join(t.TempDir(), "settings.toml"), config.DefaultSettings(), log)
	c.now = func() time.Time { return time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC) }
	return c
}

// run executes one command line and returns stdout and stderr.
func run(t *testing.T, c *CLI, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := c.rootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func onlyRegret(t *testing.T, c *CLI) model.FinancialRegret {
	t.Helper()
	all := c.regrets.FetchAll(context.Background())
	require.Len(t, all, 1)
	return all[0]
}

func TestRegretLifecycle(t *testing.T) {
	c := newTestCLI(t)

	_, _, err := run(t, c, "category", "add", "Shopping", "--color", "#E8A87C")
	require.NoError(t, err)

	out, stderr, err := run(t, c, "regret", "add",
		"--title", "Impulse buy",
		"--description", "Bought headphones I did not need",
		"--category", "Shopping",
		"--money", "199.99",
		"--date", "2024-08-20")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded")
	assert.Empty(t, stderr)

	r := onlyRegret(t, c)
	assert.Equal(t, "Shopping", r.CategoryName())
	assert.True(t, r.CategoryRef().Linked())

	_, _, err = run(t, c, "regret", "update", r.ID.String()[:8], "--lesson", "Wait 24h before buying", "--status", "healed")
	require.NoError(t, err)

	r = onlyRegret(t, c)
	assert.Equal(t, "Wait 24h before buying", r.Lesson())
	assert.Equal(t, model.StatusHealed, r.StatusValue())
	assert.Equal(t, "Shopping", r.CategoryName(), "category survives unrelated edits")

	out, _, err = run(t, c, "category", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "1 regrets, 100% transformation rate")

	out, _, err = run(t, c, "regret", "search", "HEADPHONES")
	require.NoError(t, err)
	assert.Contains(t, out, "Impulse buy")

	out, _, err = run(t, c, "reflect")
	require.NoError(t, err)
	assert.Contains(t, out, "Wait 24h before buying")

	_, _, err = run(t, c, "regret", "update", r.ID.String(), "--clear-category")
	require.NoError(t, err)
	cleared := onlyRegret(t, c)
	assert.Equal(t, "", cleared.CategoryName())

	_, _, err = run(t, c, "regret", "delete", r.ID.String())
	require.NoError(t, err)
	assert.Empty(t, c.regrets.FetchAll(context.Background()))
}

func TestRegretAddRejectsInvalidInput(t *testing.T) {
	c := newTestCLI(t)

	_, _, err := run(t, c, "regret", "add", "--title", "No description")
	require.Error(t, err)
	assert.Equal(t, "The text is too short. Please provide more information.", err.Error())

	_, _, err = run(t, c, "regret", "add", "--title", "x", "--description", "y", "--intensity", "11")
	require.Error(t, err)
	assert.Equal(t, "The value is too large. Please check your input.", err.Error())

	_, _, err = run(t, c, "regret", "add", "--title", "x", "--description", "y", "--status", "Done")
	assert.Error(t, err)
	assert.Empty(t, c.regrets.FetchAll(context.Background()))
}

func TestUnknownCategoryIsKeptAsName(t *testing.T) {
	c := newTestCLI(t)
	_, _, err := run(t, c, "category", "add", "Groceries")
	require.NoError(t, err)

	_, stderr, err := run(t, c, "regret", "add", "--title", "Snacks", "--description", "Too many", "--category", "Grocerys")
	require.NoError(t, err)
	assert.Contains(t, stderr, `did you mean "Groceries"?`)

	r := onlyRegret(t, c)
	assert.Equal(t, "Grocerys", r.CategoryName())
	assert.False(t, r.CategoryRef().Linked())
}

func TestExportJSONToStdout(t *testing.T) {
	c := newTestCLI(t)

	_, _, err := run(t, c, "export", "json", "--out", "-")
	require.Error(t, err)
	assert.Equal(t, "No reflections to export. Add some reflections first.", err.Error())

	_, _, err = run(t, c, "regret", "add", "--title", "Car", "--description", "Too expensive", "--money", "12000")
	require.NoError(t, err)

	out, _, err := run(t, c, "export", "json", "-o", "-")
	require.NoError(t, err)
	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Car", records[0]["title"])
	assert.Equal(t, float64(12000), records[0]["moneyImpact"])

	out, _, err = run(t, c, "export", "share")
	require.NoError(t, err)
	assert.Contains(t, out, "Financial Reflection\n\nCar\n\nToo expensive\n\nNo lesson recorded yet")
}

func TestSettingsPersist(t *testing.T) {
	c := newTestCLI(t)

	_, _, err := run(t, c, "settings", "status-name", "healing", "Getting there")
	require.NoError(t, err)
	_, _, err = run(t, c, "settings", "set", "theme", "dark")
	require.NoError(t, err)
	_, _, err = run(t, c, "settings", "set", "theme", "neon")
	assert.Error(t, err)

	saved, err := config.LoadSettings(c.settingsPath)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeDark, saved.Theme)
	assert.Equal(t, "Getting there", saved.StatusLabel(model.StatusHealing))

	out, _, err := run(t, c, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Getting there")
}

func TestClosestCategory(t *testing.T) {
	categories := []model.Category{{Name: "Housing"}, {Name: "Investing"}}
	assert.Equal(t, "Housing", closestCategory("housng", categories))
	assert.Equal(t, "Investing", closestCategory("Investin", categories))
	assert.Equal(t, "", closestCategory("Travel", categories))
	assert.Equal(t, "", closestCategory("Housing", nil))
}
