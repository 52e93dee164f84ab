// Package cli is the command line front end of the journal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"regret-journal/internal/config"
	"regret-journal/internal/model"
	"regret-journal/internal/repository"
	"regret-journal/internal/service"
)

// Services are the journal operations the commands call into.
type Services struct {
	Categories *service.CategoryService
	Regrets    *service.RegretService
	Insights   *service.InsightsService
	Scheduler  *service.SchedulerService
	Reminder   service.ReminderSchedule
}

// CLI aggregates the command tree with services and user settings.
type CLI struct {
	categories   *service.CategoryService
	regrets      *service.RegretService
	insights     *service.InsightsService
	scheduler    *service.SchedulerService
	reminder     service.ReminderSchedule
	settingsPath string
	settings     config.Settings
	log          *logrus.Logger
	now          func() time.Time
}

func New(svc Services, settingsPath string, settings config.Settings, log *logrus.Logger) *CLI {
	return &CLI{
		categories:   svc.Categories,
		regrets:      svc.Regrets,
		insights:     svc.Insights,
		scheduler:    svc.Scheduler,
		reminder:     svc.Reminder,
		settingsPath: settingsPath,
		settings:     settings,
		log:          log,
		now:          time.Now,
	}
}

// Execute runs the command line until it finishes or ctx is cancelled.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "regretjournal",
		Short:         "A private journal for financial regrets and the lessons they taught",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		c.categoryCommand(),
		c.regretCommand(),
		c.insightsCommand(),
		c.reflectCommand(),
		c.exportCommand(),
		c.settingsCommand(),
		c.remindCommand(),
	)
	return root
}

func (c *CLI) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), c.settings)
}

// findCategory resolves a category by exact name.
func (c *CLI) findCategory(ctx context.Context, name string) (*model.Category, error) {
	categories := c.categories.FetchAll(ctx)
	for i := range categories {
		if categories[i].Name == name {
			return &categories[i], nil
		}
	}
	if hint := closestCategory(name, categories); hint != "" {
		return nil, fmt.Errorf("no category named %q, did you mean %q?", name, hint)
	}
	return nil, fmt.Errorf("no category named %q", name)
}

// findRegret resolves a regret by full id or by a unique id prefix.
func (c *CLI) findRegret(ctx context.Context, arg string) (*model.FinancialRegret, error) {
	if id, err := uuid.Parse(arg); err == nil {
		r, err := c.regrets.Get(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("no regret with id %q", arg)
		}
		return r, err
	}
	prefix := strings.ToLower(strings.TrimSpace(arg))
	if prefix == "" {
		return nil, errors.New("regret id is required")
	}
	var match *model.FinancialRegret
	all := c.regrets.FetchAll(ctx)
	for i := range all {
		if !strings.HasPrefix(all[i].ID.String(), prefix) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("regret id %q is ambiguous", arg)
		}
		match = &all[i]
	}
	if match == nil {
		return nil, fmt.Errorf("no regret with id %q", arg)
	}
	return match, nil
}

func (c *CLI) saveSettings() error {
	if err := config.SaveSettings(c.settingsPath, c.settings); err != nil {
		return err
	}
	c.log.WithField("path", c.settingsPath).Debug("settings saved")
	return nil
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}

// optionalText returns nil for blank text and the trimmed text otherwise.
func optionalText(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

func parseDate(raw string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return now, nil
	}
	d, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	return d, nil
}

func parseStatus(raw string) (model.RegretStatus, error) {
	for _, s := range model.Statuses {
		if strings.EqualFold(string(s), strings.TrimSpace(raw)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q, expected one of Active, Healing, Healed, Accepted", raw)
}
