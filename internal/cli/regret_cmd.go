package cli

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"regret-journal/internal/model"
	"regret-journal/internal/service"
)

func (c *CLI) regretCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "regret",
		Aliases: []string{"regrets"},
		Short:   "Record and revisit financial regrets",
	}
	cmd.AddCommand(
		c.regretAddCommand(),
		c.regretUpdateCommand(),
		c.regretDeleteCommand(),
		c.regretListCommand(),
		c.regretShowCommand(),
		c.regretSearchCommand(),
		c.regretHealedCommand(),
	)
	return cmd
}

// regretFlags are the form fields shared by add and update.
type regretFlags struct {
	title       string
	date        string
	category    string
	description string
	money       string
	intensity   int
	feeling     string
	lesson      string
	status      string
}

func (f *regretFlags) register(cmd *cobra.Command, withLesson bool) {
	cmd.Flags().StringVar(&f.title, "title", "", "short title (up to 100 characters)")
	cmd.Flags().StringVar(&f.date, "date", "", "when it happened, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.category, "category", "", "category name")
	cmd.Flags().StringVar(&f.description, "description", "", "what happened (up to 5000 characters)")
	cmd.Flags().StringVar(&f.money, "money", "", "money impact, e.g. 249.99")
	cmd.Flags().IntVar(&f.intensity, "intensity", 5, "emotional intensity from 1 to 10")
	cmd.Flags().StringVar(&f.feeling, "feeling", "", "how it felt at the time")
	cmd.Flags().StringVar(&f.status, "status", string(model.StatusActive), "Active, Healing, Healed or Accepted")
	if withLesson {
		cmd.Flags().StringVar(&f.lesson, "lesson", "", "the lesson learned")
	}
}

func parseMoney(raw string) (*decimal.Decimal, error) {
	if trimmed(raw) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(trimmed(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid money amount %q", raw)
	}
	return &d, nil
}

func (c *CLI) regretAddCommand() *cobra.Command {
	var f regretFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new regret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			date, err := parseDate(f.date, c.now())
			if err != nil {
				return err
			}
			money, err := parseMoney(f.money)
			if err != nil {
				return err
			}
			status, err := parseStatus(f.status)
			if err != nil {
				return err
			}

			in := service.RegretInput{
				Date:               date,
				Description:        trimmed(f.description),
				Title:              trimmed(f.title),
				MoneyImpact:        money,
				EmotionalIntensity: f.intensity,
				InitialFeeling:     optionalText(f.feeling),
				Status:             status,
			}
			p := c.printer(cmd)
			if name := trimmed(f.category); name != "" {
				in.CategoryName = name
				c.hintCategory(cmd, name)
			}

			regret, err := c.regrets.CreateChecked(ctx, in)
			if err != nil {
				return errors.New(service.UserMessage(err))
			}
			p.printf("Recorded %s\n", shortID(regret.ID.String()))
			return nil
		},
	}
	f.register(cmd, false)
	return cmd
}

func (c *CLI) regretUpdateCommand() *cobra.Command {
	var f regretFlags
	var clearCategory bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a regret, record its lesson or move it along",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			regret, err := c.findRegret(ctx, args[0])
			if err != nil {
				return err
			}
			p := c.printer(cmd)

			var u service.RegretUpdate
			flags := cmd.Flags()
			if flags.Changed("title") {
				u.Title = ptr(trimmed(f.title))
			}
			if flags.Changed("date") {
				date, err := parseDate(f.date, c.now())
				if err != nil {
					return err
				}
				u.Date = &date
			}
			if flags.Changed("description") {
				u.Description = ptr(trimmed(f.description))
			}
			if flags.Changed("money") {
				money, err := parseMoney(f.money)
				if err != nil {
					return err
				}
				if money == nil {
					money = ptr(decimal.Zero)
				}
				u.MoneyImpact = money
			}
			if flags.Changed("intensity") {
				u.EmotionalIntensity = &f.intensity
			}
			if flags.Changed("feeling") {
				u.InitialFeeling = ptr(trimmed(f.feeling))
			}
			if flags.Changed("lesson") {
				u.LessonLearned = ptr(trimmed(f.lesson))
			}
			if flags.Changed("status") {
				status, err := parseStatus(f.status)
				if err != nil {
					return err
				}
				u.Status = &status
			}

			// An update without a category clears it, so the current one is sent back.
			switch {
			case clearCategory:
			case flags.Changed("category"):
				name := trimmed(f.category)
				u.CategoryName = &name
				if name != "" {
					c.hintCategory(cmd, name)
				}
			default:
				ref := regret.CategoryRef()
				if cat := ref.Resolved(); cat != nil {
					u.Category = cat
				} else if !ref.IsZero() {
					name := ref.StoredName()
					u.CategoryName = &name
				}
			}

			if err := c.regrets.UpdateChecked(ctx, regret, u); err != nil {
				return errors.New(service.UserMessage(err))
			}
			p.printf("Updated %s\n", shortID(regret.ID.String()))
			return nil
		},
	}
	f.register(cmd, true)
	cmd.Flags().BoolVar(&clearCategory, "clear-category", false, "remove the category")
	cmd.MarkFlagsMutuallyExclusive("category", "clear-category")
	return cmd
}

func (c *CLI) regretDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a regret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			regret, err := c.findRegret(ctx, args[0])
			if err != nil {
				return err
			}
			c.regrets.Delete(ctx, regret)
			c.printer(cmd).printf("Deleted %s\n", shortID(regret.ID.String()))
			return nil
		},
	}
}

func (c *CLI) regretListCommand() *cobra.Command {
	var status, category, filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			p := c.printer(cmd)
			var regrets []model.FinancialRegret
			switch {
			case status != "":
				s, err := parseStatus(status)
				if err != nil {
					return err
				}
				regrets = c.regrets.FetchByStatus(ctx, s)
			case category != "":
				regrets = c.insights.Timeline(ctx, service.TimelineByCategory, category, "", c.now())
			case filter == "year":
				regrets = c.insights.Timeline(ctx, service.TimelineThisYear, "", "", c.now())
			case filter == "" || filter == "all":
				regrets = c.regrets.FetchAll(ctx)
			default:
				return fmt.Errorf("unknown filter %q, expected all or year", filter)
			}
			p.regretList(regrets, "No reflections yet. Record one with `regret add`.")
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only regrets with this status")
	cmd.Flags().StringVar(&category, "category", "", "only regrets in this category")
	cmd.Flags().StringVar(&filter, "filter", "all", "all or year")
	cmd.MarkFlagsMutuallyExclusive("status", "category", "filter")
	return cmd
}

func (c *CLI) regretShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one regret in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regret, err := c.findRegret(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.printer(cmd).regretDetail(regret)
			return nil
		},
	}
}

func (c *CLI) regretSearchCommand() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles, descriptions, feelings and lessons",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var cat *model.Category
			if category != "" {
				found, err := c.findCategory(ctx, category)
				if err != nil {
					return err
				}
				cat = found
			}
			c.printer(cmd).regretList(c.regrets.Search(ctx, args[0], cat), "No reflections match.")
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only search this category")
	return cmd
}

func (c *CLI) regretHealedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "healed",
		Short: "Show the regrets you have healed or accepted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := c.printer(cmd)
			transformed := c.regrets.Transformed(cmd.Context())
			if len(transformed) == 0 {
				p.printf("%s\n", p.muted.Render("Nothing healed yet. Every lesson starts as a regret."))
				return nil
			}
			for i := range transformed {
				r := &transformed[i]
				p.regretLine(r)
				if r.HasLesson() {
					p.printf("    %s\n", r.Lesson())
				}
			}
			return nil
		},
	}
}

// hintCategory warns when name matches no category. The regret still keeps the name.
func (c *CLI) hintCategory(cmd *cobra.Command, name string) {
	if _, err := c.findCategory(cmd.Context(), name); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "note: %v; saving it as a plain name\n", err)
	}
}

func ptr[T any](v T) *T {
	return &v
}
