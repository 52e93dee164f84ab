package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) insightsCommand() *cobra.Command {
	var words int
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show growth progress and patterns across your reflections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			p := c.printer(cmd)

			sum := c.insights.Summary(ctx)
			if sum.Total == 0 {
				p.printf("%s\n", p.muted.Render("No reflections yet. Insights appear once you record a regret."))
				return nil
			}

			p.heading("Growth")
			p.printf("%d reflections, %d transformed (%d%%)\n", sum.Total, sum.Transformed, percent(sum.GrowthProgress))
			p.printf("Total money impact: %s\n", sum.TotalImpact.StringFixed(2))

			all := c.regrets.FetchAll(ctx)
			p.printf("\n")
			p.heading("By month")
			for _, m := range c.insights.GroupByMonth(all) {
				p.printf("%-9s %s %d\n", m.Label, strings.Repeat("#", m.Count), m.Count)
			}

			if best, stats := c.insights.MostTransformedCategory(ctx); best != nil {
				p.printf("\n")
				p.heading("Most transformed category")
				p.printf("%s  %d%% of %d regrets\n", p.categoryLabel(best), percent(stats.TransformationRate), stats.Count)
			}

			if lessons := c.insights.LessonWords(all, words); len(lessons) > 0 {
				p.printf("\n")
				p.heading("Words from your lessons")
				p.printf("%s\n", strings.Join(lessons, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&words, "words", 20, "how many lesson words to show, 0 for all")
	return cmd
}

func (c *CLI) reflectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reflect",
		Short: "Show today's reflection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := c.printer(cmd)
			r := c.regrets.TodaysReflection(cmd.Context(), c.now())
			if r == nil {
				p.printf("%s\n", p.muted.Render("Heal a regret and record its lesson to see it here."))
				return nil
			}
			p.heading("Today's reflection")
			p.printf("%s\n\n%s\n", strings.TrimSpace(r.Title), r.Lesson())
			return nil
		},
	}
}
