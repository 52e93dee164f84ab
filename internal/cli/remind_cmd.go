package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"regret-journal/internal/service"
)

func (c *CLI) remindCommand() *cobra.Command {
	var now bool
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the monthly reflection reminder until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			notifier := consoleNotifier{w: cmd.OutOrStdout(), log: c.log}
			reminders := service.NewReminderService(c.regrets, c.scheduler, notifier, c.reminder, c.log)

			if now {
				return reminders.Send(ctx, c.now())
			}
			if !c.settings.MonthlyReminder {
				return errors.New("monthly reminder is off, enable it with `settings set monthly-reminder true`")
			}
			if err := reminders.Sync(true); err != nil {
				return err
			}

			c.scheduler.Start()
			defer c.scheduler.Stop()
			c.log.WithField("next", reminders.Next()).Info("monthly reminder scheduled")
			c.printer(cmd).printf("Next reminder at %s. Press Ctrl+C to stop.\n", reminders.Next().Format("Mon Jan 2 15:04"))

			<-ctx.Done()
			return reminders.Sync(false)
		},
	}
	cmd.Flags().BoolVar(&now, "now", false, "send the reminder once and exit")
	return cmd
}
