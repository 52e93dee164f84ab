package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"regret-journal/internal/config"
	"regret-journal/internal/model"
)

func (c *CLI) settingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change your preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := c.printer(cmd)
			p.heading("Settings")
			p.printf("theme:               %s\n", c.settings.Theme)
			p.printf("monthly-reminder:    %t\n", c.settings.MonthlyReminder)
			p.printf("onboarding-complete: %t\n", c.settings.OnboardingComplete)
			for _, s := range model.Statuses {
				p.printf("status %-12s %s\n", string(s)+":", p.status(s))
			}
			return nil
		},
	}
	cmd.AddCommand(c.settingsSetCommand(), c.settingsStatusNameCommand())
	return cmd
}

func (c *CLI) settingsSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "set <theme|monthly-reminder|onboarding-complete> <value>",
		Short:     "Change one preference",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"theme", "monthly-reminder", "onboarding-complete"},
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			switch key {
			case "theme":
				theme := config.ParseTheme(value)
				if string(theme) != value {
					return fmt.Errorf("unknown theme %q, expected light, dark or system", value)
				}
				c.settings.Theme = theme
			case "monthly-reminder", "onboarding-complete":
				on, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("%s expects true or false, got %q", key, value)
				}
				if key == "monthly-reminder" {
					c.settings.MonthlyReminder = on
				} else {
					c.settings.OnboardingComplete = on
				}
			default:
				return fmt.Errorf("unknown setting %q", key)
			}
			if err := c.saveSettings(); err != nil {
				return err
			}
			c.printer(cmd).printf("%s set to %s\n", key, value)
			return nil
		},
	}
}

func (c *CLI) settingsStatusNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status-name <status> [name]",
		Short: "Rename how a status is shown, or reset it without a name",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatus(args[0])
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			c.settings.SetStatusName(status, name)
			if err := c.saveSettings(); err != nil {
				return err
			}
			c.printer(cmd).printf("%s is shown as %s\n", status, c.settings.StatusLabel(status))
			return nil
		},
	}
}
