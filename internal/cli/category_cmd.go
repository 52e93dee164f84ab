package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"regret-journal/internal/service"
)

func (c *CLI) categoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage categories",
	}
	cmd.AddCommand(
		c.categoryListCommand(),
		c.categoryAddCommand(),
		c.categoryUpdateCommand(),
		c.categoryDeleteCommand(),
	)
	return cmd
}

func (c *CLI) categoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"stats"},
		Short:   "List categories with their transformation rate",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			p := c.printer(cmd)
			categories := c.categories.FetchAll(ctx)
			if len(categories) == 0 {
				p.printf("%s\n", p.muted.Render("No categories yet. Add one with `category add <name>`."))
				return nil
			}
			regrets := c.regrets.FetchAll(ctx)
			for i := range categories {
				p.categoryStats(&categories[i], c.categories.Stats(&categories[i], regrets))
			}
			return nil
		},
	}
}

func (c *CLI) categoryAddCommand() *cobra.Command {
	var icon, color string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return errors.New("category name is required")
			}
			category := c.categories.Create(cmd.Context(), name, optionalText(icon), optionalText(color))
			if category == nil {
				return errors.New("unable to save the category, please try again")
			}
			c.printer(cmd).printf("Created category %s\n", category.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&color, "color", "", "hex color, e.g. #E8A87C")
	return cmd
}

func (c *CLI) categoryUpdateCommand() *cobra.Command {
	var name, icon, color string
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Rename or restyle a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			category, err := c.findCategory(ctx, args[0])
			if err != nil {
				return err
			}
			var u service.CategoryUpdate
			if cmd.Flags().Changed("name") {
				name = strings.TrimSpace(name)
				if name == "" {
					return errors.New("category name cannot be empty")
				}
				u.Name = &name
			}
			if cmd.Flags().Changed("icon") {
				u.IconName = &icon
			}
			if cmd.Flags().Changed("color") {
				u.CustomColor = &color
			}
			c.categories.Update(ctx, category, u)
			c.printer(cmd).printf("Category is now %s\n", category.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&color, "color", "", "hex color")
	return cmd
}

func (c *CLI) categoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a category; its regrets are kept without a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			category, err := c.findCategory(ctx, args[0])
			if err != nil {
				return err
			}
			c.categories.Delete(ctx, category)
			c.printer(cmd).printf("Deleted category %s\n", category.Name)
			return nil
		},
	}
}
