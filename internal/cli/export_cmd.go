package cli

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"regret-journal/internal/export"
	"regret-journal/internal/model"
)

func (c *CLI) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export reflections as JSON, PDF or shareable text",
	}
	cmd.AddCommand(
		c.exportFileCommand("json", "Export every reflection as JSON", export.JSON),
		c.exportFileCommand("pdf", "Export every reflection as a PDF document", export.PDF),
		c.exportShareCommand(),
	)
	return cmd
}

func (c *CLI) exportFileCommand(format, short string, write func(io.Writer, []model.FinancialRegret) error) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   format,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			regrets := c.regrets.FetchAll(cmd.Context())
			if len(regrets) == 0 {
				return errors.New(export.EmptyMessage)
			}

			if out == "-" {
				return write(cmd.OutOrStdout(), regrets)
			}
			if out == "" {
				out = export.FileName(format, c.now())
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := write(f, regrets); err != nil {
				f.Close()
				if errors.Is(err, export.ErrEmpty) {
					return errors.New(export.EmptyMessage)
				}
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}
			c.printer(cmd).printf("Exported %d reflections to %s\n", len(regrets), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, - for stdout (default Financial_Reflections_<date>."+format+")")
	return cmd
}

func (c *CLI) exportShareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share [id]",
		Short: "Print a regret as shareable text, a random one without an id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var regret *model.FinancialRegret
			if len(args) == 1 {
				r, err := c.findRegret(ctx, args[0])
				if err != nil {
					return err
				}
				regret = r
			} else {
				all := c.regrets.FetchAll(ctx)
				if len(all) == 0 {
					return errors.New(export.EmptyMessage)
				}
				regret = &all[rand.Intn(len(all))]
			}
			c.printer(cmd).printf("%s\n", export.ShareText(regret))
			return nil
		},
	}
}
