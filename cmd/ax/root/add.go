package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newAddCmd() *cobra.Command {
	var diff string
	var stat string
	var method string
	var desc string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			d, ok := engine.ParseDifficulty(diff)
			if !ok {
				return fmt.Errorf("unknown difficulty %q (easy|medium|hard)", diff)
			}
			m := engine.VerificationMethod(method)

			h, err := svc.AddHabit(ctx, args[0], desc, d, engine.ParseStat(stat), m)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s [%s/%s, %s]\n",
				ui.IconHabit, ui.Title.Render(h.Title), ui.Muted.Render(h.ID),
				ui.DifficultyText(h.Difficulty), h.Stat, h.VerificationMethod)
			return nil
		},
	}

	cmd.Flags().StringVarP(&diff, "diff", "d", "medium", "Difficulty (easy|medium|hard)")
	cmd.Flags().StringVarP(&stat, "stat", "s", "STR", "Attribute trained (STR|INT|DEX|CHA)")
	cmd.Flags().StringVarP(&method, "method", "m", "TEXT_REFLECTION", "Verification method")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")

	return cmd
}
