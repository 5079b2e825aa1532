package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := svc.ListHabits(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHabit, "Habits"))
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none — try `ax add` or `ax quest`)"))
				return nil
			}
			for _, h := range habits {
				mark := "·"
				if h.Completed {
					mark = ui.IconDone
				}
				status := ""
				if h.VerificationStatus != nil {
					status = " " + ui.VerdictText(*h.VerificationStatus)
				}
				trial := ""
				if h.IsTrial {
					trial = " " + ui.IconTrial
				}
				fmt.Fprintf(out, "%s %s [%s/%s, %s]%s%s streak=%d\n  %s\n",
					mark, ui.H2.Render(h.Title),
					ui.DifficultyText(h.Difficulty), h.Stat, h.VerificationMethod,
					status, trial, h.Streak, ui.Muted.Render(h.ID))
			}
			return nil
		},
	}

	return cmd
}
