package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newTrialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Job-change trial (ascension)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "Begin the Trial of Consistency",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, cleanup, err := openService(ctx)
				if err != nil {
					return err
				}
				defer cleanup()

				trial, err := svc.StartTrial(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconTrial, "Trial of Consistency"))
				fmt.Fprintf(out, "Verify %q %d times. A rejection resets progress to zero.\n",
					trial.Title, engine.TrialLength)
				fmt.Fprintln(out, ui.Muted.Render("Habit ID: "+trial.ID))
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show trial progress",
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx := context.Background()
				svc, cleanup, err := openService(ctx)
				if err != nil {
					return err
				}
				defer cleanup()

				u, err := svc.Stats(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				job := engine.JobChangeStatus(u.JobChange)
				fmt.Fprintln(out, ui.LabelValue("Job change", string(job)))
				if job == engine.JobInTrial {
					fmt.Fprintf(out, "%s %d/%d verified completions\n", ui.IconTrial, u.TrialProgress, engine.TrialLength)
				}
				return nil
			},
		},
	)

	return cmd
}
