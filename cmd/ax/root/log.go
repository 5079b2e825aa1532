package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <habit-id>",
		Short: "Show a habit's verification history",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit id is required")
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

			records, err := svc.VerificationLog(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShield, "Verification Log"))
			if len(records) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no submissions yet)"))
				return nil
			}
			for _, v := range records {
				fmt.Fprintf(out, "%s %s fraud=%d conf=%d +%dxp +%.0fg\n",
					ui.Muted.Render(v.SubmittedAt.Format("2006-01-02 15:04")),
					ui.VerdictText(v.Status), v.FraudScore, v.Confidence, v.XPAwarded, v.GoldAwarded)
				if v.Notes != "" {
					fmt.Fprintln(out, "  "+ui.Muted.Render(v.Notes))
				}
			}
			return nil
		},
	}

	return cmd
}
