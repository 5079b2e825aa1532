package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newGuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guild",
		Short: "Show your guild, its perks, and objectives",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := svc.Guild(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if g == nil {
				fmt.Fprintln(out, ui.Muted.Render("No guild."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconGuild, g.Guild.Name))
			if g.Guild.Description != "" {
				fmt.Fprintln(out, ui.Muted.Render(g.Guild.Description))
			}
			fmt.Fprintln(out, ui.LabelValue("Trust pool", fmt.Sprintf("%.0f", g.Guild.TrustPool)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Perks"))
			for _, p := range g.Perks {
				state := ui.Bad.Render("inactive")
				if p.Active {
					state = ui.Good.Render("active")
				}
				fmt.Fprintf(out, "- %s (%s)\n", p.Label, state)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Objectives"))
			for _, o := range g.Objectives {
				fmt.Fprintf(out, "- %s %d/%d %s → %s\n", o.Description, o.Current, o.Target, o.Unit, o.Reward)
			}
			return nil
		},
	}

	return cmd
}
