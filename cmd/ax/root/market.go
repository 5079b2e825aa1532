package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Browse the marketplace",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := svc.ListMarketItems(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMarket, "Marketplace"))
			for _, it := range items {
				owned := ""
				if it.Purchased {
					owned = " " + ui.Good.Render("OWNED")
				}
				fmt.Fprintf(out, "%s %s %s — %.0f %s (lvl %d+, trust %.0f+)%s\n",
					it.Icon, ui.H2.Render(it.Name), ui.Muted.Render("["+it.ID+"]"),
					it.Cost, it.Currency, it.ReqLevel, it.ReqTrust, owned)
				if it.Description != "" {
					fmt.Fprintln(out, "  "+ui.Muted.Render(it.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
