package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a marketplace item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
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

			out, err := svc.PurchaseItem(ctx, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s Bought %s for %.0f %s\n", ui.IconDone,
				ui.Title.Render(out.Item.Name), out.Item.Cost, out.Item.Currency)
			fmt.Fprintf(w, "Balance: %s %.0f, %s %.0f\n", ui.IconGold, out.Stats.Gold, ui.IconCredit, out.Stats.Credits)
			if out.Stats.IsPro {
				fmt.Fprintln(w, ui.Gold.Render("PRO membership active — daily caps raised."))
			}
			if out.Skill != nil {
				effect := engine.EffectOf(*out.Skill)
				fmt.Fprintf(w, "Skill unlocked: %s (%s, %s ×%.0f)\n",
					ui.H2.Render(out.Skill.Name), out.Skill.Rank, effect.Kind, effect.Value)
			}
			return nil
		},
	}

	return cmd
}
