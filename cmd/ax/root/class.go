package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newClassCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "class <indicator>",
		Short: "Set your class from a four-letter type indicator (e.g. INTJ)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("type indicator is required")
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

			class, err := svc.SetClass(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s You are now a %s (channels %s)\n",
				ui.IconBolt, ui.Title.Render(string(class)), engine.ClassStat(class))
			return nil
		},
	}

	return cmd
}
