package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest <goal...>",
		Short: "Generate a quest (habit bundle) toward a goal",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("goal is required")
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

			quest, habits, err := svc.GenerateQuest(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, quest.Title))
			if quest.Description != "" {
				fmt.Fprintln(out, ui.Muted.Render(quest.Description))
			}
			for _, h := range habits {
				fmt.Fprintf(out, "%s %s [%s/%s, %s] %s\n",
					ui.IconHabit, ui.H2.Render(h.Title),
					ui.DifficultyText(h.Difficulty), h.Stat, h.VerificationMethod,
					ui.Muted.Render(h.ID))
			}
			return nil
		},
	}

	return cmd
}
