package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your stats, rank, and progression",
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
			p, err := svc.Profile(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Axiom Status"))
			fmt.Fprintln(out, ui.LabelValue("Class", u.ClassType))
			fmt.Fprintf(out, "%s %d %s %.0f/%.0f\n", ui.Key.Render("Level:"), u.Level,
				ui.ProgressBar(u.XP, u.MaxXP, 24), u.XP, u.MaxXP)
			fmt.Fprintf(out, "%s %d %s %.0f/%.0f\n", ui.Key.Render("Class level:"), u.ClassLevel,
				ui.ProgressBar(u.ClassXP, u.MaxClassXP, 24), u.ClassXP, u.MaxClassXP)
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.IconRank+" "+engine.SocialRank(u.SocialRank).String()))
			fmt.Fprintln(out, ui.LabelValue("Trust", fmt.Sprintf("%.1f / 100", p.TrustScore)))
			fmt.Fprintln(out, ui.LabelValue("Gold", fmt.Sprintf("%s %.0f", ui.IconGold, u.Gold)))
			fmt.Fprintln(out, ui.LabelValue("Credits", fmt.Sprintf("%s %.0f", ui.IconCredit, u.Credits)))
			fmt.Fprintf(out, "%s %d (best %d) %s\n", ui.Key.Render("Streak:"), u.Streak, u.LongestStreak, ui.HeatStrip(u.History))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Attributes"))
			fmt.Fprintf(out, "- 💪 STR: %d\n", u.AttrSTR)
			fmt.Fprintf(out, "- 🧠 INT: %d\n", u.AttrINT)
			fmt.Fprintf(out, "- ⚡ DEX: %d\n", u.AttrDEX)
			fmt.Fprintf(out, "- 🗣️ CHA: %d\n", u.AttrCHA)
			fmt.Fprintln(out, "")

			caps := engine.CapsFor(u.IsPro)
			fmt.Fprintln(out, ui.H2.Render("📅 Today"))
			fmt.Fprintf(out, "- XP %.0f/%.0f, gold %.0f/%.0f\n", u.DailyXP, caps.XP, u.DailyGold, caps.Gold)
			if u.IsPro {
				fmt.Fprintln(out, "- "+ui.Gold.Render("PRO")+" caps in effect")
			}
			fmt.Fprintln(out, "")

			job := engine.JobChangeStatus(u.JobChange)
			fmt.Fprintln(out, ui.H2.Render("🔓 Ascension"))
			switch job {
			case engine.JobLocked:
				fmt.Fprintf(out, "- %s %s\n", ui.Bad.Render("LOCKED"),
					ui.Muted.Render(fmt.Sprintf("(reach level %d with rank %s or better)", engine.LevelCap, engine.AscensionRank)))
			case engine.JobAvailable:
				fmt.Fprintln(out, "- "+ui.Good.Render("AVAILABLE")+" "+ui.Muted.Render("(run `ax trial start`)"))
			case engine.JobInTrial:
				fmt.Fprintf(out, "- %s %s trial %d/%d\n", ui.Warn.Render("IN TRIAL"), ui.IconTrial, u.TrialProgress, engine.TrialLength)
			case engine.JobComplete:
				fmt.Fprintln(out, "- "+ui.Gold.Render("COMPLETE")+" "+ui.Muted.Render("(level cap lifted)"))
			}

			skills, err := svc.ListSkills(ctx)
			if err != nil {
				return err
			}
			if len(skills) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("🌊 Skills"))
				for _, s := range skills {
					effect := engine.EffectOf(*s)
					fmt.Fprintf(out, "- %s (%s, %s ×%.0f)\n", s.Name, s.Rank, effect.Kind, effect.Value)
				}
			}

			return nil
		},
	}

	return cmd
}
