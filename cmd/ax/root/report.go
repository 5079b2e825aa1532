package root

import (
	"fmt"
	"io"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/ui"
)

// printCompletion narrates one settled completion.
func printCompletion(out io.Writer, res *engine.CompletionResult) {
	fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Verdict:"), ui.VerdictText(string(res.Status)))
	if res.Notes != "" {
		fmt.Fprintln(out, ui.Muted.Render(res.Notes))
	}
	if res.Status == engine.StatusSoftApprove {
		fmt.Fprintf(out, "%s fraud score %d — rewards granted, trust reduced to %.1f\n",
			ui.IconWarn, res.FraudScore, res.TrustScore)
	}
	if res.Status == engine.StatusRejected {
		fmt.Fprintf(out, "%s fraud score %d — no rewards granted\n", ui.IconError, res.FraudScore)
		return
	}

	fmt.Fprintf(out, "%s +%d XP, +%.0f %s\n", ui.IconBolt, res.Reward.XP, res.Reward.Gold, ui.IconGold)
	if res.LevelUp() {
		fmt.Fprintf(out, "%s level %d → %d\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
	}
	if res.RankAfter != res.RankBefore {
		fmt.Fprintf(out, "%s rank %s → %s\n", ui.IconRank, res.RankBefore, res.RankAfter)
	}
	if res.TrialAdvanced {
		fmt.Fprintf(out, "%s trial progress advanced\n", ui.IconTrial)
	}
	if res.Ascended {
		fmt.Fprintf(out, "%s job change complete — the level cap is lifted\n", ui.BadgeAscend)
	}
}
