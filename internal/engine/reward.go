package engine

import "math"

// LevelCap is the global level at which XP accrual pauses until
// ascension completes. It is a progress gate, not a hard ceiling:
// once JobComplete lifts it the level may keep rising.
const LevelCap = 100

// XPBoostMultiplier is the bonus applied by an active guild XP_BOOST perk.
const XPBoostMultiplier = 1.05

// Reward is the computed award for one accepted completion. Gold is
// always derived from the post-gate XP, so a gated completion awards
// nothing at all.
type Reward struct {
	XP   int
	Gold float64
}

// ComputeReward computes the XP/gold award for completing a habit of
// the given difficulty. Pure and total: invalid difficulties award
// zero rather than failing.
//
// Order matters: difficulty base, then perk boost (floored), then the
// level-cap gate, which overrides every multiplier. Daily caps are not
// applied here; clamping cumulative daily totals is the applier's job.
func ComputeReward(difficulty Difficulty, perks []GuildPerk, level int, job JobChangeStatus) Reward {
	xp := difficulty.BaseXP()

	if hasActivePerk(perks, PerkXPBoost) {
		xp = int(math.Floor(float64(xp) * XPBoostMultiplier))
	}

	// XP is fully paused at the cap until ascension completes.
	if level >= LevelCap && job != JobComplete {
		xp = 0
	}

	return Reward{XP: xp, Gold: float64(xp) / 2}
}

func hasActivePerk(perks []GuildPerk, kind PerkKind) bool {
	for _, p := range perks {
		if p.Kind == kind && p.Active {
			return true
		}
	}
	return false
}
