package engine

import (
	"math"
	"time"

	"github.com/Annoyingpheonix/Axiom/internal/storage"
)

// HistoryDays is the fixed length of the activity history window.
const HistoryDays = 7

// ClassXPRate is the share of awarded XP that also feeds class XP.
const ClassXPRate = 0.5

// MaxXPForLevel returns the XP threshold to clear the given level:
// floor(100 * level^1.6).
func MaxXPForLevel(level int) float64 {
	if level < 1 {
		level = 1
	}
	return math.Floor(100 * math.Pow(float64(level), 1.6))
}

// MaxClassXPForLevel returns the class XP threshold for a class level:
// floor(200 * classLevel^1.4). Level 1 works out to 200.
func MaxClassXPForLevel(classLevel int) float64 {
	if classLevel < 1 {
		classLevel = 1
	}
	return math.Floor(200 * math.Pow(float64(classLevel), 1.4))
}

// DailyCaps bound same-day cumulative earnings.
type DailyCaps struct {
	XP      float64
	Gold    float64
	Credits float64
}

// BaseDailyCaps are the non-PRO daily earning limits.
var BaseDailyCaps = DailyCaps{XP: 1000, Gold: 500, Credits: 100}

// CapsFor returns the daily caps in effect. PRO doubles the XP and
// gold caps and raises the credit cap by half.
func CapsFor(isPro bool) DailyCaps {
	if !isPro {
		return BaseDailyCaps
	}
	return DailyCaps{
		XP:      BaseDailyCaps.XP * 2,
		Gold:    BaseDailyCaps.Gold * 2,
		Credits: BaseDailyCaps.Credits * 1.5,
	}
}

// NormalizeHistory forces a history window to exactly HistoryDays
// entries, padding missing days as inactive at the oldest end.
func NormalizeHistory(h []bool) []bool {
	out := make([]bool, HistoryDays)
	if len(h) > HistoryDays {
		h = h[len(h)-HistoryDays:]
	}
	copy(out[HistoryDays-len(h):], h)
	return out
}

// ApplyReward folds one accepted completion's reward into the user
// aggregate and returns the new value; the input is never mutated.
// It is the single authorized mutator of level/XP/class XP/gold/
// streak/history.
//
// Daily caps clamp the award before anything is applied: the reward
// already passed the level-cap gate, this is purely the same-day sum
// limit. The level-up carry runs as a loop; one event cannot cross two
// boundaries under the caps in scope, but the loop is the contract.
func ApplyReward(u storage.UserStats, r Reward, now time.Time) storage.UserStats {
	u.History = NormalizeHistory(u.History)

	u = rollDailyWindow(u, now)
	caps := CapsFor(u.IsPro)

	xp := float64(r.XP)
	if rem := caps.XP - u.DailyXP; xp > rem {
		xp = math.Max(0, rem)
	}
	gold := r.Gold
	if rem := caps.Gold - u.DailyGold; gold > rem {
		gold = math.Max(0, rem)
	}

	u.XP += xp
	for u.MaxXP > 0 && u.XP >= u.MaxXP {
		u.Level++
		u.XP -= u.MaxXP
		u.MaxXP = MaxXPForLevel(u.Level)
	}

	u.ClassXP += math.Floor(xp * ClassXPRate)
	for u.MaxClassXP > 0 && u.ClassXP >= u.MaxClassXP {
		u.ClassLevel++
		u.ClassXP -= u.MaxClassXP
		u.MaxClassXP = MaxClassXPForLevel(u.ClassLevel)
	}

	u.Gold += gold
	u.DailyXP += xp
	u.DailyGold += gold

	u.Streak++
	if u.Streak > u.LongestStreak {
		u.LongestStreak = u.Streak
	}

	h := make([]bool, HistoryDays)
	copy(h, u.History[1:])
	h[HistoryDays-1] = true
	u.History = h

	return u
}

// rollDailyWindow resets the daily accumulators when the UTC calendar
// day has changed since lastReset.
func rollDailyWindow(u storage.UserStats, now time.Time) storage.UserStats {
	if sameUTCDay(u.DailyReset, now) {
		return u
	}
	u.DailyXP = 0
	u.DailyGold = 0
	u.DailyCredits = 0
	u.DailyReset = now.UTC()
	return u
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
