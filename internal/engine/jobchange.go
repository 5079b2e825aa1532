package engine

import "github.com/Annoyingpheonix/Axiom/internal/storage"

const (
	// TrialLength is the number of VERIFIED trial completions required
	// to finish the Trial of Consistency.
	TrialLength = 7

	// AscensionRank is the minimum social rank for the job change to
	// unlock at the level cap.
	AscensionRank = RankA
)

// TrialHabitTitle marks the habit injected when the trial starts.
const TrialHabitTitle = "TRIAL: Perfect Consistency"

// EvaluateJobChange advances LOCKED → AVAILABLE once the player sits
// at the level cap with rank A or better. All other states are left
// alone; the machine only ever moves forward.
func EvaluateJobChange(u storage.UserStats) storage.UserStats {
	if JobChangeStatus(u.JobChange) != JobLocked {
		return u
	}
	if u.Level >= LevelCap && SocialRank(u.SocialRank) >= AscensionRank {
		u.JobChange = string(JobAvailable)
	}
	return u
}

// AdvanceTrial folds one terminal trial-habit outcome into the trial.
// Only VERIFIED advances progress; a REJECTED submission resets it
// (the trial demands perfect consistency); SOFT_APPROVE pays rewards
// elsewhere but does not count. Reaching TrialLength completes the
// job change and lifts the XP gate.
func AdvanceTrial(u storage.UserStats, status VerificationStatus) storage.UserStats {
	if JobChangeStatus(u.JobChange) != JobInTrial {
		return u
	}
	switch status {
	case StatusVerified:
		u.TrialProgress++
		if u.TrialProgress >= TrialLength {
			u.JobChange = string(JobComplete)
		}
	case StatusRejected:
		u.TrialProgress = 0
	}
	return u
}
