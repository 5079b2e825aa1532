package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Annoyingpheonix/Axiom/internal/storage"
)

// CompletionResult is everything a caller needs to narrate one settled
// completion.
type CompletionResult struct {
	HabitID    string
	Status     VerificationStatus
	FraudScore int
	Confidence int
	Notes      string

	Reward      Reward
	LevelBefore int
	LevelAfter  int
	RankBefore  SocialRank
	RankAfter   SocialRank
	TrustScore  float64

	TrialAdvanced bool
	Ascended      bool // job change reached COMPLETE this settlement
}

func (r *CompletionResult) LevelUp() bool {
	return r.LevelAfter > r.LevelBefore
}

// SubmitEvidence runs the full verification pipeline for one habit:
// local validation, the external verification call, then atomic
// settlement of every consequence (trust, rewards, rank, trial,
// job change, audit log).
//
// Local rejections and failed agent calls leave progression state
// untouched; a failed call is still recorded in the audit log so the
// attempt is visible.
func (s *Service) SubmitEvidence(ctx context.Context, habitID, evidence string) (*CompletionResult, error) {
	if strings.TrimSpace(evidence) == "" {
		return nil, InputRejectedError{Reason: "evidence is empty"}
	}

	if !s.beginAttempt(habitID) {
		return nil, InputRejectedError{Reason: "a submission for this habit is already in progress"}
	}
	defer s.endAttempt(habitID)

	habit, err := s.repos.Habits.Get(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, InputRejectedError{Reason: fmt.Sprintf("no such habit %q", habitID)}
	}
	if habit.Completed {
		return nil, InputRejectedError{Reason: "habit already completed today"}
	}

	profile, err := s.repos.Profiles.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.verifier.VerifyEvidence(ctx, habit.Title, evidence, profile.TrustScore)
	if err == nil {
		err = ValidateVerification(res)
	}
	if err != nil {
		s.recordFailure(ctx, habitID, err)
		return nil, ExternalCallError{Op: "verify evidence", Err: err}
	}

	return s.settle(ctx, habit, res, time.Now())
}

// CompleteAutoConfirm completes an AUTO_CONFIRM habit on the user's
// word: no evidence, no external call, no trust movement. Treated as
// VERIFIED for every downstream consequence.
func (s *Service) CompleteAutoConfirm(ctx context.Context, habitID string) (*CompletionResult, error) {
	habit, err := s.repos.Habits.Get(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, InputRejectedError{Reason: fmt.Sprintf("no such habit %q", habitID)}
	}
	if VerificationMethod(habit.VerificationMethod) != MethodAutoConfirm {
		return nil, InputRejectedError{Reason: "habit requires evidence verification"}
	}
	if habit.Completed {
		return nil, InputRejectedError{Reason: "habit already completed today"}
	}

	res := &VerificationResult{Status: StatusVerified, Confidence: 100, Notes: "Self-confirmed."}
	return s.settleWithTrust(ctx, habit, res, time.Now(), false)
}

func (s *Service) settle(ctx context.Context, habit *storage.Habit, res *VerificationResult, now time.Time) (*CompletionResult, error) {
	return s.settleWithTrust(ctx, habit, res, now, true)
}

// settleWithTrust applies every consequence of one terminal
// verification outcome inside a single transaction.
func (s *Service) settleWithTrust(ctx context.Context, habit *storage.Habit, res *VerificationResult, now time.Time, moveTrust bool) (*CompletionResult, error) {
	out := &CompletionResult{
		HabitID:    habit.ID,
		Status:     res.Status,
		FraudScore: res.FraudScore,
		Confidence: res.Confidence,
		Notes:      res.Notes,
	}

	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repos := storage.NewRepos(tx)

		u, err := repos.Users.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		p, err := repos.Profiles.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}

		out.LevelBefore = u.Level
		out.RankBefore = SocialRank(u.SocialRank)
		jobBefore := JobChangeStatus(u.JobChange)

		if moveTrust {
			p.TrustScore = ApplyTrustDelta(p.TrustScore, res.Status)
		}
		out.TrustScore = p.TrustScore

		next := *u
		if res.Status != StatusRejected {
			perks, err := s.activePerks(ctx, repos)
			if err != nil {
				return err
			}
			out.Reward = ComputeReward(Difficulty(habit.Difficulty), perks, u.Level, JobChangeStatus(u.JobChange))
			next = ApplyReward(next, out.Reward, now)
			bumpAttr(&next, StatType(habit.Stat))

			habit.Completed = true
			habit.Streak++
		}

		if habit.IsTrial {
			before := next.TrialProgress
			next = AdvanceTrial(next, res.Status)
			out.TrialAdvanced = next.TrialProgress > before
		}

		if rank := Classify(p.TrustScore, next.Streak); rank != SocialRank(next.SocialRank) {
			next.SocialRank = int(rank)
		}
		next = EvaluateJobChange(next)

		out.LevelAfter = next.Level
		out.RankAfter = SocialRank(next.SocialRank)
		out.Ascended = jobBefore != JobComplete && JobChangeStatus(next.JobChange) == JobComplete

		status := string(res.Status)
		habit.VerificationStatus = &status

		if err := repos.Users.Update(ctx, &next); err != nil {
			return err
		}
		if err := repos.Profiles.Update(ctx, p); err != nil {
			return err
		}
		if err := repos.Habits.Update(ctx, habit); err != nil {
			return err
		}

		rec := &storage.VerificationRecord{
			HabitID:     habit.ID,
			SubmittedAt: now.UTC(),
			Status:      string(res.Status),
			FraudScore:  res.FraudScore,
			Confidence:  res.Confidence,
			Notes:       res.Notes,
			XPAwarded:   out.Reward.XP,
			GoldAwarded: out.Reward.Gold,
		}
		if err := repos.Verifications.Insert(ctx, rec); err != nil {
			return err
		}

		if res.Status == StatusVerified {
			if g, err := repos.Guilds.GetMain(ctx); err != nil {
				return err
			} else if g != nil {
				if err := repos.Guilds.AdvanceObjectives(ctx, g.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// recordFailure logs a FAILED attempt outside any settlement; errors
// here are swallowed since the caller is already reporting a failure.
func (s *Service) recordFailure(ctx context.Context, habitID string, cause error) {
	_ = s.repos.Verifications.Insert(ctx, &storage.VerificationRecord{
		HabitID:     habitID,
		SubmittedAt: time.Now().UTC(),
		Status:      string(AttemptFailed),
		Notes:       cause.Error(),
	})
}

func (s *Service) beginAttempt(habitID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[habitID] {
		return false
	}
	s.inflight[habitID] = true
	return true
}

func (s *Service) endAttempt(habitID string) {
	s.mu.Lock()
	delete(s.inflight, habitID)
	s.mu.Unlock()
}

func bumpAttr(u *storage.UserStats, stat StatType) {
	switch stat {
	case StatINT:
		u.AttrINT++
	case StatDEX:
		u.AttrDEX++
	case StatCHA:
		u.AttrCHA++
	default:
		u.AttrSTR++
	}
}
