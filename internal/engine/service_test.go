package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Annoyingpheonix/Axiom/internal/storage"
)

// fakeVerifier returns a canned result or error.
type fakeVerifier struct {
	res   *VerificationResult
	err   error
	calls int
}

func (f *fakeVerifier) VerifyEvidence(ctx context.Context, habitTitle, evidence string, trustScore float64) (*VerificationResult, error) {
	f.calls++
	return f.res, f.err
}

type fakeQuests struct {
	quest *GeneratedQuest
	err   error
}

func (f *fakeQuests) GenerateQuest(ctx context.Context, goal string, profile storage.UserProfile, class ClassType) (*GeneratedQuest, error) {
	return f.quest, f.err
}

func verdict(score int) *VerificationResult {
	return &VerificationResult{
		FraudScore: score,
		Confidence: 90,
		Status:     StatusForFraudScore(score),
		Notes:      "test verdict",
	}
}

func newTestService(t *testing.T, verifier EvidenceVerifier, quests QuestGenerator) *Service {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewService(db, quests, verifier)
}

func addTestHabit(t *testing.T, svc *Service, diff Difficulty, method VerificationMethod) *storage.Habit {
	t.Helper()
	h, err := svc.AddHabit(context.Background(), "Deep work block", "", diff, StatINT, method)
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	return h
}

func TestSubmitEvidenceVerified(t *testing.T) {
	fv := &fakeVerifier{res: verdict(5)}
	svc := newTestService(t, fv, &fakeQuests{})
	ctx := context.Background()

	h := addTestHabit(t, svc, DifficultyHard, MethodTextReflection)

	res, err := svc.SubmitEvidence(ctx, h.ID, "Finished a 90 minute focus session on the parser rewrite.")
	if err != nil {
		t.Fatalf("SubmitEvidence: %v", err)
	}
	if res.Status != StatusVerified {
		t.Fatalf("status=%s, want VERIFIED", res.Status)
	}
	// XP boost perk is seeded active: floor(100 * 1.05) = 105.
	if res.Reward.XP != 105 {
		t.Fatalf("xp=%d, want 105", res.Reward.XP)
	}
	if res.TrustScore != 80.5 {
		t.Fatalf("trust=%v, want 80.5", res.TrustScore)
	}

	u, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if u.XP != 105 {
		t.Fatalf("persisted xp=%v, want 105", u.XP)
	}
	if u.Gold != 250+52.5 {
		t.Fatalf("persisted gold=%v, want 302.5", u.Gold)
	}
	if u.AttrINT != 11 {
		t.Fatalf("INT=%d, want 11 (habit stat bump)", u.AttrINT)
	}
	if u.Streak != 1 {
		t.Fatalf("streak=%d, want 1", u.Streak)
	}

	got, err := svc.repos.Habits.Get(ctx, h.ID)
	if err != nil {
		t.Fatalf("habit get: %v", err)
	}
	if !got.Completed || got.Streak != 1 {
		t.Fatalf("habit = completed=%v streak=%d, want true/1", got.Completed, got.Streak)
	}
	if got.VerificationStatus == nil || *got.VerificationStatus != string(StatusVerified) {
		t.Fatalf("habit verification status = %v", got.VerificationStatus)
	}

	log, err := svc.VerificationLog(ctx, h.ID)
	if err != nil {
		t.Fatalf("VerificationLog: %v", err)
	}
	if len(log) != 1 || log[0].Status != string(StatusVerified) || log[0].XPAwarded != 105 {
		t.Fatalf("log = %+v", log)
	}
}

func TestSubmitEvidenceRejectedAwardsNothing(t *testing.T) {
	fv := &fakeVerifier{res: verdict(80)}
	svc := newTestService(t, fv, &fakeQuests{})
	ctx := context.Background()

	h := addTestHabit(t, svc, DifficultyHard, MethodTextReflection)

	res, err := svc.SubmitEvidence(ctx, h.ID, "done")
	if err != nil {
		t.Fatalf("SubmitEvidence: %v", err)
	}
	if res.Status != StatusRejected {
		t.Fatalf("status=%s, want REJECTED", res.Status)
	}
	if res.Reward.XP != 0 || res.Reward.Gold != 0 {
		t.Fatalf("reward=%+v, want zero", res.Reward)
	}
	if res.TrustScore != 80 {
		t.Fatalf("trust=%v, want 80 unchanged", res.TrustScore)
	}

	u, _ := svc.Stats(ctx)
	if u.XP != 0 || u.Gold != 250 || u.Streak != 0 {
		t.Fatalf("stats moved on rejection: %+v", u)
	}
	got, _ := svc.repos.Habits.Get(ctx, h.ID)
	if got.Completed {
		t.Fatal("rejected habit marked completed")
	}
	// The attempt is still logged and the habit can be resubmitted.
	log, _ := svc.VerificationLog(ctx, h.ID)
	if len(log) != 1 || log[0].Status != string(StatusRejected) {
		t.Fatalf("log = %+v", log)
	}
	if _, err := svc.SubmitEvidence(ctx, h.ID, "a genuinely detailed reflection this time"); err != nil {
		t.Fatalf("resubmit after rejection: %v", err)
	}
}

func TestSubmitEvidenceSoftApprovePaysButCostsTrust(t *testing.T) {
	fv := &fakeVerifier{res: verdict(35)}
	svc := newTestService(t, fv, &fakeQuests{})
	ctx := context.Background()

	h := addTestHabit(t, svc, DifficultyEasy, MethodTextReflection)

	res, err := svc.SubmitEvidence(ctx, h.ID, "short note")
	if err != nil {
		t.Fatalf("SubmitEvidence: %v", err)
	}
	if res.Status != StatusSoftApprove {
		t.Fatalf("status=%s, want SOFT_APPROVE", res.Status)
	}
	if res.Reward.XP == 0 {
		t.Fatal("soft approve should still pay out")
	}
	if res.TrustScore != 79 {
		t.Fatalf("trust=%v, want 79", res.TrustScore)
	}
}

func TestSubmitEvidenceEmptyIsLocalRejection(t *testing.T) {
	fv := &fakeVerifier{res: verdict(5)}
	svc := newTestService(t, fv, &fakeQuests{})

	h := addTestHabit(t, svc, DifficultyEasy, MethodTextReflection)

	_, err := svc.SubmitEvidence(context.Background(), h.ID, "   ")
	if !IsInputRejected(err) {
		t.Fatalf("err=%v, want input rejection", err)
	}
	if fv.calls != 0 {
		t.Fatalf("verifier called %d times for empty evidence", fv.calls)
	}
}

func TestSubmitEvidenceAgentFailureLeavesStateUntouched(t *testing.T) {
	fv := &fakeVerifier{err: errors.New("connection refused")}
	svc := newTestService(t, fv, &fakeQuests{})
	ctx := context.Background()

	h := addTestHabit(t, svc, DifficultyHard, MethodTextReflection)

	_, err := svc.SubmitEvidence(ctx, h.ID, "real evidence")
	var ece ExternalCallError
	if !errors.As(err, &ece) {
		t.Fatalf("err=%v, want ExternalCallError", err)
	}

	u, _ := svc.Stats(ctx)
	if u.XP != 0 || u.Streak != 0 {
		t.Fatalf("stats moved on agent failure: %+v", u)
	}
	p, _ := svc.Profile(ctx)
	if p.TrustScore != 80 {
		t.Fatalf("trust moved on agent failure: %v", p.TrustScore)
	}

	// The failed attempt is visible in the log.
	log, _ := svc.VerificationLog(ctx, h.ID)
	if len(log) != 1 || log[0].Status != string(AttemptFailed) {
		t.Fatalf("log = %+v", log)
	}
}

func TestSubmitEvidenceMalformedPayloadFailsClosed(t *testing.T) {
	fv := &fakeVerifier{res: &VerificationResult{FraudScore: 400, Confidence: 90, Status: StatusVerified}}
	svc := newTestService(t, fv, &fakeQuests{})
	ctx := context.Background()

	h := addTestHabit(t, svc, DifficultyHard, MethodTextReflection)

	_, err := svc.SubmitEvidence(ctx, h.ID, "real evidence")
	var ece ExternalCallError
	if !errors.As(err, &ece) {
		t.Fatalf("err=%v, want ExternalCallError", err)
	}
	u, _ := svc.Stats(ctx)
	if u.XP != 0 {
		t.Fatalf("stats moved on malformed payload: %+v", u)
	}
}

func TestCompleteAutoConfirm(t *testing.T) {
	fv := &fakeVerifier{res: verdict(5)}
	svc := newTestService(t, fv, &fakeQuests{})
	ctx := context.Background()

	h := addTestHabit(t, svc, DifficultyEasy, MethodAutoConfirm)

	res, err := svc.CompleteAutoConfirm(ctx, h.ID)
	if err != nil {
		t.Fatalf("CompleteAutoConfirm: %v", err)
	}
	if res.Status != StatusVerified {
		t.Fatalf("status=%s, want VERIFIED", res.Status)
	}
	if fv.calls != 0 {
		t.Fatal("auto-confirm should never call the verifier")
	}
	// No trust movement on self-confirmation.
	if res.TrustScore != 80 {
		t.Fatalf("trust=%v, want 80", res.TrustScore)
	}

	// Double completion is refused.
	if _, err := svc.CompleteAutoConfirm(ctx, h.ID); !IsInputRejected(err) {
		t.Fatalf("second completion err=%v, want input rejection", err)
	}

	// Evidence-gated habits cannot take the shortcut.
	gated := addTestHabit(t, svc, DifficultyEasy, MethodTextReflection)
	if _, err := svc.CompleteAutoConfirm(ctx, gated.ID); !IsInputRejected(err) {
		t.Fatalf("gated habit err=%v, want input rejection", err)
	}
}

func TestGenerateQuestPersistsHabits(t *testing.T) {
	fq := &fakeQuests{quest: &GeneratedQuest{
		Title: "The Iron Path",
		Habits: []GeneratedHabit{
			{Title: "Morning run", Stat: StatSTR, Difficulty: DifficultyMedium, VerificationMethod: MethodGPSCheck, EstimatedTimeMin: 30},
			{Title: "Cold shower", Stat: StatSTR, Difficulty: DifficultyEasy, VerificationMethod: MethodAutoConfirm, EstimatedTimeMin: 5},
		},
	}}
	svc := newTestService(t, &fakeVerifier{res: verdict(5)}, fq)
	ctx := context.Background()

	quest, habits, err := svc.GenerateQuest(ctx, "get fit")
	if err != nil {
		t.Fatalf("GenerateQuest: %v", err)
	}
	if quest.Title != "The Iron Path" || len(habits) != 2 {
		t.Fatalf("quest=%+v habits=%d", quest, len(habits))
	}

	all, err := svc.ListHabits(ctx)
	if err != nil {
		t.Fatalf("ListHabits: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("persisted habits=%d, want 2", len(all))
	}
}

func TestGenerateQuestBadPayloadPersistsNothing(t *testing.T) {
	fq := &fakeQuests{quest: &GeneratedQuest{
		Title:  "Broken",
		Habits: []GeneratedHabit{{Title: "x", Stat: "MANA", Difficulty: DifficultyEasy, VerificationMethod: MethodAutoConfirm}},
	}}
	svc := newTestService(t, &fakeVerifier{}, fq)
	ctx := context.Background()

	_, _, err := svc.GenerateQuest(ctx, "get fit")
	var ece ExternalCallError
	if !errors.As(err, &ece) {
		t.Fatalf("err=%v, want ExternalCallError", err)
	}
	all, _ := svc.ListHabits(ctx)
	if len(all) != 0 {
		t.Fatalf("habits persisted from a bad payload: %d", len(all))
	}
}

func TestPurchaseItemService(t *testing.T) {
	svc := newTestService(t, &fakeVerifier{}, &fakeQuests{})
	ctx := context.Background()

	// Seeded Void Theme: 200 credits, level 10+. Fresh user is level 1.
	if _, err := svc.PurchaseItem(ctx, "c1"); !IsInputRejected(err) {
		t.Fatalf("underleveled purchase err=%v, want input rejection", err)
	}

	u, _ := svc.Stats(ctx)
	u.Level = 10
	u.Credits = 500
	if err := svc.repos.Users.Update(ctx, u); err != nil {
		t.Fatalf("update user: %v", err)
	}

	out, err := svc.PurchaseItem(ctx, "c1")
	if err != nil {
		t.Fatalf("PurchaseItem: %v", err)
	}
	if out.Stats.Credits != 300 {
		t.Fatalf("credits=%v, want 300", out.Stats.Credits)
	}

	// Purchase is one-way; a second attempt is refused.
	if _, err := svc.PurchaseItem(ctx, "c1"); !IsInputRejected(err) {
		t.Fatalf("repurchase err=%v, want input rejection", err)
	}

	if _, err := svc.PurchaseItem(ctx, "no-such-item"); !IsInputRejected(err) {
		t.Fatalf("unknown item err=%v, want input rejection", err)
	}
}

func TestTrialFlow(t *testing.T) {
	fv := &fakeVerifier{res: verdict(5)}
	svc := newTestService(t, fv, &fakeQuests{})
	ctx := context.Background()

	// Trial is gated on AVAILABLE.
	if _, err := svc.StartTrial(ctx); !IsInputRejected(err) {
		t.Fatalf("locked trial err=%v, want input rejection", err)
	}

	u, _ := svc.Stats(ctx)
	u.Level = LevelCap
	u.SocialRank = int(RankA)
	u.JobChange = string(JobAvailable)
	if err := svc.repos.Users.Update(ctx, u); err != nil {
		t.Fatalf("update user: %v", err)
	}

	trial, err := svc.StartTrial(ctx)
	if err != nil {
		t.Fatalf("StartTrial: %v", err)
	}
	if !trial.IsTrial || trial.Title != TrialHabitTitle {
		t.Fatalf("trial habit = %+v", trial)
	}

	u, _ = svc.Stats(ctx)
	if JobChangeStatus(u.JobChange) != JobInTrial {
		t.Fatalf("job=%s, want IN_TRIAL", u.JobChange)
	}

	// One verified trial completion advances progress. XP stays gated
	// at the cap while the trial runs.
	res, err := svc.SubmitEvidence(ctx, trial.ID, "did the thing, every rep logged")
	if err != nil {
		t.Fatalf("SubmitEvidence: %v", err)
	}
	if !res.TrialAdvanced {
		t.Fatal("verified trial completion did not advance progress")
	}
	if res.Reward.XP != 0 {
		t.Fatalf("xp=%d, want 0 at the level cap", res.Reward.XP)
	}

	u, _ = svc.Stats(ctx)
	if u.TrialProgress != 1 {
		t.Fatalf("trial progress=%d, want 1", u.TrialProgress)
	}

	// A rejection resets progress to zero.
	fv.res = verdict(90)
	got, _ := svc.repos.Habits.Get(ctx, trial.ID)
	got.Completed = false
	_ = svc.repos.Habits.Update(ctx, got)
	if _, err := svc.SubmitEvidence(ctx, trial.ID, "trust me"); err != nil {
		t.Fatalf("SubmitEvidence: %v", err)
	}
	u, _ = svc.Stats(ctx)
	if u.TrialProgress != 0 {
		t.Fatalf("trial progress=%d, want 0 after rejection", u.TrialProgress)
	}
}

func TestStartNewDayClearsCompletions(t *testing.T) {
	svc := newTestService(t, &fakeVerifier{res: verdict(5)}, &fakeQuests{})
	ctx := context.Background()

	h := addTestHabit(t, svc, DifficultyEasy, MethodAutoConfirm)
	if _, err := svc.CompleteAutoConfirm(ctx, h.ID); err != nil {
		t.Fatalf("CompleteAutoConfirm: %v", err)
	}

	if err := svc.StartNewDay(ctx); err != nil {
		t.Fatalf("StartNewDay: %v", err)
	}
	got, _ := svc.repos.Habits.Get(ctx, h.ID)
	if got.Completed || got.VerificationStatus != nil {
		t.Fatalf("habit after reset = %+v", got)
	}
	if got.Streak != 1 {
		t.Fatalf("habit streak=%d, want 1 preserved", got.Streak)
	}

	// Completable again on the new day.
	if _, err := svc.CompleteAutoConfirm(ctx, h.ID); err != nil {
		t.Fatalf("second-day completion: %v", err)
	}
}

func TestVerifiedCompletionAdvancesGuildObjective(t *testing.T) {
	svc := newTestService(t, &fakeVerifier{res: verdict(5)}, &fakeQuests{})
	ctx := context.Background()

	h := addTestHabit(t, svc, DifficultyEasy, MethodTextReflection)
	if _, err := svc.SubmitEvidence(ctx, h.ID, "logged every set"); err != nil {
		t.Fatalf("SubmitEvidence: %v", err)
	}

	g, err := svc.Guild(ctx)
	if err != nil {
		t.Fatalf("Guild: %v", err)
	}
	if len(g.Objectives) == 0 || g.Objectives[0].Current != 1 {
		t.Fatalf("objectives = %+v, want current=1", g.Objectives)
	}
}
