package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *Repos {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// Migrations must be idempotent across reopens.
	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewRepos(db)
}

func TestUserDefaults(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	u, err := repos.Users.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateMain: %v", err)
	}
	if u.Level != 1 || u.MaxXP != 100 || u.MaxClassXP != 200 {
		t.Fatalf("progression defaults = %+v", u)
	}
	if u.Gold != 250 || u.Credits != 50 {
		t.Fatalf("currency defaults = gold %v credits %v", u.Gold, u.Credits)
	}
	if u.ClassType != "Neophyte" || u.JobChange != "LOCKED" {
		t.Fatalf("class/job defaults = %s/%s", u.ClassType, u.JobChange)
	}
	if len(u.History) != 7 {
		t.Fatalf("history len = %d, want 7", len(u.History))
	}

	p, err := repos.Profiles.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("profile GetOrCreateMain: %v", err)
	}
	if p.TrustScore != 80 {
		t.Fatalf("trust default = %v, want 80", p.TrustScore)
	}
}

func TestUserRoundTrip(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	u, err := repos.Users.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateMain: %v", err)
	}
	u.Level = 42
	u.XP = 123.5
	u.History = []bool{true, false, true, false, true, false, true}
	u.IsPro = true
	u.DailyReset = time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if err := repos.Users.Update(ctx, u); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repos.Users.Get(ctx, MainUserKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Level != 42 || got.XP != 123.5 || !got.IsPro {
		t.Fatalf("round trip = %+v", got)
	}
	for i := range got.History {
		if got.History[i] != u.History[i] {
			t.Fatalf("history[%d] mismatch", i)
		}
	}
}

func TestHabitRoundTrip(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	desc := "90 minutes, phone in another room"
	h := &Habit{
		ID:                 "h1",
		Title:              "Deep work",
		Description:        &desc,
		Difficulty:         "HARD",
		Stat:               "INT",
		VerificationMethod: "TEXT_REFLECTION",
	}
	if err := repos.Habits.Insert(ctx, h); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repos.Habits.Get(ctx, "h1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Deep work" || got.Description == nil || *got.Description != desc {
		t.Fatalf("round trip = %+v", got)
	}
	if got.VerificationStatus != nil {
		t.Fatal("fresh habit should have no verification status")
	}

	status := "VERIFIED"
	got.Completed = true
	got.Streak = 1
	got.VerificationStatus = &status
	if err := repos.Habits.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = repos.Habits.Get(ctx, "h1")
	if !got.Completed || got.VerificationStatus == nil || *got.VerificationStatus != "VERIFIED" {
		t.Fatalf("updated habit = %+v", got)
	}

	if missing, err := repos.Habits.Get(ctx, "nope"); err != nil || missing != nil {
		t.Fatalf("missing habit = %v, %v", missing, err)
	}
}

func TestSeedCatalog(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	items, err := repos.Items.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("seeded items = %d, want 5", len(items))
	}

	g, err := repos.Guilds.GetMain(ctx)
	if err != nil || g == nil {
		t.Fatalf("GetMain: %v, %v", g, err)
	}
	if g.Name != "Iron Vanguard" {
		t.Fatalf("guild = %+v", g)
	}
	perks, err := repos.Guilds.Perks(ctx, g.ID)
	if err != nil || len(perks) != 2 {
		t.Fatalf("perks = %v, %v", perks, err)
	}
}

func TestVerificationLogOrder(t *testing.T) {
	repos := openTestDB(t)
	ctx := context.Background()

	h := &Habit{ID: "h1", Title: "x", Difficulty: "EASY", Stat: "STR", VerificationMethod: "TEXT_REFLECTION"}
	if err := repos.Habits.Insert(ctx, h); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	for i, status := range []string{"REJECTED", "VERIFIED"} {
		rec := &VerificationRecord{HabitID: "h1", SubmittedAt: base.Add(time.Duration(i) * time.Hour), Status: status}
		if err := repos.Verifications.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	log, err := repos.Verifications.ListByHabit(ctx, "h1")
	if err != nil {
		t.Fatalf("ListByHabit: %v", err)
	}
	if len(log) != 2 || log[0].Status != "VERIFIED" {
		t.Fatalf("log = %+v, want newest first", log)
	}

	n, err := repos.Verifications.CountByStatusSince(ctx, "VERIFIED", base)
	if err != nil || n != 1 {
		t.Fatalf("count = %d, %v", n, err)
	}
}
