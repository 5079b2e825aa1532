package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Annoyingpheonix/Axiom/internal/storage"
)

// Service wires the progression core to storage and the external
// agent capabilities. All mutation paths run inside a transaction.
type Service struct {
	db       *sql.DB
	repos    *storage.Repos
	quests   QuestGenerator
	verifier EvidenceVerifier

	mu       sync.Mutex
	inflight map[string]bool // habit IDs with a submission in progress
}

func NewService(db *sql.DB, quests QuestGenerator, verifier EvidenceVerifier) *Service {
	return &Service{
		db:       db,
		repos:    storage.NewRepos(db),
		quests:   quests,
		verifier: verifier,
		inflight: make(map[string]bool),
	}
}

// Stats returns the user aggregate, creating it on first run.
func (s *Service) Stats(ctx context.Context) (*storage.UserStats, error) {
	return s.repos.Users.GetOrCreateMain(ctx)
}

func (s *Service) Profile(ctx context.Context) (*storage.UserProfile, error) {
	return s.repos.Profiles.GetOrCreateMain(ctx)
}

func (s *Service) ListHabits(ctx context.Context) ([]*storage.Habit, error) {
	return s.repos.Habits.ListAll(ctx)
}

func (s *Service) ListMarketItems(ctx context.Context) ([]*storage.MarketItem, error) {
	return s.repos.Items.ListAll(ctx)
}

func (s *Service) ListSkills(ctx context.Context) ([]*storage.Skill, error) {
	return s.repos.Skills.ListAll(ctx)
}

func (s *Service) VerificationLog(ctx context.Context, habitID string) ([]*storage.VerificationRecord, error) {
	return s.repos.Verifications.ListByHabit(ctx, habitID)
}

// GuildOverview is the read model for the guild screen.
type GuildOverview struct {
	Guild      *storage.Guild
	Perks      []*storage.GuildPerk
	Objectives []*storage.GuildObjective
}

func (s *Service) Guild(ctx context.Context) (*GuildOverview, error) {
	g, err := s.repos.Guilds.GetMain(ctx)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	perks, err := s.repos.Guilds.Perks(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	objs, err := s.repos.Guilds.Objectives(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	return &GuildOverview{Guild: g, Perks: perks, Objectives: objs}, nil
}

// activePerks loads the main guild's perks in reward-calculator form.
func (s *Service) activePerks(ctx context.Context, repos *storage.Repos) ([]GuildPerk, error) {
	g, err := repos.Guilds.GetMain(ctx)
	if err != nil || g == nil {
		return nil, err
	}
	rows, err := repos.Guilds.Perks(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	perks := make([]GuildPerk, 0, len(rows))
	for _, p := range rows {
		perks = append(perks, GuildPerk{Kind: PerkKind(p.Kind), Label: p.Label, Active: p.Active})
	}
	return perks, nil
}

// AddHabit creates a manually-authored habit.
func (s *Service) AddHabit(ctx context.Context, title, description string, difficulty Difficulty, stat StatType, method VerificationMethod) (*storage.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, InputRejectedError{Reason: "habit title is empty"}
	}
	if !difficulty.IsValid() {
		return nil, InputRejectedError{Reason: "unknown difficulty"}
	}
	if !stat.IsValid() {
		stat = DefaultStat
	}
	if !method.IsValid() {
		method = MethodTextReflection
	}

	h := &storage.Habit{
		ID:                 uuid.NewString(),
		Title:              title,
		Difficulty:         string(difficulty),
		Stat:               string(stat),
		VerificationMethod: string(method),
		CreatedAt:          time.Now().UTC(),
	}
	if description = strings.TrimSpace(description); description != "" {
		h.Description = &description
	}
	if err := s.repos.Habits.Insert(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// StartNewDay clears every habit's completed flag and verdict so the
// day's habits can be attempted again. Streaks and earnings are
// untouched; daily caps roll over on their own UTC window.
func (s *Service) StartNewDay(ctx context.Context) error {
	return s.repos.Habits.ResetCompletions(ctx)
}

// SetClass assigns the player class from a four-letter type-indicator
// result. Part of onboarding; safe to re-run.
func (s *Service) SetClass(ctx context.Context, indicator string) (ClassType, error) {
	class := ClassForIndicator(indicator)
	u, err := s.repos.Users.GetOrCreateMain(ctx)
	if err != nil {
		return "", err
	}
	u.ClassType = string(class)
	if err := s.repos.Users.Update(ctx, u); err != nil {
		return "", err
	}
	return class, nil
}

// PurchaseItem settles a marketplace purchase atomically.
func (s *Service) PurchaseItem(ctx context.Context, itemID string) (*PurchaseOutcome, error) {
	var out PurchaseOutcome
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repos := storage.NewRepos(tx)

		item, err := repos.Items.Get(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return InputRejectedError{Reason: fmt.Sprintf("no such item %q", itemID)}
		}
		u, err := repos.Users.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		p, err := repos.Profiles.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}

		out, err = Purchase(*item, *u, p.TrustScore)
		if err != nil {
			return err
		}

		if err := repos.Users.Update(ctx, &out.Stats); err != nil {
			return err
		}
		if err := repos.Items.MarkPurchased(ctx, item.ID); err != nil {
			return err
		}
		if out.Skill != nil {
			if err := repos.Skills.Insert(ctx, out.Skill); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// StartTrial begins the Trial of Consistency: AVAILABLE → IN_TRIAL,
// plus the injected trial habit whose verified completions drive
// progress.
func (s *Service) StartTrial(ctx context.Context) (*storage.Habit, error) {
	var trial *storage.Habit
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repos := storage.NewRepos(tx)

		u, err := repos.Users.GetOrCreateMain(ctx)
		if err != nil {
			return err
		}
		if JobChangeStatus(u.JobChange) != JobAvailable {
			return InputRejectedError{Reason: fmt.Sprintf("job change is %s, not AVAILABLE", u.JobChange)}
		}

		u.JobChange = string(JobInTrial)
		u.TrialProgress = 0
		if err := repos.Users.Update(ctx, u); err != nil {
			return err
		}

		desc := "Complete and verify this habit 7 times. A rejected submission resets progress."
		trial = &storage.Habit{
			ID:                 uuid.NewString(),
			Title:              TrialHabitTitle,
			Description:        &desc,
			Difficulty:         string(DifficultyHard),
			Stat:               string(StatSTR),
			VerificationMethod: string(MethodTextReflection),
			IsTrial:            true,
			CreatedAt:          time.Now().UTC(),
		}
		return repos.Habits.Insert(ctx, trial)
	})
	if err != nil {
		return nil, err
	}
	return trial, nil
}
