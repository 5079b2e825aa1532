package engine

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Annoyingpheonix/Axiom/internal/storage"
)

// GenerateQuest asks the quest-authoring agent for a quest toward the
// given goal, validates the payload whole, and persists the resulting
// habits atomically. A failed call or bad payload changes nothing.
func (s *Service) GenerateQuest(ctx context.Context, goal string) (*GeneratedQuest, []*storage.Habit, error) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil, nil, InputRejectedError{Reason: "goal is empty"}
	}

	u, err := s.repos.Users.GetOrCreateMain(ctx)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.repos.Profiles.GetOrCreateMain(ctx)
	if err != nil {
		return nil, nil, err
	}

	quest, err := s.quests.GenerateQuest(ctx, goal, *profile, ParseClass(u.ClassType))
	if err == nil {
		err = ValidateGeneratedQuest(quest)
	}
	if err != nil {
		return nil, nil, ExternalCallError{Op: "generate quest", Err: err}
	}

	habits := make([]*storage.Habit, 0, len(quest.Habits))
	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repos := storage.NewRepos(tx)
		now := time.Now().UTC()
		for _, gh := range quest.Habits {
			desc := quest.Title
			h := &storage.Habit{
				ID:                 uuid.NewString(),
				Title:              gh.Title,
				Description:        &desc,
				Difficulty:         string(gh.Difficulty),
				Stat:               string(gh.Stat),
				VerificationMethod: string(gh.VerificationMethod),
				CreatedAt:          now,
			}
			if err := repos.Habits.Insert(ctx, h); err != nil {
				return err
			}
			habits = append(habits, h)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return quest, habits, nil
}
