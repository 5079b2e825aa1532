package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Annoyingpheonix/Axiom/internal/engine"
	"github.com/Annoyingpheonix/Axiom/internal/storage"
)

// QuestAgent authors quests: a themed bundle of concrete habits for a
// stated goal. Implements engine.QuestGenerator.
type QuestAgent struct {
	client *Client
}

func NewQuestAgent(client *Client) *QuestAgent {
	return &QuestAgent{client: client}
}

const questTemperature = 0.7

type questPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Habits      []struct {
		Title              string `json:"title"`
		Stat               string `json:"stat"`
		Difficulty         string `json:"difficulty"`
		VerificationMethod string `json:"verificationMethod"`
		EstimatedTimeMin   int    `json:"estimatedTimeMin"`
	} `json:"habits"`
}

func (a *QuestAgent) GenerateQuest(ctx context.Context, goal string, profile storage.UserProfile, class engine.ClassType) (*engine.GeneratedQuest, error) {
	if !a.client.IsConfigured() {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	raw, err := a.client.generate(ctx, questPrompt(goal, profile, class), questTemperature)
	if err != nil {
		return nil, err
	}

	var p questPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to decode quest payload: %w", err)
	}

	quest := &engine.GeneratedQuest{
		Title:       p.Title,
		Description: p.Description,
	}
	for _, h := range p.Habits {
		quest.Habits = append(quest.Habits, engine.GeneratedHabit{
			Title:              h.Title,
			Stat:               engine.StatType(h.Stat),
			Difficulty:         engine.Difficulty(h.Difficulty),
			VerificationMethod: engine.VerificationMethod(h.VerificationMethod),
			EstimatedTimeMin:   h.EstimatedTimeMin,
		})
	}
	return quest, nil
}

func questPrompt(goal string, profile storage.UserProfile, class engine.ClassType) string {
	var b strings.Builder
	b.WriteString("You are the Quest Architect for a gamified self-improvement system.\n")
	fmt.Fprintf(&b, "The player is a %s working toward this goal: %q.\n", class, goal)
	if len(profile.Goals) > 0 {
		fmt.Fprintf(&b, "Their standing goals: %s.\n", strings.Join(profile.Goals, "; "))
	}
	if len(profile.Constraints) > 0 {
		fmt.Fprintf(&b, "Hard constraints to respect: %s.\n", strings.Join(profile.Constraints, "; "))
	}
	b.WriteString(`
Design one quest: a short epic title, a one-sentence description, and 3 to 5 concrete daily habits that advance the goal.

Respond with JSON only, matching exactly:
{
  "title": string,
  "description": string,
  "habits": [
    {
      "title": string,
      "stat": "STR" | "INT" | "DEX" | "CHA",
      "difficulty": "EASY" | "MEDIUM" | "HARD",
      "verificationMethod": "AUTO_CONFIRM" | "TEXT_REFLECTION" | "GPS_CHECK" | "PHOTO_EVIDENCE" | "METADATA_CHECK",
      "estimatedTimeMin": number
    }
  ]
}
Pick the stat each habit genuinely trains. Prefer TEXT_REFLECTION for mental work and AUTO_CONFIRM only for trivial habits.`)
	return b.String()
}
