package engine

import "testing"

func goodQuest() *GeneratedQuest {
	return &GeneratedQuest{
		Title:       "The Iron Path",
		Description: "Forge an unbreakable body.",
		Habits: []GeneratedHabit{
			{Title: "Morning run", Stat: StatSTR, Difficulty: DifficultyMedium, VerificationMethod: MethodGPSCheck, EstimatedTimeMin: 30},
			{Title: "Evening stretch", Stat: StatDEX, Difficulty: DifficultyEasy, VerificationMethod: MethodAutoConfirm, EstimatedTimeMin: 10},
		},
	}
}

func TestValidateGeneratedQuest(t *testing.T) {
	if err := ValidateGeneratedQuest(goodQuest()); err != nil {
		t.Fatalf("valid quest rejected: %v", err)
	}
}

func TestValidateGeneratedQuestFailsClosed(t *testing.T) {
	mutations := []func(*GeneratedQuest){
		func(q *GeneratedQuest) { q.Title = "  " },
		func(q *GeneratedQuest) { q.Habits = nil },
		func(q *GeneratedQuest) { q.Habits[0].Title = "" },
		func(q *GeneratedQuest) { q.Habits[1].Stat = "MANA" },
		func(q *GeneratedQuest) { q.Habits[0].Difficulty = "BRUTAL" },
		func(q *GeneratedQuest) { q.Habits[0].VerificationMethod = "VIBES" },
		func(q *GeneratedQuest) { q.Habits[1].EstimatedTimeMin = -5 },
	}
	for i, mutate := range mutations {
		q := goodQuest()
		mutate(q)
		if err := ValidateGeneratedQuest(q); err == nil {
			t.Fatalf("mutation %d: malformed quest accepted", i)
		}
	}
	if err := ValidateGeneratedQuest(nil); err == nil {
		t.Fatal("nil quest accepted")
	}
}
