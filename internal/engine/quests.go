package engine

import "strings"

// GeneratedQuest is the schema the core expects back from the quest
// generation capability.
type GeneratedQuest struct {
	Title       string
	Description string
	Habits      []GeneratedHabit
}

type GeneratedHabit struct {
	Title              string
	Stat               StatType
	Difficulty         Difficulty
	VerificationMethod VerificationMethod
	EstimatedTimeMin   int
}

// ValidateGeneratedQuest rejects a malformed quest payload whole: one
// bad habit invalidates the entire quest rather than being silently
// dropped or coerced.
func ValidateGeneratedQuest(q *GeneratedQuest) error {
	if q == nil {
		return PayloadError{Field: "quest", Reason: "missing"}
	}
	if strings.TrimSpace(q.Title) == "" {
		return PayloadError{Field: "title", Reason: "empty"}
	}
	if len(q.Habits) == 0 {
		return PayloadError{Field: "habits", Reason: "empty"}
	}
	for _, h := range q.Habits {
		if strings.TrimSpace(h.Title) == "" {
			return PayloadError{Field: "habits.title", Reason: "empty"}
		}
		if !h.Stat.IsValid() {
			return PayloadError{Field: "habits.stat", Reason: "unknown stat " + string(h.Stat)}
		}
		if !h.Difficulty.IsValid() {
			return PayloadError{Field: "habits.difficulty", Reason: "unknown difficulty " + string(h.Difficulty)}
		}
		if !h.VerificationMethod.IsValid() {
			return PayloadError{Field: "habits.verificationMethod", Reason: "unknown method " + string(h.VerificationMethod)}
		}
		if h.EstimatedTimeMin < 0 {
			return PayloadError{Field: "habits.estimatedTimeMin", Reason: "negative"}
		}
	}
	return nil
}
