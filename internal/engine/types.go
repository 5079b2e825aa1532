package engine

import "strings"

type StatType string

const (
	StatSTR StatType = "STR" // physical
	StatINT StatType = "INT" // mental
	StatDEX StatType = "DEX" // productivity/speed
	StatCHA StatType = "CHA" // social/wellness
)

func (s StatType) IsValid() bool {
	switch s {
	case StatSTR, StatINT, StatDEX, StatCHA:
		return true
	default:
		return false
	}
}

// AllStats is the fixed attribute domain; UserStats.Attributes always
// carries exactly these four keys.
var AllStats = []StatType{StatSTR, StatINT, StatDEX, StatCHA}

// DefaultStat is used when user input is missing/invalid.
const DefaultStat StatType = StatSTR

// ParseStat parses user input to a StatType.
// If input is empty or unrecognized, returns DefaultStat.
func ParseStat(input string) StatType {
	s := StatType(strings.TrimSpace(strings.ToUpper(input)))
	if s.IsValid() {
		return s
	}
	return DefaultStat
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// BaseXP is the unmodified XP award for completing a habit of this
// difficulty. Invalid difficulties are worth nothing.
func (d Difficulty) BaseXP() int {
	switch d {
	case DifficultyEasy:
		return 25
	case DifficultyMedium:
		return 50
	case DifficultyHard:
		return 100
	default:
		return 0
	}
}

func ParseDifficulty(input string) (Difficulty, bool) {
	d := Difficulty(strings.TrimSpace(strings.ToUpper(input)))
	return d, d.IsValid()
}

type VerificationMethod string

const (
	MethodAutoConfirm    VerificationMethod = "AUTO_CONFIRM"
	MethodTextReflection VerificationMethod = "TEXT_REFLECTION"
	MethodGPSCheck       VerificationMethod = "GPS_CHECK"
	MethodPhotoEvidence  VerificationMethod = "PHOTO_EVIDENCE"
	MethodMetadataCheck  VerificationMethod = "METADATA_CHECK"
)

func (m VerificationMethod) IsValid() bool {
	switch m {
	case MethodAutoConfirm, MethodTextReflection, MethodGPSCheck, MethodPhotoEvidence, MethodMetadataCheck:
		return true
	default:
		return false
	}
}

type VerificationStatus string

const (
	StatusPending     VerificationStatus = "PENDING"
	StatusVerified    VerificationStatus = "VERIFIED"
	StatusRejected    VerificationStatus = "REJECTED"
	StatusSoftApprove VerificationStatus = "SOFT_APPROVE" // flagged but paid
)

func (s VerificationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected, StatusSoftApprove:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends a verification attempt.
func (s VerificationStatus) IsTerminal() bool {
	return s == StatusVerified || s == StatusRejected || s == StatusSoftApprove
}

type JobChangeStatus string

// Job-change (ascension) states. One-way forward; no regression.
const (
	JobLocked    JobChangeStatus = "LOCKED"
	JobAvailable JobChangeStatus = "AVAILABLE"
	JobInTrial   JobChangeStatus = "IN_TRIAL"
	JobComplete  JobChangeStatus = "COMPLETE"
)

func (j JobChangeStatus) IsValid() bool {
	switch j {
	case JobLocked, JobAvailable, JobInTrial, JobComplete:
		return true
	default:
		return false
	}
}

type Currency string

const (
	CurrencyGold    Currency = "GOLD"
	CurrencyCredits Currency = "CREDITS"
)

func (c Currency) IsValid() bool {
	return c == CurrencyGold || c == CurrencyCredits
}

// PerkKind identifies a guild perk's mechanical effect. The reward
// calculator matches on kind, never on the display label.
type PerkKind string

const (
	PerkXPBoost      PerkKind = "XP_BOOST"
	PerkFastRefresh  PerkKind = "FAST_REFRESH"
	PerkStreakShield PerkKind = "STREAK_SHIELD"
)

// GuildPerk is the reward calculator's view of a guild perk.
type GuildPerk struct {
	Kind   PerkKind
	Label  string
	Active bool
}

type ItemType string

const (
	ItemSkill       ItemType = "SKILL"
	ItemCosmetic    ItemType = "COSMETIC"
	ItemIntegration ItemType = "INTEGRATION"
	ItemPremium     ItemType = "PREMIUM"
)

func (t ItemType) IsValid() bool {
	switch t {
	case ItemSkill, ItemCosmetic, ItemIntegration, ItemPremium:
		return true
	default:
		return false
	}
}

// EffectKind tags a skill effect variant.
type EffectKind string

const (
	EffectXPBoost    EffectKind = "XP_BOOST"
	EffectGoldBoost  EffectKind = "GOLD_BOOST"
	EffectDefense    EffectKind = "DEFENSE"
	EffectStreakSave EffectKind = "STREAK_SAVE"
	EffectStatBoost  EffectKind = "STAT_BOOST"
	EffectAPIAction  EffectKind = "API_ACTION"
)

func (k EffectKind) IsValid() bool {
	switch k {
	case EffectXPBoost, EffectGoldBoost, EffectDefense, EffectStreakSave, EffectStatBoost, EffectAPIAction:
		return true
	default:
		return false
	}
}

// SkillEffect is a tagged variant: Stat is meaningful only for
// STAT_BOOST, Value carries the magnitude for every kind.
type SkillEffect struct {
	Kind  EffectKind
	Value float64
	Stat  StatType
}
