package storage

import "time"

// UserStats is the single user aggregate. Progression fields are only
// ever rewritten wholesale by the engine's update functions; repos
// persist the row as-is.
type UserStats struct {
	Key        string
	Level      int
	XP         float64
	MaxXP      float64
	ClassLevel int
	ClassXP    float64
	MaxClassXP float64

	Streak        int
	LongestStreak int
	History       []bool // last 7 days, most-recent-last

	ClassType string
	AttrSTR   int
	AttrINT   int
	AttrDEX   int
	AttrCHA   int

	Gold    float64
	Credits float64

	SocialRank    int // ordinal, engine.SocialRank
	JobChange     string
	TrialProgress int
	IsPro         bool

	DailyXP      float64
	DailyGold    float64
	DailyCredits float64
	DailyReset   time.Time
}

type UserProfile struct {
	Key                     string
	TrustScore              float64
	Goals                   []string
	Constraints             []string
	Bio                     string
	ShareStats              bool
	ShareActivity           bool
	AllowBehavioralAnalysis bool
}

type Habit struct {
	ID                 string
	Title              string
	Description        *string
	Difficulty         string
	Stat               string
	Completed          bool
	Streak             int
	VerificationMethod string
	VerificationStatus *string
	IsTrial            bool
	CreatedAt          time.Time
}

type Skill struct {
	ID          string
	Name        string
	Description string
	Type        string
	Rank        string
	EffectKind  string
	EffectValue float64
	EffectStat  *string
}

type MarketItem struct {
	ID          string
	Type        string
	Name        string
	Description string
	Cost        float64
	Currency    string
	ReqLevel    int
	ReqTrust    float64
	Icon        string
	Purchased   bool
}

type Guild struct {
	ID          string
	Name        string
	Description string
	TrustPool   float64
}

type GuildPerk struct {
	GuildID string
	Kind    string
	Label   string
	Active  bool
}

type GuildObjective struct {
	ID          string
	GuildID     string
	Description string
	Current     int
	Target      int
	Unit        string
	Reward      string
}

// VerificationRecord is the audit row for one terminal verification
// attempt, including local failures.
type VerificationRecord struct {
	ID          int64
	HabitID     string
	SubmittedAt time.Time
	Status      string
	FraudScore  int
	Confidence  int
	Notes       string
	XPAwarded   int
	GoldAwarded float64
}
