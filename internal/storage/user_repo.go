package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const MainUserKey = "main_user"

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) *UserRepo {
	return &UserRepo{db: db}
}

const userStatsColumns = `key, level, xp, max_xp, class_level, class_xp, max_class_xp,
	streak, longest_streak, history,
	class_type, attr_str, attr_int, attr_dex, attr_cha,
	gold, credits,
	social_rank, job_change, trial_progress, is_pro,
	daily_xp, daily_gold, daily_credits, daily_reset`

func (r *UserRepo) Get(ctx context.Context, key string) (*UserStats, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userStatsColumns+` FROM user_stats WHERE key = ?`, key)

	var (
		u          UserStats
		historyRaw string
		isPro      int
	)
	if err := row.Scan(
		&u.Key, &u.Level, &u.XP, &u.MaxXP, &u.ClassLevel, &u.ClassXP, &u.MaxClassXP,
		&u.Streak, &u.LongestStreak, &historyRaw,
		&u.ClassType, &u.AttrSTR, &u.AttrINT, &u.AttrDEX, &u.AttrCHA,
		&u.Gold, &u.Credits,
		&u.SocialRank, &u.JobChange, &u.TrialProgress, &isPro,
		&u.DailyXP, &u.DailyGold, &u.DailyCredits, &u.DailyReset,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("user get: %w", err)
	}
	u.IsPro = isPro != 0
	if err := json.Unmarshal([]byte(historyRaw), &u.History); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) GetOrCreateMain(ctx context.Context) (*UserStats, error) {
	u, err := r.Get(ctx, MainUserKey)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO user_stats (key) VALUES (?)`, MainUserKey); err != nil {
		return nil, fmt.Errorf("user insert: %w", err)
	}
	return r.Get(ctx, MainUserKey)
}

func (r *UserRepo) Update(ctx context.Context, u *UserStats) error {
	historyRaw, err := json.Marshal(u.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE user_stats
		SET level = ?, xp = ?, max_xp = ?, class_level = ?, class_xp = ?, max_class_xp = ?,
			streak = ?, longest_streak = ?, history = ?,
			class_type = ?, attr_str = ?, attr_int = ?, attr_dex = ?, attr_cha = ?,
			gold = ?, credits = ?,
			social_rank = ?, job_change = ?, trial_progress = ?, is_pro = ?,
			daily_xp = ?, daily_gold = ?, daily_credits = ?, daily_reset = ?
		WHERE key = ?
	`,
		u.Level, u.XP, u.MaxXP, u.ClassLevel, u.ClassXP, u.MaxClassXP,
		u.Streak, u.LongestStreak, string(historyRaw),
		u.ClassType, u.AttrSTR, u.AttrINT, u.AttrDEX, u.AttrCHA,
		u.Gold, u.Credits,
		u.SocialRank, u.JobChange, u.TrialProgress, boolToInt(u.IsPro),
		u.DailyXP, u.DailyGold, u.DailyCredits, u.DailyReset,
		u.Key,
	)
	if err != nil {
		return fmt.Errorf("user update: %w", err)
	}
	return nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
