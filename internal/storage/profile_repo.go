package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type ProfileRepo struct {
	db DBTX
}

func NewProfileRepo(db DBTX) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context, key string) (*UserProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, trust_score, goals, constraints, bio,
			share_stats, share_activity, allow_behavioral
		FROM user_profile WHERE key = ?
	`, key)

	var (
		p              UserProfile
		goalsRaw       string
		constraintsRaw string
		shareStats     int
		shareActivity  int
		allowAnalysis  int
	)
	if err := row.Scan(
		&p.Key, &p.TrustScore, &goalsRaw, &constraintsRaw, &p.Bio,
		&shareStats, &shareActivity, &allowAnalysis,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("profile get: %w", err)
	}
	p.ShareStats = shareStats != 0
	p.ShareActivity = shareActivity != 0
	p.AllowBehavioralAnalysis = allowAnalysis != 0
	if err := json.Unmarshal([]byte(goalsRaw), &p.Goals); err != nil {
		return nil, fmt.Errorf("unmarshal goals: %w", err)
	}
	if err := json.Unmarshal([]byte(constraintsRaw), &p.Constraints); err != nil {
		return nil, fmt.Errorf("unmarshal constraints: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepo) GetOrCreateMain(ctx context.Context) (*UserProfile, error) {
	p, err := r.Get(ctx, MainUserKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO user_profile (key) VALUES (?)`, MainUserKey); err != nil {
		return nil, fmt.Errorf("profile insert: %w", err)
	}
	return r.Get(ctx, MainUserKey)
}

func (r *ProfileRepo) Update(ctx context.Context, p *UserProfile) error {
	goalsRaw, err := json.Marshal(p.Goals)
	if err != nil {
		return fmt.Errorf("marshal goals: %w", err)
	}
	constraintsRaw, err := json.Marshal(p.Constraints)
	if err != nil {
		return fmt.Errorf("marshal constraints: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE user_profile
		SET trust_score = ?, goals = ?, constraints = ?, bio = ?,
			share_stats = ?, share_activity = ?, allow_behavioral = ?
		WHERE key = ?
	`,
		p.TrustScore, string(goalsRaw), string(constraintsRaw), p.Bio,
		boolToInt(p.ShareStats), boolToInt(p.ShareActivity), boolToInt(p.AllowBehavioralAnalysis),
		p.Key,
	)
	if err != nil {
		return fmt.Errorf("profile update: %w", err)
	}
	return nil
}
