package storage

import (
	"context"
	"fmt"
)

type SkillRepo struct {
	db DBTX
}

func NewSkillRepo(db DBTX) *SkillRepo {
	return &SkillRepo{db: db}
}

func (r *SkillRepo) Insert(ctx context.Context, s *Skill) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO skills (id, name, type, rank, description, effect_kind, effect_value, effect_stat)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, s.ID, s.Name, s.Type, s.Rank, s.Description, s.EffectKind, s.EffectValue, s.EffectStat)
	if err != nil {
		return fmt.Errorf("skill insert: %w", err)
	}
	return nil
}

func (r *SkillRepo) ListAll(ctx context.Context) ([]*Skill, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, type, rank, description, effect_kind, effect_value, effect_stat
		FROM skills ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("skill list: %w", err)
	}
	defer rows.Close()

	var skills []*Skill
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Type, &s.Rank, &s.Description,
			&s.EffectKind, &s.EffectValue, &s.EffectStat); err != nil {
			return nil, fmt.Errorf("skill scan: %w", err)
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}
