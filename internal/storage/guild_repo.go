package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type GuildRepo struct {
	db DBTX
}

func NewGuildRepo(db DBTX) *GuildRepo {
	return &GuildRepo{db: db}
}

func (r *GuildRepo) GetMain(ctx context.Context) (*Guild, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, description, trust_pool FROM guilds ORDER BY id LIMIT 1`)
	var g Guild
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.TrustPool); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("guild get: %w", err)
	}
	return &g, nil
}

func (r *GuildRepo) Perks(ctx context.Context, guildID string) ([]*GuildPerk, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT guild_id, kind, label, active FROM guild_perks WHERE guild_id = ? ORDER BY kind
	`, guildID)
	if err != nil {
		return nil, fmt.Errorf("guild perks: %w", err)
	}
	defer rows.Close()

	var perks []*GuildPerk
	for rows.Next() {
		var (
			p      GuildPerk
			active int
		)
		if err := rows.Scan(&p.GuildID, &p.Kind, &p.Label, &active); err != nil {
			return nil, fmt.Errorf("guild perk scan: %w", err)
		}
		p.Active = active != 0
		perks = append(perks, &p)
	}
	return perks, rows.Err()
}

func (r *GuildRepo) Objectives(ctx context.Context, guildID string) ([]*GuildObjective, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, guild_id, description, current, target, unit, reward
		FROM guild_objectives WHERE guild_id = ? ORDER BY id
	`, guildID)
	if err != nil {
		return nil, fmt.Errorf("guild objectives: %w", err)
	}
	defer rows.Close()

	var objs []*GuildObjective
	for rows.Next() {
		var o GuildObjective
		if err := rows.Scan(&o.ID, &o.GuildID, &o.Description, &o.Current, &o.Target, &o.Unit, &o.Reward); err != nil {
			return nil, fmt.Errorf("guild objective scan: %w", err)
		}
		objs = append(objs, &o)
	}
	return objs, rows.Err()
}

// AdvanceObjectives bumps every objective in the guild by one, capped at
// its target.
func (r *GuildRepo) AdvanceObjectives(ctx context.Context, guildID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE guild_objectives SET current = MIN(current + 1, target) WHERE guild_id = ?
	`, guildID)
	if err != nil {
		return fmt.Errorf("guild objective advance: %w", err)
	}
	return nil
}
