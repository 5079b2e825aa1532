package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS user_stats (
			key TEXT PRIMARY KEY,
			level INTEGER DEFAULT 1,
			xp REAL DEFAULT 0,
			max_xp REAL DEFAULT 100,
			class_level INTEGER DEFAULT 1,
			class_xp REAL DEFAULT 0,
			max_class_xp REAL DEFAULT 200,

			streak INTEGER DEFAULT 0,
			longest_streak INTEGER DEFAULT 0,
			history TEXT DEFAULT '[false,false,false,false,false,false,false]',

			class_type TEXT DEFAULT 'Neophyte',
			attr_str INTEGER DEFAULT 10,
			attr_int INTEGER DEFAULT 10,
			attr_dex INTEGER DEFAULT 10,
			attr_cha INTEGER DEFAULT 10,

			gold REAL DEFAULT 250,
			credits REAL DEFAULT 50,

			social_rank INTEGER DEFAULT 0,
			job_change TEXT DEFAULT 'LOCKED',
			trial_progress INTEGER DEFAULT 0,
			is_pro INTEGER DEFAULT 0,

			daily_xp REAL DEFAULT 0,
			daily_gold REAL DEFAULT 0,
			daily_credits REAL DEFAULT 0,
			daily_reset DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS user_profile (
			key TEXT PRIMARY KEY,
			trust_score REAL DEFAULT 80,
			goals TEXT DEFAULT '[]',
			constraints TEXT DEFAULT '[]',
			bio TEXT DEFAULT '',
			share_stats INTEGER DEFAULT 1,
			share_activity INTEGER DEFAULT 1,
			allow_behavioral INTEGER DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS habits (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			difficulty TEXT NOT NULL,
			stat TEXT NOT NULL,
			completed INTEGER DEFAULT 0,
			streak INTEGER DEFAULT 0,
			verification_method TEXT NOT NULL,
			verification_status TEXT,
			is_trial INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS skills (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			type TEXT NOT NULL,
			rank TEXT NOT NULL,
			effect_kind TEXT NOT NULL,
			effect_value REAL DEFAULT 0,
			effect_stat TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS market_items (
			id TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			cost REAL NOT NULL,
			currency TEXT NOT NULL,
			req_level INTEGER DEFAULT 0,
			req_trust REAL DEFAULT 0,
			icon TEXT DEFAULT '',
			purchased INTEGER DEFAULT 0
		);`,
		// Every terminal verification attempt, including local failures.
		`CREATE TABLE IF NOT EXISTS verifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			habit_id TEXT NOT NULL,
			submitted_at DATETIME NOT NULL,
			status TEXT NOT NULL,
			fraud_score INTEGER DEFAULT 0,
			confidence INTEGER DEFAULT 0,
			notes TEXT DEFAULT '',
			xp_awarded INTEGER DEFAULT 0,
			gold_awarded REAL DEFAULT 0,
			FOREIGN KEY(habit_id) REFERENCES habits(id)
		);`,
		`CREATE TABLE IF NOT EXISTS guilds (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			trust_pool REAL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS guild_perks (
			guild_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			label TEXT NOT NULL,
			active INTEGER DEFAULT 0,
			PRIMARY KEY (guild_id, kind),
			FOREIGN KEY(guild_id) REFERENCES guilds(id)
		);`,
		`CREATE TABLE IF NOT EXISTS guild_objectives (
			id TEXT PRIMARY KEY,
			guild_id TEXT NOT NULL,
			description TEXT NOT NULL,
			current INTEGER DEFAULT 0,
			target INTEGER NOT NULL,
			unit TEXT DEFAULT '',
			reward TEXT DEFAULT '',
			FOREIGN KEY(guild_id) REFERENCES guilds(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_verifications_habit_id ON verifications(habit_id, submitted_at);`,
		`CREATE INDEX IF NOT EXISTS idx_habits_completed ON habits(completed);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return seed(ctx, db)
}

// seed inserts the starter guild and marketplace catalog. Idempotent.
func seed(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`INSERT OR IGNORE INTO guilds (id, name, description, trust_pool)
			VALUES ('g1', 'Iron Vanguard', 'We do not negotiate with mediocrity.', 88);`,
		`INSERT OR IGNORE INTO guild_perks (guild_id, kind, label, active) VALUES
			('g1', 'FAST_REFRESH', 'Fast Quest Refresh', 1),
			('g1', 'XP_BOOST', 'XP Boost (5%)', 1);`,
		`INSERT OR IGNORE INTO guild_objectives (id, guild_id, description, current, target, unit, reward)
			VALUES ('o1', 'g1', 'Complete 50 Verified Workouts', 0, 50, 'reps', 'Streak Freeze +1');`,
		`INSERT OR IGNORE INTO market_items (id, type, name, description, cost, currency, req_level, req_trust, icon) VALUES
			('pro_1', 'PREMIUM', 'AXIOM PRO Membership', '2x Daily Caps, Void Theme, Elite Badge.', 5000, 'CREDITS', 1, 50, '👑'),
			('m1', 'INTEGRATION', 'Calendar Sync', 'Auto-verify schedule based habits.', 500, 'CREDITS', 5, 70, '📅'),
			('m2', 'INTEGRATION', 'Github Link', 'XP for commits. Developer class synergy.', 1000, 'CREDITS', 10, 80, '💻'),
			('c1', 'COSMETIC', 'Void Theme', 'Darker than black UI theme.', 200, 'CREDITS', 10, 0, '🌑'),
			('s1', 'SKILL', 'Flow State', 'Active: 2x XP for 1 hour. Cooldown 24h.', 300, 'CREDITS', 15, 60, '🌊');`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}
	return nil
}
