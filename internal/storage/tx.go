package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so repos can run
// inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a SQL transaction.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	committed = true
	return nil
}

// Repos bundles every repository over one DBTX.
type Repos struct {
	Users         *UserRepo
	Profiles      *ProfileRepo
	Habits        *HabitRepo
	Skills        *SkillRepo
	Items         *ItemRepo
	Verifications *VerificationRepo
	Guilds        *GuildRepo
}

func NewRepos(db DBTX) *Repos {
	return &Repos{
		Users:         NewUserRepo(db),
		Profiles:      NewProfileRepo(db),
		Habits:        NewHabitRepo(db),
		Skills:        NewSkillRepo(db),
		Items:         NewItemRepo(db),
		Verifications: NewVerificationRepo(db),
		Guilds:        NewGuildRepo(db),
	}
}
