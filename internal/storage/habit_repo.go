package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type HabitRepo struct {
	db DBTX
}

func NewHabitRepo(db DBTX) *HabitRepo {
	return &HabitRepo{db: db}
}

const habitColumns = `id, title, description, difficulty, stat, completed, streak,
	verification_method, verification_status, is_trial, created_at`

func scanHabit(row interface{ Scan(...any) error }) (*Habit, error) {
	var (
		h         Habit
		completed int
		isTrial   int
	)
	if err := row.Scan(
		&h.ID, &h.Title, &h.Description, &h.Difficulty, &h.Stat, &completed, &h.Streak,
		&h.VerificationMethod, &h.VerificationStatus, &isTrial, &h.CreatedAt,
	); err != nil {
		return nil, err
	}
	h.Completed = completed != 0
	h.IsTrial = isTrial != 0
	return &h, nil
}

func (r *HabitRepo) Get(ctx context.Context, id string) (*Habit, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("habit get: %w", err)
	}
	return h, nil
}

func (r *HabitRepo) ListAll(ctx context.Context) ([]*Habit, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+habitColumns+` FROM habits ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("habit list: %w", err)
	}
	defer rows.Close()

	var habits []*Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("habit scan: %w", err)
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (r *HabitRepo) Insert(ctx context.Context, h *Habit) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO habits (id, title, description, difficulty, stat, completed, streak,
			verification_method, verification_status, is_trial, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		h.ID, h.Title, h.Description, h.Difficulty, h.Stat, boolToInt(h.Completed), h.Streak,
		h.VerificationMethod, h.VerificationStatus, boolToInt(h.IsTrial), h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("habit insert: %w", err)
	}
	return nil
}

func (r *HabitRepo) Update(ctx context.Context, h *Habit) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE habits
		SET title = ?, description = ?, difficulty = ?, stat = ?, completed = ?, streak = ?,
			verification_method = ?, verification_status = ?, is_trial = ?
		WHERE id = ?
	`,
		h.Title, h.Description, h.Difficulty, h.Stat, boolToInt(h.Completed), h.Streak,
		h.VerificationMethod, h.VerificationStatus, boolToInt(h.IsTrial),
		h.ID,
	)
	if err != nil {
		return fmt.Errorf("habit update: %w", err)
	}
	return nil
}

// ResetCompletions clears the completed flag on every habit, starting a
// fresh day without touching per-habit streaks.
func (r *HabitRepo) ResetCompletions(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE habits SET completed = 0, verification_status = NULL`)
	if err != nil {
		return fmt.Errorf("habit reset: %w", err)
	}
	return nil
}
