package storage

import (
	"context"
	"fmt"
	"time"
)

type VerificationRepo struct {
	db DBTX
}

func NewVerificationRepo(db DBTX) *VerificationRepo {
	return &VerificationRepo{db: db}
}

func (r *VerificationRepo) Insert(ctx context.Context, v *VerificationRecord) error {
	if v.SubmittedAt.IsZero() {
		v.SubmittedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO verifications (habit_id, submitted_at, status, fraud_score, confidence, notes, xp_awarded, gold_awarded)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, v.HabitID, v.SubmittedAt, v.Status, v.FraudScore, v.Confidence, v.Notes, v.XPAwarded, v.GoldAwarded)
	if err != nil {
		return fmt.Errorf("verification insert: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		v.ID = id
	}
	return nil
}

func (r *VerificationRepo) ListByHabit(ctx context.Context, habitID string) ([]*VerificationRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, habit_id, submitted_at, status, fraud_score, confidence, notes, xp_awarded, gold_awarded
		FROM verifications WHERE habit_id = ? ORDER BY submitted_at DESC, id DESC
	`, habitID)
	if err != nil {
		return nil, fmt.Errorf("verification list: %w", err)
	}
	defer rows.Close()

	var records []*VerificationRecord
	for rows.Next() {
		var v VerificationRecord
		if err := rows.Scan(&v.ID, &v.HabitID, &v.SubmittedAt, &v.Status, &v.FraudScore,
			&v.Confidence, &v.Notes, &v.XPAwarded, &v.GoldAwarded); err != nil {
			return nil, fmt.Errorf("verification scan: %w", err)
		}
		records = append(records, &v)
	}
	return records, rows.Err()
}

// CountByStatusSince reports how many verifications landed with the given
// status at or after the cutoff.
func (r *VerificationRepo) CountByStatusSince(ctx context.Context, status string, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM verifications WHERE status = ? AND submitted_at >= ?
	`, status, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("verification count: %w", err)
	}
	return n, nil
}
