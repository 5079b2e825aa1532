package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ItemRepo struct {
	db DBTX
}

func NewItemRepo(db DBTX) *ItemRepo {
	return &ItemRepo{db: db}
}

const itemColumns = `id, type, name, description, cost, currency, req_level, req_trust, icon, purchased`

func scanItem(row interface{ Scan(...any) error }) (*MarketItem, error) {
	var (
		it        MarketItem
		purchased int
	)
	if err := row.Scan(&it.ID, &it.Type, &it.Name, &it.Description, &it.Cost,
		&it.Currency, &it.ReqLevel, &it.ReqTrust, &it.Icon, &purchased); err != nil {
		return nil, err
	}
	it.Purchased = purchased != 0
	return &it, nil
}

func (r *ItemRepo) Get(ctx context.Context, id string) (*MarketItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM market_items WHERE id = ?`, id)
	it, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("item get: %w", err)
	}
	return it, nil
}

func (r *ItemRepo) ListAll(ctx context.Context) ([]*MarketItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM market_items ORDER BY cost, id`)
	if err != nil {
		return nil, fmt.Errorf("item list: %w", err)
	}
	defer rows.Close()

	var items []*MarketItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("item scan: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *ItemRepo) MarkPurchased(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE market_items SET purchased = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("item mark purchased: %w", err)
	}
	return nil
}
