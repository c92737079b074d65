package ledger

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Repository appends and lists order rows. There is no update or delete
// surface; the ledger is append-only by construction.
type Repository interface {
	Append(ctx context.Context, row *OrderRow) error
	Recent(ctx context.Context, limit int) ([]OrderRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, row *OrderRow) error {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("appending ledger row: %w", err)
	}
	return nil
}

func (r *repository) Recent(ctx context.Context, limit int) ([]OrderRow, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var rows []OrderRow
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing ledger rows: %w", err)
	}
	return rows, nil
}
