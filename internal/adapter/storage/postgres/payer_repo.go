package postgres

import (
	"context"
	"errors"
	"fmt"

	"upi-guard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayerRepo implements ports.PayerRepository.
type PayerRepo struct {
	pool Pool
}

// NewPayerRepo creates a new PayerRepo.
func NewPayerRepo(pool Pool) *PayerRepo {
	return &PayerRepo{pool: pool}
}

// GetByID fetches a payer by UUID. Returns nil when no such payer exists.
func (r *PayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payer, error) {
	query := `SELECT id, mobile, name, age, state_code, zip_code, upi_id, active, created_at
		FROM payers WHERE id = $1`

	p := &domain.Payer{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Mobile, &p.Name, &p.Age,
		&p.StateCode, &p.ZipCode, &p.UPIID, &p.Active, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payer: %w", err)
	}
	return p, nil
}

// Count returns the number of registered payers.
func (r *PayerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count payers: %w", err)
	}
	return n, nil
}
