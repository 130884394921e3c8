package postgres

import (
	"context"
	"errors"
	"fmt"

	"upi-guard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayeeRepo implements ports.PayeeRepository.
type PayeeRepo struct {
	pool Pool
}

// NewPayeeRepo creates a new PayeeRepo.
func NewPayeeRepo(pool Pool) *PayeeRepo {
	return &PayeeRepo{pool: pool}
}

// GetByID fetches a payee by UUID. Returns nil when no such payee exists.
func (r *PayeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payee, error) {
	query := `SELECT id, mobile, business_name, age_days, upi_id, active, created_at
		FROM payees WHERE id = $1`

	return r.scanPayee(r.pool.QueryRow(ctx, query, id))
}

// GetByUPIID fetches a payee by its UPI routing address. Returns nil when no
// such payee exists.
func (r *PayeeRepo) GetByUPIID(ctx context.Context, upiID string) (*domain.Payee, error) {
	query := `SELECT id, mobile, business_name, age_days, upi_id, active, created_at
		FROM payees WHERE upi_id = $1`

	return r.scanPayee(r.pool.QueryRow(ctx, query, upiID))
}

// Count returns the number of registered payees.
func (r *PayeeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM payees`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count payees: %w", err)
	}
	return n, nil
}

func (r *PayeeRepo) scanPayee(row pgx.Row) (*domain.Payee, error) {
	p := &domain.Payee{}
	err := row.Scan(&p.ID, &p.Mobile, &p.BusinessName, &p.AgeDays, &p.UPIID, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payee: %w", err)
	}
	return p, nil
}
