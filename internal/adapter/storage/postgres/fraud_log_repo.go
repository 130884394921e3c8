package postgres

import (
	"context"
	"errors"
	"fmt"

	"upi-guard/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// FraudLogRepo implements ports.FraudLogRepository.
type FraudLogRepo struct {
	pool Pool
}

// NewFraudLogRepo creates a new FraudLogRepo.
func NewFraudLogRepo(pool Pool) *FraudLogRepo {
	return &FraudLogRepo{pool: pool}
}

// Create inserts a fraud-log entry within a database transaction. It rides
// the same transaction as the blocked row it documents.
func (r *FraudLogRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.FraudLogEntry) error {
	query := `INSERT INTO fraud_logs (id, txn_id, payer_id, payee_id, amount, probability, reason, action_taken, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.TxnID, e.PayerID, e.PayeeID, e.Amount,
		e.Probability, e.Reason, e.ActionTaken, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fraud log: %w", err)
	}
	return nil
}

// GetByTxnID fetches the fraud-log entry for a transaction. Returns nil when
// the transaction was never blocked.
func (r *FraudLogRepo) GetByTxnID(ctx context.Context, txnID string) (*domain.FraudLogEntry, error) {
	query := `SELECT id, txn_id, payer_id, payee_id, amount, probability, reason, action_taken, created_at
		FROM fraud_logs WHERE txn_id = $1`

	e := &domain.FraudLogEntry{}
	err := r.pool.QueryRow(ctx, query, txnID).Scan(
		&e.ID, &e.TxnID, &e.PayerID, &e.PayeeID, &e.Amount,
		&e.Probability, &e.Reason, &e.ActionTaken, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fraud log: %w", err)
	}
	return e, nil
}

// ListRecent fetches the most recent fraud-log entries.
func (r *FraudLogRepo) ListRecent(ctx context.Context, limit int) ([]domain.FraudLogEntry, error) {
	query := `SELECT id, txn_id, payer_id, payee_id, amount, probability, reason, action_taken, created_at
		FROM fraud_logs ORDER BY created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list fraud logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.FraudLogEntry
	for rows.Next() {
		e := domain.FraudLogEntry{}
		err := rows.Scan(
			&e.ID, &e.TxnID, &e.PayerID, &e.PayeeID, &e.Amount,
			&e.Probability, &e.Reason, &e.ActionTaken, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan fraud log row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fraud log rows: %w", err)
	}
	return entries, nil
}
