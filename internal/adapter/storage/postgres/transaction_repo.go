package postgres

import (
	"context"
	"errors"
	"fmt"

	"upi-guard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

const txColumns = `txn_id, payer_id, payee_id, amount, category, payee_upi_id,
		fraud_probability, is_fraud, status, created_at`

// Create inserts a new transaction within a database transaction. The fraud
// probability, fraud flag and status are part of the initial row; a unique
// violation on txn_id surfaces unchanged for the caller to classify.
func (r *TransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	query := `INSERT INTO transactions (txn_id, payer_id, payee_id, amount, category, payee_upi_id,
		fraud_probability, is_fraud, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		t.TxnID, t.PayerID, t.PayeeID, t.Amount, t.Category, t.PayeeUPIID,
		t.FraudProbability, t.IsFraud, t.Status, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByTxnID fetches a transaction by its external identifier. Returns nil
// when no such transaction exists.
func (r *TransactionRepo) GetByTxnID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE txn_id = $1`, txColumns)

	return r.scanTransaction(r.pool.QueryRow(ctx, query, txnID))
}

// CompletePending transitions a transaction from PENDING to COMPLETED. The
// status guard in the WHERE clause makes the update a no-op for rows that are
// already terminal; the returned bool reports whether a row was moved.
func (r *TransactionRepo) CompletePending(ctx context.Context, txnID string) (bool, error) {
	query := `UPDATE transactions SET status = $1 WHERE txn_id = $2 AND status = $3`

	tag, err := r.pool.Exec(ctx, query,
		domain.TransactionStatusCompleted, txnID, domain.TransactionStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("complete transaction: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByPayer fetches the payer's most recent transactions.
func (r *TransactionRepo) ListByPayer(ctx context.Context, payerID uuid.UUID, limit int) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions
		WHERE payer_id = $1 ORDER BY created_at DESC LIMIT $2`, txColumns)

	rows, err := r.pool.Query(ctx, query, payerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list payer transactions: %w", err)
	}
	return r.collectTransactions(rows)
}

// ListCompletedByPayee fetches the payee's most recent completed transactions.
func (r *TransactionRepo) ListCompletedByPayee(ctx context.Context, payeeID uuid.UUID, limit int) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions
		WHERE payee_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT $3`, txColumns)

	rows, err := r.pool.Query(ctx, query, payeeID, domain.TransactionStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("list payee transactions: %w", err)
	}
	return r.collectTransactions(rows)
}

// ListRecent fetches the most recent transactions across all payers.
func (r *TransactionRepo) ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions
		ORDER BY created_at DESC LIMIT $1`, txColumns)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent transactions: %w", err)
	}
	return r.collectTransactions(rows)
}

// CountAll returns the total transaction count and how many of them were
// flagged as fraud.
func (r *TransactionRepo) CountAll(ctx context.Context) (int64, int64, error) {
	query := `SELECT COUNT(*), COUNT(*) FILTER (WHERE is_fraud) FROM transactions`

	var total, fraud int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total, &fraud); err != nil {
		return 0, 0, fmt.Errorf("count transactions: %w", err)
	}
	return total, fraud, nil
}

func (r *TransactionRepo) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	t := &domain.Transaction{}
	err := row.Scan(
		&t.TxnID, &t.PayerID, &t.PayeeID, &t.Amount, &t.Category, &t.PayeeUPIID,
		&t.FraudProbability, &t.IsFraud, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	return t, nil
}

func (r *TransactionRepo) collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		t := domain.Transaction{}
		err := rows.Scan(
			&t.TxnID, &t.PayerID, &t.PayeeID, &t.Amount, &t.Category, &t.PayeeUPIID,
			&t.FraudProbability, &t.IsFraud, &t.Status, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return txns, nil
}
