package ports

import (
	"context"

	"upi-guard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayerRepository defines read-only access to payers. Payer rows are owned by
// the identity subsystem.
type PayerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payer, error)
	Count(ctx context.Context) (int64, error)
}

// PayeeRepository defines read-only access to payees.
type PayeeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payee, error)
	GetByUPIID(ctx context.Context, upiID string) (*domain.Payee, error)
	Count(ctx context.Context) (int64, error)
}

// TransactionRepository defines persistence operations for the transaction
// ledger. Methods accepting pgx.Tx run inside a storage transaction so the
// ledger row and its fraud-log entry commit as one unit.
type TransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transaction *domain.Transaction) error
	GetByTxnID(ctx context.Context, txnID string) (*domain.Transaction, error)
	// CompletePending atomically transitions PENDING -> COMPLETED.
	// Returns false if no row was in PENDING state (unknown or terminal).
	CompletePending(ctx context.Context, txnID string) (bool, error)
	// Reporting queries, most-recent-first.
	ListByPayer(ctx context.Context, payerID uuid.UUID, limit int) ([]domain.Transaction, error)
	ListCompletedByPayee(ctx context.Context, payeeID uuid.UUID, limit int) ([]domain.Transaction, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error)
	CountAll(ctx context.Context) (total int64, fraud int64, err error)
}

// FraudLogRepository defines persistence for fraud-log entries.
type FraudLogRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.FraudLogEntry) error
	GetByTxnID(ctx context.Context, txnID string) (*domain.FraudLogEntry, error)
	ListRecent(ctx context.Context, limit int) ([]domain.FraudLogEntry, error)
}

// PayeeCache is the Redis-layer payee lookup (fast path in front of the
// payee repository).
type PayeeCache interface {
	Get(ctx context.Context, upiID string) (*domain.Payee, error) // nil, nil on miss
	Set(ctx context.Context, payee *domain.Payee) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
