package integration

import (
	"context"
	"sort"
	"sync"

	"upi-guard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Payer Repo ---

type inMemoryPayerRepo struct {
	mu     sync.RWMutex
	payers map[uuid.UUID]*domain.Payer
}

func newInMemoryPayerRepo() *inMemoryPayerRepo {
	return &inMemoryPayerRepo{payers: make(map[uuid.UUID]*domain.Payer)}
}

func (r *inMemoryPayerRepo) add(p *domain.Payer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payers[p.ID] = p
}

func (r *inMemoryPayerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payers[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *inMemoryPayerRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.payers)), nil
}

// --- In-Memory Payee Repo ---

type inMemoryPayeeRepo struct {
	mu     sync.RWMutex
	payees map[uuid.UUID]*domain.Payee
}

func newInMemoryPayeeRepo() *inMemoryPayeeRepo {
	return &inMemoryPayeeRepo{payees: make(map[uuid.UUID]*domain.Payee)}
}

func (r *inMemoryPayeeRepo) add(p *domain.Payee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payees[p.ID] = p
}

func (r *inMemoryPayeeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payees[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (r *inMemoryPayeeRepo) GetByUPIID(ctx context.Context, upiID string) (*domain.Payee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.payees {
		if p.UPIID == upiID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *inMemoryPayeeRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.payees)), nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	order        []string // insertion order, oldest first
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{transactions: make(map[string]*domain.Transaction)}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.transactions[t.TxnID]; exists {
		return &pgconn.PgError{Code: "23505", ConstraintName: "transactions_pkey"}
	}
	cp := *t
	r.transactions[t.TxnID] = &cp
	r.order = append(r.order, t.TxnID)
	return nil
}

func (r *inMemoryTransactionRepo) GetByTxnID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transactions[txnID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTransactionRepo) CompletePending(ctx context.Context, txnID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.transactions[txnID]
	if !ok || t.Status != domain.TransactionStatusPending {
		return false, nil
	}
	t.Status = domain.TransactionStatusCompleted
	return true, nil
}

func (r *inMemoryTransactionRepo) list(filter func(*domain.Transaction) bool, limit int) []domain.Transaction {
	var result []domain.Transaction
	// Newest first.
	for i := len(r.order) - 1; i >= 0 && len(result) < limit; i-- {
		t := r.transactions[r.order[i]]
		if filter(t) {
			result = append(result, *t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (r *inMemoryTransactionRepo) ListByPayer(ctx context.Context, payerID uuid.UUID, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(t *domain.Transaction) bool { return t.PayerID == payerID }, limit), nil
}

func (r *inMemoryTransactionRepo) ListCompletedByPayee(ctx context.Context, payeeID uuid.UUID, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(t *domain.Transaction) bool {
		return t.PayeeID == payeeID && t.Status == domain.TransactionStatusCompleted
	}, limit), nil
}

func (r *inMemoryTransactionRepo) ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(t *domain.Transaction) bool { return true }, limit), nil
}

func (r *inMemoryTransactionRepo) CountAll(ctx context.Context) (int64, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var fraud int64
	for _, t := range r.transactions {
		if t.IsFraud {
			fraud++
		}
	}
	return int64(len(r.transactions)), fraud, nil
}

// --- In-Memory Fraud Log Repo ---

type inMemoryFraudLogRepo struct {
	mu      sync.RWMutex
	entries []*domain.FraudLogEntry
}

func newInMemoryFraudLogRepo() *inMemoryFraudLogRepo {
	return &inMemoryFraudLogRepo{}
}

func (r *inMemoryFraudLogRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.FraudLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *inMemoryFraudLogRepo) GetByTxnID(ctx context.Context, txnID string) (*domain.FraudLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.TxnID == txnID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryFraudLogRepo) ListRecent(ctx context.Context, limit int) ([]domain.FraudLogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.FraudLogEntry
	for i := len(r.entries) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, *r.entries[i])
	}
	return result, nil
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }
