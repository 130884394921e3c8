package postgres

import (
	"context"
	"testing"
	"time"

	"upi-guard/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(payerID, payeeID uuid.UUID) *domain.Transaction {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Transaction{
		TxnID:            "TXN202601021504050000010001",
		PayerID:          payerID,
		PayeeID:          payeeID,
		Amount:           1250.50,
		Category:         3,
		PayeeUPIID:       "shop@upi",
		FraudProbability: 0.12,
		IsFraud:          false,
		Status:           domain.TransactionStatusPending,
		CreatedAt:        now,
	}
}

func txTestColumns() []string {
	return []string{"txn_id", "payer_id", "payee_id", "amount", "category", "payee_upi_id",
		"fraud_probability", "is_fraud", "status", "created_at"}
}

func txTestRow(t *domain.Transaction) *pgxmock.Rows {
	return pgxmock.NewRows(txTestColumns()).AddRow(
		t.TxnID, t.PayerID, t.PayeeID, t.Amount, t.Category, t.PayeeUPIID,
		t.FraudProbability, t.IsFraud, t.Status, t.CreatedAt,
	)
}

func TestTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New(), uuid.New())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(
			txn.TxnID, txn.PayerID, txn.PayeeID, txn.Amount, txn.Category, txn.PayeeUPIID,
			txn.FraudProbability, txn.IsFraud, txn.Status, txn.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), dbTx, txn)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByTxnID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	txn := newTestTransaction(uuid.New(), uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE txn_id").
		WithArgs(txn.TxnID).
		WillReturnRows(txTestRow(txn))

	result, err := repo.GetByTxnID(context.Background(), txn.TxnID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, txn.TxnID, result.TxnID)
	assert.Equal(t, txn.Amount, result.Amount)
	assert.Equal(t, txn.Status, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_GetByTxnID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM transactions WHERE txn_id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(txTestColumns()))

	result, err := repo.GetByTxnID(context.Background(), "TXN-MISSING")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_CompletePending(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusCompleted, "TXN1", domain.TransactionStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.CompletePending(context.Background(), "TXN1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_CompletePending_NoPendingRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	// A terminal or missing row leaves zero rows affected.
	mock.ExpectExec("UPDATE transactions SET status").
		WithArgs(domain.TransactionStatusCompleted, "TXN-BLOCKED", domain.TransactionStatusPending).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.CompletePending(context.Background(), "TXN-BLOCKED")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListByPayer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	payerID := uuid.New()
	txn := newTestTransaction(payerID, uuid.New())

	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs(payerID, 20).
		WillReturnRows(txTestRow(txn))

	txns, err := repo.ListByPayer(context.Background(), payerID, 20)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, txn.TxnID, txns[0].TxnID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_ListCompletedByPayee(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)
	payeeID := uuid.New()
	txn := newTestTransaction(uuid.New(), payeeID)
	txn.Status = domain.TransactionStatusCompleted

	mock.ExpectQuery("SELECT .+ FROM transactions").
		WithArgs(payeeID, domain.TransactionStatusCompleted, 10).
		WillReturnRows(txTestRow(txn))

	txns, err := repo.ListCompletedByPayee(context.Background(), payeeID, 10)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, domain.TransactionStatusCompleted, txns[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepo_CountAll(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransactionRepo(mock)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(pgxmock.NewRows([]string{"count", "fraud"}).AddRow(int64(9001), int64(37)))

	total, fraud, err := repo.CountAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(9001), total)
	assert.Equal(t, int64(37), fraud)
	assert.NoError(t, mock.ExpectationsWereMet())
}
