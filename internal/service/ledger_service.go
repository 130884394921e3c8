package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports"
	"upi-guard/internal/metrics"
	"upi-guard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const pgUniqueViolation = "23505"

// fraudActionTaken is the fixed action string recorded with every blocked
// transaction.
const fraudActionTaken = "Transaction blocked"

// LedgerServiceImpl implements ports.Ledger. It exclusively owns Transaction
// and FraudLogEntry rows; nothing else writes them.
type LedgerServiceImpl struct {
	txRepo     ports.TransactionRepository
	fraudRepo  ports.FraudLogRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	txRepo ports.TransactionRepository,
	fraudRepo ports.FraudLogRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		txRepo:     txRepo,
		fraudRepo:  fraudRepo,
		transactor: transactor,
		log:        log,
	}
}

// Open durably creates the transaction row, and on the BLOCK path its fraud
// log, in a single storage transaction. The probability and fraud flag are
// part of the initial write; they are never patched in later.
func (s *LedgerServiceImpl) Open(ctx context.Context, params ports.LedgerOpenParams) (*domain.Transaction, error) {
	now := time.Now().UTC()
	txn := &domain.Transaction{
		TxnID:            params.TxnID,
		PayerID:          params.Payer.ID,
		PayeeID:          params.Payee.ID,
		Amount:           params.Amount,
		Category:         params.Category,
		PayeeUPIID:       params.Payee.UPIID,
		FraudProbability: params.Probability,
		IsFraud:          params.Verdict == domain.VerdictBlock,
		Status:           domain.StatusForVerdict(params.Verdict),
		CreatedAt:        now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		metrics.LedgerWriteErrors.Inc()
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.txRepo.Create(ctx, dbTx, txn); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ErrDuplicateTransaction()
		}
		metrics.LedgerWriteErrors.Inc()
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("create transaction: %w", err))
	}

	if txn.IsFraud {
		entry := &domain.FraudLogEntry{
			ID:          uuid.New(),
			TxnID:       txn.TxnID,
			PayerID:     txn.PayerID,
			PayeeID:     txn.PayeeID,
			Amount:      txn.Amount,
			Probability: txn.FraudProbability,
			Reason:      params.Reason,
			ActionTaken: fraudActionTaken,
			CreatedAt:   now,
		}
		if err := s.fraudRepo.Create(ctx, dbTx, entry); err != nil {
			metrics.LedgerWriteErrors.Inc()
			return nil, apperror.ErrStorageUnavailable(fmt.Errorf("create fraud log: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.ErrDuplicateTransaction()
		}
		metrics.LedgerWriteErrors.Inc()
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("tx_id", txn.TxnID).
		Str("status", string(txn.Status)).
		Float64("probability", txn.FraudProbability).
		Msg("ledger transaction opened")

	return txn, nil
}

// Complete transitions a PENDING transaction to COMPLETED. The row is only
// touched when it is still PENDING; terminal rows stay untouched and the
// failure is surfaced, never swallowed.
func (s *LedgerServiceImpl) Complete(ctx context.Context, txnID string) error {
	ok, err := s.txRepo.CompletePending(ctx, txnID)
	if err != nil {
		metrics.LedgerWriteErrors.Inc()
		return apperror.ErrStorageUnavailable(fmt.Errorf("complete transaction: %w", err))
	}
	if ok {
		return nil
	}

	// Nothing was in PENDING: distinguish unknown from terminal.
	txn, err := s.txRepo.GetByTxnID(ctx, txnID)
	if err != nil {
		return apperror.ErrStorageUnavailable(fmt.Errorf("lookup transaction: %w", err))
	}
	if txn == nil {
		return apperror.ErrNotFound("Transaction")
	}
	return apperror.ErrInvalidTransition()
}

// GetTransaction fetches a transaction by identifier.
func (s *LedgerServiceImpl) GetTransaction(ctx context.Context, txnID string) (*domain.Transaction, error) {
	txn, err := s.txRepo.GetByTxnID(ctx, txnID)
	if err != nil {
		return nil, apperror.ErrStorageUnavailable(fmt.Errorf("get transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("Transaction")
	}
	return txn, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (duplicate transaction identifier).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
