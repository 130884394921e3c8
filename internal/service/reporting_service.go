package service

import (
	"context"
	"fmt"

	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports"
	"upi-guard/pkg/apperror"

	"github.com/google/uuid"
)

const maxReportLimit = 100

// reportingService implements ports.ReportingService. All queries are
// read-only and most-recent-first with bounded result sizes.
type reportingService struct {
	txRepo    ports.TransactionRepository
	fraudRepo ports.FraudLogRepository
	payerRepo ports.PayerRepository
	payeeRepo ports.PayeeRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	txRepo ports.TransactionRepository,
	fraudRepo ports.FraudLogRepository,
	payerRepo ports.PayerRepository,
	payeeRepo ports.PayeeRepository,
) ports.ReportingService {
	return &reportingService{
		txRepo:    txRepo,
		fraudRepo: fraudRepo,
		payerRepo: payerRepo,
		payeeRepo: payeeRepo,
	}
}

// PayerTransactions returns the payer's most recent transactions.
func (s *reportingService) PayerTransactions(ctx context.Context, payerID uuid.UUID, limit int) ([]domain.Transaction, error) {
	txns, err := s.txRepo.ListByPayer(ctx, payerID, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payer transactions: %w", err))
	}
	return txns, nil
}

// PayeeCompletedTransactions returns the payee's most recent completed
// transactions. Pending and blocked rows are not the payee's business.
func (s *reportingService) PayeeCompletedTransactions(ctx context.Context, payeeID uuid.UUID, limit int) ([]domain.Transaction, error) {
	txns, err := s.txRepo.ListCompletedByPayee(ctx, payeeID, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payee transactions: %w", err))
	}
	return txns, nil
}

// RecentTransactions returns the most recent transactions across all payers.
func (s *reportingService) RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	txns, err := s.txRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list recent transactions: %w", err))
	}
	return txns, nil
}

// RecentFraudLogs returns the most recent fraud-log entries.
func (s *reportingService) RecentFraudLogs(ctx context.Context, limit int) ([]domain.FraudLogEntry, error) {
	entries, err := s.fraudRepo.ListRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list fraud logs: %w", err))
	}
	return entries, nil
}

// Stats returns the aggregate counters for the admin overview.
func (s *reportingService) Stats(ctx context.Context) (*ports.LedgerStats, error) {
	payers, err := s.payerRepo.Count(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count payers: %w", err))
	}
	payees, err := s.payeeRepo.Count(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count payees: %w", err))
	}
	total, fraud, err := s.txRepo.CountAll(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count transactions: %w", err))
	}

	return &ports.LedgerStats{
		TotalPayers:       payers,
		TotalPayees:       payees,
		TotalTransactions: total,
		FraudCount:        fraud,
	}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 || limit > maxReportLimit {
		return maxReportLimit
	}
	return limit
}
