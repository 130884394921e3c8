package service

import (
	"context"
	"testing"

	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportingTestDeps struct {
	svc       *reportingService
	txRepo    *mocks.MockTransactionRepository
	fraudRepo *mocks.MockFraudLogRepository
	payerRepo *mocks.MockPayerRepository
	payeeRepo *mocks.MockPayeeRepository
	ctrl      *gomock.Controller
}

func setupReportingService(t *testing.T) *reportingTestDeps {
	ctrl := gomock.NewController(t)
	d := &reportingTestDeps{
		txRepo:    mocks.NewMockTransactionRepository(ctrl),
		fraudRepo: mocks.NewMockFraudLogRepository(ctrl),
		payerRepo: mocks.NewMockPayerRepository(ctrl),
		payeeRepo: mocks.NewMockPayeeRepository(ctrl),
		ctrl:      ctrl,
	}
	d.svc = NewReportingService(d.txRepo, d.fraudRepo, d.payerRepo, d.payeeRepo).(*reportingService)
	return d
}

func TestReportingService_PayerTransactions(t *testing.T) {
	d := setupReportingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payerID := uuid.New()
	want := []domain.Transaction{{TxnID: "TXN1"}, {TxnID: "TXN2"}}

	d.txRepo.EXPECT().ListByPayer(ctx, payerID, 20).Return(want, nil)

	got, err := d.svc.PayerTransactions(ctx, payerID, 20)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReportingService_PayeeCompletedTransactions(t *testing.T) {
	d := setupReportingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payeeID := uuid.New()
	want := []domain.Transaction{{TxnID: "TXN1", Status: domain.TransactionStatusCompleted}}

	d.txRepo.EXPECT().ListCompletedByPayee(ctx, payeeID, 10).Return(want, nil)

	got, err := d.svc.PayeeCompletedTransactions(ctx, payeeID, 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReportingService_LimitClamped(t *testing.T) {
	d := setupReportingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	// Out-of-range limits collapse to the cap.
	d.txRepo.EXPECT().ListRecent(ctx, maxReportLimit).Return(nil, nil).Times(2)

	_, err := d.svc.RecentTransactions(ctx, 0)
	require.NoError(t, err)
	_, err = d.svc.RecentTransactions(ctx, 5000)
	require.NoError(t, err)
}

func TestReportingService_RecentFraudLogs(t *testing.T) {
	d := setupReportingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	want := []domain.FraudLogEntry{{TxnID: "TXN-BLOCKED", Probability: 0.92}}

	d.fraudRepo.EXPECT().ListRecent(ctx, 50).Return(want, nil)

	got, err := d.svc.RecentFraudLogs(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReportingService_Stats(t *testing.T) {
	d := setupReportingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.payerRepo.EXPECT().Count(ctx).Return(int64(120), nil)
	d.payeeRepo.EXPECT().Count(ctx).Return(int64(45), nil)
	d.txRepo.EXPECT().CountAll(ctx).Return(int64(9001), int64(37), nil)

	stats, err := d.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalPayers)
	assert.Equal(t, int64(45), stats.TotalPayees)
	assert.Equal(t, int64(9001), stats.TotalTransactions)
	assert.Equal(t, int64(37), stats.FraudCount)
}

func TestReportingService_Stats_CountError(t *testing.T) {
	d := setupReportingService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.payerRepo.EXPECT().Count(ctx).Return(int64(0), assert.AnError)

	stats, err := d.svc.Stats(ctx)
	assert.Nil(t, stats)
	assertAppError(t, err, "SYS_001")
}
