package service

import (
	"context"
	"math"
	"testing"

	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports"
	"upi-guard/internal/core/ports/mocks"
	"upi-guard/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentTestDeps struct {
	svc        *PaymentServiceImpl
	payerRepo  *mocks.MockPayerRepository
	payeeRepo  *mocks.MockPayeeRepository
	payeeCache *mocks.MockPayeeCache
	scorer     *mocks.MockScoringService
	ledger     *mocks.MockLedger
	ctrl       *gomock.Controller
}

func setupPaymentService(t *testing.T) *paymentTestDeps {
	ctrl := gomock.NewController(t)
	d := &paymentTestDeps{
		payerRepo:  mocks.NewMockPayerRepository(ctrl),
		payeeRepo:  mocks.NewMockPayeeRepository(ctrl),
		payeeCache: mocks.NewMockPayeeCache(ctrl),
		scorer:     mocks.NewMockScoringService(ctrl),
		ledger:     mocks.NewMockLedger(ctrl),
		ctrl:       ctrl,
	}
	policy, err := NewDecisionPolicy(0.5)
	require.NoError(t, err)

	d.svc = NewPaymentService(
		d.payerRepo, d.payeeRepo, d.payeeCache,
		NewFeatureBuilder(), d.scorer, policy,
		d.ledger, NewTxIDGenerator(), zerolog.Nop(),
	)
	return d
}

func testPayer() *domain.Payer {
	return &domain.Payer{
		ID:        uuid.New(),
		Mobile:    "9876543210",
		Name:      "Asha",
		Age:       34,
		StateCode: 27,
		ZipCode:   400001,
		UPIID:     "asha@upi",
		Active:    true,
	}
}

func testPayee() *domain.Payee {
	return &domain.Payee{
		ID:           uuid.New(),
		BusinessName: "Corner Grocery",
		AgeDays:      560,
		UPIID:        "grocery@upi",
		Active:       true,
	}
}

func TestPaymentService_ProcessPayment_Allowed(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()
	payee := testPayee()

	req := ports.PaymentRequest{
		PayerID:    payer.ID,
		PayeeUPIID: payee.UPIID,
		Amount:     450.0,
		Category:   1,
	}

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, payee.UPIID).Return(nil, nil)
	d.payeeRepo.EXPECT().GetByUPIID(ctx, payee.UPIID).Return(payee, nil)
	d.payeeCache.EXPECT().Set(ctx, payee).Return(nil)
	d.scorer.EXPECT().Score(ctx, gomock.Any()).Return(ports.ScoreResult{Probability: 0.12})

	d.ledger.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.LedgerOpenParams) (*domain.Transaction, error) {
			assert.Equal(t, domain.VerdictAllow, params.Verdict)
			assert.Equal(t, 0.12, params.Probability)
			assert.NotEmpty(t, params.TxnID)
			return &domain.Transaction{
				TxnID:  params.TxnID,
				Status: domain.TransactionStatusPending,
			}, nil
		})
	d.ledger.EXPECT().Complete(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.ProcessPayment(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Success)
	assert.False(t, result.FraudDetected)
	assert.Equal(t, 0.12, result.Probability)
	assert.Equal(t, "Payment successful", result.Message)
	assert.NotEmpty(t, result.TransactionID)
}

func TestPaymentService_ProcessPayment_Blocked(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()
	payee := testPayee()

	req := ports.PaymentRequest{
		PayerID:    payer.ID,
		PayeeUPIID: payee.UPIID,
		Amount:     99000.0,
		Category:   7,
	}

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, payee.UPIID).Return(nil, nil)
	d.payeeRepo.EXPECT().GetByUPIID(ctx, payee.UPIID).Return(payee, nil)
	d.payeeCache.EXPECT().Set(ctx, payee).Return(nil)
	d.scorer.EXPECT().Score(ctx, gomock.Any()).Return(ports.ScoreResult{Probability: 0.92})

	d.ledger.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.LedgerOpenParams) (*domain.Transaction, error) {
			assert.Equal(t, domain.VerdictBlock, params.Verdict)
			assert.Equal(t, "Fraud probability: 92.00%", params.Reason)
			return &domain.Transaction{
				TxnID:   params.TxnID,
				IsFraud: true,
				Status:  domain.TransactionStatusBlocked,
			}, nil
		})
	// No Complete expectation: a blocked payment must never be completed.

	result, err := d.svc.ProcessPayment(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Success)
	assert.True(t, result.FraudDetected)
	assert.Equal(t, 0.92, result.Probability)
	assert.Contains(t, result.Message, "92.00")
	assert.NotEmpty(t, result.TransactionID)
}

func TestPaymentService_ProcessPayment_ThresholdBoundaryAllows(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()
	payee := testPayee()

	req := ports.PaymentRequest{PayerID: payer.ID, PayeeUPIID: payee.UPIID, Amount: 100, Category: 2}

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, payee.UPIID).Return(nil, nil)
	d.payeeRepo.EXPECT().GetByUPIID(ctx, payee.UPIID).Return(payee, nil)
	d.payeeCache.EXPECT().Set(ctx, payee).Return(nil)
	// Exactly at the threshold: strictly-greater comparison lets it through.
	d.scorer.EXPECT().Score(ctx, gomock.Any()).Return(ports.ScoreResult{Probability: 0.5})

	d.ledger.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.LedgerOpenParams) (*domain.Transaction, error) {
			assert.Equal(t, domain.VerdictAllow, params.Verdict)
			return &domain.Transaction{TxnID: params.TxnID, Status: domain.TransactionStatusPending}, nil
		})
	d.ledger.EXPECT().Complete(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.ProcessPayment(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestPaymentService_ProcessPayment_DegradedScoringAllows(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()
	payee := testPayee()

	req := ports.PaymentRequest{PayerID: payer.ID, PayeeUPIID: payee.UPIID, Amount: 800, Category: 4}

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, payee.UPIID).Return(nil, nil)
	d.payeeRepo.EXPECT().GetByUPIID(ctx, payee.UPIID).Return(payee, nil)
	d.payeeCache.EXPECT().Set(ctx, payee).Return(nil)
	d.scorer.EXPECT().Score(ctx, gomock.Any()).Return(ports.ScoreResult{
		Probability: FallbackProbability,
		Degraded:    true,
		Cause:       assert.AnError,
	})

	d.ledger.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.LedgerOpenParams) (*domain.Transaction, error) {
			assert.Equal(t, domain.VerdictAllow, params.Verdict)
			assert.Equal(t, FallbackProbability, params.Probability)
			return &domain.Transaction{TxnID: params.TxnID, Status: domain.TransactionStatusPending}, nil
		})
	d.ledger.EXPECT().Complete(ctx, gomock.Any()).Return(nil)

	result, err := d.svc.ProcessPayment(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, FallbackProbability, result.Probability)
}

func TestPaymentService_ProcessPayment_InvalidAmount(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	for _, amount := range []float64{0, -50, math.NaN(), math.Inf(1)} {
		req := ports.PaymentRequest{
			PayerID:    uuid.New(),
			PayeeUPIID: "payee@upi",
			Amount:     amount,
			Category:   1,
		}
		result, err := d.svc.ProcessPayment(context.Background(), req)
		assert.Nil(t, result)
		assertAppError(t, err, "PAY_001")
	}
}

func TestPaymentService_ProcessPayment_InvalidCategory(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	for _, category := range []int{0, -1, 11} {
		req := ports.PaymentRequest{
			PayerID:    uuid.New(),
			PayeeUPIID: "payee@upi",
			Amount:     100,
			Category:   category,
		}
		result, err := d.svc.ProcessPayment(context.Background(), req)
		assert.Nil(t, result)
		assertAppError(t, err, "PAY_002")
	}
}

func TestPaymentService_ProcessPayment_PayerNotFound(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payerID := uuid.New()

	d.payerRepo.EXPECT().GetByID(ctx, payerID).Return(nil, nil)

	req := ports.PaymentRequest{PayerID: payerID, PayeeUPIID: "payee@upi", Amount: 100, Category: 1}
	result, err := d.svc.ProcessPayment(ctx, req)
	assert.Nil(t, result)
	assertAppError(t, err, "PAY_006")
}

func TestPaymentService_ProcessPayment_PayeeNotFound(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, "ghost@upi").Return(nil, nil)
	d.payeeRepo.EXPECT().GetByUPIID(ctx, "ghost@upi").Return(nil, nil)
	// No scorer or ledger expectations: rejection happens before scoring.

	req := ports.PaymentRequest{PayerID: payer.ID, PayeeUPIID: "ghost@upi", Amount: 100, Category: 1}
	result, err := d.svc.ProcessPayment(ctx, req)
	assert.Nil(t, result)
	assertAppError(t, err, "PAY_003")
}

func TestPaymentService_ProcessPayment_PayeeCacheHit(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()
	payee := testPayee()

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, payee.UPIID).Return(payee, nil)
	// Cache hit: the repository is never consulted and nothing is re-cached.
	d.scorer.EXPECT().Score(ctx, gomock.Any()).Return(ports.ScoreResult{Probability: 0.2})
	d.ledger.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.LedgerOpenParams) (*domain.Transaction, error) {
			return &domain.Transaction{TxnID: params.TxnID, Status: domain.TransactionStatusPending}, nil
		})
	d.ledger.EXPECT().Complete(ctx, gomock.Any()).Return(nil)

	req := ports.PaymentRequest{PayerID: payer.ID, PayeeUPIID: payee.UPIID, Amount: 100, Category: 1}
	result, err := d.svc.ProcessPayment(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestPaymentService_ProcessPayment_PayeeCacheErrorFallsThrough(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()
	payee := testPayee()

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, payee.UPIID).Return(nil, assert.AnError)
	d.payeeRepo.EXPECT().GetByUPIID(ctx, payee.UPIID).Return(payee, nil)
	d.payeeCache.EXPECT().Set(ctx, payee).Return(assert.AnError)
	d.scorer.EXPECT().Score(ctx, gomock.Any()).Return(ports.ScoreResult{Probability: 0.2})
	d.ledger.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.LedgerOpenParams) (*domain.Transaction, error) {
			return &domain.Transaction{TxnID: params.TxnID, Status: domain.TransactionStatusPending}, nil
		})
	d.ledger.EXPECT().Complete(ctx, gomock.Any()).Return(nil)

	req := ports.PaymentRequest{PayerID: payer.ID, PayeeUPIID: payee.UPIID, Amount: 100, Category: 1}
	result, err := d.svc.ProcessPayment(ctx, req)
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestPaymentService_ProcessPayment_LedgerOpenErrorPropagates(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()
	payee := testPayee()

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, payee.UPIID).Return(payee, nil)
	d.scorer.EXPECT().Score(ctx, gomock.Any()).Return(ports.ScoreResult{Probability: 0.2})
	d.ledger.EXPECT().Open(ctx, gomock.Any()).Return(nil, apperror.ErrDuplicateTransaction())

	req := ports.PaymentRequest{PayerID: payer.ID, PayeeUPIID: payee.UPIID, Amount: 100, Category: 1}
	result, err := d.svc.ProcessPayment(ctx, req)
	assert.Nil(t, result)
	assertAppError(t, err, "PAY_004")
}

func TestPaymentService_ProcessPayment_CompleteErrorPropagates(t *testing.T) {
	d := setupPaymentService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	payer := testPayer()
	payee := testPayee()

	d.payerRepo.EXPECT().GetByID(ctx, payer.ID).Return(payer, nil)
	d.payeeCache.EXPECT().Get(ctx, payee.UPIID).Return(payee, nil)
	d.scorer.EXPECT().Score(ctx, gomock.Any()).Return(ports.ScoreResult{Probability: 0.2})
	d.ledger.EXPECT().Open(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, params ports.LedgerOpenParams) (*domain.Transaction, error) {
			return &domain.Transaction{TxnID: params.TxnID, Status: domain.TransactionStatusPending}, nil
		})
	d.ledger.EXPECT().Complete(ctx, gomock.Any()).Return(apperror.ErrStorageUnavailable(assert.AnError))

	req := ports.PaymentRequest{PayerID: payer.ID, PayeeUPIID: payee.UPIID, Amount: 100, Category: 1}
	result, err := d.svc.ProcessPayment(ctx, req)
	assert.Nil(t, result)
	assertAppError(t, err, "SYS_002")
}
