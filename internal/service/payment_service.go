package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports"
	"upi-guard/internal/metrics"
	"upi-guard/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService: the orchestrator for
// a single payment flow. The fraud decision is made and durably recorded
// before the caller ever hears "success"; a BLOCK verdict is never followed
// by a completion.
type PaymentServiceImpl struct {
	payerRepo  ports.PayerRepository
	payeeRepo  ports.PayeeRepository
	payeeCache ports.PayeeCache
	features   ports.FeatureBuilder
	scorer     ports.ScoringService
	policy     ports.DecisionPolicy
	ledger     ports.Ledger
	idGen      ports.TxIDGenerator
	now        func() time.Time
	log        zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl on the real clock.
func NewPaymentService(
	payerRepo ports.PayerRepository,
	payeeRepo ports.PayeeRepository,
	payeeCache ports.PayeeCache,
	features ports.FeatureBuilder,
	scorer ports.ScoringService,
	policy ports.DecisionPolicy,
	ledger ports.Ledger,
	idGen ports.TxIDGenerator,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		payerRepo:  payerRepo,
		payeeRepo:  payeeRepo,
		payeeCache: payeeCache,
		features:   features,
		scorer:     scorer,
		policy:     policy,
		ledger:     ledger,
		idGen:      idGen,
		now:        time.Now,
		log:        log,
	}
}

// WithClock overrides the orchestrator clock. Test hook.
func (s *PaymentServiceImpl) WithClock(now func() time.Time) *PaymentServiceImpl {
	s.now = now
	return s
}

// ProcessPayment runs the decision pipeline: resolve -> build features ->
// score -> decide -> open ledger (with fraud log on BLOCK) -> complete on
// ALLOW. Input and lookup failures reject before any scoring or persistence.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentResult, error) {
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return nil, apperror.ErrInvalidAmount()
	}
	if !domain.ValidCategory(req.Category) {
		return nil, apperror.ErrInvalidCategory()
	}

	payer, err := s.payerRepo.GetByID(ctx, req.PayerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch payer: %w", err))
	}
	if payer == nil || !payer.Active {
		return nil, apperror.ErrNotFound("Payer")
	}

	payee, err := s.resolvePayee(ctx, req.PayeeUPIID)
	if err != nil {
		return nil, err
	}

	features, err := s.features.Build(payer, payee, req.Amount, req.Category, s.now())
	if err != nil {
		return nil, err
	}

	// Scoring never fails: degraded oracles resolve to the fallback inside
	// the scoring service.
	score := s.scorer.Score(ctx, features)

	verdict := s.policy.Decide(score.Probability)
	metrics.DecisionsTotal.WithLabelValues(string(verdict)).Inc()

	txnID := s.idGen.Next()
	txn, err := s.ledger.Open(ctx, ports.LedgerOpenParams{
		TxnID:       txnID,
		Payer:       payer,
		Payee:       payee,
		Amount:      req.Amount,
		Category:    req.Category,
		Probability: score.Probability,
		Verdict:     verdict,
		Reason:      fmt.Sprintf("Fraud probability: %.2f%%", score.Probability*100),
	})
	if err != nil {
		return nil, err
	}

	if verdict == domain.VerdictBlock {
		s.log.Warn().
			Str("tx_id", txn.TxnID).
			Str("payee_upi", payee.UPIID).
			Float64("probability", score.Probability).
			Msg("payment blocked by fraud policy")

		return &ports.PaymentResult{
			Success:       false,
			FraudDetected: true,
			TransactionID: txn.TxnID,
			Probability:   score.Probability,
			Message:       fmt.Sprintf("Transaction blocked due to fraud risk (%.2f%%)", score.Probability*100),
		}, nil
	}

	// Completion is reported only after the ledger has durably recorded it.
	if err := s.ledger.Complete(ctx, txn.TxnID); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("tx_id", txn.TxnID).
		Str("payee_upi", payee.UPIID).
		Float64("amount", req.Amount).
		Float64("probability", score.Probability).
		Bool("scoring_degraded", score.Degraded).
		Msg("payment completed")

	return &ports.PaymentResult{
		Success:       true,
		FraudDetected: false,
		TransactionID: txn.TxnID,
		Probability:   score.Probability,
		Message:       "Payment successful",
	}, nil
}

// resolvePayee looks up the payee by routing address, cache first.
func (s *PaymentServiceImpl) resolvePayee(ctx context.Context, upiID string) (*domain.Payee, error) {
	if s.payeeCache != nil {
		cached, err := s.payeeCache.Get(ctx, upiID)
		if err != nil {
			s.log.Warn().Err(err).Str("payee_upi", upiID).Msg("payee cache lookup failed, falling through to DB")
		}
		if cached != nil {
			return cached, nil
		}
	}

	payee, err := s.payeeRepo.GetByUPIID(ctx, upiID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("fetch payee: %w", err))
	}
	if payee == nil || !payee.IsActive() {
		return nil, apperror.ErrPayeeNotFound()
	}

	if s.payeeCache != nil {
		if err := s.payeeCache.Set(ctx, payee); err != nil {
			s.log.Warn().Err(err).Str("payee_upi", upiID).Msg("failed to cache payee")
		}
	}
	return payee, nil
}
