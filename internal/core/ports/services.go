package ports

import (
	"context"
	"time"

	"upi-guard/internal/core/domain"

	"github.com/google/uuid"
)

// --- Scoring Collaborator Ports ---

// FraudModel is the narrow interface to the external probability model.
// Predict is fail-fast: any unavailability must resolve to an error promptly,
// never a hang.
type FraudModel interface {
	Predict(ctx context.Context, features domain.FeatureVector) (float64, error)
}

// FeatureScaler applies the training-time normalization parameters to a raw
// feature vector. The parameters are versioned external state; serving-time
// features must be transformed with the same version the model was trained on.
type FeatureScaler interface {
	Transform(raw domain.FeatureVector) (domain.FeatureVector, error)
	Version() string
}

// ModelBundle pairs a model with the scaler version it was trained against.
// Bundles are immutable once published.
type ModelBundle struct {
	Model  FraudModel
	Scaler FeatureScaler
}

// ModelProvider yields the currently deployed model bundle. Implementations
// must support concurrent reads; a nil bundle means the oracle is absent.
type ModelProvider interface {
	Current() *ModelBundle
}

// ScoreResult is the explicit outcome of a scoring call. Degraded is set when
// the oracle was unavailable or erroring and the fallback probability was
// substituted; callers cannot accidentally treat a fallback as a real score.
type ScoreResult struct {
	Probability float64
	Degraded    bool
	Cause       error // Degradation cause, nil when Degraded is false
}

// ScoringService wraps the fraud model behind the fail-open contract:
// it always yields a probability in [0, 1] and never returns an error.
type ScoringService interface {
	Score(ctx context.Context, features domain.FeatureVector) ScoreResult
}

// --- Decision Pipeline Ports ---

// FeatureBuilder converts raw transaction context into the fixed-order
// feature vector. Pure: the clock is injected, never read ambiently.
type FeatureBuilder interface {
	Build(payer *domain.Payer, payee *domain.Payee, amount float64, category int, now time.Time) (domain.FeatureVector, error)
}

// DecisionPolicy applies the configured threshold to a probability.
type DecisionPolicy interface {
	// Decide returns BLOCK iff probability is strictly above the threshold.
	Decide(probability float64) domain.Verdict
	Threshold() float64
}

// TxIDGenerator produces transaction identifiers unique under concurrent
// invocation within a process.
type TxIDGenerator interface {
	Next() string
}

// --- Ledger Port ---

// LedgerOpenParams holds everything needed to durably open a transaction.
type LedgerOpenParams struct {
	TxnID       string
	Payer       *domain.Payer
	Payee       *domain.Payee
	Amount      float64
	Category    int
	Probability float64
	Verdict     domain.Verdict
	Reason      string // Fraud reason, recorded only on the BLOCK path
}

// Ledger owns the transaction lifecycle and the fraud-log side effect.
type Ledger interface {
	// Open creates the transaction row (PENDING on ALLOW, BLOCKED on BLOCK)
	// with probability and fraud flag set in that single write. On BLOCK the
	// fraud-log entry commits in the same storage transaction.
	Open(ctx context.Context, params LedgerOpenParams) (*domain.Transaction, error)
	// Complete transitions PENDING -> COMPLETED. Fails with NotFound for an
	// unknown identifier and InvalidTransition for a terminal transaction.
	Complete(ctx context.Context, txnID string) error
	GetTransaction(ctx context.Context, txnID string) (*domain.Transaction, error)
}

// --- Service Ports (Business Logic) ---

// PaymentService sequences the decision pipeline for a single payment.
type PaymentService interface {
	ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentResult, error)
}

// PaymentRequest holds validated input for payment processing. PayerID is the
// resolved, authenticated payer supplied by the identity boundary.
type PaymentRequest struct {
	PayerID    uuid.UUID
	PayeeUPIID string
	Amount     float64
	Category   int
}

// PaymentResult is returned to the caller after the decision is durable.
type PaymentResult struct {
	Success       bool
	FraudDetected bool
	TransactionID string
	Probability   float64
	Message       string
}

// LedgerStats holds the aggregate counters for the admin overview.
type LedgerStats struct {
	TotalPayers       int64
	TotalPayees       int64
	TotalTransactions int64
	FraudCount        int64
}

// ReportingService defines the read-only dashboard surface.
type ReportingService interface {
	PayerTransactions(ctx context.Context, payerID uuid.UUID, limit int) ([]domain.Transaction, error)
	PayeeCompletedTransactions(ctx context.Context, payeeID uuid.UUID, limit int) ([]domain.Transaction, error)
	RecentTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
	RecentFraudLogs(ctx context.Context, limit int) ([]domain.FraudLogEntry, error)
	Stats(ctx context.Context) (*LedgerStats, error)
}

// --- Identity Boundary ---

// Actor identifies the kind of authenticated principal.
type Actor string

const (
	ActorPayer Actor = "payer"
	ActorPayee Actor = "payee"
	ActorAdmin Actor = "admin"
)

// TokenService validates bearer tokens minted by the identity collaborator
// and yields the resolved principal.
type TokenService interface {
	Generate(subjectID uuid.UUID, actor Actor) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed token claims.
type TokenClaims struct {
	SubjectID uuid.UUID
	Actor     Actor
}
