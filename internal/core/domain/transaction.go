package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus represents the lifecycle state of a transaction.
// PENDING is the only non-terminal state; the only legal transition is
// PENDING -> COMPLETED. Blocked transactions are created directly in BLOCKED
// and never pass through PENDING.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusBlocked   TransactionStatus = "BLOCKED"
)

// Verdict is the binary outcome of applying the decision policy to a fraud
// probability.
type Verdict string

const (
	VerdictAllow Verdict = "ALLOW"
	VerdictBlock Verdict = "BLOCK"
)

// Transaction is a ledger entry for a single payment attempt. The fraud
// probability and flag are set at creation time and never rewritten; a
// transaction in a terminal state is immutable.
//
// Invariant: IsFraud == true implies Status == BLOCKED; IsFraud == false
// implies Status is PENDING or COMPLETED.
type Transaction struct {
	TxnID            string            `json:"transaction_id"`
	PayerID          uuid.UUID         `json:"payer_id"`
	PayeeID          uuid.UUID         `json:"payee_id"`
	Amount           float64           `json:"amount"`
	Category         int               `json:"category"`
	PayeeUPIID       string            `json:"payee_upi_id"`
	FraudProbability float64           `json:"fraud_probability"`
	IsFraud          bool              `json:"is_fraud"`
	Status           TransactionStatus `json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusCompleted ||
		t.Status == TransactionStatusBlocked
}

// CanComplete returns true if the transaction may transition to COMPLETED.
func (t *Transaction) CanComplete() bool {
	return t.Status == TransactionStatusPending
}

// StatusForVerdict maps a decision verdict to the initial transaction status.
func StatusForVerdict(v Verdict) TransactionStatus {
	if v == VerdictBlock {
		return TransactionStatusBlocked
	}
	return TransactionStatusPending
}
