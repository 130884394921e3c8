package domain

import (
	"time"

	"github.com/google/uuid"
)

// FraudLogEntry records a blocked transaction. Created exactly once, in the
// same storage transaction as the BLOCKED ledger row, and never for completed
// transactions.
type FraudLogEntry struct {
	ID          uuid.UUID `json:"id"`
	TxnID       string    `json:"transaction_id"`
	PayerID     uuid.UUID `json:"payer_id"`
	PayeeID     uuid.UUID `json:"payee_id"`
	Amount      float64   `json:"amount"`
	Probability float64   `json:"probability"`
	Reason      string    `json:"reason"`
	ActionTaken string    `json:"action_taken"`
	CreatedAt   time.Time `json:"created_at"`
}
