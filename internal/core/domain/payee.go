package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payee is a registered merchant receiving payments. Owned by the identity
// subsystem; this core only reads it. The UPI ID is the routing address
// payments are addressed to.
type Payee struct {
	ID           uuid.UUID `json:"id"`
	Mobile       string    `json:"mobile"`
	BusinessName string    `json:"business_name"`
	AgeDays      int       `json:"age_days"` // Days since onboarding
	UPIID        string    `json:"upi_id"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsActive returns true if the payee can receive payments.
func (p *Payee) IsActive() bool {
	return p.Active
}
