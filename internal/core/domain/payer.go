package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payer is a registered payment sender. Owned by the identity subsystem;
// this core only reads it.
type Payer struct {
	ID        uuid.UUID `json:"id"`
	Mobile    string    `json:"mobile"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	StateCode int       `json:"state_code"`
	ZipCode   int       `json:"zip_code"`
	UPIID     string    `json:"upi_id"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
