package dto

// PaymentRequest is the request body for payment processing. The payer is
// taken from the authenticated token, never from the body.
type PaymentRequest struct {
	PayeeUPIID string  `json:"payee_upi_id" binding:"required,upi_address"`
	Amount     float64 `json:"amount" binding:"required"`
	Category   int     `json:"category" binding:"required"`
}

// PaymentResponse is the response body for a payment decision. A blocked
// payment is a valid outcome, not a transport error: success=false with
// fraud_detected=true and HTTP 200.
type PaymentResponse struct {
	Success       bool    `json:"success"`
	FraudDetected bool    `json:"fraud_detected"`
	TransactionID string  `json:"transaction_id"`
	Probability   float64 `json:"probability"`
	Message       string  `json:"message"`
}

// TransactionResponse is the response body for transaction listings.
type TransactionResponse struct {
	TxnID            string  `json:"txn_id"`
	PayeeUPIID       string  `json:"payee_upi_id"`
	Amount           float64 `json:"amount"`
	Category         int     `json:"category"`
	CategoryName     string  `json:"category_name"`
	FraudProbability float64 `json:"fraud_probability"`
	IsFraud          bool    `json:"is_fraud"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}

// TransactionListResponse wraps a transaction listing.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Count int                   `json:"count"`
}

// FraudLogResponse is the response body for fraud-log listings.
type FraudLogResponse struct {
	TxnID       string  `json:"txn_id"`
	Amount      float64 `json:"amount"`
	Probability float64 `json:"probability"`
	Reason      string  `json:"reason"`
	ActionTaken string  `json:"action_taken"`
	CreatedAt   string  `json:"created_at"`
}

// FraudLogListResponse wraps a fraud-log listing.
type FraudLogListResponse struct {
	Items []FraudLogResponse `json:"items"`
	Count int                `json:"count"`
}

// StatsResponse is the response body for the admin overview.
type StatsResponse struct {
	TotalPayers       int64 `json:"total_payers"`
	TotalPayees       int64 `json:"total_payees"`
	TotalTransactions int64 `json:"total_transactions"`
	FraudCount        int64 `json:"fraud_count"`
}
