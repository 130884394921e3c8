package handler

import (
	"upi-guard/internal/adapter/http/dto"
	"upi-guard/internal/adapter/http/middleware"
	"upi-guard/internal/core/ports"
	"upi-guard/pkg/apperror"
	"upi-guard/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles the payment decision endpoint.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

// ProcessPayment handles POST /api/v1/payments. The payer identity comes
// from the token; a blocked payment is returned as a 200 outcome with
// fraud_detected=true, not as a transport error.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	payerID, ok := subjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.paymentSvc.ProcessPayment(c.Request.Context(), ports.PaymentRequest{
		PayerID:    payerID,
		PayeeUPIID: req.PayeeUPIID,
		Amount:     req.Amount,
		Category:   req.Category,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PaymentResponse{
		Success:       result.Success,
		FraudDetected: result.FraudDetected,
		TransactionID: result.TransactionID,
		Probability:   result.Probability,
		Message:       result.Message,
	})
}

// subjectID extracts the authenticated principal's UUID from the context.
func subjectID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxSubjectID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
