package handler

import (
	"strconv"

	"upi-guard/internal/adapter/http/dto"
	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports"
	"upi-guard/pkg/apperror"
	"upi-guard/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 20
	// Admin overview lists default to a wider window.
	adminListLimit = 50
)

// DashboardHandler handles the read-only reporting endpoints.
type DashboardHandler struct {
	reportingSvc ports.ReportingService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportingSvc ports.ReportingService) *DashboardHandler {
	return &DashboardHandler{reportingSvc: reportingSvc}
}

// ListMyTransactions handles GET /api/v1/transactions (payer view).
func (h *DashboardHandler) ListMyTransactions(c *gin.Context) {
	payerID, ok := subjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	txns, err := h.reportingSvc.PayerTransactions(c.Request.Context(), payerID, queryLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionList(txns))
}

// ListPayeeTransactions handles GET /api/v1/payees/transactions (payee view).
// Only completed transactions are the payee's business.
func (h *DashboardHandler) ListPayeeTransactions(c *gin.Context) {
	payeeID, ok := subjectID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	txns, err := h.reportingSvc.PayeeCompletedTransactions(c.Request.Context(), payeeID, queryLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionList(txns))
}

// GetStats handles GET /api/v1/admin/stats.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.reportingSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatsResponse{
		TotalPayers:       stats.TotalPayers,
		TotalPayees:       stats.TotalPayees,
		TotalTransactions: stats.TotalTransactions,
		FraudCount:        stats.FraudCount,
	})
}

// ListRecentTransactions handles GET /api/v1/admin/transactions.
func (h *DashboardHandler) ListRecentTransactions(c *gin.Context) {
	txns, err := h.reportingSvc.RecentTransactions(c.Request.Context(), queryLimitDefault(c, adminListLimit))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionList(txns))
}

// ListFraudLogs handles GET /api/v1/admin/fraud-logs.
func (h *DashboardHandler) ListFraudLogs(c *gin.Context) {
	entries, err := h.reportingSvc.RecentFraudLogs(c.Request.Context(), queryLimitDefault(c, adminListLimit))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.FraudLogResponse, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		items = append(items, dto.FraudLogResponse{
			TxnID:       e.TxnID,
			Amount:      e.Amount,
			Probability: e.Probability,
			Reason:      e.Reason,
			ActionTaken: e.ActionTaken,
			CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	response.OK(c, dto.FraudLogListResponse{Items: items, Count: len(items)})
}

func queryLimit(c *gin.Context) int {
	return queryLimitDefault(c, defaultListLimit)
}

func queryLimitDefault(c *gin.Context, def int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit < 1 {
		return def
	}
	return limit
}

func toTransactionList(txns []domain.Transaction) dto.TransactionListResponse {
	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResponse(&txns[i]))
	}
	return dto.TransactionListResponse{Items: items, Count: len(items)}
}

func toTransactionResponse(t *domain.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		TxnID:            t.TxnID,
		PayeeUPIID:       t.PayeeUPIID,
		Amount:           t.Amount,
		Category:         t.Category,
		CategoryName:     domain.CategoryName(t.Category),
		FraudProbability: t.FraudProbability,
		IsFraud:          t.IsFraud,
		Status:           string(t.Status),
		CreatedAt:        t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
