package handler

import (
	"upi-guard/internal/adapter/http/middleware"
	redisStore "upi-guard/internal/adapter/storage/redis"
	"upi-guard/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	ReportingSvc   ports.ReportingService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	dashboardHandler := NewDashboardHandler(deps.ReportingSvc)

	// API v1 routes
	v1 := r.Group("/api/v1", jwtAuth)

	// --- Payer routes ---
	payer := middleware.RequireActor(ports.ActorPayer)
	payments := v1.Group("/payments", payer)
	{
		payments.POST("", rl("payments"), paymentHandler.ProcessPayment)
	}
	transactions := v1.Group("/transactions", payer)
	{
		transactions.GET("", rl("dashboard"), dashboardHandler.ListMyTransactions)
	}

	// --- Payee routes ---
	payees := v1.Group("/payees", middleware.RequireActor(ports.ActorPayee))
	{
		payees.GET("/transactions", rl("dashboard"), dashboardHandler.ListPayeeTransactions)
	}

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RequireActor(ports.ActorAdmin))
	{
		admin.GET("/stats", rl("admin"), dashboardHandler.GetStats)
		admin.GET("/transactions", rl("admin"), dashboardHandler.ListRecentTransactions)
		admin.GET("/fraud-logs", rl("admin"), dashboardHandler.ListFraudLogs)
	}

	return r
}
