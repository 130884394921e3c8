package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports"
	"upi-guard/internal/metrics"

	"github.com/rs/zerolog"
)

// FallbackProbability is returned whenever the scoring oracle is unavailable
// or erroring. Fail-open: infrastructure problems must never block legitimate
// commerce, at the cost of weaker fraud coverage during the outage.
const FallbackProbability = 0.1

// scoringService implements ports.ScoringService. It is the only component
// allowed to observe oracle failures; nothing past this boundary ever sees a
// scoring error.
type scoringService struct {
	provider ports.ModelProvider
	log      zerolog.Logger
}

// NewScoringService creates the scoring service.
func NewScoringService(provider ports.ModelProvider, log zerolog.Logger) ports.ScoringService {
	return &scoringService{provider: provider, log: log}
}

// Score normalizes the raw vector and asks the model for a fraud probability.
// Every failure path resolves to the fallback with Degraded set, logged and
// counted so operators can see the degraded mode.
func (s *scoringService) Score(ctx context.Context, features domain.FeatureVector) ports.ScoreResult {
	metrics.ScoringRequests.Inc()
	start := time.Now()
	defer func() {
		metrics.ScoringLatency.Observe(time.Since(start).Seconds())
	}()

	bundle := s.provider.Current()
	if bundle == nil || bundle.Model == nil || bundle.Scaler == nil {
		return s.degrade("model_absent", fmt.Errorf("no model bundle loaded"))
	}

	scaled, err := bundle.Scaler.Transform(features)
	if err != nil {
		return s.degrade("transform_error", err)
	}

	probability, err := bundle.Model.Predict(ctx, scaled)
	if err != nil {
		return s.degrade("predict_error", err)
	}
	if math.IsNaN(probability) || math.IsInf(probability, 0) {
		return s.degrade("predict_error", fmt.Errorf("model returned non-finite probability %v", probability))
	}

	// Clamp: the contract with callers is a probability in [0, 1].
	if probability < 0 {
		probability = 0
	} else if probability > 1 {
		probability = 1
	}

	return ports.ScoreResult{Probability: probability}
}

func (s *scoringService) degrade(cause string, err error) ports.ScoreResult {
	metrics.ScoringDegraded.WithLabelValues(cause).Inc()
	s.log.Warn().
		Err(err).
		Str("cause", cause).
		Float64("fallback_probability", FallbackProbability).
		Msg("scoring degraded, using fail-open fallback")

	return ports.ScoreResult{
		Probability: FallbackProbability,
		Degraded:    true,
		Cause:       err,
	}
}
