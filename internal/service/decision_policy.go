package service

import (
	"fmt"

	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports"
)

// thresholdPolicy implements ports.DecisionPolicy. Deterministic, pure, no I/O.
type thresholdPolicy struct {
	threshold float64
}

// NewDecisionPolicy creates a threshold policy. The threshold must lie in the
// open interval (0, 1); anything else is a configuration error and belongs at
// startup, not at decision time.
func NewDecisionPolicy(threshold float64) (ports.DecisionPolicy, error) {
	if threshold <= 0 || threshold >= 1 {
		return nil, fmt.Errorf("decision threshold must be in (0, 1), got %v", threshold)
	}
	return &thresholdPolicy{threshold: threshold}, nil
}

// Decide returns BLOCK iff probability is strictly greater than the
// threshold. A probability exactly equal to the threshold is allowed.
func (p *thresholdPolicy) Decide(probability float64) domain.Verdict {
	if probability > p.threshold {
		return domain.VerdictBlock
	}
	return domain.VerdictAllow
}

func (p *thresholdPolicy) Threshold() float64 {
	return p.threshold
}
