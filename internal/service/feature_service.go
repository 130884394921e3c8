package service

import (
	"hash/fnv"
	"math"
	"time"

	"upi-guard/internal/core/domain"
	"upi-guard/internal/core/ports"
	"upi-guard/pkg/apperror"
)

// featureBuilder implements ports.FeatureBuilder. Pure and total over valid
// inputs; no side effects, no ambient clock.
type featureBuilder struct{}

// NewFeatureBuilder creates the feature builder.
func NewFeatureBuilder() ports.FeatureBuilder {
	return &featureBuilder{}
}

// Build assembles the fixed-order feature vector for one payment attempt.
// The order matches domain.FeatureVector's declared positions; it is a
// contract with the trained model and must never change.
func (b *featureBuilder) Build(payer *domain.Payer, payee *domain.Payee, amount float64, category int, now time.Time) (domain.FeatureVector, error) {
	var v domain.FeatureVector

	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return v, apperror.ErrInvalidAmount()
	}
	if !domain.ValidCategory(category) {
		return v, apperror.ErrInvalidCategory()
	}

	v[domain.FeatAmount] = amount
	v[domain.FeatHour] = float64(now.Hour())
	v[domain.FeatMinute] = float64(now.Minute())
	v[domain.FeatPayerAge] = float64(payer.Age)
	v[domain.FeatPayeeAge] = float64(payee.AgeDays)
	v[domain.FeatStateCode] = float64(payer.StateCode)
	v[domain.FeatZipCode] = float64(payer.ZipCode)
	v[domain.FeatCategory] = float64(category)
	v[domain.FeatUPIHash] = float64(HashUPIID(payee.UPIID))

	return v, nil
}

// HashUPIID reduces a payee UPI address to a bounded non-negative integer
// feature using FNV-1a. FNV is stable across processes and restarts, so the
// serving-time feature always matches the training-time one. Changing this
// function is a model-breaking change.
func HashUPIID(upiID string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(upiID)) //nolint:errcheck // never fails
	return h.Sum32() % domain.UPIHashBound
}
