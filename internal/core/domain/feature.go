package domain

// FeatureCount is the fixed length of the model input vector.
const FeatureCount = 9

// UPIHashBound bounds the payee-address hash feature: the hash is reduced
// modulo this value, matching the training-time feature computation.
const UPIHashBound = 100000

// FeatureVector is the ordered numeric encoding of a transaction used as
// model input. The field order is a contract with the scoring oracle: the
// model is order-sensitive and any reordering is a breaking change requiring
// retraining. Never reorder these.
type FeatureVector [FeatureCount]float64

// Feature vector field positions.
const (
	FeatAmount     = iota // transaction amount
	FeatHour              // hour of day, 0-23
	FeatMinute            // minute of hour, 0-59
	FeatPayerAge          // payer declared age
	FeatPayeeAge          // payee age in days since onboarding
	FeatStateCode         // payer home-region code
	FeatZipCode           // payer postal code
	FeatCategory          // transaction category, 1-10
	FeatUPIHash           // bounded hash of the payee UPI address
)
