package scoring

import (
	"encoding/json"
	"fmt"
	"os"

	"upi-guard/internal/core/domain"
)

// StandardScaler implements ports.FeatureScaler with the mean/scale pairs
// exported at training time: x' = (x - mean) / scale. The parameter file is
// versioned external state; the model only understands vectors transformed
// with the version it was trained against.
type StandardScaler struct {
	version string
	mean    domain.FeatureVector
	scale   domain.FeatureVector
}

type scalerParams struct {
	Version string    `json:"version"`
	Mean    []float64 `json:"mean"`
	Scale   []float64 `json:"scale"`
}

// LoadScaler reads normalization parameters from a JSON file.
func LoadScaler(path string) (*StandardScaler, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scaler params: %w", err)
	}

	var params scalerParams
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("parsing scaler params: %w", err)
	}
	return NewStandardScaler(params.Version, params.Mean, params.Scale)
}

// NewStandardScaler builds a scaler from explicit parameters.
func NewStandardScaler(version string, mean, scale []float64) (*StandardScaler, error) {
	if len(mean) != domain.FeatureCount || len(scale) != domain.FeatureCount {
		return nil, fmt.Errorf("scaler params must have %d entries, got mean=%d scale=%d",
			domain.FeatureCount, len(mean), len(scale))
	}

	s := &StandardScaler{version: version}
	for i := 0; i < domain.FeatureCount; i++ {
		if scale[i] == 0 {
			return nil, fmt.Errorf("scaler scale[%d] must be non-zero", i)
		}
		s.mean[i] = mean[i]
		s.scale[i] = scale[i]
	}
	return s, nil
}

// Transform applies the normalization to a raw feature vector.
func (s *StandardScaler) Transform(raw domain.FeatureVector) (domain.FeatureVector, error) {
	var out domain.FeatureVector
	for i := 0; i < domain.FeatureCount; i++ {
		out[i] = (raw[i] - s.mean[i]) / s.scale[i]
	}
	return out, nil
}

// Version returns the parameter file version.
func (s *StandardScaler) Version() string {
	return s.version
}
