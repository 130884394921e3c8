package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"upi-guard/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardScaler_Transform(t *testing.T) {
	mean := []float64{100, 12, 30, 35, 400, 15, 500000, 5, 50000}
	scale := []float64{50, 6, 15, 10, 200, 8, 250000, 3, 25000}

	s, err := NewStandardScaler("v1", mean, scale)
	require.NoError(t, err)
	assert.Equal(t, "v1", s.Version())

	var raw domain.FeatureVector
	copy(raw[:], mean)
	out, err := s.Transform(raw)
	require.NoError(t, err)
	for i, v := range out {
		assert.InDelta(t, 0.0, v, 1e-12, "feature %d at the mean should normalize to zero", i)
	}

	raw[domain.FeatAmount] = 150 // one scale unit above the mean
	out, err = s.Transform(raw)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, out[domain.FeatAmount], 1e-12)
}

func TestNewStandardScaler_WrongLength(t *testing.T) {
	_, err := NewStandardScaler("v1", []float64{1, 2, 3}, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestNewStandardScaler_ZeroScale(t *testing.T) {
	mean := make([]float64, domain.FeatureCount)
	scale := []float64{1, 1, 1, 1, 0, 1, 1, 1, 1}
	_, err := NewStandardScaler("v1", mean, scale)
	assert.Error(t, err)
}

func TestLoadScaler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaler.json")
	content := `{
		"version": "2026-01-15",
		"mean":  [100, 12, 30, 35, 400, 15, 500000, 5, 50000],
		"scale": [50, 6, 15, 10, 200, 8, 250000, 3, 25000]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	s, err := LoadScaler(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", s.Version())
}

func TestLoadScaler_MissingFile(t *testing.T) {
	_, err := LoadScaler(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadScaler_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scaler.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	_, err := LoadScaler(path)
	assert.Error(t, err)
}
