package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"upi-guard/internal/core/domain"
)

// HTTPDoer abstracts *http.Client for testing.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPModel implements ports.FraudModel against a model server exposing a
// JSON predict endpoint. The client timeout doubles as the fail-fast bound:
// a slow oracle resolves to an error, never a hang.
type HTTPModel struct {
	endpoint string
	client   HTTPDoer
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Probability float64 `json:"probability"`
}

// NewHTTPModel creates a model client for the given predict endpoint.
func NewHTTPModel(endpoint string, timeout time.Duration) *HTTPModel {
	return &HTTPModel{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// NewHTTPModelWithClient creates a model client with a custom HTTP doer.
func NewHTTPModelWithClient(endpoint string, client HTTPDoer) *HTTPModel {
	return &HTTPModel{endpoint: endpoint, client: client}
}

// Predict sends the (already normalized) feature vector to the model server.
func (m *HTTPModel) Predict(ctx context.Context, features domain.FeatureVector) (float64, error) {
	payload, err := json.Marshal(predictRequest{Features: features[:]})
	if err != nil {
		return 0, fmt.Errorf("marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call model server: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("model server returned %d: %s", resp.StatusCode, string(body))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode predict response: %w", err)
	}
	return out.Probability, nil
}
