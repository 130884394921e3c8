package scoring

import (
	"sync/atomic"

	"upi-guard/internal/core/ports"
)

// Handle is the process-wide reference to the current model bundle,
// implementing ports.ModelProvider. Loaded once at startup and shared
// read-only across request flows; deploying a new model is an atomic swap of
// the whole bundle, never an in-place mutation while inference is in flight.
// A nil current bundle means the oracle is not available and scoring runs
// degraded.
type Handle struct {
	current atomic.Pointer[ports.ModelBundle]
}

// NewHandle creates a handle. bundle may be nil (oracle not configured).
func NewHandle(bundle *ports.ModelBundle) *Handle {
	h := &Handle{}
	if bundle != nil {
		h.current.Store(bundle)
	}
	return h
}

var _ ports.ModelProvider = (*Handle)(nil)

// Current returns the active bundle, or nil when none is loaded.
func (h *Handle) Current() *ports.ModelBundle {
	return h.current.Load()
}

// Swap atomically replaces the active bundle. In-flight scorers keep the
// bundle they already loaded.
func (h *Handle) Swap(bundle *ports.ModelBundle) {
	h.current.Store(bundle)
}
