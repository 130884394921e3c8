package scoring

import (
	"sync"
	"testing"

	"upi-guard/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestHandle_NilBundle(t *testing.T) {
	h := NewHandle(nil)
	assert.Nil(t, h.Current())
}

func TestHandle_Swap(t *testing.T) {
	first := &ports.ModelBundle{}
	second := &ports.ModelBundle{}

	h := NewHandle(first)
	assert.Same(t, first, h.Current())

	h.Swap(second)
	assert.Same(t, second, h.Current())

	h.Swap(nil)
	assert.Nil(t, h.Current())
}

func TestHandle_ConcurrentAccess(t *testing.T) {
	h := NewHandle(&ports.ModelBundle{})
	bundles := []*ports.ModelBundle{{}, {}, {}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				h.Swap(bundles[(i+j)%len(bundles)])
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = h.Current()
			}
		}()
	}
	wg.Wait()

	assert.NotNil(t, h.Current())
}
