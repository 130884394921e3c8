package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"upi-guard/internal/core/ports"
)

// TimestampTxIDGenerator implements ports.TxIDGenerator. Identifiers combine
// a UTC wall-clock timestamp with microsecond precision and a per-process
// atomic sequence, so two concurrent calls in the same microsecond still
// differ. The database unique constraint remains the final arbiter across
// processes.
type TimestampTxIDGenerator struct {
	now func() time.Time
	seq atomic.Uint64
}

// NewTxIDGenerator creates a generator on the real clock.
func NewTxIDGenerator() *TimestampTxIDGenerator {
	return NewTxIDGeneratorWithClock(time.Now)
}

// NewTxIDGeneratorWithClock creates a generator with an injected clock.
func NewTxIDGeneratorWithClock(now func() time.Time) *TimestampTxIDGenerator {
	return &TimestampTxIDGenerator{now: now}
}

var _ ports.TxIDGenerator = (*TimestampTxIDGenerator)(nil)

// Next returns an identifier of the form TXN<yyyymmddHHMMSS><microseconds><seq>.
func (g *TimestampTxIDGenerator) Next() string {
	t := g.now().UTC()
	seq := g.seq.Add(1) % 10000
	return fmt.Sprintf("TXN%s%06d%04d", t.Format("20060102150405"), t.Nanosecond()/1000, seq)
}
