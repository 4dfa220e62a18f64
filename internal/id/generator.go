// Package id generates lead identifiers. Uniqueness relies on collision
// probability, not enforcement: there is no compare-and-swap at the store,
// so the random component has to be wide enough to make collisions
// negligibly improbable.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Generator produces unique identifiers.
type Generator interface {
	NewID() (string, error)
}

// TimeRandom generates IDs of the form <unix-millis>-<16 hex chars>.
// 64 random bits per millisecond keeps collisions out of practical reach
// for this workload.
type TimeRandom struct {
	now func() time.Time
}

// NewTimeRandom creates a TimeRandom generator using the wall clock.
func NewTimeRandom() *TimeRandom {
	return &TimeRandom{now: time.Now}
}

// NewID returns a fresh identifier.
func (g *TimeRandom) NewID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%d-%s", g.now().UnixMilli(), hex.EncodeToString(buf)), nil
}
