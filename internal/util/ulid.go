package util

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string using a monotonic entropy source
// seeded with the current time. Good enough for request-scoped id
// generation; a shared entropy source would be needed for strict
// monotonicity across goroutines.
func NewULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
