package seed

import (
	"errors"
)

// ErrCollisionExhausted means the retry budget was spent without finding a
// non-colliding value: the value space is too small for the requested count.
var ErrCollisionExhausted = errors.New("unique value retry budget exhausted")

// maxUniqueAttempts bounds the collision-retry cost per value.
const maxUniqueAttempts = 100

// generateUnique draws values from gen until one is absent from seen, records
// it, and returns it. After maxAttempts colliding draws it fails with
// ErrCollisionExhausted, which aborts the whole seed run.
func generateUnique(seen map[string]struct{}, maxAttempts int, gen func() string) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		value := gen()
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		return value, nil
	}
	return "", ErrCollisionExhausted
}
