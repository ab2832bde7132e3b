// Package idgen produces opaque string identifiers for new entities. IDs are
// UUIDs: not meaningful to callers, practically collision-free for the
// hundreds of records a single registrar instance holds.
package idgen

import "github.com/google/uuid"

// New returns a fresh opaque identifier.
func New() string {
	return uuid.NewString()
}
