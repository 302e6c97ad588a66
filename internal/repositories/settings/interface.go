// Package settings stores the global auto-roll switches.
package settings

import (
	"context"
)

// Known setting keys
const (
	KeyAutoCheck  = "autoCheck"
	KeyAutoDamage = "autoDamage"
	KeyAutoOther  = "autoOther"
)

// Repository defines the interface for global settings persistence.
// Only keys with a configured default exist.
type Repository interface {
	// Get returns the stored value of key, or its default when never set
	Get(ctx context.Context, key string) (bool, error)

	// Set stores a value for key
	Set(ctx context.Context, key string, value bool) error

	// All returns every known key with its effective value
	All(ctx context.Context) (map[string]bool, error)
}
