// Package repositories holds helpers shared by the persistence packages.
package repositories

import (
	dnderr "github.com/KirkDiggler/dnd-autoroll/internal/errors"
)

// NewNotFoundError creates the not found error every repository returns for a missing entity
func NewNotFoundError(kind, id string) *dnderr.Error {
	return dnderr.NotFoundf("%s not found: %s", kind, id).
		WithMeta(kind+"_id", id)
}

// NewMissingIDError creates the error returned when an entity ID is empty
func NewMissingIDError(kind string) *dnderr.Error {
	return dnderr.InvalidArgumentf("%s ID is required", kind)
}
