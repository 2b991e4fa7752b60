package domain

import (
	"strings"

	"github.com/google/uuid"
)

// LocalIDPrefix marks identifiers generated by the local fallback store for
// records that were never written to the remote store. Such records are a
// permanent local fork: they are never reconciled to the remote store on
// reconnection, and updates or deletes addressed at them short-circuit to the
// local store.
const LocalIDPrefix = "local_"

// NewID returns a new remote-eligible identifier.
func NewID() string {
	return uuid.New().String()
}

// NewLocalID returns a new locally-sourced identifier.
func NewLocalID() string {
	return LocalIDPrefix + uuid.New().String()
}

// IsLocalID reports whether the identifier was generated by the local
// fallback store.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}
