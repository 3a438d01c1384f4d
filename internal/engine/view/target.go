package view

import (
	"fmt"

	"github.com/google/uuid"
)

// Target identifies the client a view belongs to.
type Target uuid.UUID

// LocalTarget is the client running in the same process as the engine.
var LocalTarget = Target(uuid.Nil)

// NewTarget returns a fresh remote client identity.
func NewTarget() Target {
	return Target(uuid.New())
}

// ParseTarget parses a client identity. An empty string or "local" yields
// LocalTarget.
func ParseTarget(s string) (Target, error) {
	if s == "" || s == "local" {
		return LocalTarget, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return LocalTarget, fmt.Errorf("parsing target %q: %w", s, err)
	}
	return Target(id), nil
}

// IsLocal returns true for the local client.
func (t Target) IsLocal() bool {
	return t == LocalTarget
}

// String returns "local" or the client's UUID.
func (t Target) String() string {
	if t.IsLocal() {
		return "local"
	}
	return uuid.UUID(t).String()
}
