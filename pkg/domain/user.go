package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// ParseUserID parses the canonical textual form of a UUID into a UserID.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, fmt.Errorf("could not parse user id: %w", err)
	}

	return UserID(id), nil
}

func (id UserID) String() string { return uuid.UUID(id).String() }
