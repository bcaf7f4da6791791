package usermetadata

import (
	"context"
	"usermeta/pkg/domain"
)

// Store is the collaborator the HTTP endpoint delegates to. Every method
// performs a single read or write against persistence. Absent records are
// reported with a serrors.ErrNotFound error.
//
//go:generate mockgen -package mockusermetadata -source=interface.go -destination=mock/mockusermetadata.go *
type Store interface {
	// Upsert creates the record of userID if absent, otherwise refreshes it.
	Upsert(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error)
	// GetByID returns the record of userID.
	GetByID(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error)
	// List returns the records matching filter. No match is not an error.
	List(ctx context.Context, filter domain.UserMetadataFilter) ([]domain.UserMetadata, error)
	// DeleteByID removes the record of userID and returns its prior contents.
	DeleteByID(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error)
}
