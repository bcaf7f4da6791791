// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"usermeta/pkg/domain"
)

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	UserMetadataStorage
}

// UserMetadataStorage defines the persistence operations for user metadata
// records. Missing records are reported as a nil record with a nil error so
// callers decide how absence should be surfaced.
type UserMetadataStorage interface {
	// UpsertUserMetadata creates the record for userID when it does not exist,
	// otherwise refreshes its updated_at timestamp. The stored row is returned.
	UpsertUserMetadata(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error)
	// UserMetadataByID returns the record of the given user, or nil when not found.
	UserMetadataByID(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error)
	// ListUserMetadata returns the records matching filter ordered by
	// created_at and user_id. An empty (non-nil) slice is returned when nothing matches.
	ListUserMetadata(ctx context.Context, filter domain.UserMetadataFilter) ([]domain.UserMetadata, error)
	// DeleteUserMetadata permanently removes the record of the given user and
	// returns its prior contents, or nil when not found.
	DeleteUserMetadata(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error)
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions. It exposes domain-specific capabilities and lifecycle
// management such as Close.
type Storage interface {
	AllStorage

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx is a helper that begins a transaction, invokes the provided callback
	// with a TxStorage, and then commits on success or rolls back if the callback
	// returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
