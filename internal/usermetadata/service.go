// Package usermetadata implements the user metadata store used by the API
// handlers on top of the storage layer.
package usermetadata

import (
	"context"
	"fmt"
	"usermeta/internal/config"
	"usermeta/pkg/domain"
	"usermeta/pkg/serrors"
	"usermeta/pkg/storage"
)

// Options configure listing limits of the service.
type Options struct {
	// MaxListLimit is the largest Limit a filter may carry. Zero disables the check.
	MaxListLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxListLimit: cfg.UserMetadata.MaxListLimit,
	}
}

// service is the concrete implementation of the Store interface.
type service struct {
	options Options
	storage storage.Storage
}

// New returns a Store backed by the given storage.
func New(strg storage.Storage, options Options) Store {
	return &service{
		options: options,
		storage: strg,
	}
}

// Upsert creates or refreshes the record of userID.
func (s *service) Upsert(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error) {
	res, err := s.storage.UpsertUserMetadata(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not upsert user metadata: %w", err)
	}

	return res, nil
}

// GetByID returns the record of userID or a not-found error.
func (s *service) GetByID(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error) {
	res, err := s.storage.UserMetadataByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user metadata: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "UserMetadata for id #%s not found", userID)
	}

	return res, nil
}

// List returns the records matching filter. The result is never nil.
func (s *service) List(ctx context.Context, filter domain.UserMetadataFilter) ([]domain.UserMetadata, error) {
	if s.options.MaxListLimit > 0 && filter.Limit > s.options.MaxListLimit {
		return nil, serrors.With(serrors.ErrBadRequest, "limit must not exceed %d", s.options.MaxListLimit)
	}

	res, err := s.storage.ListUserMetadata(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list user metadata: %w", err)
	}
	if res == nil {
		res = []domain.UserMetadata{}
	}

	return res, nil
}

// DeleteByID removes the record of userID. A missing record is reported as
// not found rather than as a no-op.
func (s *service) DeleteByID(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error) {
	res, err := s.storage.DeleteUserMetadata(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not delete user metadata: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "UserMetadata for id #%s not found", userID)
	}

	return res, nil
}
