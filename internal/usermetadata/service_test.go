package usermetadata_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"usermeta/internal/usermetadata"
	"usermeta/pkg/domain"
	"usermeta/pkg/serrors"
	mockstorage "usermeta/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, opts usermetadata.Options) (*mockstorage.MockStorage, usermetadata.Store) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return st, usermetadata.New(st, opts)
}

func sampleRecord(userID domain.UserID) *domain.UserMetadata {
	now := time.Now()

	return &domain.UserMetadata{
		UserID:     userID,
		Attributes: []byte(`{}`),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestService_Upsert(t *testing.T) {
	st, s := newTestService(t, usermetadata.Options{})
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	rec := sampleRecord(userID)
	st.EXPECT().UpsertUserMetadata(ctx, userID).Return(rec, nil)

	got, err := s.Upsert(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestService_Upsert_StorageError(t *testing.T) {
	st, s := newTestService(t, usermetadata.Options{})
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	boom := errors.New("boom")
	st.EXPECT().UpsertUserMetadata(ctx, userID).Return(nil, boom)

	_, err := s.Upsert(ctx, userID)
	require.ErrorIs(t, err, boom)
}

func TestService_GetByID(t *testing.T) {
	st, s := newTestService(t, usermetadata.Options{})
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("found", func(t *testing.T) {
		rec := sampleRecord(userID)
		st.EXPECT().UserMetadataByID(ctx, userID).Return(rec, nil)

		got, err := s.GetByID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, rec, got)
	})

	t.Run("not found", func(t *testing.T) {
		st.EXPECT().UserMetadataByID(ctx, userID).Return(nil, nil)

		_, err := s.GetByID(ctx, userID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestService_List(t *testing.T) {
	st, s := newTestService(t, usermetadata.Options{MaxListLimit: 10})
	ctx := context.Background()

	t.Run("nil result becomes empty slice", func(t *testing.T) {
		filter := domain.UserMetadataFilter{Limit: 5}
		st.EXPECT().ListUserMetadata(ctx, filter).Return(nil, nil)

		got, err := s.List(ctx, filter)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("filter passed through unmodified", func(t *testing.T) {
		filter := domain.UserMetadataFilter{
			UserIDs:      []domain.UserID{domain.UserID(uuid.New())},
			CreatedAfter: time.Now().Add(-time.Hour),
			Offset:       3,
		}
		rec := sampleRecord(filter.UserIDs[0])
		st.EXPECT().ListUserMetadata(ctx, filter).Return([]domain.UserMetadata{*rec}, nil)

		got, err := s.List(ctx, filter)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("limit above maximum is rejected before storage", func(t *testing.T) {
		_, err := s.List(ctx, domain.UserMetadataFilter{Limit: 11})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestService_DeleteByID(t *testing.T) {
	st, s := newTestService(t, usermetadata.Options{})
	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("deleted", func(t *testing.T) {
		rec := sampleRecord(userID)
		st.EXPECT().DeleteUserMetadata(ctx, userID).Return(rec, nil)

		got, err := s.DeleteByID(ctx, userID)
		require.NoError(t, err)
		require.Equal(t, rec, got)
	})

	t.Run("missing", func(t *testing.T) {
		st.EXPECT().DeleteUserMetadata(ctx, userID).Return(nil, nil)

		_, err := s.DeleteByID(ctx, userID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
