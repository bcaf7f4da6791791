package postgres_test

import (
	"context"
	"testing"
	"time"
	"usermeta/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertUserMetadata(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	created, err := pgSQL.UpsertUserMetadata(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, userID, created.UserID)
	require.JSONEq(t, `{}`, string(created.Attributes))
	require.False(t, created.CreatedAt.IsZero())

	// second upsert refreshes the same record instead of duplicating it
	updated, err := pgSQL.UpsertUserMetadata(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, userID, updated.UserID)
	require.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	require.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	all, err := pgSQL.ListUserMetadata(ctx, domain.UserMetadataFilter{UserIDs: []domain.UserID{userID}})
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestPgSQL_UserMetadataByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("missing record", func(t *testing.T) {
		got, err := pgSQL.UserMetadataByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("read after write", func(t *testing.T) {
		userID := domain.UserID(uuid.New())
		created, err := pgSQL.UpsertUserMetadata(ctx, userID)
		require.NoError(t, err)

		got, err := pgSQL.UserMetadataByID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, created.UserID, got.UserID)
		require.True(t, created.CreatedAt.Equal(got.CreatedAt))
		require.True(t, created.UpdatedAt.Equal(got.UpdatedAt))
	})
}

func TestPgSQL_ListUserMetadata(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	ids := make([]domain.UserID, 3)
	for i := range ids {
		ids[i] = domain.UserID(uuid.New())
		_, err := pgSQL.UpsertUserMetadata(ctx, ids[i])
		require.NoError(t, err)
	}

	t.Run("no filter returns everything in creation order", func(t *testing.T) {
		got, err := pgSQL.ListUserMetadata(ctx, domain.UserMetadataFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			require.False(t, got[i].CreatedAt.Before(got[i-1].CreatedAt))
		}
	})

	t.Run("by user ids", func(t *testing.T) {
		got, err := pgSQL.ListUserMetadata(ctx, domain.UserMetadataFilter{UserIDs: ids[:2]})
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("limit and offset", func(t *testing.T) {
		got, err := pgSQL.ListUserMetadata(ctx, domain.UserMetadataFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		got, err := pgSQL.ListUserMetadata(ctx, domain.UserMetadataFilter{
			CreatedAfter: time.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}

func TestPgSQL_DeleteUserMetadata(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	got, err := pgSQL.DeleteUserMetadata(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, got, "deleting a missing record reports nil")

	created, err := pgSQL.UpsertUserMetadata(ctx, userID)
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteUserMetadata(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, created.UserID, deleted.UserID)

	after, err := pgSQL.UserMetadataByID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, after)
}
