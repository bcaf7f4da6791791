package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"usermeta/pkg/domain"
	"usermeta/pkg/storage"
	"usermeta/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsUpsert(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.UpsertUserMetadata(ctx, userID)
	require.NoError(t, err)

	// not visible outside the tx before commit
	got, err := pg.UserMetadataByID(ctx, userID)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, txStorage.Commit())

	got, err = pg.UserMetadataByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	committed := domain.UserID(uuid.New())
	rolledBack := domain.UserID(uuid.New())

	// Success callback: should commit
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.UpsertUserMetadata(ctx, committed)

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	got, err := pg.UserMetadataByID(ctx, committed)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Error in callback: should rollback
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.UpsertUserMetadata(ctx, rolledBack)

		return errors.New("boom")
	})
	require.Error(t, err)

	got, err = pg.UserMetadataByID(ctx, rolledBack)
	require.NoError(t, err)
	require.Nil(t, got)
}
