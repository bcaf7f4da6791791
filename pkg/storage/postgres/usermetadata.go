package postgres

import (
	"context"
	"fmt"
	"usermeta/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	userMetadataTable = "user_metadata"
)

// UpsertUserMetadata inserts a record for userID, or bumps updated_at of the
// existing one. The row is returned as it exists after the statement.
func (p *PgSQL) UpsertUserMetadata(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error) {
	var row PgUserMetadata
	found, err := p.Builder.Insert(userMetadataTable).
		Rows(goqu.Record{"user_id": uuid.UUID(userID)}).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgUserMetadata{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert user metadata into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("upsert of user metadata %s returned no row", userID)
	}

	return row.ToDomain(), nil
}

// UserMetadataByID returns the record of userID, or nil when there is none.
func (p *PgSQL) UserMetadataByID(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error) {
	var row PgUserMetadata
	found, err := p.Builder.From(userMetadataTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user metadata by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ListUserMetadata returns records matching filter ordered by created_at, user_id.
func (p *PgSQL) ListUserMetadata(ctx context.Context,
	filter domain.UserMetadataFilter) ([]domain.UserMetadata, error) {
	ds := p.Builder.From(userMetadataTable).
		Where(filterExpressions(filter)...).
		Order(goqu.I("created_at").Asc(), goqu.I("user_id").Asc())
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		ds = ds.Offset(filter.Offset)
	}

	var rows []PgUserMetadata
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list user metadata from pg: %w", err)
	}

	return pgUserMetadataToDomain(rows), nil
}

// DeleteUserMetadata hard-deletes the record of userID and returns the
// removed row, or nil when there was nothing to delete.
func (p *PgSQL) DeleteUserMetadata(ctx context.Context, userID domain.UserID) (*domain.UserMetadata, error) {
	var row PgUserMetadata
	found, err := p.Builder.Delete(userMetadataTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Returning(&PgUserMetadata{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete user metadata in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func filterExpressions(filter domain.UserMetadataFilter) []goqu.Expression {
	var w []goqu.Expression
	if len(filter.UserIDs) > 0 {
		ids := make([]string, 0, len(filter.UserIDs))
		for _, id := range filter.UserIDs {
			ids = append(ids, id.String())
		}
		w = append(w, goqu.I("user_id").In(ids))
	}
	if !filter.CreatedAfter.IsZero() {
		w = append(w, goqu.I("created_at").Gt(filter.CreatedAfter))
	}
	if !filter.CreatedBefore.IsZero() {
		w = append(w, goqu.I("created_at").Lt(filter.CreatedBefore))
	}
	if !filter.UpdatedAfter.IsZero() {
		w = append(w, goqu.I("updated_at").Gt(filter.UpdatedAfter))
	}
	if !filter.UpdatedBefore.IsZero() {
		w = append(w, goqu.I("updated_at").Lt(filter.UpdatedBefore))
	}

	return w
}
