package postgres

import (
	"encoding/json"
	"time"
	"usermeta/pkg/domain"

	"github.com/google/uuid"
)

// emptyAttributes is what a record without attributes is reported as.
var emptyAttributes = json.RawMessage(`{}`) //nolint: gochecknoglobals

type PgUserMetadata struct {
	UserID     uuid.UUID `db:"user_id"`
	Attributes []byte    `db:"attributes" goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUserMetadata) ToDomain() *domain.UserMetadata {
	attrs := json.RawMessage(p.Attributes)
	if len(attrs) == 0 {
		attrs = emptyAttributes
	}

	return &domain.UserMetadata{
		UserID:     domain.UserID(p.UserID),
		Attributes: attrs,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func pgUserMetadataToDomain(rows []PgUserMetadata) []domain.UserMetadata {
	out := make([]domain.UserMetadata, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
