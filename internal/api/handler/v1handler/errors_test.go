package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"usermeta/internal/api/handler/v1handler"
	"usermeta/pkg/serrors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestDefaultClassifier(t *testing.T) {
	pgErr := func(code string) error {
		return fmt.Errorf("could not upsert user metadata: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"plain error", errors.New("boom"), http.StatusInternalServerError, ""},
		{"bad request", serrors.With(serrors.ErrBadRequest, "bad input"), http.StatusBadRequest, "bad input"},
		{"not found wrapped", fmt.Errorf("x: %w", serrors.With(serrors.ErrNotFound, "missing")), http.StatusNotFound, "missing"},
		{"conflict", serrors.With(serrors.ErrConflict, "taken"), http.StatusConflict, "taken"},
		{"unauthorized", serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized"), http.StatusUnauthorized, "unauthorized"},
		{"forbidden", serrors.With(serrors.ErrForbidden, "no"), http.StatusForbidden, "no"},
		{"kind only", serrors.KindOnly(serrors.ErrNotFound), http.StatusNotFound, ""},
		{"internal kind", serrors.With(serrors.ErrInternal, "secret detail"), http.StatusInternalServerError, ""},
		{"timeout kind", serrors.With(serrors.ErrTimeout, "slow"), http.StatusGatewayTimeout, "slow"},
		{"unavailable kind", serrors.With(serrors.ErrUnavailable, "later"), http.StatusServiceUnavailable, "later"},
		{"deadline", fmt.Errorf("q: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "request timed out"},
		{"canceled", context.Canceled, http.StatusServiceUnavailable, "request cancelled"},
		{"unique", pgErr(pgerrcode.UniqueViolation), http.StatusConflict, "UserMetadata already exists"},
		{"foreign key", pgErr(pgerrcode.ForeignKeyViolation), http.StatusConflict, "related record constraint failed"},
		{"not null", pgErr(pgerrcode.NotNullViolation), http.StatusBadRequest, "invalid UserMetadata value"},
		{"check", pgErr(pgerrcode.CheckViolation), http.StatusBadRequest, "invalid UserMetadata value"},
		{"invalid text", pgErr(pgerrcode.InvalidTextRepresentation), http.StatusBadRequest, "invalid UserMetadata value"},
		{"query canceled", pgErr(pgerrcode.QueryCanceled), http.StatusGatewayTimeout, "request timed out"},
		{"connection failure", pgErr(pgerrcode.ConnectionFailure), http.StatusServiceUnavailable, "database unavailable"},
		{"admin shutdown", pgErr(pgerrcode.AdminShutdown), http.StatusServiceUnavailable, "database unavailable"},
		{"too many connections", pgErr(pgerrcode.TooManyConnections), http.StatusServiceUnavailable, "database unavailable"},
		{"syntax error", pgErr(pgerrcode.SyntaxError), http.StatusInternalServerError, ""},
		{"connect error", &pgconn.ConnectError{}, http.StatusServiceUnavailable, "database unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := v1handler.DefaultClassifier{}.Classify(tt.err)
			require.Equal(t, tt.status, status)
			require.Equal(t, tt.message, message)
		})
	}
}
