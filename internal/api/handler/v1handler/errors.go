package v1handler

import (
	"context"
	"errors"
	"net/http"
	"usermeta/pkg/serrors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassifier maps an error raised by the store to the HTTP status code
// and display message of the failure envelope. An empty message lets the
// caller use its own default.
type ErrorClassifier interface {
	Classify(err error) (statusCode int, message string)
}

// kindStatus maps semantic error kinds to HTTP status codes.
var kindStatus = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrForbidden:    http.StatusForbidden,
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrConflict:     http.StatusConflict,
	serrors.ErrRateLimited:  http.StatusTooManyRequests,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
	serrors.ErrInternal:     http.StatusInternalServerError,
}

// DefaultClassifier understands serrors kinds, context errors and PostgreSQL
// errors surfaced by pgx.
type DefaultClassifier struct{}

var _ ErrorClassifier = DefaultClassifier{}

func (DefaultClassifier) Classify(err error) (int, string) {
	if k := serrors.KindOf(err); k != nil {
		status, ok := kindStatus[k]
		if !ok || status == http.StatusInternalServerError {
			return http.StatusInternalServerError, ""
		}

		return status, serrors.MessageOf(err)
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "request cancelled"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPgError(pgErr)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return http.StatusServiceUnavailable, "database unavailable"
	}

	return http.StatusInternalServerError, ""
}

func classifyPgError(pgErr *pgconn.PgError) (int, string) {
	switch code := pgErr.Code; {
	case code == pgerrcode.UniqueViolation:
		return http.StatusConflict, "UserMetadata already exists"
	case code == pgerrcode.ForeignKeyViolation:
		return http.StatusConflict, "related record constraint failed"
	case code == pgerrcode.NotNullViolation,
		code == pgerrcode.CheckViolation,
		pgerrcode.IsDataException(code):
		return http.StatusBadRequest, "invalid UserMetadata value"
	case code == pgerrcode.QueryCanceled:
		return http.StatusGatewayTimeout, "request timed out"
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsOperatorIntervention(code),
		pgerrcode.IsInsufficientResources(code):
		return http.StatusServiceUnavailable, "database unavailable"
	default:
		return http.StatusInternalServerError, ""
	}
}
