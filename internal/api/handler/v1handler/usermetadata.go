package v1handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"
	"usermeta/pkg/domain"
	"usermeta/pkg/logger"
	"usermeta/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// maxFilterBodyBytes bounds the filter body accepted by FindMany.
const maxFilterBodyBytes = 1 << 20

// ErrInvalidUUID is the message returned for a malformed userId path segment.
const ErrInvalidUUID = "Validation failed (uuid is expected)"

var validate = newValidator() //nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names in validation messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// userIDParam extracts and validates the userId path segment.
func userIDParam(r *http.Request) (domain.UserID, error) {
	raw := chi.URLParam(r, "userId")
	if err := validate.Var(raw, "required,uuid_rfc4122"); err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrBadRequest, err, ErrInvalidUUID)
	}

	userID, err := domain.ParseUserID(raw)
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrBadRequest, err, ErrInvalidUUID)
	}

	return userID, nil
}

// CreateOrUpdate handles POST /user-metadata/{userId}.
func (h *Handler) CreateOrUpdate(w http.ResponseWriter, r *http.Request) {
	r = r.WithContext(logger.WithFields(r.Context(), zap.String("user_id", chi.URLParam(r, "userId"))))

	serve(h, w, r, operation{
		name:      "createOrUpdate",
		started:   "creating or updating user metadata",
		succeeded: "successfully created or updated user metadata",
		failed:    "Failed to Create or Update User Metadata.",
		message:   "UserMetadata created or updated successfully",
	}, func(ctx context.Context) (*domain.UserMetadata, error) {
		userID, err := userIDParam(r)
		if err != nil {
			return nil, err
		}

		return h.deps.Store.Upsert(ctx, userID) //nolint: wrapcheck
	}, encodeUserMetadata)
}

// FindByID handles GET /user-metadata/{userId}.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "userId")
	r = r.WithContext(logger.WithFields(r.Context(), zap.String("user_id", raw)))

	serve(h, w, r, operation{
		name:      "findById",
		started:   "fetching user metadata",
		succeeded: "successfully fetched user metadata",
		failed:    fmt.Sprintf("Failed to fetch UserMetadata for id #%s.", raw),
		message:   "UserMetadata fetched successfully",
	}, func(ctx context.Context) (*domain.UserMetadata, error) {
		userID, err := userIDParam(r)
		if err != nil {
			return nil, err
		}

		return h.deps.Store.GetByID(ctx, userID) //nolint: wrapcheck
	}, encodeUserMetadata)
}

// FindMany handles GET /user-metadata. The filter travels in the request body.
func (h *Handler) FindMany(w http.ResponseWriter, r *http.Request) {
	serve(h, w, r, operation{
		name:      "findMany",
		started:   "fetching user metadata list",
		succeeded: "successfully fetched user metadata list",
		failed:    "Failed to fetch UserMetadata(s).",
		message:   "UserMetadata(s) fetched successfully",
	}, func(ctx context.Context) ([]domain.UserMetadata, error) {
		filter, err := readListFilter(r)
		if err != nil {
			return nil, err
		}

		return h.deps.Store.List(ctx, filter) //nolint: wrapcheck
	}, encodeUserMetadataList)
}

// Remove handles DELETE /user-metadata/{userId}.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	r = r.WithContext(logger.WithFields(r.Context(), zap.String("user_id", chi.URLParam(r, "userId"))))

	serve(h, w, r, operation{
		name:      "remove",
		started:   "deleting user metadata",
		succeeded: "successfully deleted user metadata",
		failed:    "Failed to delete UserMetadata.",
		message:   "UserMetadata deleted successfully",
	}, func(ctx context.Context) (*domain.UserMetadata, error) {
		userID, err := userIDParam(r)
		if err != nil {
			return nil, err
		}

		return h.deps.Store.DeleteByID(ctx, userID) //nolint: wrapcheck
	}, encodeUserMetadata)
}

// ListFilterRequest is the wire form of the FindMany filter.
// The json tags only name fields in validation messages; decoding is done with jx.
type ListFilterRequest struct {
	UserIDs       []string `json:"userIds"       validate:"max=1000,dive,uuid_rfc4122"`
	CreatedAfter  string   `json:"createdAfter"  validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	CreatedBefore string   `json:"createdBefore" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	UpdatedAfter  string   `json:"updatedAfter"  validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	UpdatedBefore string   `json:"updatedBefore" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Limit         int      `json:"limit"         validate:"gte=0"`
	Offset        int      `json:"offset"        validate:"gte=0"`
}

// readListFilter decodes and validates the filter body. An empty body is an
// empty filter.
func readListFilter(r *http.Request) (domain.UserMetadataFilter, error) {
	var body []byte
	if r.Body != nil {
		b, err := io.ReadAll(io.LimitReader(r.Body, maxFilterBodyBytes))
		if err != nil {
			return domain.UserMetadataFilter{}, serrors.Wrap(serrors.ErrBadRequest, err, "could not read filter")
		}
		body = b
	}

	req, err := DecodeListFilter(body)
	if err != nil {
		return domain.UserMetadataFilter{}, serrors.Wrap(serrors.ErrBadRequest, err, "malformed filter")
	}

	if err := validate.Struct(req); err != nil {
		return domain.UserMetadataFilter{}, serrors.Wrap(serrors.ErrBadRequest, err, "%s", validationMessage(err))
	}

	return req.ToDomain()
}

// DecodeListFilter parses a filter JSON object. Unknown fields are ignored and
// null values are treated as absent.
func DecodeListFilter(body []byte) (ListFilterRequest, error) {
	var f ListFilterRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return f, nil
	}

	str := func(d *jx.Decoder, dst *string) error {
		s, err := d.Str()
		if err != nil {
			return err //nolint: wrapcheck
		}
		*dst = s

		return nil
	}
	num := func(d *jx.Decoder, dst *int) error {
		n, err := d.Int()
		if err != nil {
			return err //nolint: wrapcheck
		}
		*dst = n

		return nil
	}

	d := jx.DecodeBytes(body)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if d.Next() == jx.Null {
			return d.Null() //nolint: wrapcheck
		}

		switch string(key) {
		case "userIds":
			f.UserIDs = []string{}

			return d.Arr(func(d *jx.Decoder) error { //nolint: wrapcheck
				s, err := d.Str()
				if err != nil {
					return err //nolint: wrapcheck
				}
				f.UserIDs = append(f.UserIDs, s)

				return nil
			})
		case "createdAfter":
			return str(d, &f.CreatedAfter)
		case "createdBefore":
			return str(d, &f.CreatedBefore)
		case "updatedAfter":
			return str(d, &f.UpdatedAfter)
		case "updatedBefore":
			return str(d, &f.UpdatedBefore)
		case "limit":
			return num(d, &f.Limit)
		case "offset":
			return num(d, &f.Offset)
		default:
			return d.Skip() //nolint: wrapcheck
		}
	})
	if err != nil {
		return ListFilterRequest{}, fmt.Errorf("could not decode filter: %w", err)
	}

	return f, nil
}

// ToDomain converts a validated request into the store filter.
func (f ListFilterRequest) ToDomain() (domain.UserMetadataFilter, error) {
	out := domain.UserMetadataFilter{
		Limit:  uint(f.Limit),  //nolint: gosec
		Offset: uint(f.Offset), //nolint: gosec
	}

	for _, raw := range f.UserIDs {
		id, err := domain.ParseUserID(raw)
		if err != nil {
			return domain.UserMetadataFilter{}, serrors.Wrap(serrors.ErrBadRequest, err, "userIds must contain uuids")
		}
		out.UserIDs = append(out.UserIDs, id)
	}

	times := []struct {
		name string
		raw  string
		dst  *time.Time
	}{
		{"createdAfter", f.CreatedAfter, &out.CreatedAfter},
		{"createdBefore", f.CreatedBefore, &out.CreatedBefore},
		{"updatedAfter", f.UpdatedAfter, &out.UpdatedAfter},
		{"updatedBefore", f.UpdatedBefore, &out.UpdatedBefore},
	}
	for _, t := range times {
		if t.raw == "" {
			continue
		}
		parsed, err := time.Parse(time.RFC3339, t.raw)
		if err != nil {
			return domain.UserMetadataFilter{}, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be an RFC 3339 timestamp", t.name)
		}
		*t.dst = parsed
	}

	return out, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid filter"
	}

	fe := verrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "ListFilterRequest.")
	switch fe.Tag() {
	case "uuid_rfc4122":
		return field + " must be a uuid"
	case "datetime":
		return field + " must be an RFC 3339 timestamp"
	case "gte":
		return field + " must not be negative"
	case "max":
		return field + " must contain at most " + fe.Param() + " items"
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
	}
}
