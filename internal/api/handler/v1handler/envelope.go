package v1handler

import (
	"context"
	"net/http"
	"time"
	"usermeta/pkg/domain"
	"usermeta/pkg/logger"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// writeSuccess renders {"message": ..., "data": ...}.
func writeSuccess(ctx context.Context, w http.ResponseWriter, statusCode int, message string,
	data func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("message")
	e.Str(message)
	e.FieldStart("data")
	data(e)
	e.ObjEnd()

	writeJSON(ctx, w, statusCode, e.Bytes())
}

// writeFailure renders {"statusCode": ..., "message": ...} and writes the same
// status code on the response line.
func writeFailure(ctx context.Context, w http.ResponseWriter, statusCode int, message string) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("statusCode")
	e.Int(statusCode)
	e.FieldStart("message")
	e.Str(message)
	e.ObjEnd()

	writeJSON(ctx, w, statusCode, e.Bytes())
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		logger.Warn(ctx, "could not write response body", zap.Error(err))
	}
}

func encodeUserMetadata(e *jx.Encoder, m *domain.UserMetadata) {
	e.ObjStart()
	e.FieldStart("userId")
	e.Str(m.UserID.String())
	e.FieldStart("attributes")
	if len(m.Attributes) > 0 && jx.Valid(m.Attributes) {
		e.Raw(m.Attributes)
	} else {
		e.ObjStart()
		e.ObjEnd()
	}
	e.FieldStart("createdAt")
	e.Str(m.CreatedAt.UTC().Format(time.RFC3339Nano))
	e.FieldStart("updatedAt")
	e.Str(m.UpdatedAt.UTC().Format(time.RFC3339Nano))
	e.ObjEnd()
}

func encodeUserMetadataList(e *jx.Encoder, list []domain.UserMetadata) {
	e.ArrStart()
	for i := range list {
		encodeUserMetadata(e, &list[i])
	}
	e.ArrEnd()
}
