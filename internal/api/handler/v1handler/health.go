package v1handler

import (
	"net/http"
	"usermeta/pkg/logger"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Health reports whether the storage backend answers a ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.deps.Pinger.Ping(ctx); err != nil {
		logger.Error(ctx, "health check failed", zap.Error(err))
		writeFailure(ctx, w, http.StatusServiceUnavailable, "database unavailable")

		return
	}

	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.ObjStart()
	e.FieldStart("status")
	e.Str("ok")
	e.ObjEnd()

	writeJSON(ctx, w, http.StatusOK, e.Bytes())
}
