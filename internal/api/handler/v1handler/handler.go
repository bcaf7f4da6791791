package v1handler

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"usermeta/internal/usermetadata"
	"usermeta/pkg/logger"
	"usermeta/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const instrumentationName = "usermeta/internal/api/handler/v1handler"

// Pinger reports whether the persistence backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	// Store serves the user metadata operations.
	Store usermetadata.Store
	// Classifier maps store failures to status codes. Defaults to DefaultClassifier.
	Classifier ErrorClassifier
	// Pinger backs the health endpoint. The endpoint is not registered when nil.
	Pinger Pinger

	// MeterProvider and TracerProvider default to no-op providers.
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

type Handler struct {
	deps    Deps
	metrics *metrics.Operations
	tracer  trace.Tracer
}

func New(deps Deps) (*Handler, error) {
	if deps.Classifier == nil {
		deps.Classifier = DefaultClassifier{}
	}
	if deps.MeterProvider == nil {
		deps.MeterProvider = metricnoop.NewMeterProvider()
	}
	if deps.TracerProvider == nil {
		deps.TracerProvider = tracenoop.NewTracerProvider()
	}

	ops, err := metrics.NewOperations(deps.MeterProvider.Meter(instrumentationName), "usermetadata")
	if err != nil {
		return nil, fmt.Errorf("could not create handler metrics: %w", err)
	}

	return &Handler{
		deps:    deps,
		metrics: ops,
		tracer:  deps.TracerProvider.Tracer(instrumentationName),
	}, nil
}

// Register mounts the v1 routes on r. The middlewares only wrap the
// user-metadata routes, the health endpoint stays public.
func (h *Handler) Register(r chi.Router, middlewares ...func(http.Handler) http.Handler) {
	if h.deps.Pinger != nil {
		r.Get("/healthz", h.Health)
	}

	r.Group(func(r chi.Router) {
		r.Use(middlewares...)

		r.Post("/user-metadata/{userId}", h.CreateOrUpdate)
		r.Get("/user-metadata/{userId}", h.FindByID)
		r.Get("/user-metadata", h.FindMany)
		r.Delete("/user-metadata/{userId}", h.Remove)
	})
}

// NotFound renders unknown routes as a failure envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeFailure(r.Context(), w, http.StatusNotFound, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowed renders unsupported methods as a failure envelope.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeFailure(r.Context(), w, http.StatusMethodNotAllowed, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path))
}

// operation describes one endpoint call for logging, metrics and the envelope.
type operation struct {
	// name labels metrics and spans.
	name string
	// started and succeeded are logged on entry and on success.
	started   string
	succeeded string
	// failed is logged with the error and used as the response message when
	// the classifier has none.
	failed string
	// message is the success envelope message.
	message string
}

// serve runs call and writes its result as an envelope. Failures are logged,
// classified and rendered with the same status on the response line and in
// the body. Nothing is retried.
func serve[T any](h *Handler,
	w http.ResponseWriter,
	r *http.Request,
	op operation,
	call func(ctx context.Context) (T, error),
	encode func(e *jx.Encoder, v T)) {
	ctx, span := h.tracer.Start(r.Context(), "UserMetadata."+op.name)
	defer span.End()
	start := time.Now()

	logger.Info(ctx, op.started)

	res, err := call(ctx)
	if err != nil {
		logger.Error(ctx, op.failed, zap.Error(err))

		statusCode, message := h.deps.Classifier.Classify(err)
		if message == "" {
			message = op.failed
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, message)
		h.metrics.Record(ctx, op.name, statusCode, time.Since(start))
		writeFailure(ctx, w, statusCode, message)

		return
	}

	logger.Info(ctx, op.succeeded)

	h.metrics.Record(ctx, op.name, http.StatusOK, time.Since(start))
	writeSuccess(ctx, w, http.StatusOK, op.message, func(e *jx.Encoder) {
		encode(e, res)
	})
}
