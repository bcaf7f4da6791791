// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the user metadata service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"
	"usermeta/internal/api/handler/v1handler"
	"usermeta/internal/config"
	"usermeta/pkg/controller"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is written by http.TimeoutHandler, which always answers 503.
const timeoutBody = `{"statusCode":503,"message":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures bearer token verification for the user-metadata routes.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// AuthEnabled requires a bearer token on the user-metadata routes.
	AuthEnabled bool
	// PprofEnabled mounts the pprof handlers under /debug/pprof/.
	PprofEnabled bool
	// CORS configures the origins allowed to call the API from a browser.
	CORS controller.CORSOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		AuthEnabled:       cfg.HTTP.AuthEnabled,
		PprofEnabled:      cfg.HTTP.PprofEnabled,
		CORS:              controller.CORSOptions{AllowedOrigins: cfg.HTTP.CORSAllowedOrigins},

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) fed by an OpenTelemetry exporter
// - Embedded OpenAPI v1 spec and Swagger UI
// - user-metadata routes, behind bearer auth when enabled
// - pprof endpoints for profiling when enabled
// It also wraps the router with CORS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := newHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func newHandler(deps Deps, opts Options) (http.Handler, error) {
	r := chi.NewRouter()
	r.NotFound(v1handler.NotFound)
	r.MethodNotAllowed(v1handler.MethodNotAllowed)

	// prometheus metrics server
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	// otel
	if deps.MeterProvider == nil {
		exp, err := otelprom.New(otelprom.WithRegisterer(reg))
		if err != nil {
			return nil, fmt.Errorf("could not create otel exporter: %w", err)
		}
		deps.MeterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	}
	if deps.TracerProvider == nil {
		deps.TracerProvider = otel.GetTracerProvider()
	}

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/docs/*", v5emb.New(
		"User Metadata Service",
		"/specs/v1.yaml",
		"/docs/",
	))

	// pprof
	if opts.PprofEnabled {
		r.Mount("/debug/pprof", controller.Pprof("/debug/pprof"))
	}

	// v1 api
	v1, err := v1handler.New(deps.Deps)
	if err != nil {
		return nil, fmt.Errorf("could not create v1 handler: %w", err)
	}

	var middlewares []func(http.Handler) http.Handler
	if opts.AuthEnabled {
		secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
		if err != nil {
			return nil, fmt.Errorf("could not create sec handler: %w", err)
		}
		middlewares = append(middlewares, secHandler.Middleware)
	}
	v1.Register(r, middlewares...)

	// cors
	handler := controller.CORS(opts.CORS)(r)

	// logger
	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return handler, nil
}
