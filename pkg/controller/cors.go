package controller

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowedHeaders = "Content-Type, Content-Length, Accept, Accept-Encoding, Authorization, Cache-Control, Origin, " +
		RequestIDHeader
	corsAllowedMethods = "GET, POST, DELETE, OPTIONS"
)

// CORSOptions configure the CORS middleware.
type CORSOptions struct {
	// AllowedOrigins are matched against the Origin header. Empty or "*" allows any origin.
	AllowedOrigins []string
}

func (o CORSOptions) anyOrigin() bool {
	return len(o.AllowedOrigins) == 0 || slices.Contains(o.AllowedOrigins, "*")
}

// CORS returns a middleware that adds CORS headers for allowed origins and
// answers OPTIONS preflight requests with 204 No Content. Requests from
// other origins are served without CORS headers.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			origin := r.Header.Get("Origin")

			switch {
			case opts.anyOrigin():
				h.Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.ContainsFunc(opts.AllowedOrigins, func(o string) bool {
				return strings.EqualFold(o, origin)
			}):
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			default:
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)

					return
				}
				next.ServeHTTP(w, r)

				return
			}

			h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowedMethods)
			h.Set("Access-Control-Expose-Headers", RequestIDHeader)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
