// Package controller holds the HTTP middlewares shared by every route of the
// API server: CORS handling, request IDs with access logging, and the pprof
// handlers.
package controller
