package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// runtimeProfiles are served by name next to the pprof index.
var runtimeProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} //nolint: gochecknoglobals

// Pprof returns the net/http/pprof handlers for mounting under prefix,
// e.g. Pprof("/debug/pprof") serves /debug/pprof/heap.
func Pprof(prefix string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	for _, name := range runtimeProfiles {
		mux.Handle("/"+name, pprof.Handler(name))
	}

	return http.StripPrefix(strings.TrimSuffix(prefix, "/"), mux)
}
