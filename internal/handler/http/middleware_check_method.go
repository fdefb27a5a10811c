// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/go-chi/chi/v5"
)

var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// A custom handler does not receive chi's list of allowed methods, and
// matching against router itself only reaches the mount point of a
// subrouter. The Allow header is therefore built from the full route
// patterns reported by [chi.Walk], flattened into a router without
// subrouters on the first 405. The response is a JSON 405.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	var (
		once sync.Once
		flat *chi.Mux
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			flat = flattenRoutes(router, logger.FromRequest(r))
		})

		if allowed := allowedMethods(flat, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeMessage(w, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}

// flattenRoutes registers every method and full pattern of router on a
// router without subrouters.
func flattenRoutes(router chi.Routes, log *logger.Logger) *chi.Mux {
	flat := chi.NewRouter()
	noop := func(http.ResponseWriter, *http.Request) {}

	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		flat.MethodFunc(method, route, noop)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "flattenRoutes").Msg("failed to walk routes")
	}
	return flat
}

func allowedMethods(flat *chi.Mux, path string) []string {
	allowed := make([]string, 0, len(routedMethods))
	for _, method := range routedMethods {
		if flat.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
