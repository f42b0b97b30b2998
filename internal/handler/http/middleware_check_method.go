// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-signup/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
//
// A signup route hit with a method it does not serve (GET /users/,
// DELETE /users/me) answers 404 with the usual {"mensaje": ...} body instead
// of chi's 405, so callers cannot enumerate supported methods. Requests the
// router can actually match, including parameterised patterns, are handed
// back to it.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			utils.WriteError(w, msgNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
