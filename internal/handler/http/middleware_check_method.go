// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/chronos/internal/app"
	"github.com/MKhiriev/chronos/internal/utils"
	"github.com/MKhiriev/chronos/models"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's 405 it answers 404 with the JSON error envelope, so that
// unsupported methods do not reveal which paths exist. Requests whose method
// does match a route are forwarded to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

// notFound is the JSON 404 for [chi.Mux.NotFound].
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ActionResponse{Success: false, Error: app.MsgNotFound}, http.StatusNotFound)
}
