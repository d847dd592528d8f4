// Package app wires the HTTP surface of the organizations directory.
package app

import (
	"log/slog"
	"net/http"

	"github.com/orgdirectory/organizations/app/middleware"
	"github.com/orgdirectory/organizations/app/organizations"
)

// NewRouter builds the application handler around the given store.
func NewRouter(store organizations.OrganizationProvider, logger *slog.Logger) http.Handler {
	orgHandler := organizations.NewOrganizationHandler(store, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", orgHandler.HandleHome)
	mux.HandleFunc("GET /create/{$}", orgHandler.HandleCreateForm)
	mux.HandleFunc("POST /create/{$}", orgHandler.HandleCreate)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	return middleware.RequestID(middleware.Logger(logger)(mux))
}
