// Package server exposes the dashboards over HTTP. Pages render with
// default parameters; every widget change hits /api/{dashboard} for a
// fresh recompute. All request state lives in the query string, so
// concurrent sessions never share parameters.
package server

import (
	"net/http"
	"sync"

	"plotdash/internal/config"
	"plotdash/internal/dashboards"
	"plotdash/internal/snapshot"
	"plotdash/internal/storage"
)

// Server wires the dashboard service, page builder, snapshot exporter
// and storage behind the HTTP routes.
type Server struct {
	Config   *config.Config
	Service  *dashboards.Service
	Pages    *dashboards.PageBuilder
	Exporter *snapshot.Exporter
	Storage  storage.StorageClient

	exportMutex sync.Mutex
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, service *dashboards.Service, store storage.StorageClient, exporter *snapshot.Exporter) *Server {
	return &Server{
		Config:   cfg,
		Service:  service,
		Pages:    dashboards.NewPageBuilder(service.Theme()),
		Exporter: exporter,
		Storage:  store,
	}
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/dashboards/", s.HandleDashboard)
	mux.HandleFunc("/api/", s.HandleAPI)
	mux.HandleFunc("/exports/", s.HandleExportFile)
	mux.HandleFunc("/snapshots", s.HandleListSnapshots)

	// Root last (catch-all).
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
