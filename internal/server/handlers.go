package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"plotdash/internal/dashboards"
	"plotdash/internal/logger"
	"plotdash/internal/pipeline"
	"plotdash/internal/storage"
)

// HandleRoot serves the landing page listing every dashboard.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, err := s.Pages.BuildIndexPage(s.Service.Descriptors())
	if err != nil {
		logger.Error("Failed to build index page", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(page))
}

// HandleDashboard serves one dashboard page with its default result
// embedded.
func (s *Server) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/dashboards/"), "/")
	desc, err := s.Service.Descriptor(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	result, err := s.Service.DefaultResult(name)
	if err != nil {
		logger.Error("Default recompute failed", err, map[string]interface{}{"dashboard": name})
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	extra := ""
	if name == dashboards.NameIris {
		view := pipeline.FilterIris(s.Service.Data().Iris, pipeline.IrisParams{})
		extra = dashboards.IrisTableHTML(view)
	}

	page, err := s.Pages.BuildDashboardPage(desc, result, extra)
	if err != nil {
		logger.Error("Failed to build dashboard page", err, map[string]interface{}{"dashboard": name})
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(page))
}

// HandleAPI routes /api/{dashboard} recomputes and
// /api/{dashboard}/export snapshot requests.
func (s *Server) HandleAPI(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1:
		s.handleRecompute(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "export":
		s.handleExport(w, r, parts[0])
	default:
		http.NotFound(w, r)
	}
}

// handleRecompute maps the query string to parameters and returns the
// recomputed result as JSON. Bad widget values never error; they fall
// back to the documented defaults.
func (s *Server) handleRecompute(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var (
		result dashboards.Result
		err    error
	)
	query := r.URL.Query()
	switch name {
	case dashboards.NameIris:
		result, err = s.Service.IrisResult(parseIrisParams(query))
	case dashboards.NameQuakes:
		result, err = s.Service.QuakesResult(parseQuakeParams(query))
	case dashboards.NameMarket:
		result, err = s.Service.MarketResult(parseMarketParams(query))
	case dashboards.NameSimulation:
		result, err = s.Service.SimulationResult(parseSimParams(query))
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		logger.Error("Recompute failed", err, map[string]interface{}{"dashboard": name})
		writeJSONError(w, http.StatusInternalServerError, "Recompute failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// handleExport stores a snapshot bundle for the dashboard. Only one
// export runs at a time; a concurrent request gets 409.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.exportMutex.TryLock() {
		logger.Warn("Snapshot export already in progress, rejecting new request")
		writeJSONError(w, http.StatusConflict, "Snapshot export already in progress")
		return
	}
	defer s.exportMutex.Unlock()

	folderPath, err := s.Exporter.Export(r.Context(), name)
	if err != nil {
		logger.Error("Snapshot export failed", err, map[string]interface{}{"dashboard": name})
		writeJSONError(w, http.StatusInternalServerError, "Snapshot export failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"path":   folderPath,
	})
}

// HandleExportFile serves stored snapshot files through the storage
// client, so it works for local and GCS deployments alike.
func (s *Server) HandleExportFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/exports/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		logger.Debugf("Snapshot file not found: %s", filePath)
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(fileData)
}

// HandleListSnapshots lists recent snapshot bundles.
func (s *Server) HandleListSnapshots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if _, err := fmt.Sscanf(limitStr, "%d", &limit); err != nil || limit <= 0 {
			limit = 10
		}
		if limit > 100 {
			limit = 100
		}
	}

	snapshots, err := s.Storage.ListSnapshots(r.Context(), limit)
	if err != nil {
		logger.Error("Failed to list snapshots", err)
		writeJSONError(w, http.StatusInternalServerError, "Failed to list snapshots")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"snapshots": snapshots,
		"count":     len(snapshots),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"dashboards": map[string]int{
			"iris":        len(s.Service.Data().Iris.Rows),
			"earthquakes": len(s.Service.Data().Quakes.Rows),
			"market":      len(s.Service.Data().Market.Rows),
			"simulation":  len(s.Service.Data().Momentum.X),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
