// Package api - Thin HTTP layer over the calculation core
// The API is only responsible for input ingestion, calculation
// orchestration, and output serialization. It performs no cost logic.
package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"databricks-cost/core/catalog"
	"databricks-cost/core/costing"
	"databricks-cost/core/input"
	"databricks-cost/core/rates"
	"databricks-cost/internal/config"
	"databricks-cost/internal/logging"
)

// Server is the API server
type Server struct {
	mux      *http.ServeMux
	version  string
	store    *rates.Store
	specs    catalog.Catalog
	defaults config.DefaultsConfig
}

// NewServer creates a new API server over a loaded rate store
func NewServer(version string, store *rates.Store, specs catalog.Catalog, defaults config.DefaultsConfig) *Server {
	s := &Server{
		mux:      http.NewServeMux(),
		version:  version,
		store:    store,
		specs:    specs,
		defaults: defaults,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)
	s.mux.HandleFunc("GET /rates", s.handleRates)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := generateRequestID()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	defaults := s.defaults
	if req.Region != "" {
		defaults.Region = req.Region
	}

	workloads, err := input.Convert(req.Workloads, defaults)
	if err != nil {
		s.writeError(w, requestID, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	breakdowns, totals := costing.ComputeAll(workloads, s.store)

	var warnings []string
	for _, b := range breakdowns {
		warnings = append(warnings, b.Warnings...)
	}

	logging.Info("estimate served",
		zap.String("request_id", requestID),
		zap.Int("workloads", len(workloads)),
		zap.Int("warnings", len(warnings)))

	s.writeJSON(w, &EstimateResponse{
		RequestID:  requestID,
		Breakdowns: breakdowns,
		Totals:     totals,
		Warnings:   warnings,
		DurationMs: time.Since(start).Milliseconds(),
	}, http.StatusOK)
}

// handleRates handles GET /rates
func (s *Server) handleRates(w http.ResponseWriter, r *http.Request) {
	instanceTypes := s.store.InstanceTypes()
	catalog.Sort(instanceTypes)

	labelled := make([]string, len(instanceTypes))
	for i, inst := range instanceTypes {
		labelled[i] = s.specs.Label(inst)
	}

	s.writeJSON(w, &RatesResponse{
		WorkloadTypes:  s.store.WorkloadTypes(),
		InstanceTypes:  labelled,
		WarehouseSizes: s.store.WarehouseSizes(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "databricks-cost",
	}, http.StatusOK)
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes a JSON error response
func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	s.writeJSON(w, &ErrorResponse{
		RequestID: requestID,
		Code:      code,
		Message:   message,
	}, status)
}

// generateRequestID returns a random request identifier
func generateRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "req-unknown"
	}
	return "req-" + hex.EncodeToString(buf)
}
