package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/casegen/pkg/batch"
	"github.com/matzehuels/casegen/pkg/buildinfo"
	"github.com/matzehuels/casegen/pkg/constraint"
	"github.com/matzehuels/casegen/pkg/gen"
)

// Handler serves the API endpoints.
type Handler struct {
	runner *batch.Runner
	logger *log.Logger
}

// NewHandler creates a handler backed by runner.
func NewHandler(runner *batch.Runner, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = batch.NewRunner(nil, nil, logger)
	}
	return &Handler{runner: runner, logger: logger}
}

// GenerateRequest is the body of POST /api/v1/generate.
type GenerateRequest struct {
	Constraints *constraint.Set `json:"constraints"`
	Count       int             `json:"count,omitempty"`
	Seed        *int64          `json:"seed,omitempty"`
	Refresh     bool            `json:"refresh,omitempty"`
}

// GenerateResponse is the reply to a successful generate request.
type GenerateResponse struct {
	ID        string        `json:"id"`
	Seed      *int64        `json:"seed,omitempty"`
	Count     int           `json:"count"`
	Cached    bool          `json:"cached"`
	TestCases []*gen.Record `json:"testCases"`
}

// HealthResponse is the reply to /health and /ready.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Cache   string `json:"cache,omitempty"`
}

// pinger is implemented by caches with a reachable backend.
type pinger interface {
	Ping(ctx context.Context) error
}

// Generate handles POST /api/v1/generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeBadRequest(w, r, "invalid request body: "+err.Error())
		return
	}
	if req.Constraints == nil {
		writeBadRequest(w, r, "constraints is required")
		return
	}

	res, err := h.runner.Run(r.Context(), batch.Request{
		Constraints: req.Constraints,
		Count:       req.Count,
		Seed:        req.Seed,
		Refresh:     req.Refresh,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		ID:        res.ID,
		Seed:      res.Seed,
		Count:     len(res.Records),
		Cached:    res.CacheHit,
		TestCases: res.Records,
	})
}

// Health handles GET /health. It only reports that the process is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: buildinfo.Version})
}

// Ready handles GET /ready. It fails when the cache backend is unreachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Version: buildinfo.Version}
	if p, ok := h.runner.Cache.(pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			h.logger.Warn("cache not ready", "error", err)
			resp.Status = "unavailable"
			resp.Cache = "unreachable"
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Cache = "ok"
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
