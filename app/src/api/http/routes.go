package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"carbon-backend/app/src/domain"
	"carbon-backend/app/src/infra"
	"carbon-backend/app/src/shared/constants"
)

const queryLimit = "limit"

// handler contains the HTTP handlers and shared dependencies for the API.
type handler struct {
	ingest       domain.IngestService
	cache        domain.LatestCache
	readings     domain.ReadingsService
	defaultLimit int
	logger       *infra.Logger
}

func registerRoutes(router *chi.Mux, h *handler) {
	router.Get("/", h.handleRoot)
	router.Get("/healthz", h.handleHealthz)
	router.Get("/data", h.handleGetData)
	router.Post("/data", h.handlePostData)
	router.Get("/readings", h.handleGetReadings)
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type savedResponse struct {
	Status string             `json:"status"`
	Saved  domain.Measurement `json:"saved"`
	DBID   int64              `json:"db_id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Message: "Carbon backend running"})
}

func (h *handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// handleGetData serves the fast path: the last accepted measurement,
// regardless of whether its durable write succeeded.
func (h *handler) handleGetData(w http.ResponseWriter, r *http.Request) {
	m, ok := h.cache.Get()
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "No data received yet"})
		return
	}
	h.writeJSON(w, http.StatusOK, m)
}

func (h *handler) handlePostData(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawPayload
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid payload format: request body must be a JSON object"})
		return
	}

	outcome := h.ingest.Ingest(r.Context(), raw)
	switch outcome.Status {
	case domain.IngestRejected:
		h.logger.Printf(r.Context(), "payload rejected: %v", outcome.Err)
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid payload format: " + outcome.Err.Error()})
	case domain.IngestPartial:
		h.writeJSON(w, http.StatusInternalServerError, statusResponse{
			Status:  "error",
			Message: "Stored in RAM but failed to write to DB",
		})
	case domain.IngestStored:
		h.writeJSON(w, http.StatusCreated, savedResponse{
			Status: "ok",
			Saved:  outcome.Measurement,
			DBID:   outcome.RecordID,
		})
	}
}

func (h *handler) handleGetReadings(w http.ResponseWriter, r *http.Request) {
	limit := h.parseLimit(r.URL.Query().Get(queryLimit))

	enriched, err := h.readings.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Errorf(r.Context(), "recent readings query failed: %v", err)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to fetch readings"})
		return
	}
	if enriched == nil {
		enriched = []domain.EnrichedReading{}
	}
	h.writeJSON(w, http.StatusOK, enriched)
}

// parseLimit falls back to the configured default on garbage input and
// caps runaway values.
func (h *handler) parseLimit(param string) int {
	if param == "" {
		return h.defaultLimit
	}
	limit, err := strconv.Atoi(param)
	if err != nil || limit <= 0 {
		return h.defaultLimit
	}
	if limit > constants.MaxReadingsLimit {
		return constants.MaxReadingsLimit
	}
	return limit
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
