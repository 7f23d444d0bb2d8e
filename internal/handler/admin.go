package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Adventure_Go/internal/character"
	"github.com/osse101/Adventure_Go/internal/logger"
	"github.com/osse101/Adventure_Go/internal/session"
	"github.com/osse101/Adventure_Go/internal/sse"
)

// CacheInspector is the character cache as seen by operators
type CacheInspector interface {
	Stats() character.CacheStats
	Invalidate(userID string)
}

// AdminHandler handles operator endpoints
type AdminHandler struct {
	sessions session.Service
	hub      *sse.Hub
	cache    CacheInspector
}

// NewAdminHandler creates a new admin handler. cache may be nil when the
// character store is not cached.
func NewAdminHandler(sessions session.Service, hub *sse.Hub, cache CacheInspector) *AdminHandler {
	return &AdminHandler{sessions: sessions, hub: hub, cache: cache}
}

// AdminStatsResponse summarizes live server state
type AdminStatsResponse struct {
	ActiveAdventures int                   `json:"active_adventures"`
	SSEClients       int                   `json:"sse_clients"`
	Cache            *character.CacheStats `json:"cache,omitempty"`
}

// HandleStats reports live adventures, stream clients and cache occupancy
// @Summary Server stats
// @Tags admin
// @Produce json
// @Success 200 {object} AdminStatsResponse
// @Router /admin/stats [get]
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	resp := AdminStatsResponse{
		ActiveAdventures: len(h.sessions.Active(r.Context())),
	}
	if h.hub != nil {
		resp.SSEClients = h.hub.ClientCount()
	}
	if h.cache != nil {
		stats := h.cache.Stats()
		resp.Cache = &stats
	}
	respondJSON(w, http.StatusOK, resp)
}

// HandleInvalidateCache drops one character from the cache
// @Summary Invalidate cached character
// @Tags admin
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Router /admin/cache/{userID} [delete]
func (h *AdminHandler) HandleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, ParamUserID)
	if h.cache != nil {
		h.cache.Invalidate(userID)
	}
	logger.FromContext(r.Context()).Info("Character cache invalidated", "userID", userID)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Cache entry invalidated"})
}

// SweepResponse reports how many stale adventures were closed
type SweepResponse struct {
	Closed int `json:"closed"`
}

// HandleSweep force-closes adventures older than the session TTL
// @Summary Sweep stale adventures
// @Tags admin
// @Produce json
// @Success 200 {object} SweepResponse
// @Router /admin/sweep [post]
func (h *AdminHandler) HandleSweep(w http.ResponseWriter, r *http.Request) {
	closed := h.sessions.Sweep(r.Context(), time.Now())
	logger.FromContext(r.Context()).Info("Manual sweep finished", "closed", closed)
	respondJSON(w, http.StatusOK, SweepResponse{Closed: closed})
}

// AdminSSEBroadcastRequest represents the request to broadcast an SSE event
type AdminSSEBroadcastRequest struct {
	Type    string          `json:"type" validate:"required,max=64"`
	GroupID string          `json:"group_id" validate:"max=100"`
	Payload json.RawMessage `json:"payload"`
}

// HandleBroadcast sends a manual event to stream clients
// @Summary Broadcast SSE event
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminSSEBroadcastRequest true "Event"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /admin/sse/broadcast [post]
func (h *AdminHandler) HandleBroadcast(w http.ResponseWriter, r *http.Request) {
	var req AdminSSEBroadcastRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Broadcast SSE"); err != nil {
		return
	}

	var payload interface{}
	if len(req.Payload) > 0 {
		if err := json.Unmarshal(req.Payload, &payload); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid payload JSON")
			return
		}
	}

	if h.hub == nil || !h.hub.Broadcast(req.Type, req.GroupID, payload) {
		respondError(w, http.StatusServiceUnavailable, "Event stream is unavailable")
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Event broadcast"})
}
