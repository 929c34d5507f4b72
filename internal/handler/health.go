package handler

import (
	"context"
	"net/http"

	"github.com/forgo/roster/api/internal/model"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles liveness and readiness checks
type HealthHandler struct {
	db   Pinger
	errs *Translator
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, errs *Translator) *HealthHandler {
	return &HealthHandler{db: db, errs: errs}
}

// healthResponse is the body of GET /health
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.errs.WriteError(w, r, model.NewInternal("database unreachable"))
		return
	}
	WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "up"})
}
