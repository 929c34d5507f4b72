package handler

import (
	"net/http"

	"github.com/forgo/roster/api/internal/middleware"
	"github.com/forgo/roster/api/internal/model"
	"github.com/forgo/roster/api/internal/service"
)

// AdministratorHandler handles administrator HTTP requests
type AdministratorHandler struct {
	administrators *service.AdministratorService
	errs           *Translator
}

// AdministratorHandlerConfig holds dependencies for the administrator handler
type AdministratorHandlerConfig struct {
	AdministratorService *service.AdministratorService
	Translator           *Translator
}

// NewAdministratorHandler creates a new administrator handler
func NewAdministratorHandler(cfg AdministratorHandlerConfig) *AdministratorHandler {
	return &AdministratorHandler{
		administrators: cfg.AdministratorService,
		errs:           cfg.Translator,
	}
}

// GetAll handles GET /api/administrators
func (h *AdministratorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	administrators, err := h.administrators.GetAll(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, administrators)
}

// Count handles GET /api/administrators/count
func (h *AdministratorHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.administrators.Count(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

// GetByAuth0ID handles GET /api/administrators/{auth0id}
func (h *AdministratorHandler) GetByAuth0ID(w http.ResponseWriter, r *http.Request) {
	auth0ID := middleware.ParamString(r.Context(), "auth0id")

	administrator, err := h.administrators.GetByAuth0ID(r.Context(), auth0ID)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, administrator)
}

// Create handles POST /api/administrators
func (h *AdministratorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAdministratorRequest
	if err := middleware.BindBody(r.Context(), &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	administrator, err := h.administrators.Create(r.Context(), req)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, administrator)
}

// Update handles PUT /api/administrators/{auth0id}
func (h *AdministratorHandler) Update(w http.ResponseWriter, r *http.Request) {
	auth0ID := middleware.ParamString(r.Context(), "auth0id")

	var req model.UpdateAdministratorRequest
	if err := middleware.BindBody(r.Context(), &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	administrator, err := h.administrators.Update(r.Context(), auth0ID, req)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, administrator)
}

// Delete handles DELETE /api/administrators/{auth0id}
func (h *AdministratorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	auth0ID := middleware.ParamString(r.Context(), "auth0id")

	if err := h.administrators.Delete(r.Context(), auth0ID); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// DeleteAll handles DELETE /api/administrators
func (h *AdministratorHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if _, err := h.administrators.DeleteAll(r.Context()); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}
