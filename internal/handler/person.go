package handler

import (
	"net/http"

	"github.com/forgo/roster/api/internal/middleware"
	"github.com/forgo/roster/api/internal/model"
	"github.com/forgo/roster/api/internal/service"
)

// PersonHandler handles person HTTP requests
type PersonHandler struct {
	people      *service.PersonService
	memberships *service.MembershipService
	errs        *Translator
}

// PersonHandlerConfig holds dependencies for the person handler
type PersonHandlerConfig struct {
	PersonService     *service.PersonService
	MembershipService *service.MembershipService
	Translator        *Translator
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(cfg PersonHandlerConfig) *PersonHandler {
	return &PersonHandler{
		people:      cfg.PersonService,
		memberships: cfg.MembershipService,
		errs:        cfg.Translator,
	}
}

// GetAll handles GET /api/people
func (h *PersonHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	people, err := h.people.GetAll(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, people)
}

// Count handles GET /api/people/count
func (h *PersonHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.people.Count(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

// GetByID handles GET /api/people/{id}
func (h *PersonHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	person, err := h.people.GetByID(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, person)
}

// GetGroups handles GET /api/people/{id}/groups
func (h *PersonHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	groups, err := h.memberships.GetGroups(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, groups)
}

// Create handles POST /api/people
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePersonRequest
	if err := middleware.BindBody(r.Context(), &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	person, err := h.people.Create(r.Context(), req)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, person)
}

// Update handles PUT /api/people/{id}
func (h *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	var req model.UpdatePersonRequest
	if err := middleware.BindBody(r.Context(), &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	person, err := h.people.Update(r.Context(), id, req)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, person)
}

// Delete handles DELETE /api/people/{id}
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	if err := h.people.Delete(r.Context(), id); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// DeleteAll handles DELETE /api/people
func (h *PersonHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if _, err := h.people.DeleteAll(r.Context()); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// JoinGroup handles POST /api/people/{id}/groups
func (h *PersonHandler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	var req model.JoinGroupRequest
	if err := middleware.BindBody(r.Context(), &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	if err := h.memberships.Join(r.Context(), id, req.GroupID); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, model.Membership{PersonID: id, GroupID: req.GroupID})
}

// LeaveGroup handles DELETE /api/people/{id}/groups/{groupId}
func (h *PersonHandler) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")
	groupID := middleware.ParamID(r.Context(), "groupId")

	if err := h.memberships.Leave(r.Context(), id, groupID); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// LeaveAllGroups handles DELETE /api/people/{id}/groups
func (h *PersonHandler) LeaveAllGroups(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	if _, err := h.memberships.LeaveAll(r.Context(), id); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}
