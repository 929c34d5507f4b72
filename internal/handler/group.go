package handler

import (
	"net/http"

	"github.com/forgo/roster/api/internal/middleware"
	"github.com/forgo/roster/api/internal/model"
	"github.com/forgo/roster/api/internal/service"
)

// GroupHandler handles group HTTP requests
type GroupHandler struct {
	groups      *service.GroupService
	memberships *service.MembershipService
	errs        *Translator
}

// GroupHandlerConfig holds dependencies for the group handler
type GroupHandlerConfig struct {
	GroupService      *service.GroupService
	MembershipService *service.MembershipService
	Translator        *Translator
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(cfg GroupHandlerConfig) *GroupHandler {
	return &GroupHandler{
		groups:      cfg.GroupService,
		memberships: cfg.MembershipService,
		errs:        cfg.Translator,
	}
}

// GetAll handles GET /api/groups
func (h *GroupHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groups.GetAll(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, groups)
}

// Count handles GET /api/groups/count
func (h *GroupHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.groups.Count(r.Context())
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

// GetByID handles GET /api/groups/{id}
func (h *GroupHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	group, err := h.groups.GetByID(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, group)
}

// GetMembers handles GET /api/groups/{id}/members
func (h *GroupHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	members, err := h.memberships.GetMembers(r.Context(), id)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, members)
}

// Create handles POST /api/groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGroupRequest
	if err := middleware.BindBody(r.Context(), &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	group, err := h.groups.Create(r.Context(), req)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, group)
}

// Update handles PUT /api/groups/{id}
func (h *GroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	var req model.UpdateGroupRequest
	if err := middleware.BindBody(r.Context(), &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	group, err := h.groups.Update(r.Context(), id, req)
	if err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, group)
}

// Delete handles DELETE /api/groups/{id}
func (h *GroupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	if err := h.groups.Delete(r.Context(), id); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// DeleteAll handles DELETE /api/groups
func (h *GroupHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if _, err := h.groups.DeleteAll(r.Context()); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// AddMember handles POST /api/groups/{id}/members
func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	var req model.AddMemberRequest
	if err := middleware.BindBody(r.Context(), &req); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}

	if err := h.memberships.Join(r.Context(), req.PersonID, id); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, model.Membership{PersonID: req.PersonID, GroupID: id})
}

// RemoveMember handles DELETE /api/groups/{id}/members/{personId}
func (h *GroupHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")
	personID := middleware.ParamID(r.Context(), "personId")

	if err := h.memberships.Leave(r.Context(), personID, id); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}

// RemoveAllMembers handles DELETE /api/groups/{id}/members
func (h *GroupHandler) RemoveAllMembers(w http.ResponseWriter, r *http.Request) {
	id := middleware.ParamID(r.Context(), "id")

	if _, err := h.memberships.RemoveAllMembers(r.Context(), id); err != nil {
		h.errs.WriteError(w, r, err)
		return
	}
	WriteNoContent(w)
}
