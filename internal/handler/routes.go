package handler

import (
	"net/http"

	"github.com/forgo/roster/api/internal/middleware"
	"github.com/forgo/roster/api/internal/model"
	"github.com/forgo/roster/api/internal/validation"
)

// RouterConfig holds everything needed to build the API's route table
type RouterConfig struct {
	PersonHandler        *PersonHandler
	GroupHandler         *GroupHandler
	AdministratorHandler *AdministratorHandler
	HealthHandler        *HealthHandler
	Translator           *Translator
	Auth                 middleware.Middleware
}

// NewRouter builds the full route table. Every data route sits behind its
// validation schema, and the administrator routes additionally sit behind
// bearer auth. The root fallback answers anything unrouted with a NotFound
// envelope instead of the default plain-text 404.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()
	errs := cfg.Translator

	validated := func(schema validation.Schema, h http.HandlerFunc) http.Handler {
		return middleware.Validate(schema, errs)(h)
	}
	protected := func(schema validation.Schema, h http.HandlerFunc) http.Handler {
		return cfg.Auth(validated(schema, h))
	}

	// People
	people := cfg.PersonHandler
	mux.Handle("GET /api/people", validated(validation.Person.GetAll, people.GetAll))
	mux.Handle("GET /api/people/count", validated(validation.Person.Count, people.Count))
	mux.Handle("GET /api/people/{id}", validated(validation.Person.GetByID, people.GetByID))
	mux.Handle("GET /api/people/{id}/groups", validated(validation.Person.GetGroups, people.GetGroups))
	mux.Handle("POST /api/people", validated(validation.Person.Create, people.Create))
	mux.Handle("POST /api/people/{id}/groups", validated(validation.Person.JoinGroup, people.JoinGroup))
	mux.Handle("PUT /api/people/{id}", validated(validation.Person.Update, people.Update))
	mux.Handle("DELETE /api/people", validated(validation.Person.DeleteAll, people.DeleteAll))
	mux.Handle("DELETE /api/people/{id}", validated(validation.Person.Delete, people.Delete))
	mux.Handle("DELETE /api/people/{id}/groups", validated(validation.Person.LeaveAllGroups, people.LeaveAllGroups))
	mux.Handle("DELETE /api/people/{id}/groups/{groupId}", validated(validation.Person.LeaveGroup, people.LeaveGroup))

	// Groups
	groups := cfg.GroupHandler
	mux.Handle("GET /api/groups", validated(validation.Group.GetAll, groups.GetAll))
	mux.Handle("GET /api/groups/count", validated(validation.Group.Count, groups.Count))
	mux.Handle("GET /api/groups/{id}", validated(validation.Group.GetByID, groups.GetByID))
	mux.Handle("GET /api/groups/{id}/members", validated(validation.Group.GetMembers, groups.GetMembers))
	mux.Handle("POST /api/groups", validated(validation.Group.Create, groups.Create))
	mux.Handle("POST /api/groups/{id}/members", validated(validation.Group.AddMember, groups.AddMember))
	mux.Handle("PUT /api/groups/{id}", validated(validation.Group.Update, groups.Update))
	mux.Handle("DELETE /api/groups", validated(validation.Group.DeleteAll, groups.DeleteAll))
	mux.Handle("DELETE /api/groups/{id}", validated(validation.Group.Delete, groups.Delete))
	mux.Handle("DELETE /api/groups/{id}/members", validated(validation.Group.RemoveAllMembers, groups.RemoveAllMembers))
	mux.Handle("DELETE /api/groups/{id}/members/{personId}", validated(validation.Group.RemoveMember, groups.RemoveMember))

	// Administrators (auth required)
	administrators := cfg.AdministratorHandler
	mux.Handle("GET /api/administrators", protected(validation.Administrator.GetAll, administrators.GetAll))
	mux.Handle("GET /api/administrators/count", protected(validation.Administrator.Count, administrators.Count))
	mux.Handle("GET /api/administrators/{auth0id}", protected(validation.Administrator.GetByAuth0ID, administrators.GetByAuth0ID))
	mux.Handle("POST /api/administrators", protected(validation.Administrator.Create, administrators.Create))
	mux.Handle("PUT /api/administrators/{auth0id}", protected(validation.Administrator.Update, administrators.Update))
	mux.Handle("DELETE /api/administrators", protected(validation.Administrator.DeleteAll, administrators.DeleteAll))
	mux.Handle("DELETE /api/administrators/{auth0id}", protected(validation.Administrator.Delete, administrators.Delete))

	// Health
	mux.HandleFunc("GET /health", cfg.HealthHandler.Check)

	// Fallback
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		errs.WriteError(w, r, model.NewNotFound("Unknown resource: "+r.URL.String()))
	})

	return mux
}
