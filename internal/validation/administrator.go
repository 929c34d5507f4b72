package validation

import "github.com/forgo/roster/api/internal/model"

// AdministratorSchemas holds the route contracts for the administrators
// resource.
type AdministratorSchemas struct {
	GetAll       Schema
	Count        Schema
	GetByAuth0ID Schema
	Create       Schema
	Update       Schema
	Delete       Schema
	DeleteAll    Schema
}

// Administrator is the schema registry for administrator routes.
var Administrator = AdministratorSchemas{
	GetAll: Schema{},
	Count:  Schema{},
	GetByAuth0ID: Schema{
		Params: Object(String("auth0id").Required()),
	},
	Create: Schema{
		Body: Object(
			String("auth0id").Required(),
			String("username").Required().Min(model.MinUsernameLength).Max(model.MaxUsernameLength),
			String("email").Required().Email(),
		),
	},
	Update: Schema{
		Params: Object(String("auth0id").Required()),
		Body: Object(
			String("username").Min(model.MinUsernameLength).Max(model.MaxUsernameLength),
			String("email").Email(),
		),
	},
	Delete: Schema{
		Params: Object(String("auth0id").Required()),
	},
	DeleteAll: Schema{},
}
