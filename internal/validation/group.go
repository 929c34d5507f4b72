package validation

import "github.com/forgo/roster/api/internal/model"

// GroupSchemas holds the route contracts for the groups resource.
type GroupSchemas struct {
	GetAll           Schema
	Count            Schema
	GetByID          Schema
	GetMembers       Schema
	Create           Schema
	Update           Schema
	Delete           Schema
	DeleteAll        Schema
	AddMember        Schema
	RemoveMember     Schema
	RemoveAllMembers Schema
}

func groupBodyFields(required bool) []*Field {
	name := String("name").Min(model.MinGroupNameLength).Max(model.MaxGroupNameLength)
	description := String("description").Max(model.MaxDescriptionLength)
	if required {
		name.Required()
		description.Required()
	}
	return []*Field{
		name,
		description,
		String("color").Max(model.MaxColorLength),
		String("target").Max(model.MaxTargetLength),
	}
}

// Group is the schema registry for group routes.
var Group = GroupSchemas{
	GetAll:  Schema{},
	Count:   Schema{},
	GetByID: Schema{Params: Object(ID("id").Required())},
	GetMembers: Schema{
		Params: Object(ID("id").Required()),
	},
	Create: Schema{Body: Object(groupBodyFields(true)...)},
	Update: Schema{
		Params: Object(ID("id").Required()),
		Body:   Object(groupBodyFields(false)...),
	},
	Delete:    Schema{Params: Object(ID("id").Required())},
	DeleteAll: Schema{},
	AddMember: Schema{
		Params: Object(ID("id").Required()),
		Body:   Object(ID("personId").Required()),
	},
	RemoveMember: Schema{
		Params: Object(ID("id").Required(), ID("personId").Required()),
	},
	RemoveAllMembers: Schema{Params: Object(ID("id").Required())},
}
