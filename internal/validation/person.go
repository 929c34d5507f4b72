package validation

import "github.com/forgo/roster/api/internal/model"

// PersonSchemas holds the route contracts for the people resource.
type PersonSchemas struct {
	GetAll         Schema
	Count          Schema
	GetByID        Schema
	GetGroups      Schema
	Create         Schema
	Update         Schema
	Delete         Schema
	DeleteAll      Schema
	JoinGroup      Schema
	LeaveGroup     Schema
	LeaveAllGroups Schema
}

func personBodyFields(required bool) []*Field {
	name := String("name").Min(model.MinPersonNameLength).Max(model.MaxPersonNameLength)
	if required {
		name.Required()
	}
	return []*Field{
		name,
		String("email").Email().Max(model.MaxEmailLength),
		String("phoneNumber").Max(model.MaxPhoneLength),
		String("bio").Max(model.MaxBioLength),
		String("studiesOrJob").Max(model.MaxStudiesLength),
		Date("birthdate").After(model.EarliestBirthdate).BeforeNow(),
	}
}

// Person is the schema registry for person routes.
var Person = PersonSchemas{
	GetAll:  Schema{},
	Count:   Schema{},
	GetByID: Schema{Params: Object(ID("id").Required())},
	GetGroups: Schema{
		Params: Object(ID("id").Required()),
	},
	Create: Schema{Body: Object(personBodyFields(true)...)},
	Update: Schema{
		Params: Object(ID("id").Required()),
		Body:   Object(personBodyFields(false)...),
	},
	Delete:    Schema{Params: Object(ID("id").Required())},
	DeleteAll: Schema{},
	JoinGroup: Schema{
		Params: Object(ID("id").Required()),
		Body:   Object(ID("groupId").Required()),
	},
	LeaveGroup: Schema{
		Params: Object(ID("id").Required(), ID("groupId").Required()),
	},
	LeaveAllGroups: Schema{Params: Object(ID("id").Required())},
}
