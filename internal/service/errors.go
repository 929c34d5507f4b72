package service

import (
	"fmt"

	"github.com/forgo/roster/api/internal/model"
)

// Centralized domain error constructors. Every service method reports
// missing and conflicting records through these, so handler translation
// and the API's error messages stay consistent.

func errPersonNotFound(id int64) error {
	return model.NewNotFound(fmt.Sprintf("There is no person with id %d", id))
}

func errGroupNotFound(id int64) error {
	return model.NewNotFound(fmt.Sprintf("There is no group with id %d", id))
}

func errAdministratorNotFound(auth0ID string) error {
	return model.NewNotFound(fmt.Sprintf("There is no administrator with auth0id %s", auth0ID))
}

func errAdministratorNotFoundByUsername(username string) error {
	return model.NewNotFound(fmt.Sprintf("There is no administrator with username %s", username))
}

func errAdministratorExists(auth0ID, username string) error {
	return model.NewConflict(fmt.Sprintf(
		"An administrator with auth0id %s and/or username %s already exists", auth0ID, username))
}

func errUsernameInUse(username string) error {
	return model.NewConflict(fmt.Sprintf("That username (%s) is already in use", username))
}

func errAlreadyMember(personID, groupID int64) error {
	return model.NewConflict(fmt.Sprintf(
		"Person with id %d is already a member of group with id %d", personID, groupID))
}

func errNotMember(personID, groupID int64) error {
	return model.NewNotFound(fmt.Sprintf(
		"Person with id %d is not a member of group with id %d", personID, groupID))
}
