package users

import (
	"github.com/gazebo-web/gz-go/v7"
)

// CheckOwner verifies that the given user is the owner of a resource.
// Every mutating service operation on recipes, grocery lists, list items
// and comments goes through this single check, with ownerID being the
// user id recorded on the resource (or on its parent, for list items).
func CheckOwner(user *User, ownerID uint) *gz.ErrMsg {
	if user == nil {
		return gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}
	if user.ID != ownerID {
		return gz.NewErrorMessage(gz.ErrorUnauthorized)
	}
	return nil
}
