package users

import (
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"time"
)

// User information. Users are managed by the external accounts service;
// this server only reads them to resolve identities and usernames.
//
// swagger:model
type User struct {
	// Override default GORM Model fields
	ID        uint       `gorm:"primary_key" json:"id"`
	CreatedAt time.Time  `gorm:"type:timestamp(3) NULL" json:"-"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `sql:"index" json:"-"`

	// Identity is the JWT subject associated to this user.
	Identity *string `json:"identity,omitempty"`

	// Username is unique across the community
	Username *string `gorm:"not null;unique" json:"username,omitempty" validate:"required,min=3,alphanum"`
}

// Users is a slice of User
type Users []User

// ByIdentity queries a user by JWT identity.
func ByIdentity(tx *gorm.DB, identity string) (*User, *gz.ErrMsg) {
	var user User
	if q := tx.Where("identity = ?", identity).First(&user); q.Error != nil && !q.RecordNotFound() {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, q.Error)
	}
	if user.Identity == nil || *user.Identity != identity {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}
	return &user, nil
}

// ByID queries a user by its numeric id.
func ByID(tx *gorm.DB, id uint) (*User, *gz.ErrMsg) {
	var user User
	if q := tx.Where("id = ?", id).First(&user); q.Error != nil && !q.RecordNotFound() {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, q.Error)
	}
	if user.Username == nil {
		return nil, gz.NewErrorMessage(gz.ErrorUserUnknown)
	}
	return &user, nil
}

// ByUsername queries a user by username.
func ByUsername(tx *gorm.DB, username string) (*User, *gz.ErrMsg) {
	var user User
	if q := tx.Where("username = ?", username).First(&user); q.Error != nil && !q.RecordNotFound() {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, q.Error)
	}
	if user.Username == nil {
		return nil, gz.NewErrorMessage(gz.ErrorUserUnknown)
	}
	return &user, nil
}

// UsernameByID resolves the username of a user id. Returns nil when the
// user no longer exists (deleted accounts keep their rows' dependents).
func UsernameByID(tx *gorm.DB, id uint) *string {
	var user User
	if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
		return nil
	}
	return user.Username
}
