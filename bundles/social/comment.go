package social

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Comment represents a user comment on a recipe. Unlike favourites and
// likes there is no uniqueness rule: a user may comment on the same
// recipe any number of times.
type Comment struct {
	// Override default GORM Model fields
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL"`
	UpdatedAt time.Time
	// DeletedAt is not included in order to disable the soft delete feature.

	// The ID of the comment author
	UserID uint `gorm:"not null"`

	// The ID of the commented recipe
	RecipeID uint `gorm:"not null"`

	// The comment text
	Content *string `gorm:"type:text;not null"`
}

// Comments is an array of Comment
type Comments []Comment

// CommentByID queries a Comment by its id.
func CommentByID(tx *gorm.DB, id uint) (*Comment, error) {
	var comment Comment
	if err := tx.Model(&Comment{}).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CreateComment encapsulates data required to comment on a recipe
type CreateComment struct {
	// The comment text
	// required: true
	Content string `json:"content" validate:"required" form:"content"`
}

// UpdateComment encapsulates data that can be updated in a comment
type UpdateComment struct {
	// The new comment text
	// required: true
	Content string `json:"content" validate:"required" form:"content"`
}

// CommentResponse stores comment information used in REST responses.
//
// swagger:model
type CommentResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	RecipeID  uint   `json:"recipe_id"`
	Content   string `json:"content"`
	Username  string `json:"username,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CommentResponses is a slice of CommentResponse
type CommentResponses []CommentResponse

// RecipeComments is the response for a recipe's comment listing.
//
// swagger:model
type RecipeComments struct {
	Comments CommentResponses `json:"comments"`
	Total    int              `json:"total"`
}
