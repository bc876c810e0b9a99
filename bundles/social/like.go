package social

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Like represents a like of a recipe. Likes and favourites are
// independent relations with the same (user, recipe) uniqueness rule.
type Like struct {
	// Override default GORM Model fields
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL"`
	// DeletedAt is not included in order to disable the soft delete feature.

	// The ID of the user that made the like
	UserID *uint `gorm:"unique_index:idx_user_recipe_like"`

	// The ID of the recipe that was liked
	RecipeID *uint `gorm:"unique_index:idx_user_recipe_like"`
}

// Likes is an array of Like
type Likes []Like

// LikeByUserAndRecipe queries a Like by its (user, recipe) pair.
func LikeByUserAndRecipe(tx *gorm.DB, userID, recipeID uint) (*Like, error) {
	var like Like
	if err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// LikeResponse stores like information used in REST responses.
//
// swagger:model
type LikeResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	RecipeID  uint   `json:"recipe_id"`
	Username  string `json:"username,omitempty"`
	CreatedAt string `json:"created_at"`
}

// LikeResponses is a slice of LikeResponse
type LikeResponses []LikeResponse

// UserLikes is the response for the per-user likes listing.
//
// swagger:model
type UserLikes struct {
	Likes LikeResponses `json:"likes"`
	Total int           `json:"total"`
}
