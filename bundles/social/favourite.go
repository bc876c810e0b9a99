package social

import (
	"time"

	"github.com/jinzhu/gorm"
)

// Favourite represents a user bookmarking a recipe. A user may favourite
// a given recipe at most once; the composite unique index resolves
// concurrent attempts so exactly one row can ever exist per pair.
type Favourite struct {
	// Override default GORM Model fields
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL"`
	// DeletedAt is not included in order to disable the soft delete feature.

	// The ID of the user that favourited the recipe
	UserID *uint `gorm:"unique_index:idx_user_recipe_favourite"`

	// The ID of the recipe that was favourited
	RecipeID *uint `gorm:"unique_index:idx_user_recipe_favourite"`
}

// Favourites is an array of Favourite
type Favourites []Favourite

// FavouriteByUserAndRecipe queries a Favourite by its (user, recipe)
// pair.
func FavouriteByUserAndRecipe(tx *gorm.DB, userID, recipeID uint) (*Favourite, error) {
	var favourite Favourite
	if err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).First(&favourite).Error; err != nil {
		return nil, err
	}
	return &favourite, nil
}

// FavouriteResponse stores favourite information used in REST responses.
//
// swagger:model
type FavouriteResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	RecipeID    uint   `json:"recipe_id"`
	Username    string `json:"username,omitempty"`
	RecipeTitle string `json:"recipe_title,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// FavouriteResponses is a slice of FavouriteResponse
type FavouriteResponses []FavouriteResponse

// UserFavourites is the response for the per-user favourites listing.
//
// swagger:model
type UserFavourites struct {
	Favourites FavouriteResponses `json:"favourites"`
	Total      int                `json:"total"`
}
