package recipes

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

// Ingredients is the ordered list of ingredient lines of a recipe. It is
// persisted as a JSON encoded array in a single text column, so the order
// and the list shape survive round trips through the database.
type Ingredients []string

// Value implements driver.Valuer to serialize ingredients to JSON.
func (ing Ingredients) Value() (driver.Value, error) {
	b, err := json.Marshal(ing)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode ingredients")
	}
	return string(b), nil
}

// Scan implements sql.Scanner to deserialize ingredients from JSON.
func (ing *Ingredients) Scan(value interface{}) error {
	if value == nil {
		*ing = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, ing)
	case string:
		return json.Unmarshal([]byte(v), ing)
	default:
		return errors.Errorf("cannot scan ingredients from %T", value)
	}
}

// Recipe represents a recipe authored by a user.
//
// swagger:model dbRecipe
type Recipe struct {
	// Override default GORM Model fields
	ID        uint      `gorm:"primary_key" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL" json:"-"`
	UpdatedAt time.Time `json:"-"`
	// DeletedAt is not included in order to disable the soft delete feature.

	// The title of the recipe
	Title *string `gorm:"not null" json:"title,omitempty"`

	// An optional description (max 65,535 chars)
	Description *string `gorm:"type:text" json:"description,omitempty"`

	// The ordered ingredient list, stored as a JSON array
	Ingredients Ingredients `gorm:"type:text;not null" json:"ingredients,omitempty"`

	// Preparation instructions
	Instructions *string `gorm:"type:text;not null" json:"instructions,omitempty"`

	// Optional image URL. URLs can be long.
	ImageURL *string `gorm:"size:500" json:"image_url,omitempty"`

	// The ID of the user that owns this recipe
	UserID uint `json:"user_id"`
}

// Recipes is an array of Recipe
type Recipes []Recipe

// QueryForRecipes returns a gorm query configured to query Recipes in
// their insertion order.
func QueryForRecipes(q *gorm.DB) *gorm.DB {
	return q.Model(&Recipe{}).Order("id")
}

// ByID queries a Recipe by its id.
func ByID(tx *gorm.DB, id uint) (*Recipe, error) {
	var recipe Recipe
	if err := tx.Model(&Recipe{}).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe encapsulates data required to create a recipe
type CreateRecipe struct {
	// The title of the recipe
	// required: true
	Title string `json:"title" validate:"required" form:"title"`
	// The ordered list of ingredients
	// required: true
	Ingredients []string `json:"ingredients" validate:"required,min=1" form:"ingredients"`
	// Preparation instructions
	// required: true
	Instructions string `json:"instructions" validate:"required" form:"instructions"`
	// Optional description
	Description *string `json:"description" form:"description"`
	// Optional image URL
	ImageURL *string `json:"image_url" validate:"omitempty,max=500" form:"image_url"`
}

// UpdateRecipe encapsulates data that can be updated in a recipe.
// Only non-nil fields are applied.
type UpdateRecipe struct {
	// Optional new title
	Title *string `json:"title" validate:"omitempty,min=1" form:"title"`
	// Optional replacement ingredient list
	Ingredients *[]string `json:"ingredients" validate:"omitempty,min=1" form:"ingredients"`
	// Optional new instructions
	Instructions *string `json:"instructions" validate:"omitempty,min=1" form:"instructions"`
	// Optional description
	Description *string `json:"description" form:"description"`
	// Optional image URL
	ImageURL *string `json:"image_url" validate:"omitempty,max=500" form:"image_url"`
}

// IsEmpty returns true is the struct is empty.
func (ur UpdateRecipe) IsEmpty() bool {
	return ur.Title == nil && ur.Ingredients == nil && ur.Instructions == nil &&
		ur.Description == nil && ur.ImageURL == nil
}

// RecipeResponse stores recipe information used in REST responses.
// It mirrors the recipe row plus the resolved owner username.
//
// swagger:model
type RecipeResponse struct {
	ID           uint     `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	ImageURL     string   `json:"image_url"`
	UserID       uint     `json:"user_id"`
	Username     string   `json:"username,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

// RecipeResponses is a slice of RecipeResponse
type RecipeResponses []RecipeResponse

// PaginatedRecipes is the response for the paginated recipe listing.
//
// swagger:model
type PaginatedRecipes struct {
	Recipes     RecipeResponses `json:"recipes"`
	Total       int             `json:"total"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
}

// UserRecipes is the response for per-user recipe listings.
//
// swagger:model
type UserRecipes struct {
	Recipes RecipeResponses `json:"recipes"`
	// The username of the requested author, when the listing targets
	// another user.
	User  string `json:"user,omitempty"`
	Total int    `json:"total"`
}
