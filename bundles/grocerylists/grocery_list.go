package grocerylists

import (
	"time"

	"github.com/jinzhu/gorm"
)

// GroceryList represents a named shopping list owned by a user.
//
// swagger:model dbGroceryList
type GroceryList struct {
	// Override default GORM Model fields
	ID        uint      `gorm:"primary_key" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL" json:"-"`
	UpdatedAt time.Time `json:"-"`
	// DeletedAt is not included in order to disable the soft delete feature.

	// The name of the list
	Name *string `gorm:"not null" json:"name,omitempty"`

	// The ID of the user that owns this list
	UserID uint `json:"user_id"`
}

// GroceryLists is an array of GroceryList
type GroceryLists []GroceryList

// GroceryListItem represents a single line item of a grocery list. An
// item only exists while its parent list exists; the parent id is
// immutable after creation.
//
// swagger:model dbGroceryListItem
type GroceryListItem struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL" json:"-"`

	// The ID of the parent grocery list
	GroceryListID uint `gorm:"not null" json:"grocery_list_id"`

	// The item name
	ItemName *string `gorm:"not null" json:"item_name,omitempty"`

	// Optional free text quantity, eg. "2 cups"
	Quantity *string `gorm:"size:100" json:"quantity,omitempty"`

	// Optional free text notes
	Notes *string `gorm:"size:500" json:"notes,omitempty"`

	// Whether the item was checked off the list
	CheckedOff bool `json:"checked_off"`
}

// GroceryListItems is an array of GroceryListItem
type GroceryListItems []GroceryListItem

// ListByID queries a GroceryList by its id.
func ListByID(tx *gorm.DB, id uint) (*GroceryList, error) {
	var list GroceryList
	if err := tx.Model(&GroceryList{}).Where("id = ?", id).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// ItemByID queries a GroceryListItem by its id.
func ItemByID(tx *gorm.DB, id uint) (*GroceryListItem, error) {
	var item GroceryListItem
	if err := tx.Model(&GroceryListItem{}).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// QueryForItems returns a gorm query for the items of a list, ordered by
// creation.
func QueryForItems(tx *gorm.DB, listID uint) *gorm.DB {
	return tx.Model(&GroceryListItem{}).Where("grocery_list_id = ?", listID).Order("id")
}

// CreateGroceryList encapsulates data required to create a grocery list
type CreateGroceryList struct {
	// The name of the list
	// required: true
	Name string `json:"name" validate:"required" form:"name"`
}

// UpdateGroceryList encapsulates data that can be updated in a grocery
// list. Only non-nil fields are applied.
type UpdateGroceryList struct {
	// Optional new name
	Name *string `json:"name" validate:"omitempty,min=1" form:"name"`
}

// IsEmpty returns true is the struct is empty.
func (ul UpdateGroceryList) IsEmpty() bool {
	return ul.Name == nil
}

// CreateGroceryListItem encapsulates data required to add an item to a
// grocery list.
type CreateGroceryListItem struct {
	// The item name
	// required: true
	ItemName string `json:"item_name" validate:"required" form:"item_name"`
	// Optional quantity
	Quantity *string `json:"quantity" validate:"omitempty,max=100" form:"quantity"`
	// Optional notes
	Notes *string `json:"notes" validate:"omitempty,max=500" form:"notes"`
	// Optional initial checked off state
	CheckedOff *bool `json:"checked_off" form:"checked_off"`
}

// UpdateGroceryListItem encapsulates data that can be updated in a
// grocery list item. Only non-nil fields are applied.
type UpdateGroceryListItem struct {
	// Optional new item name
	ItemName *string `json:"item_name" validate:"omitempty,min=1" form:"item_name"`
	// Optional quantity
	Quantity *string `json:"quantity" validate:"omitempty,max=100" form:"quantity"`
	// Optional notes
	Notes *string `json:"notes" validate:"omitempty,max=500" form:"notes"`
	// Optional checked off state
	CheckedOff *bool `json:"checked_off" form:"checked_off"`
}

// IsEmpty returns true is the struct is empty.
func (ui UpdateGroceryListItem) IsEmpty() bool {
	return ui.ItemName == nil && ui.Quantity == nil && ui.Notes == nil &&
		ui.CheckedOff == nil
}

// ImportRecipeIngredients encapsulates data required to copy all of a
// recipe's ingredients into a grocery list.
type ImportRecipeIngredients struct {
	// The source recipe id
	// required: true
	RecipeID uint `json:"recipe_id" validate:"required" form:"recipe_id"`
	// Optional default quantity applied to every created item
	Quantity *string `json:"quantity" validate:"omitempty,max=100" form:"quantity"`
}

// GroceryListItemResponse stores item information used in REST responses.
//
// swagger:model
type GroceryListItemResponse struct {
	ID            uint   `json:"id"`
	GroceryListID uint   `json:"grocery_list_id"`
	ItemName      string `json:"item_name"`
	Quantity      string `json:"quantity"`
	Notes         string `json:"notes"`
	CheckedOff    bool   `json:"checked_off"`
	CreatedAt     string `json:"created_at"`
}

// GroceryListItemResponses is a slice of GroceryListItemResponse
type GroceryListItemResponses []GroceryListItemResponse

// GroceryListResponse stores list information used in REST responses,
// with the list's items nested in creation order.
//
// swagger:model
type GroceryListResponse struct {
	ID        uint                     `json:"id"`
	Name      string                   `json:"name"`
	UserID    uint                     `json:"user_id"`
	Username  string                   `json:"username,omitempty"`
	CreatedAt string                   `json:"created_at"`
	UpdatedAt string                   `json:"updated_at"`
	Items     GroceryListItemResponses `json:"items"`
}

// GroceryListResponses is a slice of GroceryListResponse
type GroceryListResponses []GroceryListResponse

// UserGroceryLists is the response for the per-user list of grocery
// lists.
//
// swagger:model
type UserGroceryLists struct {
	GroceryLists GroceryListResponses `json:"grocery_lists"`
	Total        int                  `json:"total"`
}

// ImportedIngredients is the response of the recipe ingredient import
// operation.
//
// swagger:model
type ImportedIngredients struct {
	Message string                   `json:"message"`
	Total   int                      `json:"total"`
	Items   GroceryListItemResponses `json:"items"`
}
