package grocerylists

import (
	"context"
	"fmt"
	"time"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/ladle-web/ladle-server/bundles/recipes"
	"github.com/ladle-web/ladle-server/bundles/users"
)

// Service is the main struct exported by this Grocery Lists Service.
type Service struct{}

// getList returns a grocery list by id, without any ownership check.
func (s *Service) getList(tx *gorm.DB, id uint) (*GroceryList, *gz.ErrMsg) {
	list, err := ListByID(tx, id)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNonExistentResource, err)
	}
	return list, nil
}

// GetGroceryList returns the full nested view of a grocery list. Only
// the owner may read a list.
func (s *Service) GetGroceryList(tx *gorm.DB, id uint, user *users.User) (*GroceryListResponse, *gz.ErrMsg) {
	list, em := s.getList(tx, id)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, list.UserID); em != nil {
		return nil, em
	}
	return s.toResponse(tx, list)
}

// GroceryListsForUser returns all the grocery lists owned by the given
// user, with their items nested.
func (s *Service) GroceryListsForUser(tx *gorm.DB, user *users.User) (*UserGroceryLists, *gz.ErrMsg) {
	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	var lists GroceryLists
	if err := tx.Model(&GroceryList{}).Where("user_id = ?", user.ID).Order("id").Find(&lists).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	responses := GroceryListResponses{}
	for i := range lists {
		response, em := s.toResponse(tx, &lists[i])
		if em != nil {
			return nil, em
		}
		responses = append(responses, *response)
	}
	return &UserGroceryLists{GroceryLists: responses, Total: len(responses)}, nil
}

// CreateGroceryList creates a new grocery list owned by the creator
// user.
func (s *Service) CreateGroceryList(ctx context.Context, tx *gorm.DB,
	cl CreateGroceryList, creator *users.User) (*GroceryListResponse, *gz.ErrMsg) {

	if creator == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	list := GroceryList{Name: &cl.Name, UserID: creator.ID}
	if err := tx.Create(&list).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Grocery list [%d] %s has been created.", list.ID, *list.Name))
	return s.toResponse(tx, &list)
}

// UpdateGroceryList applies a partial update to a grocery list. Only the
// owner may update it; UpdatedAt is refreshed.
func (s *Service) UpdateGroceryList(ctx context.Context, tx *gorm.DB, id uint,
	ul UpdateGroceryList, user *users.User) (*GroceryListResponse, *gz.ErrMsg) {

	list, em := s.getList(tx, id)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, list.UserID); em != nil {
		return nil, em
	}

	if ul.Name != nil {
		list.Name = ul.Name
	}
	list.UpdatedAt = time.Now()
	if err := tx.Save(list).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Grocery list [%d] %s has been updated.", list.ID, *list.Name))
	return s.toResponse(tx, list)
}

// RemoveGroceryList removes a grocery list and all of its items within
// the same transaction, so no orphan items can survive. Only the owner
// may remove a list.
func (s *Service) RemoveGroceryList(ctx context.Context, tx *gorm.DB, id uint,
	user *users.User) (*GroceryList, *gz.ErrMsg) {

	list, em := s.getList(tx, id)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, list.UserID); em != nil {
		return nil, em
	}

	// Items first, then the list itself. Both run in the caller's
	// transaction: either the whole cascade commits or none of it does.
	if err := tx.Delete(&GroceryListItem{}, "grocery_list_id = ?", list.ID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}
	if err := tx.Delete(&GroceryList{}, "id = ?", list.ID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Grocery list [%d] %s has been removed.", list.ID, *list.Name))
	return list, nil
}

// CreateItem adds an item to a grocery list. Only the list owner may add
// items.
func (s *Service) CreateItem(ctx context.Context, tx *gorm.DB, listID uint,
	ci CreateGroceryListItem, user *users.User) (*GroceryListItemResponse, *gz.ErrMsg) {

	list, em := s.getList(tx, listID)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, list.UserID); em != nil {
		return nil, em
	}

	item := GroceryListItem{
		GroceryListID: list.ID,
		ItemName:      &ci.ItemName,
		Quantity:      ci.Quantity,
		Notes:         ci.Notes,
	}
	if ci.CheckedOff != nil {
		item.CheckedOff = *ci.CheckedOff
	}
	if err := tx.Create(&item).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	response := s.toItemResponse(&item)
	return &response, nil
}

// UpdateItem applies a partial update to a grocery list item. Ownership
// is checked against the parent list's owner, since items carry no owner
// field of their own.
func (s *Service) UpdateItem(ctx context.Context, tx *gorm.DB, itemID uint,
	ui UpdateGroceryListItem, user *users.User) (*GroceryListItemResponse, *gz.ErrMsg) {

	item, list, em := s.getItemAndList(tx, itemID)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, list.UserID); em != nil {
		return nil, em
	}

	updated := updateItemFields(*item, ui)
	if err := tx.Save(&updated).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	response := s.toItemResponse(&updated)
	return &response, nil
}

// RemoveItem removes a single grocery list item. Ownership is checked
// against the parent list's owner.
func (s *Service) RemoveItem(ctx context.Context, tx *gorm.DB, itemID uint,
	user *users.User) (*GroceryListItem, *gz.ErrMsg) {

	item, list, em := s.getItemAndList(tx, itemID)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, list.UserID); em != nil {
		return nil, em
	}

	if err := tx.Delete(&GroceryListItem{}, "id = ?", item.ID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}
	return item, nil
}

// ImportIngredients copies every ingredient of a recipe into a grocery
// list, one item per ingredient in recipe order. The caller must own the
// list; the recipe may belong to anyone. All items are created within
// the caller's transaction, so a mid-loop failure leaves nothing behind.
func (s *Service) ImportIngredients(ctx context.Context, tx *gorm.DB, listID uint,
	imp ImportRecipeIngredients, user *users.User) (*ImportedIngredients, *gz.ErrMsg) {

	list, em := s.getList(tx, listID)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, list.UserID); em != nil {
		return nil, em
	}

	recipe, em := (&recipes.Service{}).GetRecipe(tx, imp.RecipeID)
	if em != nil {
		return nil, em
	}

	notes := fmt.Sprintf("From recipe: %s", *recipe.Title)
	created := GroceryListItemResponses{}
	for _, ingredient := range recipe.Ingredients {
		name := ingredient
		item := GroceryListItem{
			GroceryListID: list.ID,
			ItemName:      &name,
			Quantity:      imp.Quantity,
			Notes:         &notes,
		}
		if err := tx.Create(&item).Error; err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
		}
		created = append(created, s.toItemResponse(&item))
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Imported %d ingredients from recipe [%d] into grocery list [%d].",
		len(created), recipe.ID, list.ID))

	result := ImportedIngredients{
		Message: fmt.Sprintf("Added %d ingredients from %s", len(created), *recipe.Title),
		Total:   len(created),
		Items:   created,
	}
	return &result, nil
}

// getItemAndList loads an item and its parent list.
func (s *Service) getItemAndList(tx *gorm.DB, itemID uint) (*GroceryListItem, *GroceryList, *gz.ErrMsg) {
	item, err := ItemByID(tx, itemID)
	if err != nil {
		return nil, nil, gz.NewErrorMessageWithBase(gz.ErrorNonExistentResource, err)
	}
	list, em := s.getList(tx, item.GroceryListID)
	if em != nil {
		return nil, nil, em
	}
	return item, list, nil
}

// toResponse creates a GroceryListResponse with nested items.
func (s *Service) toResponse(tx *gorm.DB, list *GroceryList) (*GroceryListResponse, *gz.ErrMsg) {
	var items GroceryListItems
	if err := QueryForItems(tx, list.ID).Find(&items).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	response := GroceryListResponse{
		ID:     list.ID,
		UserID: list.UserID,
		// Note: time.RFC3339 is the format expected by Go's JSON unmarshal
		CreatedAt: list.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: list.UpdatedAt.UTC().Format(time.RFC3339),
		Items:     GroceryListItemResponses{},
	}
	if list.Name != nil {
		response.Name = *list.Name
	}
	if username := users.UsernameByID(tx, list.UserID); username != nil {
		response.Username = *username
	}
	for i := range items {
		response.Items = append(response.Items, s.toItemResponse(&items[i]))
	}
	return &response, nil
}

// toItemResponse creates a GroceryListItemResponse from an item row.
func (s *Service) toItemResponse(item *GroceryListItem) GroceryListItemResponse {
	response := GroceryListItemResponse{
		ID:            item.ID,
		GroceryListID: item.GroceryListID,
		CheckedOff:    item.CheckedOff,
		CreatedAt:     item.CreatedAt.UTC().Format(time.RFC3339),
	}
	if item.ItemName != nil {
		response.ItemName = *item.ItemName
	}
	if item.Quantity != nil {
		response.Quantity = *item.Quantity
	}
	if item.Notes != nil {
		response.Notes = *item.Notes
	}
	return response
}

// updateItemFields applies the non-nil fields of an UpdateGroceryListItem
// dto. The parent list id is never touched.
func updateItemFields(item GroceryListItem, ui UpdateGroceryListItem) GroceryListItem {
	if ui.ItemName != nil {
		item.ItemName = ui.ItemName
	}
	if ui.Quantity != nil {
		item.Quantity = ui.Quantity
	}
	if ui.Notes != nil {
		item.Notes = ui.Notes
	}
	if ui.CheckedOff != nil {
		item.CheckedOff = *ui.CheckedOff
	}
	return item
}
