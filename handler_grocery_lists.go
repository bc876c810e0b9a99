package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/ladle-web/ladle-server/bundles/grocerylists"
	"github.com/ladle-web/ladle-server/bundles/users"
)

// GroceryListList returns all the grocery lists owned by the JWT user,
// with their items nested. The returned value will be of type
// "grocerylists.UserGroceryLists".
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/grocery-lists
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func GroceryListList(user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	return (&grocerylists.Service{}).GroceryListsForUser(tx, user)
}

// GroceryListIndex returns a single grocery list with its items. Only
// the list owner can read it.
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/grocery-lists/{list_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func GroceryListIndex(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	return (&grocerylists.Service{}).GetGroceryList(tx, id, user)
}

// GroceryListCreate creates a new grocery list owned by the JWT user.
// You can request this method with the following curl request:
//
//	curl -k -X POST --url https://localhost:4430/1.0/grocery-lists
//	  --header 'authorization: Bearer <your-jwt-token-here>'
//	  -d '{"name":"Weekly shop"}'
func GroceryListCreate(user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var createList grocerylists.CreateGroceryList
	if em := ParseStruct(&createList, r, false); em != nil {
		return nil, em
	}

	response, em := (&grocerylists.Service{}).CreateGroceryList(r.Context(), tx, createList, user)
	if em != nil {
		return nil, em
	}

	w.WriteHeader(http.StatusCreated)
	return response, nil
}

// GroceryListUpdate renames a grocery list. Only the list owner can
// update it.
// You can request this method with the following curl request:
//
//	curl -k -X PUT --url https://localhost:4430/1.0/grocery-lists/{list_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func GroceryListUpdate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var updateList grocerylists.UpdateGroceryList
	if em := ParseStruct(&updateList, r, false); em != nil {
		return nil, em
	}

	return (&grocerylists.Service{}).UpdateGroceryList(r.Context(), tx, id, updateList, user)
}

// GroceryListRemove deletes a grocery list and all of its items. Only
// the list owner can delete it.
// You can request this method with the following curl request:
//
//	curl -k -X DELETE --url https://localhost:4430/1.0/grocery-lists/{list_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func GroceryListRemove(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if _, em := (&grocerylists.Service{}).RemoveGroceryList(r.Context(), tx, id, user); em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	return deletedResponse{Message: "Grocery list deleted successfully"}, nil
}

// GroceryListItemCreate adds an item to a grocery list. Only the list
// owner can add items.
// You can request this method with the following curl request:
//
//	curl -k -X POST --url https://localhost:4430/1.0/grocery-lists/{list_id}/items
//	  --header 'authorization: Bearer <your-jwt-token-here>'
//	  -d '{"item_name":"Flour", "quantity":"1 kg"}'
func GroceryListItemCreate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var createItem grocerylists.CreateGroceryListItem
	if em := ParseStruct(&createItem, r, false); em != nil {
		return nil, em
	}

	response, em := (&grocerylists.Service{}).CreateItem(r.Context(), tx, id, createItem, user)
	if em != nil {
		return nil, em
	}

	w.WriteHeader(http.StatusCreated)
	return response, nil
}

// GroceryListItemUpdate modifies a grocery list item. Only the fields
// present in the request body are updated. Ownership is checked against
// the parent list's owner.
// You can request this method with the following curl request:
//
//	curl -k -X PUT --url https://localhost:4430/1.0/grocery-lists/items/{item_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func GroceryListItemUpdate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var updateItem grocerylists.UpdateGroceryListItem
	if em := ParseStruct(&updateItem, r, false); em != nil {
		return nil, em
	}

	return (&grocerylists.Service{}).UpdateItem(r.Context(), tx, id, updateItem, user)
}

// GroceryListItemRemove deletes a grocery list item. Ownership is
// checked against the parent list's owner.
// You can request this method with the following curl request:
//
//	curl -k -X DELETE --url https://localhost:4430/1.0/grocery-lists/items/{item_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func GroceryListItemRemove(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if _, em := (&grocerylists.Service{}).RemoveItem(r.Context(), tx, id, user); em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	return deletedResponse{Message: "Grocery list item deleted successfully"}, nil
}

// GroceryListImportIngredients copies every ingredient of a recipe into
// a grocery list, one item per ingredient. The caller must own the list;
// the recipe may belong to anyone.
// You can request this method with the following curl request:
//
//	curl -k -X POST --url https://localhost:4430/1.0/grocery-lists/{list_id}/add-recipe-ingredients
//	  --header 'authorization: Bearer <your-jwt-token-here>'
//	  -d '{"recipe_id": 7, "quantity":"1"}'
func GroceryListImportIngredients(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var importIngredients grocerylists.ImportRecipeIngredients
	if em := ParseStruct(&importIngredients, r, false); em != nil {
		return nil, em
	}

	response, em := (&grocerylists.Service{}).ImportIngredients(r.Context(), tx, id, importIngredients, user)
	if em != nil {
		return nil, em
	}

	w.WriteHeader(http.StatusCreated)
	return response, nil
}
