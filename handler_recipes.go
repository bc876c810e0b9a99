package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/ladle-web/ladle-server/bundles/recipes"
	"github.com/ladle-web/ladle-server/bundles/users"
)

// RecipeList returns a paginated list of all recipes. The returned value
// will be of type "recipes.PaginatedRecipes".
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/recipes
//
// The user can request a different page with query parameter 'page', and
// the page size can be defined with query parameter 'per_page'.
func RecipeList(p *gz.PaginationRequest, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.PaginationResult, *gz.ErrMsg) {

	return (&recipes.Service{}).RecipeList(p, tx)
}

// RecipeIndex returns a single recipe. The returned value will be of
// type "recipes.RecipeResponse".
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/recipes/{recipe_id}
func RecipeIndex(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	return (&recipes.Service{}).GetRecipeResponse(tx, id)
}

// RecipeCreate creates a new recipe owned by the JWT user.
// You can request this method with the following curl request:
//
//	curl -k -X POST --url https://localhost:4430/1.0/recipes
//	  --header 'authorization: Bearer <your-jwt-token-here>'
//	  -d '{"title":"...", "ingredients":["..."], "instructions":"..."}'
func RecipeCreate(user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var createRecipe recipes.CreateRecipe
	if em := ParseStruct(&createRecipe, r, false); em != nil {
		return nil, em
	}

	response, em := (&recipes.Service{}).CreateRecipe(r.Context(), tx, createRecipe, user)
	if em != nil {
		return nil, em
	}

	w.WriteHeader(http.StatusCreated)
	return response, nil
}

// RecipeUpdate modifies an existing recipe. Only the fields present in
// the request body are updated. Only the recipe owner can update it.
// You can request this method with the following curl request:
//
//	curl -k -X PUT --url https://localhost:4430/1.0/recipes/{recipe_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func RecipeUpdate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var updateRecipe recipes.UpdateRecipe
	if em := ParseStruct(&updateRecipe, r, false); em != nil {
		return nil, em
	}
	if updateRecipe.IsEmpty() {
		return nil, gz.NewErrorMessage(gz.ErrorFormInvalidValue)
	}

	return (&recipes.Service{}).UpdateRecipe(r.Context(), tx, id, updateRecipe, user)
}

// RecipeRemove deletes a recipe. Only the recipe owner can delete it.
// Dependent favourites, likes and comments are removed with it.
// You can request this method with the following curl request:
//
//	curl -k -X DELETE --url https://localhost:4430/1.0/recipes/{recipe_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func RecipeRemove(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if _, em := (&recipes.Service{}).RemoveRecipe(r.Context(), tx, id, user); em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	return deletedResponse{Message: "Recipe deleted successfully"}, nil
}

// RecipesByUser returns all the recipes authored by a given user id,
// plus the author's username. The returned value will be of type
// "recipes.UserRecipes".
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/recipes/user/{user_id}
func RecipesByUser(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	return (&recipes.Service{}).RecipesByUser(tx, id)
}

// MyRecipes returns all the recipes owned by the JWT user.
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/recipes/my-recipes
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func MyRecipes(user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	return (&recipes.Service{}).UserRecipeList(tx, user)
}
