package recipes

import (
	"context"
	"fmt"
	"time"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/ladle-web/ladle-server/bundles/users"
)

// Service is the main struct exported by this Recipes Service.
type Service struct{}

// GetRecipe returns a recipe by its id.
func (s *Service) GetRecipe(tx *gorm.DB, id uint) (*Recipe, *gz.ErrMsg) {
	recipe, err := ByID(tx, id)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNonExistentResource, err)
	}
	return recipe, nil
}

// GetRecipeResponse returns the REST view of a recipe, including the
// resolved owner username.
func (s *Service) GetRecipeResponse(tx *gorm.DB, id uint) (*RecipeResponse, *gz.ErrMsg) {
	recipe, em := s.GetRecipe(tx, id)
	if em != nil {
		return nil, em
	}
	response := s.ToResponse(tx, recipe)
	return &response, nil
}

// RecipeList returns a paginated list of recipes in insertion order,
// together with the total recipe count and number of pages.
func (s *Service) RecipeList(p *gz.PaginationRequest, tx *gorm.DB) (*PaginatedRecipes, *gz.PaginationResult, *gz.ErrMsg) {
	var recipeList Recipes
	q := QueryForRecipes(tx)

	pagination, err := gz.PaginateQuery(q, &recipeList, *p)
	if err != nil {
		return nil, nil, gz.NewErrorMessageWithBase(gz.ErrorInvalidPaginationRequest, err)
	}
	if !pagination.PageFound {
		return nil, nil, gz.NewErrorMessage(gz.ErrorPaginationPageNotFound)
	}

	var total int
	if err := tx.Model(&Recipe{}).Count(&total).Error; err != nil {
		return nil, nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	result := PaginatedRecipes{
		Recipes:     s.toResponses(tx, recipeList),
		Total:       total,
		Pages:       pageCount(total, int(p.PerPage)),
		CurrentPage: int(p.Page),
	}
	return &result, pagination, nil
}

// RecipesByUser returns all recipes authored by the given user id.
// It fails if the user is unknown.
func (s *Service) RecipesByUser(tx *gorm.DB, userID uint) (*UserRecipes, *gz.ErrMsg) {
	author, em := users.ByID(tx, userID)
	if em != nil {
		return nil, em
	}

	var recipeList Recipes
	if err := QueryForRecipes(tx).Where("user_id = ?", userID).Find(&recipeList).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	result := UserRecipes{
		Recipes: s.toResponses(tx, recipeList),
		User:    *author.Username,
		Total:   len(recipeList),
	}
	return &result, nil
}

// UserRecipeList returns all recipes owned by the given (already
// authenticated) user. No existence check is needed.
func (s *Service) UserRecipeList(tx *gorm.DB, user *users.User) (*UserRecipes, *gz.ErrMsg) {
	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	var recipeList Recipes
	if err := QueryForRecipes(tx).Where("user_id = ?", user.ID).Find(&recipeList).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	result := UserRecipes{
		Recipes: s.toResponses(tx, recipeList),
		Total:   len(recipeList),
	}
	return &result, nil
}

// CreateRecipe creates a new recipe owned by the creator user.
func (s *Service) CreateRecipe(ctx context.Context, tx *gorm.DB, cr CreateRecipe,
	creator *users.User) (*RecipeResponse, *gz.ErrMsg) {

	if creator == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	recipe := Recipe{
		Title:        &cr.Title,
		Description:  cr.Description,
		Ingredients:  Ingredients(cr.Ingredients),
		Instructions: &cr.Instructions,
		ImageURL:     cr.ImageURL,
		UserID:       creator.ID,
	}
	if err := tx.Create(&recipe).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Recipe [%d] %s has been created.", recipe.ID, *recipe.Title))

	response := s.ToResponse(tx, &recipe)
	return &response, nil
}

// UpdateRecipe applies a partial update to a recipe. Only the fields
// present in the UpdateRecipe dto are modified; UpdatedAt is refreshed.
// The user argument is the requesting user and must be the recipe owner.
func (s *Service) UpdateRecipe(ctx context.Context, tx *gorm.DB, id uint,
	ur UpdateRecipe, user *users.User) (*RecipeResponse, *gz.ErrMsg) {

	recipe, em := s.GetRecipe(tx, id)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, recipe.UserID); em != nil {
		return nil, em
	}

	updated := updateRecipeFields(*recipe, ur)
	updated.UpdatedAt = time.Now()
	if err := tx.Save(&updated).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Recipe [%d] %s has been updated.", updated.ID, *updated.Title))

	response := s.ToResponse(tx, &updated)
	return &response, nil
}

// RemoveRecipe removes a recipe. The user argument is the requesting user
// and must be the recipe owner. Dependent favourites, likes and comments
// are removed by the database's cascading foreign keys within the same
// transaction.
func (s *Service) RemoveRecipe(ctx context.Context, tx *gorm.DB, id uint,
	user *users.User) (*Recipe, *gz.ErrMsg) {

	recipe, em := s.GetRecipe(tx, id)
	if em != nil {
		return nil, em
	}
	if em := users.CheckOwner(user, recipe.UserID); em != nil {
		return nil, em
	}

	if err := tx.Delete(&Recipe{}, "id = ?", recipe.ID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Recipe [%d] %s has been removed.", recipe.ID, *recipe.Title))
	return recipe, nil
}

// ToResponse creates a RecipeResponse from the given recipe.
func (s *Service) ToResponse(tx *gorm.DB, recipe *Recipe) RecipeResponse {
	response := RecipeResponse{
		ID:          recipe.ID,
		Ingredients: recipe.Ingredients,
		UserID:      recipe.UserID,
		// Note: time.RFC3339 is the format expected by Go's JSON unmarshal
		CreatedAt: recipe.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: recipe.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if recipe.Title != nil {
		response.Title = *recipe.Title
	}
	if recipe.Description != nil {
		response.Description = *recipe.Description
	}
	if recipe.Instructions != nil {
		response.Instructions = *recipe.Instructions
	}
	if recipe.ImageURL != nil {
		response.ImageURL = *recipe.ImageURL
	}
	if username := users.UsernameByID(tx, recipe.UserID); username != nil {
		response.Username = *username
	}
	return response
}

func (s *Service) toResponses(tx *gorm.DB, recipeList Recipes) RecipeResponses {
	responses := RecipeResponses{}
	for i := range recipeList {
		responses = append(responses, s.ToResponse(tx, &recipeList[i]))
	}
	return responses
}

// updateRecipeFields applies the non-nil fields of an UpdateRecipe dto.
func updateRecipeFields(recipe Recipe, ur UpdateRecipe) Recipe {
	if ur.Title != nil {
		recipe.Title = ur.Title
	}
	if ur.Description != nil {
		recipe.Description = ur.Description
	}
	if ur.Ingredients != nil {
		recipe.Ingredients = Ingredients(*ur.Ingredients)
	}
	if ur.Instructions != nil {
		recipe.Instructions = ur.Instructions
	}
	if ur.ImageURL != nil {
		recipe.ImageURL = ur.ImageURL
	}
	return recipe
}

// pageCount returns the number of pages needed to show total records with
// perPage records per page.
func pageCount(total, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	return pages
}
