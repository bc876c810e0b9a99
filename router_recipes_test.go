package main

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/gazebo-web/gz-go/v7"
	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
	"github.com/ladle-web/ladle-server/bundles/recipes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// creates a recipe for the given JWT and returns its response.
func createTestRecipe(t *testing.T, jwt *string, title string) *recipes.RecipeResponse {
	cr := recipes.CreateRecipe{
		Title:        title,
		Ingredients:  []string{"2 eggs", "100g flour"},
		Instructions: "Mix and bake",
		Description:  sptr("A test recipe"),
	}
	bslice, _ := gztest.AssertRouteMultipleArgs("POST", "/1.0/recipes",
		jsonBody(t, &cr), http.StatusCreated, jwt, ctJSON, t)
	var resp recipes.RecipeResponse
	unmarshalBody(t, bslice, &resp)
	require.Equal(t, title, resp.Title)
	return &resp
}

// TestRecipeCreate checks the recipe creation route
func TestRecipeCreate(t *testing.T) {
	// General test setup
	setup()
	user, jwt := newTestUser(t, "recipe-create-identity")

	r := createTestRecipe(t, &jwt, "Pancakes")
	assert.Equal(t, user.ID, r.UserID)
	assert.Equal(t, *user.Username, r.Username)
	assert.Equal(t, []string{"2 eggs", "100g flour"}, r.Ingredients)
	assert.NotEmpty(t, r.CreatedAt)

	// invalid payloads
	formInvalid := gz.ErrorMessage(gz.ErrorFormInvalidValue)
	unmarshal := gz.ErrorMessage(gz.ErrorUnmarshalJSON)

	invalidPayloadsTestData := []struct {
		testDesc string
		body     string
		expErr   gz.ErrMsg
	}{
		{"missing title", `{"ingredients":["a"],"instructions":"mix"}`, formInvalid},
		{"missing instructions", `{"title":"t","ingredients":["a"]}`, formInvalid},
		{"empty ingredients", `{"title":"t","ingredients":[],"instructions":"mix"}`, formInvalid},
		{"ingredients not a list", `{"title":"t","ingredients":"a","instructions":"mix"}`, unmarshal},
	}

	for _, test := range invalidPayloadsTestData {
		t.Run(test.testDesc, func(t *testing.T) {
			b := bytes.NewBufferString(test.body)
			bslice, _ := gztest.AssertRouteMultipleArgs("POST", "/1.0/recipes", b,
				test.expErr.StatusCode, &jwt, ctTextPlain, t)
			gztest.AssertBackendErrorCode(t.Name(), bslice, test.expErr.ErrCode, t)
		})
	}
}

// TestRecipeIndex checks getting a single recipe, with no JWT.
func TestRecipeIndex(t *testing.T) {
	// General test setup
	setup()
	_, jwt := newTestUser(t, "recipe-index-identity")
	created := createTestRecipe(t, &jwt, "Omelette")

	uri := fmt.Sprintf("/1.0/recipes/%d", created.ID)
	bslice, _ := gztest.AssertRoute("GET", uri, http.StatusOK, t)
	var resp recipes.RecipeResponse
	unmarshalBody(t, bslice, &resp)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "Omelette", resp.Title)

	// a recipe that does not exist
	notFound := gz.ErrorMessage(gz.ErrorNonExistentResource)
	bslice, _ = gztest.AssertRoute("GET", "/1.0/recipes/99999", notFound.StatusCode, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, notFound.ErrCode, t)
}

// TestRecipeList checks the paginated recipe listing
func TestRecipeList(t *testing.T) {
	// General test setup
	setup()
	_, jwt := newTestUser(t, "recipe-list-identity")

	// listing an empty store is OK and reports a zero total
	bsliceEmpty, _ := gztest.AssertRoute("GET", "/1.0/recipes", http.StatusOK, t)
	var emptyPage recipes.PaginatedRecipes
	unmarshalBody(t, bsliceEmpty, &emptyPage)
	assert.Equal(t, 0, emptyPage.Total)
	assert.Len(t, emptyPage.Recipes, 0)

	for i := 1; i <= 3; i++ {
		createTestRecipe(t, &jwt, "recipe"+strconv.Itoa(i))
	}

	bslice, _ := gztest.AssertRoute("GET", "/1.0/recipes", http.StatusOK, t)
	var page recipes.PaginatedRecipes
	unmarshalBody(t, bslice, &page)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Pages)
	assert.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.Recipes, 3)
	// default order is by id, oldest first
	assert.Equal(t, "recipe1", page.Recipes[0].Title)

	// second page with one recipe per page
	bslice, _ = gztest.AssertRoute("GET", "/1.0/recipes?page=2&per_page=1", http.StatusOK, t)
	unmarshalBody(t, bslice, &page)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Recipes, 1)
	assert.Equal(t, "recipe2", page.Recipes[0].Title)

	// a page beyond the last one
	pageNotFound := gz.ErrorMessage(gz.ErrorPaginationPageNotFound)
	bslice, _ = gztest.AssertRoute("GET", "/1.0/recipes?page=5&per_page=2", pageNotFound.StatusCode, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, pageNotFound.ErrCode, t)
}

// TestRecipesByUserAndMine checks the per-author listings
func TestRecipesByUserAndMine(t *testing.T) {
	// General test setup
	setup()
	author, jwt := newTestUser(t, "recipe-author-identity")
	_, jwt2 := newTestUser(t, "recipe-reader-identity")

	createTestRecipe(t, &jwt, "Soup")
	createTestRecipe(t, &jwt, "Stew")
	createTestRecipe(t, &jwt2, "Toast")

	uri := fmt.Sprintf("/1.0/recipes/user/%d", author.ID)
	bslice, _ := gztest.AssertRoute("GET", uri, http.StatusOK, t)
	var byUser recipes.UserRecipes
	unmarshalBody(t, bslice, &byUser)
	assert.Equal(t, 2, byUser.Total)
	assert.Equal(t, *author.Username, byUser.User)
	require.Len(t, byUser.Recipes, 2)

	// an author that does not exist
	userUnknown := gz.ErrorMessage(gz.ErrorUserUnknown)
	bslice, _ = gztest.AssertRoute("GET", "/1.0/recipes/user/99999", userUnknown.StatusCode, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, userUnknown.ErrCode, t)

	// my-recipes only returns the JWT user's recipes
	bslice, _ = gztest.AssertRouteMultipleArgs("GET", "/1.0/recipes/my-recipes", nil,
		http.StatusOK, &jwt2, ctJSON, t)
	var mine recipes.UserRecipes
	unmarshalBody(t, bslice, &mine)
	assert.Equal(t, 1, mine.Total)
	require.Len(t, mine.Recipes, 1)
	assert.Equal(t, "Toast", mine.Recipes[0].Title)
}

// TestRecipeUpdate checks partial updates and ownership
func TestRecipeUpdate(t *testing.T) {
	// General test setup
	setup()
	_, jwt := newTestUser(t, "recipe-update-identity")
	_, jwt2 := newTestUser(t, "recipe-intruder-identity")
	created := createTestRecipe(t, &jwt, "Ratatouille")

	uri := fmt.Sprintf("/1.0/recipes/%d", created.ID)

	// only the given fields change
	up := recipes.UpdateRecipe{Title: sptr("Ratatouille v2")}
	bslice, _ := gztest.AssertRouteMultipleArgs("PUT", uri, jsonBody(t, &up),
		http.StatusOK, &jwt, ctJSON, t)
	var resp recipes.RecipeResponse
	unmarshalBody(t, bslice, &resp)
	assert.Equal(t, "Ratatouille v2", resp.Title)
	assert.Equal(t, created.Instructions, resp.Instructions)
	assert.Equal(t, created.Ingredients, resp.Ingredients)

	// replacing the ingredient list
	ing := []string{"1 aubergine"}
	up = recipes.UpdateRecipe{Ingredients: &ing}
	bslice, _ = gztest.AssertRouteMultipleArgs("PUT", uri, jsonBody(t, &up),
		http.StatusOK, &jwt, ctJSON, t)
	unmarshalBody(t, bslice, &resp)
	assert.Equal(t, ing, resp.Ingredients)

	// an update without any field is rejected
	formInvalid := gz.ErrorMessage(gz.ErrorFormInvalidValue)
	bslice, _ = gztest.AssertRouteMultipleArgs("PUT", uri, jsonBody(t, &recipes.UpdateRecipe{}),
		formInvalid.StatusCode, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, formInvalid.ErrCode, t)

	// another user cannot update the recipe
	unauth := gz.ErrorMessage(gz.ErrorUnauthorized)
	up = recipes.UpdateRecipe{Title: sptr("Stolen")}
	bslice, _ = gztest.AssertRouteMultipleArgs("PUT", uri, jsonBody(t, &up),
		unauth.StatusCode, &jwt2, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, unauth.ErrCode, t)
}

// TestRecipeRemove checks recipe deletion and ownership
func TestRecipeRemove(t *testing.T) {
	// General test setup
	setup()
	_, jwt := newTestUser(t, "recipe-remove-identity")
	_, jwt2 := newTestUser(t, "recipe-remove-intruder")
	created := createTestRecipe(t, &jwt, "Flan")

	uri := fmt.Sprintf("/1.0/recipes/%d", created.ID)

	// another user cannot delete the recipe
	unauth := gz.ErrorMessage(gz.ErrorUnauthorized)
	bslice, _ := gztest.AssertRouteMultipleArgs("DELETE", uri, nil,
		unauth.StatusCode, &jwt2, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, unauth.ErrCode, t)

	// the owner can
	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", uri, nil,
		http.StatusOK, &jwt, ctJSON, t)
	var del deletedResponse
	unmarshalBody(t, bslice, &del)
	assert.Equal(t, "Recipe deleted successfully", del.Message)

	// the recipe is gone
	notFound := gz.ErrorMessage(gz.ErrorNonExistentResource)
	bslice, _ = gztest.AssertRoute("GET", uri, notFound.StatusCode, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, notFound.ErrCode, t)

	// deleting it again fails the same way
	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", uri, nil,
		notFound.StatusCode, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, notFound.ErrCode, t)
}
