package main

import (
	"fmt"
	"net/http"
	"testing"

	mocket "github.com/Selvatico/go-mocket"
	"github.com/gazebo-web/gz-go/v7"
	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
	"github.com/ladle-web/ladle-server/bundles/social"
	"github.com/ladle-web/ladle-server/globals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFavouriteCreateAndRemove checks favouriting a recipe
func TestFavouriteCreateAndRemove(t *testing.T) {
	// General test setup
	setup()
	user, jwt := newTestUser(t, "favourite-identity")
	_, jwt2 := newTestUser(t, "favourite-author-identity")
	recipe := createTestRecipe(t, &jwt2, "Gnocchi")

	uri := fmt.Sprintf("/1.0/recipes/%d/favourites", recipe.ID)

	bslice, _ := gztest.AssertRouteMultipleArgs("POST", uri, nil, http.StatusCreated, &jwt, ctJSON, t)
	var fav social.FavouriteResponse
	unmarshalBody(t, bslice, &fav)
	assert.Equal(t, user.ID, fav.UserID)
	assert.Equal(t, recipe.ID, fav.RecipeID)
	assert.Equal(t, "Gnocchi", fav.RecipeTitle)

	// favouriting the same recipe twice is a conflict
	conflict := gz.ErrorMessage(gz.ErrorResourceExists)
	bslice, _ = gztest.AssertRouteMultipleArgs("POST", uri, nil, conflict.StatusCode, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, conflict.ErrCode, t)

	// favouriting a recipe that does not exist
	notFound := gz.ErrorMessage(gz.ErrorNonExistentResource)
	bslice, _ = gztest.AssertRouteMultipleArgs("POST", "/1.0/recipes/99999/favourites", nil,
		notFound.StatusCode, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, notFound.ErrCode, t)

	// list the favourites of the JWT user
	bslice, _ = gztest.AssertRouteMultipleArgs("GET", "/1.0/favourites", nil, http.StatusOK, &jwt, ctJSON, t)
	var favs social.UserFavourites
	unmarshalBody(t, bslice, &favs)
	assert.Equal(t, 1, favs.Total)
	require.Len(t, favs.Favourites, 1)
	assert.Equal(t, "Gnocchi", favs.Favourites[0].RecipeTitle)

	// the author did not favourite anything
	bslice, _ = gztest.AssertRouteMultipleArgs("GET", "/1.0/favourites", nil, http.StatusOK, &jwt2, ctJSON, t)
	unmarshalBody(t, bslice, &favs)
	assert.Equal(t, 0, favs.Total)

	// remove the favourite
	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", uri, nil, http.StatusOK, &jwt, ctJSON, t)
	var del deletedResponse
	unmarshalBody(t, bslice, &del)
	assert.Equal(t, "Favourite removed successfully", del.Message)

	// removing it again fails
	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", uri, nil, notFound.StatusCode, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, notFound.ErrCode, t)
}

// TestLikeCreateAndRemove checks liking a recipe
func TestLikeCreateAndRemove(t *testing.T) {
	// General test setup
	setup()
	user, jwt := newTestUser(t, "like-identity")
	_, jwt2 := newTestUser(t, "like-author-identity")
	recipe := createTestRecipe(t, &jwt2, "Tiramisu")

	uri := fmt.Sprintf("/1.0/recipes/%d/likes", recipe.ID)

	bslice, _ := gztest.AssertRouteMultipleArgs("POST", uri, nil, http.StatusCreated, &jwt, ctJSON, t)
	var like social.LikeResponse
	unmarshalBody(t, bslice, &like)
	assert.Equal(t, user.ID, like.UserID)
	assert.Equal(t, recipe.ID, like.RecipeID)

	// liking the same recipe twice is a conflict
	conflict := gz.ErrorMessage(gz.ErrorResourceExists)
	bslice, _ = gztest.AssertRouteMultipleArgs("POST", uri, nil, conflict.StatusCode, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, conflict.ErrCode, t)

	// list the likes of the JWT user
	bslice, _ = gztest.AssertRouteMultipleArgs("GET", "/1.0/likes", nil, http.StatusOK, &jwt, ctJSON, t)
	var likes social.UserLikes
	unmarshalBody(t, bslice, &likes)
	assert.Equal(t, 1, likes.Total)

	// remove the like
	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", uri, nil, http.StatusOK, &jwt, ctJSON, t)
	var del deletedResponse
	unmarshalBody(t, bslice, &del)
	assert.Equal(t, "Like removed successfully", del.Message)

	notFound := gz.ErrorMessage(gz.ErrorNonExistentResource)
	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", uri, nil, notFound.StatusCode, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, notFound.ErrCode, t)
}

// TestComments checks commenting on a recipe
func TestComments(t *testing.T) {
	// General test setup
	setup()
	_, jwt := newTestUser(t, "comment-identity")
	_, jwt2 := newTestUser(t, "comment-intruder-identity")
	recipe := createTestRecipe(t, &jwt, "Focaccia")

	uri := fmt.Sprintf("/1.0/recipes/%d/comments", recipe.ID)

	// anyone authenticated can comment, also on their own recipe
	cc := social.CreateComment{Content: "Needs more salt"}
	bslice, _ := gztest.AssertRouteMultipleArgs("POST", uri, jsonBody(t, &cc),
		http.StatusCreated, &jwt, ctJSON, t)
	var comment social.CommentResponse
	unmarshalBody(t, bslice, &comment)
	assert.Equal(t, "Needs more salt", comment.Content)

	cc = social.CreateComment{Content: "Great recipe"}
	gztest.AssertRouteMultipleArgs("POST", uri, jsonBody(t, &cc), http.StatusCreated, &jwt2, ctJSON, t)

	// a comment without content is rejected
	formInvalid := gz.ErrorMessage(gz.ErrorFormInvalidValue)
	bslice, _ = gztest.AssertRouteMultipleArgs("POST", uri, jsonBody(t, &social.CreateComment{}),
		formInvalid.StatusCode, &jwt, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, formInvalid.ErrCode, t)

	// comments are listed oldest first, without a JWT
	bslice, _ = gztest.AssertRoute("GET", uri, http.StatusOK, t)
	var comments social.RecipeComments
	unmarshalBody(t, bslice, &comments)
	assert.Equal(t, 2, comments.Total)
	require.Len(t, comments.Comments, 2)
	assert.Equal(t, "Needs more salt", comments.Comments[0].Content)
	assert.Equal(t, "Great recipe", comments.Comments[1].Content)

	commentURI := fmt.Sprintf("/1.0/comments/%d", comment.ID)

	// only the author can edit a comment
	unauth := gz.ErrorMessage(gz.ErrorUnauthorized)
	uc := social.UpdateComment{Content: "Edited"}
	bslice, _ = gztest.AssertRouteMultipleArgs("PUT", commentURI, jsonBody(t, &uc),
		unauth.StatusCode, &jwt2, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, unauth.ErrCode, t)

	bslice, _ = gztest.AssertRouteMultipleArgs("PUT", commentURI, jsonBody(t, &uc),
		http.StatusOK, &jwt, ctJSON, t)
	unmarshalBody(t, bslice, &comment)
	assert.Equal(t, "Edited", comment.Content)

	// only the author can delete a comment
	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", commentURI, nil,
		unauth.StatusCode, &jwt2, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, unauth.ErrCode, t)

	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", commentURI, nil, http.StatusOK, &jwt, ctJSON, t)
	var del deletedResponse
	unmarshalBody(t, bslice, &del)
	assert.Equal(t, "Comment deleted successfully", del.Message)

	bslice, _ = gztest.AssertRoute("GET", uri, http.StatusOK, t)
	unmarshalBody(t, bslice, &comments)
	assert.Equal(t, 1, comments.Total)
}

// TestRecipeRemoveCascades checks that deleting a recipe also removes its
// favourites, likes and comments.
func TestRecipeRemoveCascades(t *testing.T) {
	// General test setup
	setup()
	_, jwt := newTestUser(t, "cascade-author-identity")
	_, jwt2 := newTestUser(t, "cascade-fan-identity")
	recipe := createTestRecipe(t, &jwt, "Paella")

	gztest.AssertRouteMultipleArgs("POST", fmt.Sprintf("/1.0/recipes/%d/favourites", recipe.ID),
		nil, http.StatusCreated, &jwt2, ctJSON, t)
	gztest.AssertRouteMultipleArgs("POST", fmt.Sprintf("/1.0/recipes/%d/likes", recipe.ID),
		nil, http.StatusCreated, &jwt2, ctJSON, t)
	cc := social.CreateComment{Content: "Lovely"}
	gztest.AssertRouteMultipleArgs("POST", fmt.Sprintf("/1.0/recipes/%d/comments", recipe.ID),
		jsonBody(t, &cc), http.StatusCreated, &jwt2, ctJSON, t)

	gztest.AssertRouteMultipleArgs("DELETE", fmt.Sprintf("/1.0/recipes/%d", recipe.ID),
		nil, http.StatusOK, &jwt, ctJSON, t)

	// the fan's favourites and likes are gone by cascade
	bslice, _ := gztest.AssertRouteMultipleArgs("GET", "/1.0/favourites", nil, http.StatusOK, &jwt2, ctJSON, t)
	var favs social.UserFavourites
	unmarshalBody(t, bslice, &favs)
	assert.Equal(t, 0, favs.Total)

	bslice, _ = gztest.AssertRouteMultipleArgs("GET", "/1.0/likes", nil, http.StatusOK, &jwt2, ctJSON, t)
	var likes social.UserLikes
	unmarshalBody(t, bslice, &likes)
	assert.Equal(t, 0, likes.Total)

	// listing the comments of the removed recipe fails
	notFound := gz.ErrorMessage(gz.ErrorNonExistentResource)
	bslice, _ = gztest.AssertRoute("GET", fmt.Sprintf("/1.0/recipes/%d/comments", recipe.ID),
		notFound.StatusCode, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, notFound.ErrCode, t)
}

// TestFavouriteDbMock tests DB failures using a mock DB.
func TestFavouriteDbMock(t *testing.T) {
	// General test setup
	setup()

	origDb := globals.Server.Db
	// Make sure to return back to real DB after running this test
	defer SetGlobalDB(origDb)

	// Setup DB mock
	mockDb := SetupDbMockCatcher()
	SetGlobalDB(mockDb)
	SetupCommonMockResponses("mock-user")

	uri := "/1.0/recipes/100/favourites"
	myJWT := createValidJWTForIdentity("test-user-identity", t)

	// Test bad connection at Begin() tx
	SetGlobalDB(NewFailAtBeginConn())
	expErr := gz.ErrorMessage(gz.ErrorNoDatabase)
	bslice, _ := gztest.AssertRouteMultipleArgs("POST", uri, nil, expErr.StatusCode, &myJWT, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, expErr.ErrCode, t)

	// Test failure at TX commit while removing a favourite
	SetGlobalDB(mockDb)
	SetupCommonMockResponses("mock-user")
	mocket.Catcher.NewMock().WithQuery("SELECT * FROM \"favourites\"  WHERE").WithReply(
		[]map[string]interface{}{{"id": "1", "user_id": "101", "recipe_id": "100"}})
	SetupMockBadCommit()
	expErr = gz.ErrorMessage(gz.ErrorDbDelete)
	bslice, _ = gztest.AssertRouteMultipleArgs("DELETE", uri, nil, expErr.StatusCode, &myJWT, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, expErr.ErrCode, t)
	ClearMockBadCommit()
}
