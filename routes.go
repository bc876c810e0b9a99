package main

import (
	"github.com/gazebo-web/gz-go/v7"
)

// ///////////////////////////////////////////////
// / Declare the routes. See also router.go
var routes = gz.Routes{

	/////////////
	// Recipes //
	/////////////

	// Route for all recipes
	gz.Route{
		Name:        "Recipes",
		Description: "Information about all recipes",
		URI:         "/recipes",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /recipes recipes listRecipes
			//
			// Get list of recipes.
			//
			// Get a list of recipes. Recipes will be returned paginated,
			// with pages of 20 recipes by default. The user can request a
			// different page with query parameter 'page', and the page size
			// can be defined with query parameter 'per_page'.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: jsonRecipes
			gz.Method{
				Type:        "GET",
				Description: "Get all recipes",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: ".json", Handler: gz.JSONResult(PaginationHandler(RecipeList))},
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(PaginationHandler(RecipeList))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{
			// swagger:route POST /recipes recipes createRecipe
			//
			// Create recipe
			//
			// Creates a new recipe. The request body should contain the
			// following fields: 'title', 'ingredients' (a non empty list of
			// strings), 'instructions', and optionally 'description' and
			// 'image_url'. The recipe owner is taken from the passed JWT.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     201: dbRecipe
			gz.Method{
				Type:        "POST",
				Description: "Create a new recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IdentityHandler(true, RecipeCreate))},
				},
			},
		},
	},

	// Route that returns the recipes of the JWT user.
	// Declared before the {recipe_id} route so mux does not capture
	// "my-recipes" as an id.
	gz.Route{
		Name:        "MyRecipes",
		Description: "Information about the recipes belonging to the JWT user",
		URI:         "/recipes/my-recipes",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /recipes/my-recipes recipes myRecipes
			//
			// Get the JWT user's recipes
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: jsonRecipes
			gz.Method{
				Type:        "GET",
				Description: "Get all recipes of the JWT user",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IdentityHandler(true, MyRecipes))},
				},
			},
		},
	},

	// Route that returns the recipes of a given user
	gz.Route{
		Name:        "UserRecipes",
		Description: "Information about recipes belonging to a user",
		URI:         "/recipes/user/{user_id}",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /recipes/user/{user_id} recipes listUserRecipes
			//
			// Get a user's recipes
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: jsonRecipes
			gz.Method{
				Type:        "GET",
				Description: "Get all recipes of the specified user",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("user_id", false, RecipesByUser))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{},
	},

	// Route for a single recipe
	gz.Route{
		Name:        "RecipeIndex",
		Description: "Information about a single recipe",
		URI:         "/recipes/{recipe_id}",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /recipes/{recipe_id} recipes singleRecipe
			//
			// Get a single recipe
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: dbRecipe
			gz.Method{
				Type:        "GET",
				Description: "Get a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", false, RecipeIndex))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{
			// swagger:route PUT /recipes/{recipe_id} recipes recipeUpdate
			//
			// Update a recipe
			//
			// Modifies any subset of the recipe fields. Only the recipe
			// owner can update it.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: dbRecipe
			gz.Method{
				Type:        "PUT",
				Description: "Update a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", true, RecipeUpdate))},
				},
			},
			// swagger:route DELETE /recipes/{recipe_id} recipes recipeDelete
			//
			// Delete a recipe
			//
			// Deletes the recipe and its favourites, likes and comments.
			// Only the recipe owner can delete it.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: deletedResponse
			gz.Method{
				Type:        "DELETE",
				Description: "Remove a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", true, RecipeRemove))},
				},
			},
		},
	},

	////////////////
	// Favourites //
	////////////////

	// Route that handles the favourites of a recipe
	gz.Route{
		Name:        "RecipeFavourites",
		Description: "Handles the favourites of a recipe.",
		URI:         "/recipes/{recipe_id}/favourites",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route POST /recipes/{recipe_id}/favourites favourites favouriteCreate
			//
			// Favourite a recipe
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     201: dbFavourite
			gz.Method{
				Type:        "POST",
				Description: "Favourite a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", true, FavouriteCreate))},
				},
			},
			// swagger:route DELETE /recipes/{recipe_id}/favourites favourites favouriteDelete
			//
			// Remove the favourite of a recipe
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: deletedResponse
			gz.Method{
				Type:        "DELETE",
				Description: "Unfavourite a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", true, FavouriteRemove))},
				},
			},
		},
	},

	// Route that returns the favourites of the JWT user
	gz.Route{
		Name:        "Favourites",
		Description: "Information about the favourites of the JWT user",
		URI:         "/favourites",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /favourites favourites listFavourites
			//
			// Get the JWT user's favourites
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: jsonFavourites
			gz.Method{
				Type:        "GET",
				Description: "Get all favourites of the JWT user",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IdentityHandler(true, FavouriteList))},
				},
			},
		},
	},

	///////////
	// Likes //
	///////////

	// Route that handles the likes of a recipe
	gz.Route{
		Name:        "RecipeLikes",
		Description: "Handles the likes of a recipe.",
		URI:         "/recipes/{recipe_id}/likes",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route POST /recipes/{recipe_id}/likes likes likeCreate
			//
			// Like a recipe
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     201: dbLike
			gz.Method{
				Type:        "POST",
				Description: "Like a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", true, LikeCreate))},
				},
			},
			// swagger:route DELETE /recipes/{recipe_id}/likes likes likeDelete
			//
			// Remove the like of a recipe
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: deletedResponse
			gz.Method{
				Type:        "DELETE",
				Description: "Unlike a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", true, LikeRemove))},
				},
			},
		},
	},

	// Route that returns the likes of the JWT user
	gz.Route{
		Name:        "Likes",
		Description: "Information about the likes of the JWT user",
		URI:         "/likes",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /likes likes listLikes
			//
			// Get the JWT user's likes
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: jsonLikes
			gz.Method{
				Type:        "GET",
				Description: "Get all likes of the JWT user",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IdentityHandler(true, LikeList))},
				},
			},
		},
	},

	//////////////
	// Comments //
	//////////////

	// Route that handles the comments of a recipe
	gz.Route{
		Name:        "RecipeComments",
		Description: "Handles the comments of a recipe.",
		URI:         "/recipes/{recipe_id}/comments",
		Headers:     gz.AuthHeadersOptional,
		Methods: gz.Methods{
			// swagger:route GET /recipes/{recipe_id}/comments comments listComments
			//
			// Get the comments of a recipe
			//
			// Comments are returned oldest first.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: jsonComments
			gz.Method{
				Type:        "GET",
				Description: "Get all comments of a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", false, CommentList))},
				},
			},
		},
		SecureMethods: gz.SecureMethods{
			// swagger:route POST /recipes/{recipe_id}/comments comments commentCreate
			//
			// Comment on a recipe
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     201: dbComment
			gz.Method{
				Type:        "POST",
				Description: "Comment on a recipe",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("recipe_id", true, CommentCreate))},
				},
			},
		},
	},

	// Route for a single comment
	gz.Route{
		Name:        "CommentIndex",
		Description: "Handles a single comment.",
		URI:         "/comments/{comment_id}",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route PUT /comments/{comment_id} comments commentUpdate
			//
			// Update a comment
			//
			// Only the comment author can update it.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: dbComment
			gz.Method{
				Type:        "PUT",
				Description: "Update a comment",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("comment_id", true, CommentUpdate))},
				},
			},
			// swagger:route DELETE /comments/{comment_id} comments commentDelete
			//
			// Delete a comment
			//
			// Only the comment author can delete it.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: deletedResponse
			gz.Method{
				Type:        "DELETE",
				Description: "Remove a comment",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("comment_id", true, CommentRemove))},
				},
			},
		},
	},

	///////////////////
	// Grocery lists //
	///////////////////

	// Route for the grocery lists of the JWT user
	gz.Route{
		Name:        "GroceryLists",
		Description: "Information about the grocery lists of the JWT user",
		URI:         "/grocery-lists",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /grocery-lists grocerylists listGroceryLists
			//
			// Get the JWT user's grocery lists
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: jsonGroceryLists
			gz.Method{
				Type:        "GET",
				Description: "Get all grocery lists of the JWT user",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IdentityHandler(true, GroceryListList))},
				},
			},
			// swagger:route POST /grocery-lists grocerylists groceryListCreate
			//
			// Create grocery list
			//
			// Creates a new grocery list, owned by the JWT user. The
			// request body should contain a 'name' field.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     201: dbGroceryList
			gz.Method{
				Type:        "POST",
				Description: "Create a new grocery list",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IdentityHandler(true, GroceryListCreate))},
				},
			},
		},
	},

	// Route for a single grocery list item.
	// Declared before the {list_id} routes so mux does not capture
	// "items" as a list id.
	gz.Route{
		Name:        "GroceryListItemIndex",
		Description: "Handles a single grocery list item.",
		URI:         "/grocery-lists/items/{item_id}",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route PUT /grocery-lists/items/{item_id} grocerylists groceryListItemUpdate
			//
			// Update a grocery list item
			//
			// Modifies any subset of the item fields. Only the owner of
			// the parent list can update it.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: dbGroceryListItem
			gz.Method{
				Type:        "PUT",
				Description: "Update a grocery list item",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("item_id", true, GroceryListItemUpdate))},
				},
			},
			// swagger:route DELETE /grocery-lists/items/{item_id} grocerylists groceryListItemDelete
			//
			// Delete a grocery list item
			//
			// Only the owner of the parent list can delete it.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: deletedResponse
			gz.Method{
				Type:        "DELETE",
				Description: "Remove a grocery list item",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("item_id", true, GroceryListItemRemove))},
				},
			},
		},
	},

	// Route for a single grocery list
	gz.Route{
		Name:        "GroceryListIndex",
		Description: "Information about a single grocery list",
		URI:         "/grocery-lists/{list_id}",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route GET /grocery-lists/{list_id} grocerylists singleGroceryList
			//
			// Get a single grocery list
			//
			// Returns the grocery list with its items. Only the list
			// owner can read it.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: dbGroceryList
			gz.Method{
				Type:        "GET",
				Description: "Get a grocery list",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("list_id", true, GroceryListIndex))},
				},
			},
			// swagger:route PUT /grocery-lists/{list_id} grocerylists groceryListUpdate
			//
			// Update a grocery list
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: dbGroceryList
			gz.Method{
				Type:        "PUT",
				Description: "Update a grocery list",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("list_id", true, GroceryListUpdate))},
				},
			},
			// swagger:route DELETE /grocery-lists/{list_id} grocerylists groceryListDelete
			//
			// Delete a grocery list
			//
			// Deletes the grocery list and all of its items.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     200: deletedResponse
			gz.Method{
				Type:        "DELETE",
				Description: "Remove a grocery list",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("list_id", true, GroceryListRemove))},
				},
			},
		},
	},

	// Route for the items of a grocery list
	gz.Route{
		Name:        "GroceryListItems",
		Description: "Handles the items of a grocery list.",
		URI:         "/grocery-lists/{list_id}/items",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route POST /grocery-lists/{list_id}/items grocerylists groceryListItemCreate
			//
			// Add an item to a grocery list
			//
			// The request body should contain an 'item_name' field, and
			// optionally 'quantity', 'notes' and 'checked_off'.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     201: dbGroceryListItem
			gz.Method{
				Type:        "POST",
				Description: "Add an item to a grocery list",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("list_id", true, GroceryListItemCreate))},
				},
			},
		},
	},

	// Route that imports a recipe's ingredients into a grocery list
	gz.Route{
		Name:        "GroceryListImport",
		Description: "Imports the ingredients of a recipe into a grocery list.",
		URI:         "/grocery-lists/{list_id}/add-recipe-ingredients",
		Headers:     gz.AuthHeadersOptional,
		Methods:     gz.Methods{},
		SecureMethods: gz.SecureMethods{
			// swagger:route POST /grocery-lists/{list_id}/add-recipe-ingredients grocerylists groceryListImport
			//
			// Import recipe ingredients
			//
			// Appends one item per ingredient of the given recipe to the
			// grocery list. The request body should contain a 'recipe_id'
			// field and optionally a 'quantity' applied to every item.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: ladleError
			//     201: jsonImportedIngredients
			gz.Method{
				Type:        "POST",
				Description: "Import the ingredients of a recipe into a grocery list",
				Handlers: gz.FormatHandlers{
					gz.FormatHandler{Extension: "", Handler: gz.JSONResult(IDHandler("list_id", true, GroceryListImportIngredients))},
				},
			},
		},
	},
}
