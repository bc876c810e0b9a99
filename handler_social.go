package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/ladle-web/ladle-server/bundles/social"
	"github.com/ladle-web/ladle-server/bundles/users"
)

// FavouriteCreate favourites a recipe for the JWT user. Trying to
// favourite the same recipe twice fails with a conflict.
// You can request this method with the following curl request:
//
//	curl -k -X POST --url https://localhost:4430/1.0/recipes/{recipe_id}/favourites
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func FavouriteCreate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	response, em := (&social.Service{}).CreateFavourite(r.Context(), tx, id, user)
	if em != nil {
		return nil, em
	}

	w.WriteHeader(http.StatusCreated)
	return response, nil
}

// FavouriteRemove removes the JWT user's favourite of a recipe.
// You can request this method with the following curl request:
//
//	curl -k -X DELETE --url https://localhost:4430/1.0/recipes/{recipe_id}/favourites
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func FavouriteRemove(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if _, em := (&social.Service{}).RemoveFavourite(r.Context(), tx, id, user); em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	return deletedResponse{Message: "Favourite removed successfully"}, nil
}

// FavouriteList returns all the favourites of the JWT user.
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/favourites
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func FavouriteList(user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	return (&social.Service{}).FavouriteList(tx, user)
}

// LikeCreate likes a recipe for the JWT user. Trying to like the same
// recipe twice fails with a conflict.
// You can request this method with the following curl request:
//
//	curl -k -X POST --url https://localhost:4430/1.0/recipes/{recipe_id}/likes
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func LikeCreate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	response, em := (&social.Service{}).CreateLike(r.Context(), tx, id, user)
	if em != nil {
		return nil, em
	}

	w.WriteHeader(http.StatusCreated)
	return response, nil
}

// LikeRemove removes the JWT user's like of a recipe.
// You can request this method with the following curl request:
//
//	curl -k -X DELETE --url https://localhost:4430/1.0/recipes/{recipe_id}/likes
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func LikeRemove(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if _, em := (&social.Service{}).RemoveLike(r.Context(), tx, id, user); em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	return deletedResponse{Message: "Like removed successfully"}, nil
}

// LikeList returns all the likes of the JWT user.
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/likes
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func LikeList(user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	return (&social.Service{}).LikeList(tx, user)
}

// CommentList returns all the comments of a recipe, oldest first.
// You can request this method with the following curl request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/recipes/{recipe_id}/comments
func CommentList(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	return (&social.Service{}).CommentList(tx, id)
}

// CommentCreate posts a comment on a recipe. Any authenticated user may
// comment on any recipe.
// You can request this method with the following curl request:
//
//	curl -k -X POST --url https://localhost:4430/1.0/recipes/{recipe_id}/comments
//	  --header 'authorization: Bearer <your-jwt-token-here>'
//	  -d '{"content":"Delicious!"}'
func CommentCreate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var createComment social.CreateComment
	if em := ParseStruct(&createComment, r, false); em != nil {
		return nil, em
	}

	response, em := (&social.Service{}).CreateComment(r.Context(), tx, id, createComment, user)
	if em != nil {
		return nil, em
	}

	w.WriteHeader(http.StatusCreated)
	return response, nil
}

// CommentUpdate replaces the text of a comment. Only the comment's
// author can edit it.
// You can request this method with the following curl request:
//
//	curl -k -X PUT --url https://localhost:4430/1.0/comments/{comment_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func CommentUpdate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var updateComment social.UpdateComment
	if em := ParseStruct(&updateComment, r, false); em != nil {
		return nil, em
	}

	return (&social.Service{}).UpdateComment(r.Context(), tx, id, updateComment, user)
}

// CommentRemove deletes a comment. Only the comment's author can delete
// it.
// You can request this method with the following curl request:
//
//	curl -k -X DELETE --url https://localhost:4430/1.0/comments/{comment_id}
//	  --header 'authorization: Bearer <your-jwt-token-here>'
func CommentRemove(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if _, em := (&social.Service{}).RemoveComment(r.Context(), tx, id, user); em != nil {
		return nil, em
	}

	// commit the DB transaction
	// Note: we commit the TX here on purpose, to be able to detect DB errors
	// before writing "data" to ResponseWriter. Once you write data (not headers)
	// into it the status code is set to 200 (OK).
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	return deletedResponse{Message: "Comment deleted successfully"}, nil
}
