package social

import (
	"context"
	"fmt"
	"time"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
	"github.com/ladle-web/ladle-server/bundles/recipes"
	"github.com/ladle-web/ladle-server/bundles/users"
)

// Service is the main struct exported by this Social Service. It manages
// favourites, likes and comments on recipes.
type Service struct{}

// isDuplicateKeyError tells whether err is a MySQL unique index violation
// (error 1062).
func isDuplicateKeyError(err error) bool {
	me, ok := err.(*mysql.MySQLError)
	return ok && me.Number == 1062
}

// CreateFavourite registers a favourite of a recipe by a user. It fails
// with ResourceExists when the (user, recipe) pair already has one; the
// table's unique index settles concurrent creations the same way.
func (s *Service) CreateFavourite(ctx context.Context, tx *gorm.DB, recipeID uint,
	user *users.User) (*FavouriteResponse, *gz.ErrMsg) {

	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	recipe, em := (&recipes.Service{}).GetRecipe(tx, recipeID)
	if em != nil {
		return nil, em
	}

	if _, err := FavouriteByUserAndRecipe(tx, user.ID, recipe.ID); err == nil {
		return nil, gz.NewErrorMessage(gz.ErrorResourceExists)
	}

	favourite := Favourite{UserID: &user.ID, RecipeID: &recipe.ID}
	if err := tx.Create(&favourite).Error; err != nil {
		// The unique index over (user_id, recipe_id) settles pairs
		// inserted concurrently with the check above.
		if isDuplicateKeyError(err) {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorResourceExists, err)
		}
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("User [%d] favourited recipe [%d].", user.ID, recipe.ID))

	response := s.toFavouriteResponse(tx, &favourite)
	return &response, nil
}

// RemoveFavourite removes a user's favourite of a recipe. It fails with
// NonExistentResource when no such favourite exists.
func (s *Service) RemoveFavourite(ctx context.Context, tx *gorm.DB, recipeID uint,
	user *users.User) (*Favourite, *gz.ErrMsg) {

	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	favourite, err := FavouriteByUserAndRecipe(tx, user.ID, recipeID)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNonExistentResource, err)
	}

	if err := tx.Delete(&Favourite{}, "id = ?", favourite.ID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}
	return favourite, nil
}

// FavouriteList returns all favourites of the given user.
func (s *Service) FavouriteList(tx *gorm.DB, user *users.User) (*UserFavourites, *gz.ErrMsg) {
	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	var favourites Favourites
	if err := tx.Model(&Favourite{}).Where("user_id = ?", user.ID).Order("id").Find(&favourites).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	responses := FavouriteResponses{}
	for i := range favourites {
		responses = append(responses, s.toFavouriteResponse(tx, &favourites[i]))
	}
	return &UserFavourites{Favourites: responses, Total: len(responses)}, nil
}

// CreateLike registers a like of a recipe by a user. Same uniqueness
// semantics as CreateFavourite, on an independent relation.
func (s *Service) CreateLike(ctx context.Context, tx *gorm.DB, recipeID uint,
	user *users.User) (*LikeResponse, *gz.ErrMsg) {

	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	recipe, em := (&recipes.Service{}).GetRecipe(tx, recipeID)
	if em != nil {
		return nil, em
	}

	if _, err := LikeByUserAndRecipe(tx, user.ID, recipe.ID); err == nil {
		return nil, gz.NewErrorMessage(gz.ErrorResourceExists)
	}

	like := Like{UserID: &user.ID, RecipeID: &recipe.ID}
	if err := tx.Create(&like).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorResourceExists, err)
		}
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("User [%d] liked recipe [%d].", user.ID, recipe.ID))

	response := s.toLikeResponse(tx, &like)
	return &response, nil
}

// RemoveLike removes a user's like of a recipe. It fails with
// NonExistentResource when no such like exists.
func (s *Service) RemoveLike(ctx context.Context, tx *gorm.DB, recipeID uint,
	user *users.User) (*Like, *gz.ErrMsg) {

	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	like, err := LikeByUserAndRecipe(tx, user.ID, recipeID)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNonExistentResource, err)
	}

	if err := tx.Delete(&Like{}, "id = ?", like.ID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}
	return like, nil
}

// LikeList returns all likes of the given user.
func (s *Service) LikeList(tx *gorm.DB, user *users.User) (*UserLikes, *gz.ErrMsg) {
	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	var likes Likes
	if err := tx.Model(&Like{}).Where("user_id = ?", user.ID).Order("id").Find(&likes).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	responses := LikeResponses{}
	for i := range likes {
		responses = append(responses, s.toLikeResponse(tx, &likes[i]))
	}
	return &UserLikes{Likes: responses, Total: len(responses)}, nil
}

// CreateComment posts a comment on a recipe. Any authenticated user may
// comment on any recipe.
func (s *Service) CreateComment(ctx context.Context, tx *gorm.DB, recipeID uint,
	cc CreateComment, user *users.User) (*CommentResponse, *gz.ErrMsg) {

	if user == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	recipe, em := (&recipes.Service{}).GetRecipe(tx, recipeID)
	if em != nil {
		return nil, em
	}

	comment := Comment{UserID: user.ID, RecipeID: recipe.ID, Content: &cc.Content}
	if err := tx.Create(&comment).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("User [%d] commented on recipe [%d].", user.ID, recipe.ID))

	response := s.toCommentResponse(tx, &comment)
	return &response, nil
}

// UpdateComment replaces the text of a comment. Only the comment's
// author may edit it, regardless of who owns the recipe.
func (s *Service) UpdateComment(ctx context.Context, tx *gorm.DB, commentID uint,
	uc UpdateComment, user *users.User) (*CommentResponse, *gz.ErrMsg) {

	comment, err := CommentByID(tx, commentID)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNonExistentResource, err)
	}
	if em := users.CheckOwner(user, comment.UserID); em != nil {
		return nil, em
	}

	comment.Content = &uc.Content
	comment.UpdatedAt = time.Now()
	if err := tx.Save(comment).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	response := s.toCommentResponse(tx, comment)
	return &response, nil
}

// RemoveComment deletes a comment. Only the comment's author may delete
// it.
func (s *Service) RemoveComment(ctx context.Context, tx *gorm.DB, commentID uint,
	user *users.User) (*Comment, *gz.ErrMsg) {

	comment, err := CommentByID(tx, commentID)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNonExistentResource, err)
	}
	if em := users.CheckOwner(user, comment.UserID); em != nil {
		return nil, em
	}

	if err := tx.Delete(&Comment{}, "id = ?", comment.ID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}
	return comment, nil
}

// CommentList returns all comments of a recipe, oldest first.
func (s *Service) CommentList(tx *gorm.DB, recipeID uint) (*RecipeComments, *gz.ErrMsg) {
	if _, em := (&recipes.Service{}).GetRecipe(tx, recipeID); em != nil {
		return nil, em
	}

	var comments Comments
	if err := tx.Model(&Comment{}).Where("recipe_id = ?", recipeID).Order("id").Find(&comments).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}

	responses := CommentResponses{}
	for i := range comments {
		responses = append(responses, s.toCommentResponse(tx, &comments[i]))
	}
	return &RecipeComments{Comments: responses, Total: len(responses)}, nil
}

// toFavouriteResponse creates a FavouriteResponse, resolving the
// username and the recipe title display fields.
func (s *Service) toFavouriteResponse(tx *gorm.DB, favourite *Favourite) FavouriteResponse {
	response := FavouriteResponse{
		ID: favourite.ID,
		// Note: time.RFC3339 is the format expected by Go's JSON unmarshal
		CreatedAt: favourite.CreatedAt.UTC().Format(time.RFC3339),
	}
	if favourite.UserID != nil {
		response.UserID = *favourite.UserID
		if username := users.UsernameByID(tx, *favourite.UserID); username != nil {
			response.Username = *username
		}
	}
	if favourite.RecipeID != nil {
		response.RecipeID = *favourite.RecipeID
		if recipe, err := recipes.ByID(tx, *favourite.RecipeID); err == nil && recipe.Title != nil {
			response.RecipeTitle = *recipe.Title
		}
	}
	return response
}

// toLikeResponse creates a LikeResponse, resolving the username display
// field.
func (s *Service) toLikeResponse(tx *gorm.DB, like *Like) LikeResponse {
	response := LikeResponse{
		ID:        like.ID,
		CreatedAt: like.CreatedAt.UTC().Format(time.RFC3339),
	}
	if like.UserID != nil {
		response.UserID = *like.UserID
		if username := users.UsernameByID(tx, *like.UserID); username != nil {
			response.Username = *username
		}
	}
	if like.RecipeID != nil {
		response.RecipeID = *like.RecipeID
	}
	return response
}

// toCommentResponse creates a CommentResponse, resolving the username
// display field.
func (s *Service) toCommentResponse(tx *gorm.DB, comment *Comment) CommentResponse {
	response := CommentResponse{
		ID:        comment.ID,
		UserID:    comment.UserID,
		RecipeID:  comment.RecipeID,
		CreatedAt: comment.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if comment.Content != nil {
		response.Content = *comment.Content
	}
	if username := users.UsernameByID(tx, comment.UserID); username != nil {
		response.Username = *username
	}
	return response
}
