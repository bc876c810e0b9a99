package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/go-playground/form"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/ladle-web/ladle-server/bundles/users"
	"github.com/ladle-web/ladle-server/globals"
	"gopkg.in/go-playground/validator.v9"
)

// identityFn defines the signature for handlers that only need the
// requesting user (from the JWT), besides the request transaction.
type identityFn func(user *users.User, tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg)

// IdentityHandler is a middleware handler that wraps an identityFn and
// invokes it with the user extracted from the request's JWT.
// Note: if failIfNoUser is true, this handler will return errors if the JWT
// is invalid or does not exist in DB. Otherwise the user will be nil.
func IdentityHandler(failIfNoUser bool, handler identityFn) gz.HandlerWithResult {
	return func(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {
		// Extract the user associated with the JWT, if any.
		user, ok, errMsg := getUserFromJWT(tx, r)
		if !ok && ((errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
			errMsg.ErrCode != gz.ErrorAuthNoUser) || failIfNoUser) {
			return nil, &errMsg
		}

		result, em := handler(user, tx, w, r)
		if em != nil {
			return nil, em
		}
		return result, nil
	}
}

// idFn defines the signature for handlers that target a single resource
// by its numeric id, got from the route.
type idFn func(id uint, user *users.User, tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg)

// IDHandler is a middleware handler that wraps an idFn and invokes it
// with the following extra arguments:
// - id: the numeric id got from the route variable named idArg.
// - user: the user requesting the operation. Can be nil. Got from the JWT.
// Note: if failIfNoUser is true, this handler will return errors if the JWT
// is invalid or does not exist in DB. Otherwise the user will be nil.
func IDHandler(idArg string, failIfNoUser bool, handler idFn) gz.HandlerWithResult {
	return func(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {
		// Extract the user associated with the JWT, if any.
		user, ok, errMsg := getUserFromJWT(tx, r)
		if !ok && ((errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
			errMsg.ErrCode != gz.ErrorAuthNoUser) || failIfNoUser) {
			return nil, &errMsg
		}

		id, em := readID(r, idArg)
		if em != nil {
			return nil, em
		}

		result, em := handler(id, user, tx, w, r)
		if em != nil {
			return nil, em
		}
		return result, nil
	}
}

// pagHandler defines the signature for handlers that return paginated
// results.
type pagHandler func(p *gz.PaginationRequest, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.PaginationResult, *gz.ErrMsg)

// PaginationHandlerWithUser is a middleware handler that wraps a pagHandler
// function and invokes it with the following extra arguments:
// - p: a configured pagination request
// - user: the user requesting the operation. Got from the JWT.
// If failIfNoUser is true then the middleware will fail if the JWT does not
// represent a valid user. Otherwise will pass 'nil' to the inner handler.
// It also writes the pagination headers into the HTTP response.
func PaginationHandlerWithUser(handler pagHandler, failIfNoUser bool) gz.HandlerWithResult {
	return func(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

		// Prepare pagination
		pr, em := gz.NewPaginationRequest(r)
		if em != nil {
			return nil, em
		}

		// Get JWT user
		user, ok, errMsg := getUserFromJWT(tx, r)
		if !ok && (failIfNoUser || (errMsg.ErrCode != gz.ErrorAuthJWTInvalid &&
			errMsg.ErrCode != gz.ErrorAuthNoUser)) {
			return nil, &errMsg
		}

		list, pagination, em := handler(pr, user, tx, w, r)
		if em != nil {
			return nil, em
		}

		if err := gz.WritePaginationHeaders(*pagination, w, r); err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorUnexpected, err)
		}
		return list, nil
	}
}

// PaginationHandler is a middleware handler that wraps a pagHandler
// function, passing a nil user when the request carries no valid JWT.
func PaginationHandler(handler pagHandler) gz.HandlerWithResult {
	return PaginationHandlerWithUser(handler, false)
}

// readID is a helper function that reads a numeric id from the route.
func readID(r *http.Request, param string) (uint, *gz.ErrMsg) {
	params := mux.Vars(r)
	idStr, present := params[param]
	if !present {
		return 0, gz.NewErrorMessage(gz.ErrorIDNotInRequest)
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
	}
	return uint(id), nil
}

// ParseStruct reads the http request and decodes sent values
// into the given struct. It uses the isForm bool to know if the values come
// as "request.Form" values or as "request.Body".
// It also calls validator to validate the struct fields.
func ParseStruct(s interface{}, r *http.Request, isForm bool) *gz.ErrMsg {
	if isForm {
		if errs := globals.FormDecoder.Decode(s, r.Form); errs != nil {
			return gz.NewErrorMessageWithArgs(gz.ErrorFormInvalidValue, errs,
				getDecodeErrorsExtraInfo(errs))
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(s); err != nil {
			return gz.NewErrorMessageWithBase(gz.ErrorUnmarshalJSON, err)
		}
	}
	// Validate struct values
	if em := ValidateStruct(s); em != nil {
		return em
	}
	return nil
}

// ValidateStruct Validate struct values using golang validator.v9
func ValidateStruct(s interface{}) *gz.ErrMsg {
	if errs := globals.Validate.Struct(s); errs != nil {
		return gz.NewErrorMessageWithArgs(gz.ErrorFormInvalidValue, errs,
			getValidationErrorsExtraInfo(errs))
	}
	return nil
}

// Builds the ErrMsg extra info from the given DecodeErrors
func getDecodeErrorsExtraInfo(err error) []string {
	errs := err.(form.DecodeErrors)
	extra := make([]string, 0, len(errs))
	for field, er := range errs {
		extra = append(extra, fmt.Sprintf("Field: %s. %v", field, er.Error()))
	}
	return extra
}

// Builds the ErrMsg extra info from the given ValidationErrors
func getValidationErrorsExtraInfo(err error) []string {
	validationErrors := err.(validator.ValidationErrors)
	extra := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		extra = append(extra, fmt.Sprintf("%s:%v", fe.StructField(), fe.Value()))
	}
	return extra
}

// getUserFromJWT returns the User associated to the http request's JWT token.
// This function can return ErrorAuthJWTInvalid if the token cannot be
// read, or ErrorAuthNoUser if no user with such identity exists in the DB.
func getUserFromJWT(tx *gorm.DB, r *http.Request) (*users.User, bool, gz.ErrMsg) {
	var user *users.User

	// Check if a Private-Token is used, which will supersede a JWT token.
	if token := r.Header.Get("Private-Token"); len(token) > 0 {
		accessToken, err := gz.ValidateAccessToken(token, tx)
		if err != nil {
			return nil, false, gz.ErrorMessage(gz.ErrorUnauthorized)
		}

		user = new(users.User)
		if err := tx.Where("id = ?", accessToken.UserID).First(user).Error; err != nil {
			return nil, false, *gz.NewErrorMessage(gz.ErrorUnauthorized)
		}
	} else {
		identity, valid := gz.GetUserIdentity(r)
		if !valid {
			return nil, false, gz.ErrorMessage(gz.ErrorAuthJWTInvalid)
		}

		var em *gz.ErrMsg
		user, em = users.ByIdentity(tx, identity)
		if em != nil {
			return nil, false, *em
		}
	}

	errMsg := gz.ErrorMessageOK()
	return user, true, errMsg
}

// deletedResponse is the body returned by delete operations.
type deletedResponse struct {
	Message string `json:"message"`
}
