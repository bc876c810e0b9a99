// Package main Ladle Server REST API
//
// This package provides a REST API to the Ladle recipe server.
//
// Schemes: https
// BasePath: /1.0
// Version: 1.0.0
//
// swagger:meta
// go:generate swagger generate spec
package main

// Import this file's dependencies
import (
	"context"
	"strconv"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/go-playground/form"
	"github.com/ladle-web/ladle-server/globals"
	"gopkg.in/go-playground/validator.v9"
)

/////////////////////////////////////////////////
/// Initialize this package
///
/// Environment variables:
///    GZ_DB_USERNAME  : Mysql username
///    GZ_DB_PASSWORD  : Mysql password
///    GZ_DB_ADDRESS   : Mysql address (host:port)
///    GZ_DB_NAME      : Mysql database name (such as "ladle")
///    AUTH0_RSA256_PUBLIC_KEY : Auth0 public RSA 256 key
func init() {
	var err error

	verbosity := gz.VerbosityWarning
	if verbStr, verr := gz.ReadEnvVar("LADLE_VERBOSITY"); verr == nil {
		verbosity, _ = strconv.Atoi(verbStr)
	}

	logStd := gz.ReadStdLogEnvVar()
	logger := gz.NewLogger("init", logStd, verbosity)
	logCtx := gz.NewContextWithLogger(context.Background(), logger)

	// Get the auth0 credentials.
	auth0RsaPublickey, err := gz.ReadEnvVar("AUTH0_RSA256_PUBLIC_KEY")
	if err != nil {
		logger.Info("Missing AUTH0_RSA256_PUBLIC_KEY env variable. Authentication will not work.")
	}

	globals.Server, err = gz.Init(auth0RsaPublickey, "", nil)
	// Create the main Router and set it to the server.
	// Note: here it is the place to define multiple APIs
	s := globals.Server
	mainRouter := gz.NewRouter()
	apiPrefix := "/" + globals.APIVersion
	r := mainRouter.PathPrefix(apiPrefix).Subrouter()
	s.ConfigureRouterWithRoutes(apiPrefix, r, routes)

	globals.Server.SetRouter(mainRouter)

	globals.Validate = validator.New()
	globals.FormDecoder = form.NewDecoder()

	if err != nil {
		logger.Error(err)
	} else {
		logger.Info("[application.go] Started using database: ",
			globals.Server.DbConfig.Name)

		// Migrate database tables
		DBMigrate(logCtx, globals.Server.Db)

		// Apply the foreign keys after the tables exist
		DBAddForeignKeys(logCtx, globals.Server.Db)
	}
}

/////////////////////////////////////////////////
// Run the router and server
func main() {
	globals.Server.Run()
}
