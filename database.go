package main

// Import this file's dependencies
import (
	"context"

	"github.com/gazebo-web/gz-go/v7"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jinzhu/gorm"
	"github.com/ladle-web/ladle-server/bundles/grocerylists"
	"github.com/ladle-web/ladle-server/bundles/recipes"
	"github.com/ladle-web/ladle-server/bundles/social"
	"github.com/ladle-web/ladle-server/bundles/users"
)

// DBMigrate auto migrates database tables
func DBMigrate(ctx context.Context, db *gorm.DB) {
	// Note about Migration from GORM doc: http://jinzhu.me/gorm/database.html#migration
	//
	// WARNING: AutoMigrate will ONLY create tables, missing columns and missing indexes,
	// and WON'T change existing column's type or delete unused columns to protect your data.
	//

	if db != nil {
		db.AutoMigrate(
			&gz.AccessToken{},
			&users.User{},
			&recipes.Recipe{},
			&grocerylists.GroceryList{},
			&grocerylists.GroceryListItem{},
			&social.Favourite{},
			&social.Like{},
			&social.Comment{},
		)
	}
}

// DBAddForeignKeys adds foreign keys after the auto migration. Deleting a
// recipe removes its favourites, likes and comments at the database level.
func DBAddForeignKeys(ctx context.Context, db *gorm.DB) {
	if db == nil {
		return
	}

	db.Model(&recipes.Recipe{}).AddForeignKey("user_id", "users(id)", "RESTRICT", "RESTRICT")

	db.Model(&grocerylists.GroceryList{}).AddForeignKey("user_id", "users(id)", "RESTRICT", "RESTRICT")
	db.Model(&grocerylists.GroceryListItem{}).AddForeignKey("grocery_list_id", "grocery_lists(id)", "CASCADE", "RESTRICT")

	db.Model(&social.Favourite{}).AddForeignKey("user_id", "users(id)", "RESTRICT", "RESTRICT")
	db.Model(&social.Favourite{}).AddForeignKey("recipe_id", "recipes(id)", "CASCADE", "RESTRICT")

	db.Model(&social.Like{}).AddForeignKey("user_id", "users(id)", "RESTRICT", "RESTRICT")
	db.Model(&social.Like{}).AddForeignKey("recipe_id", "recipes(id)", "CASCADE", "RESTRICT")

	db.Model(&social.Comment{}).AddForeignKey("user_id", "users(id)", "RESTRICT", "RESTRICT")
	db.Model(&social.Comment{}).AddForeignKey("recipe_id", "recipes(id)", "CASCADE", "RESTRICT")
}

// DBDropModels drops all tables from DB. Used by tests.
func DBDropModels(ctx context.Context, db *gorm.DB) {
	if db != nil {
		// First remove added FKs
		db.Model(&recipes.Recipe{}).RemoveForeignKey("user_id", "users(id)")

		db.Model(&grocerylists.GroceryList{}).RemoveForeignKey("user_id", "users(id)")
		db.Model(&grocerylists.GroceryListItem{}).RemoveForeignKey("grocery_list_id", "grocery_lists(id)")

		db.Model(&social.Favourite{}).RemoveForeignKey("user_id", "users(id)")
		db.Model(&social.Favourite{}).RemoveForeignKey("recipe_id", "recipes(id)")
		db.Model(&social.Like{}).RemoveForeignKey("user_id", "users(id)")
		db.Model(&social.Like{}).RemoveForeignKey("recipe_id", "recipes(id)")
		db.Model(&social.Comment{}).RemoveForeignKey("user_id", "users(id)")
		db.Model(&social.Comment{}).RemoveForeignKey("recipe_id", "recipes(id)")

		// IMPORTANT NOTE: DROP TABLE order is important, due to FKs
		db.DropTableIfExists(
			&social.Comment{},
			&social.Like{},
			&social.Favourite{},
			&grocerylists.GroceryListItem{},
			&grocerylists.GroceryList{},
			&recipes.Recipe{},
			&users.User{},
			&gz.AccessToken{},
		)
	}
}
