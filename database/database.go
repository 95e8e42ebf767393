package database

import (
	"github.com/blognest/backend/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo    *UserRepo
	blogRepo    *BlogRepo
	commentRepo *CommentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		blogRepo:    NewBlogRepo(db),
		commentRepo: NewCommentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Comment{},
	)
}
