package api

import (
	"github.com/blognest/backend/auth"
	"github.com/blognest/backend/database"
	"github.com/blognest/backend/services"
)

// initializeHandlers wires the services onto their stores and returns all
// handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, tokens *auth.TokenService, images *services.ImageService) *routeHandlers {
	perms := services.NewPermissionService(db.BlogRepo(), db.CommentRepo())

	userService := services.NewUserService(db.UserRepo())
	blogService := services.NewBlogService(db.BlogRepo(), db.CommentRepo(), perms)
	commentService := services.NewCommentService(db.CommentRepo(), perms)

	return &routeHandlers{
		userHandler:    newUserHandler(userService, tokens),
		blogHandler:    newBlogHandler(blogService, images),
		commentHandler: newCommentHandler(commentService),
	}
}
