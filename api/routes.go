package api

import (
	"fmt"
	"net/http"

	"github.com/blognest/backend/errs"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes registers the API surface. Reads are public; every mutation
// sits behind the auth middleware.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, uploadDir string) {
	r.Use(ColoredHTTPLoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users/signup", handlers.userHandler.signup())
		r.Post("/users/login", handlers.userHandler.login())
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Get("/users/me", handlers.userHandler.me())
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", handlers.blogHandler.getAllBlogs())
			r.Get("/{id}", handlers.blogHandler.getBlog())
			r.Get("/{blogId}/comments", handlers.commentHandler.getBlogComments())

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.authenticate)
				r.Post("/", handlers.blogHandler.createBlog())
				r.Get("/getMyBlogs", handlers.blogHandler.getMyBlogs())
				r.Patch("/{id}", handlers.blogHandler.updateBlog())
				r.Delete("/{id}", handlers.blogHandler.deleteBlog())
				r.Post("/{blogId}/comments", handlers.commentHandler.createComment())
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", handlers.commentHandler.getAllComments())
			r.Get("/{id}", handlers.commentHandler.getComment())

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.authenticate)
				r.Patch("/{id}", handlers.commentHandler.updateComment())
				r.Delete("/{id}", handlers.commentHandler.deleteComment())
			})
		})
	})

	// Processed blog images are served straight off the upload directory.
	if uploadDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir)))
		r.Handle("/uploads/*", fileServer)
	}

	responder := NewResponder(log.With().Str("handlerName", "notFound").Logger())
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responder.WriteError(w, errs.NewNotFoundError(fmt.Sprintf("can't find %s on this server", req.URL.Path)))
	})
}
