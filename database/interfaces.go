package database

import (
	"context"

	"github.com/blognest/backend/models"
	"github.com/google/uuid"
)

// Store interfaces decouple the services and handlers from GORM so they can
// be exercised against in-memory fakes in tests.
//
// Lookup methods return (nil, nil) when the record does not exist; callers
// decide whether absence is an error.

type UserStore interface {
	Add(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type BlogStore interface {
	Add(ctx context.Context, blog *models.Blog) error
	FindAll(ctx context.Context) ([]*models.Blog, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Blog, error)
	// Update applies the given column values to the blog with the given id
	// and reports how many rows were touched. Zero rows means the blog
	// vanished between authorization and mutation.
	Update(ctx context.Context, id uuid.UUID, values map[string]any) (int64, error)
	// Delete removes the blog row only. Cascading to its comments is the
	// caller's responsibility.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type CommentStore interface {
	Add(ctx context.Context, comment *models.Comment) error
	FindAll(ctx context.Context) ([]*models.Comment, error)
	// FindByID resolves the commenting user and the parent blog alongside
	// the comment itself, so the permission evaluator can reach the parent
	// blog's author id in one load.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	FindByBlog(ctx context.Context, blogID uuid.UUID) ([]*models.Comment, error)
	Update(ctx context.Context, id uuid.UUID, values map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	// DeleteByBlogID removes every comment referencing the given blog.
	// Used by the blog-delete cascade.
	DeleteByBlogID(ctx context.Context, blogID uuid.UUID) (int64, error)
}
