package services

import (
	"context"
	"strings"

	"github.com/blognest/backend/database"
	"github.com/blognest/backend/errs"
	"github.com/blognest/backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BlogInput carries the caller-supplied fields for creating a blog.
// The author is never taken from the input.
type BlogInput struct {
	Title       string
	Description string
	Image       string
}

// BlogUpdate carries the mutable fields for updating a blog. Nil means
// "leave unchanged". The author and id are immutable.
type BlogUpdate struct {
	Title       *string
	Description *string
	Image       *string
}

// BlogService orchestrates the blog lifecycle: validation, permission
// evaluation, persistence, and the explicit delete cascade.
type BlogService struct {
	blogs    database.BlogStore
	comments database.CommentStore
	perms    *PermissionService
	logger   zerolog.Logger
}

func NewBlogService(blogs database.BlogStore, comments database.CommentStore, perms *PermissionService) *BlogService {
	return &BlogService{
		blogs:    blogs,
		comments: comments,
		perms:    perms,
		logger:   log.With().Str("service", "blog").Logger(),
	}
}

// Create persists a new blog owned by the actor. The author is forced to
// actorID regardless of anything in the input, so a caller cannot create a
// blog on someone else's behalf.
func (s *BlogService) Create(ctx context.Context, actorID uuid.UUID, input BlogInput) (*models.Blog, error) {
	blog := &models.Blog{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Image:       input.Image,
		AuthorID:    actorID,
	}

	if err := blog.Validate(); err != nil {
		return nil, errs.NewValidationError("blog", err)
	}

	if err := s.blogs.Add(ctx, blog); err != nil {
		return nil, errs.NewDatabaseError("create", "blog", err)
	}

	s.logger.Info().
		Str("blogID", blog.ID.String()).
		Str("authorID", actorID.String()).
		Msg("blog created")

	// Reload to resolve the author for the response
	created, err := s.blogs.FindByID(ctx, blog.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find created", "blog", err)
	}
	return created, nil
}

// Update mutates an existing blog after authorizing the actor as its
// author. Only title, description, and image are mutable. A blog deleted
// concurrently between authorization and mutation surfaces as NotFound.
func (s *BlogService) Update(ctx context.Context, actorID, blogID uuid.UUID, input BlogUpdate) (*models.Blog, error) {
	if _, err := s.perms.AuthorizeBlogMutation(ctx, actorID, blogID); err != nil {
		return nil, err
	}

	values := make(map[string]any)
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, errs.NewMissingRequiredFieldError("title")
		}
		values["title"] = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, errs.NewMissingRequiredFieldError("description")
		}
		values["description"] = description
	}
	if input.Image != nil {
		values["image"] = *input.Image
	}

	if len(values) > 0 {
		rows, err := s.blogs.Update(ctx, blogID, values)
		if err != nil {
			return nil, errs.NewDatabaseError("update", "blog", err)
		}
		if rows == 0 {
			return nil, errs.NewNotFoundError("no blog found with that ID")
		}
	}

	updated, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, errs.NewDatabaseError("find updated", "blog", err)
	}
	if updated == nil {
		return nil, errs.NewNotFoundError("no blog found with that ID")
	}
	return updated, nil
}

// Delete removes a blog after authorizing the actor as its author, then
// cascades to every comment referencing it. The two steps are not atomic:
// a crash after the first leaves orphaned comments, which no read path
// surfaces. The cascade is explicit; the storage layer does nothing on its
// own.
func (s *BlogService) Delete(ctx context.Context, actorID, blogID uuid.UUID) error {
	if _, err := s.perms.AuthorizeBlogMutation(ctx, actorID, blogID); err != nil {
		return err
	}

	rows, err := s.blogs.Delete(ctx, blogID)
	if err != nil {
		return errs.NewDatabaseError("delete", "blog", err)
	}
	if rows == 0 {
		return errs.NewNotFoundError("no blog found with that ID")
	}

	removed, err := s.comments.DeleteByBlogID(ctx, blogID)
	if err != nil {
		return errs.NewDatabaseError("cascade delete comments for", "blog", err)
	}

	s.logger.Info().
		Str("blogID", blogID.String()).
		Int64("commentsRemoved", removed).
		Msg("blog deleted")
	return nil
}

// GetAll returns every blog with author and comments resolved.
func (s *BlogService) GetAll(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blogs", err)
	}
	return blogs, nil
}

// GetByID returns one blog with author and comments resolved.
func (s *BlogService) GetByID(ctx context.Context, blogID uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	if blog == nil {
		return nil, errs.NewNotFoundError("no blog found with that ID")
	}
	return blog, nil
}

// GetMine returns the blogs owned by the actor.
func (s *BlogService) GetMine(ctx context.Context, actorID uuid.UUID) ([]*models.Blog, error) {
	blogs, err := s.blogs.FindByAuthor(ctx, actorID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blogs", err)
	}
	return blogs, nil
}
