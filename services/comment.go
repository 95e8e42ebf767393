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

// CommentInput carries the caller-supplied fields for creating a comment.
// UserID and BlogID are fallbacks only: when absent they default to the
// authenticated actor and the route-supplied blog, but explicit values are
// trusted as given. That asymmetry is long-standing observed behavior of
// this API and is kept as-is.
type CommentInput struct {
	Body   string
	UserID *uuid.UUID
	BlogID *uuid.UUID
}

// CommentService orchestrates the comment lifecycle.
type CommentService struct {
	comments database.CommentStore
	perms    *PermissionService
	logger   zerolog.Logger
}

func NewCommentService(comments database.CommentStore, perms *PermissionService) *CommentService {
	return &CommentService{
		comments: comments,
		perms:    perms,
		logger:   log.With().Str("service", "comment").Logger(),
	}
}

// Create persists a new comment under the route-supplied blog.
func (s *CommentService) Create(ctx context.Context, actorID, routeBlogID uuid.UUID, input CommentInput) (*models.Comment, error) {
	userID := actorID
	if input.UserID != nil {
		userID = *input.UserID
	}
	blogID := routeBlogID
	if input.BlogID != nil {
		blogID = *input.BlogID
	}

	comment := &models.Comment{
		Body:   strings.TrimSpace(input.Body),
		UserID: userID,
		BlogID: blogID,
	}

	if err := comment.Validate(); err != nil {
		return nil, errs.NewValidationError("comment", err)
	}

	if err := s.comments.Add(ctx, comment); err != nil {
		return nil, errs.NewDatabaseError("create", "comment", err)
	}

	s.logger.Info().
		Str("commentID", comment.ID.String()).
		Str("blogID", blogID.String()).
		Msg("comment created")

	created, err := s.comments.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find created", "comment", err)
	}
	return created, nil
}

// Update changes the body of a comment after authorizing the actor as its
// creator. The body is the only mutable field.
func (s *CommentService) Update(ctx context.Context, actorID, commentID uuid.UUID, body string) (*models.Comment, error) {
	if _, err := s.perms.AuthorizeCommentMutation(ctx, actorID, commentID, IntentUpdate); err != nil {
		return nil, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errs.NewMissingRequiredFieldError("comment")
	}

	rows, err := s.comments.Update(ctx, commentID, map[string]any{"comment": body})
	if err != nil {
		return nil, errs.NewDatabaseError("update", "comment", err)
	}
	if rows == 0 {
		return nil, errs.NewNotFoundError("no comment found with that ID")
	}

	updated, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find updated", "comment", err)
	}
	return updated, nil
}

// Delete removes a comment after authorizing the actor as its creator or
// as the author of the parent blog.
func (s *CommentService) Delete(ctx context.Context, actorID, commentID uuid.UUID) error {
	if _, err := s.perms.AuthorizeCommentMutation(ctx, actorID, commentID, IntentDelete); err != nil {
		return err
	}

	rows, err := s.comments.Delete(ctx, commentID)
	if err != nil {
		return errs.NewDatabaseError("delete", "comment", err)
	}
	if rows == 0 {
		return errs.NewNotFoundError("no comment found with that ID")
	}

	s.logger.Info().Str("commentID", commentID.String()).Msg("comment deleted")
	return nil
}

// GetAll returns every comment, unscoped. The endpoint has no ownership or
// blog filter.
func (s *CommentService) GetAll(ctx context.Context) ([]*models.Comment, error) {
	comments, err := s.comments.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}
	return comments, nil
}

// GetByID returns one comment with its user and parent blog resolved.
func (s *CommentService) GetByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return nil, errs.NewNotFoundError("no comment found with that ID")
	}
	return comment, nil
}

// GetByBlog returns the comments attached to one blog.
func (s *CommentService) GetByBlog(ctx context.Context, blogID uuid.UUID) ([]*models.Comment, error) {
	comments, err := s.comments.FindByBlog(ctx, blogID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}
	return comments, nil
}
