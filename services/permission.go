package services

import (
	"context"

	"github.com/blognest/backend/database"
	"github.com/blognest/backend/errs"
	"github.com/blognest/backend/models"
	"github.com/google/uuid"
)

// MutationIntent distinguishes the requested mutation when the
// authorization rule depends on it. Blog mutations are symmetric; comment
// mutations are not.
type MutationIntent int

const (
	IntentUpdate MutationIntent = iota
	IntentDelete
)

// PermissionService decides whether an actor may mutate a resource.
// Ownership is a direct identity comparison: no role hierarchy, no admin
// override. All checks are read-only.
type PermissionService struct {
	blogs    database.BlogStore
	comments database.CommentStore
}

func NewPermissionService(blogs database.BlogStore, comments database.CommentStore) *PermissionService {
	return &PermissionService{
		blogs:    blogs,
		comments: comments,
	}
}

// AuthorizeBlogMutation loads the target blog and authorizes the actor if
// and only if they are its author. Update and delete share this rule.
// Returns the loaded blog as the handle to mutate.
func (s *PermissionService) AuthorizeBlogMutation(ctx context.Context, actorID, blogID uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	if blog == nil {
		return nil, errs.NewNotFoundError("no blog found with that ID")
	}
	if actorID != blog.AuthorID {
		return nil, errs.NewPermissionDenied()
	}
	return blog, nil
}

// AuthorizeCommentMutation loads the target comment (with its parent blog
// resolved) and applies the intent-specific rule:
//
//	Update: only the comment's creator.
//	Delete: the comment's creator, or the author of the parent blog
//	        (the blog owner may moderate comments on their own blog).
//
// Returns the loaded comment as the handle to mutate.
func (s *PermissionService) AuthorizeCommentMutation(ctx context.Context, actorID, commentID uuid.UUID, intent MutationIntent) (*models.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	if comment == nil {
		return nil, errs.NewNotFoundError("no comment found with that ID")
	}

	switch intent {
	case IntentUpdate:
		if actorID == comment.UserID {
			return comment, nil
		}
	case IntentDelete:
		if actorID == comment.UserID {
			return comment, nil
		}
		if comment.Blog != nil && actorID == comment.Blog.AuthorID {
			return comment, nil
		}
	}
	return nil, errs.NewPermissionDenied()
}
