package api

import (
	"time"

	"github.com/blognest/backend/models"
	"github.com/google/uuid"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	userHandler    userHandler
	blogHandler    blogHandler
	commentHandler commentHandler
}

// blogView is the serialized shape of a blog: the author denormalized to
// their public record and the derived comments collection resolved.
type blogView struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	CreatedAt   time.Time     `json:"createdAt"`
	AuthorID    uuid.UUID     `json:"authorId"`
	Author      *models.User  `json:"author,omitempty"`
	Comments    []commentView `json:"comments"`
}

// commentView is the serialized shape of a comment: the commenting user
// reduced to public fields (no email, no password) and the parent blog
// reduced to its id and author id.
type commentView struct {
	ID        uuid.UUID          `json:"id"`
	Comment   string             `json:"comment"`
	CreatedAt time.Time          `json:"createdAt"`
	UserID    uuid.UUID          `json:"userId"`
	BlogID    uuid.UUID          `json:"blogId"`
	User      *models.PublicUser `json:"user,omitempty"`
	Blog      *commentBlogRef    `json:"blog,omitempty"`
}

type commentBlogRef struct {
	ID       uuid.UUID `json:"id"`
	AuthorID uuid.UUID `json:"authorId"`
}

func newCommentView(c *models.Comment) commentView {
	view := commentView{
		ID:        c.ID,
		Comment:   c.Body,
		CreatedAt: c.CreatedAt,
		UserID:    c.UserID,
		BlogID:    c.BlogID,
	}
	if c.User != nil {
		public := c.User.Public()
		view.User = &public
	}
	if c.Blog != nil {
		view.Blog = &commentBlogRef{ID: c.Blog.ID, AuthorID: c.Blog.AuthorID}
	}
	return view
}

func newCommentViews(comments []*models.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, newCommentView(c))
	}
	return views
}

func newBlogView(b *models.Blog) blogView {
	view := blogView{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Image:       b.Image,
		CreatedAt:   b.CreatedAt,
		AuthorID:    b.AuthorID,
		Author:      b.Author,
		Comments:    make([]commentView, 0, len(b.Comments)),
	}
	for i := range b.Comments {
		view.Comments = append(view.Comments, newCommentView(&b.Comments[i]))
	}
	return view
}

func newBlogViews(blogs []*models.Blog) []blogView {
	views := make([]blogView, 0, len(blogs))
	for _, b := range blogs {
		views = append(views, newBlogView(b))
	}
	return views
}
