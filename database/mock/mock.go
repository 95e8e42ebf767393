// Package mock provides in-memory implementations of the database store
// interfaces for use in tests. Lookup methods mirror the GORM repos:
// (nil, nil) when the record is absent, and resolved User/Blog references
// on comment loads.
package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/blognest/backend/models"
	"github.com/google/uuid"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]models.User)}
}

func (s *UserStore) Add(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Photo == "" {
		user.Photo = "default.jpg"
	}
	user.Email = strings.ToLower(user.Email)
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

type BlogStore struct {
	mu    sync.RWMutex
	blogs map[uuid.UUID]models.Blog

	users    *UserStore
	comments *CommentStore
}

// NewBlogStore creates a blog store. The user and comment stores are used
// to resolve the Author and Comments collections on reads, the way the
// GORM repo preloads them; either may be nil when a test does not need
// the resolution.
func NewBlogStore(users *UserStore, comments *CommentStore) *BlogStore {
	return &BlogStore{
		blogs:    make(map[uuid.UUID]models.Blog),
		users:    users,
		comments: comments,
	}
}

func (s *BlogStore) Add(ctx context.Context, blog *models.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if blog.ID == uuid.Nil {
		blog.ID = uuid.New()
	}
	s.blogs[blog.ID] = *blog
	return nil
}

func (s *BlogStore) resolve(ctx context.Context, blog models.Blog) *models.Blog {
	if s.users != nil {
		author, _ := s.users.FindByID(ctx, blog.AuthorID)
		blog.Author = author
	}
	if s.comments != nil {
		comments, _ := s.comments.FindByBlog(ctx, blog.ID)
		blog.Comments = nil
		for _, c := range comments {
			blog.Comments = append(blog.Comments, *c)
		}
	}
	return &blog
}

func (s *BlogStore) FindAll(ctx context.Context) ([]*models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blogs []*models.Blog
	for _, blog := range s.blogs {
		blogs = append(blogs, s.resolve(ctx, blog))
	}
	return blogs, nil
}

func (s *BlogStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blog, ok := s.blogs[id]
	if !ok {
		return nil, nil
	}
	return s.resolve(ctx, blog), nil
}

func (s *BlogStore) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var blogs []*models.Blog
	for _, blog := range s.blogs {
		if blog.AuthorID == authorID {
			b := blog
			if s.users != nil {
				b.Author, _ = s.users.FindByID(ctx, b.AuthorID)
			}
			blogs = append(blogs, &b)
		}
	}
	return blogs, nil
}

func (s *BlogStore) Update(ctx context.Context, id uuid.UUID, values map[string]any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blog, ok := s.blogs[id]
	if !ok {
		return 0, nil
	}
	if v, ok := values["title"].(string); ok {
		blog.Title = v
	}
	if v, ok := values["description"].(string); ok {
		blog.Description = v
	}
	if v, ok := values["image"].(string); ok {
		blog.Image = v
	}
	s.blogs[id] = blog
	return 1, nil
}

func (s *BlogStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogs[id]; !ok {
		return 0, nil
	}
	delete(s.blogs, id)
	return 1, nil
}

type CommentStore struct {
	mu       sync.RWMutex
	comments map[uuid.UUID]models.Comment

	users *UserStore
	blogs *BlogStore
}

// NewCommentStore creates a comment store. The user and blog stores are
// used to resolve the User and Blog references on reads; either may be nil.
func NewCommentStore(users *UserStore, blogs *BlogStore) *CommentStore {
	return &CommentStore{
		comments: make(map[uuid.UUID]models.Comment),
		users:    users,
		blogs:    blogs,
	}
}

// AttachBlogs wires the blog store after construction, breaking the
// construction cycle between blog and comment stores.
func (s *CommentStore) AttachBlogs(blogs *BlogStore) {
	s.blogs = blogs
}

func (s *CommentStore) Add(ctx context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	s.comments[comment.ID] = *comment
	return nil
}

func (s *CommentStore) resolve(ctx context.Context, comment models.Comment) *models.Comment {
	if s.users != nil {
		comment.User, _ = s.users.FindByID(ctx, comment.UserID)
	}
	if s.blogs != nil {
		s.blogs.mu.RLock()
		if blog, ok := s.blogs.blogs[comment.BlogID]; ok {
			comment.Blog = &blog
		}
		s.blogs.mu.RUnlock()
	}
	return &comment
}

func (s *CommentStore) FindAll(ctx context.Context) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var comments []*models.Comment
	for _, comment := range s.comments {
		comments = append(comments, s.resolve(ctx, comment))
	}
	return comments, nil
}

func (s *CommentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, nil
	}
	return s.resolve(ctx, comment), nil
}

func (s *CommentStore) FindByBlog(ctx context.Context, blogID uuid.UUID) ([]*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var comments []*models.Comment
	for _, comment := range s.comments {
		if comment.BlogID == blogID {
			c := comment
			if s.users != nil {
				c.User, _ = s.users.FindByID(ctx, c.UserID)
			}
			comments = append(comments, &c)
		}
	}
	return comments, nil
}

func (s *CommentStore) Update(ctx context.Context, id uuid.UUID, values map[string]any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return 0, nil
	}
	if v, ok := values["comment"].(string); ok {
		comment.Body = v
	}
	s.comments[id] = comment
	return 1, nil
}

func (s *CommentStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return 0, nil
	}
	delete(s.comments, id)
	return 1, nil
}

func (s *CommentStore) DeleteByBlogID(ctx context.Context, blogID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed int64
	for id, comment := range s.comments {
		if comment.BlogID == blogID {
			delete(s.comments, id)
			removed++
		}
	}
	return removed, nil
}
