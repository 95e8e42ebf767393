package database

import (
	"context"
	"errors"

	"github.com/blognest/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// Add inserts a new blog into the database
func (r *BlogRepo) Add(ctx context.Context, blog *models.Blog) error {
	return r.db.WithContext(ctx).Create(blog).Error
}

// FindAll returns all blogs with their author and comments resolved
func (r *BlogRepo) FindAll(ctx context.Context) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments").
		Preload("Comments.User").
		Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog by id with author and comments resolved,
// or nil when no such blog exists
func (r *BlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Comments").
		Preload("Comments.User").
		First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByAuthor returns the blogs owned by the given author
func (r *BlogRepo) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Find(&blogs).Error
	return blogs, err
}

// Update applies values to the blog row with the given id and reports
// how many rows were touched
func (r *BlogRepo) Update(ctx context.Context, id uuid.UUID, values map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Blog{}).
		Where("id = ?", id).
		Updates(values)
	return res.RowsAffected, res.Error
}

// Delete removes the blog row by id. Comments referencing it are left for
// the caller to cascade.
func (r *BlogRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
