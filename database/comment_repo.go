package database

import (
	"context"
	"errors"

	"github.com/blognest/backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindAll returns every comment with the commenting user and parent blog resolved
func (r *CommentRepo) FindAll(ctx context.Context) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Blog").
		Find(&comments).Error
	return comments, err
}

// FindByID returns a comment by id with user and parent blog resolved,
// or nil when no such comment exists
func (r *CommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Blog").
		First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByBlog returns the comments attached to the given blog
func (r *CommentRepo) FindByBlog(ctx context.Context, blogID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Blog").
		Where("blog_id = ?", blogID).
		Find(&comments).Error
	return comments, err
}

// Update applies values to the comment row with the given id and reports
// how many rows were touched
func (r *CommentRepo) Update(ctx context.Context, id uuid.UUID, values map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Updates(values)
	return res.RowsAffected, res.Error
}

// Delete removes the comment row by id
func (r *CommentRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// DeleteByBlogID removes every comment referencing the given blog.
// This is the second half of the blog-delete cascade; it runs after the
// blog row is gone and is not atomic with it.
func (r *CommentRepo) DeleteByBlogID(ctx context.Context, blogID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Comment{}, "blog_id = ?", blogID)
	return res.RowsAffected, res.Error
}
