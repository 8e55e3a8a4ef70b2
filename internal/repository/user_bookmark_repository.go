package repository

import (
	"context"

	"marketplace_api/internal/domain"

	"gorm.io/gorm"
)

// UserBookmarkRepository exposes the CRUD contract for bookmarks.
type UserBookmarkRepository interface {
	List(ctx context.Context) ([]domain.UserBookmark, error)
	Get(ctx context.Context, id uint) (*domain.UserBookmark, error)
	ListByUserID(ctx context.Context, userID uint) ([]domain.UserBookmark, error)
	Create(ctx context.Context, bookmark *domain.UserBookmark) error
	Update(ctx context.Context, bookmark *domain.UserBookmark) (*domain.UserBookmark, error)
	Delete(ctx context.Context, id uint) (*domain.UserBookmark, error)
}

type GormUserBookmarkRepository struct {
	db *gorm.DB
}

func NewGormUserBookmarkRepository(db *gorm.DB) *GormUserBookmarkRepository {
	return &GormUserBookmarkRepository{db: db}
}

func (r *GormUserBookmarkRepository) List(ctx context.Context) ([]domain.UserBookmark, error) {
	var bookmarks []domain.UserBookmark
	if err := r.db.WithContext(ctx).Find(&bookmarks).Error; err != nil {
		return nil, translate(err)
	}
	return bookmarks, nil
}

func (r *GormUserBookmarkRepository) Get(ctx context.Context, id uint) (*domain.UserBookmark, error) {
	var bookmark domain.UserBookmark
	if err := r.db.WithContext(ctx).First(&bookmark, id).Error; err != nil {
		return nil, translate(err)
	}
	return &bookmark, nil
}

func (r *GormUserBookmarkRepository) ListByUserID(ctx context.Context, userID uint) ([]domain.UserBookmark, error) {
	var bookmarks []domain.UserBookmark
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&bookmarks).Error; err != nil {
		return nil, translate(err)
	}
	return bookmarks, nil
}

func (r *GormUserBookmarkRepository) Create(ctx context.Context, bookmark *domain.UserBookmark) error {
	return translate(r.db.WithContext(ctx).Create(bookmark).Error)
}

func (r *GormUserBookmarkRepository) Update(ctx context.Context, bookmark *domain.UserBookmark) (*domain.UserBookmark, error) {
	var existing domain.UserBookmark
	if err := r.db.WithContext(ctx).First(&existing, bookmark.ID).Error; err != nil {
		return nil, translate(err)
	}
	existing.UserID = bookmark.UserID
	existing.ProductID = bookmark.ProductID
	existing.IsFavorite = bookmark.IsFavorite
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

func (r *GormUserBookmarkRepository) Delete(ctx context.Context, id uint) (*domain.UserBookmark, error) {
	var bookmark domain.UserBookmark
	if err := r.db.WithContext(ctx).First(&bookmark, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Delete(&bookmark).Error; err != nil {
		return nil, translate(err)
	}
	return &bookmark, nil
}
