package repository

import (
	"context"

	"marketplace_api/internal/domain"

	"gorm.io/gorm"
)

// ProductTagRepository exposes the CRUD contract for product tags.
type ProductTagRepository interface {
	List(ctx context.Context) ([]domain.ProductTag, error)
	Get(ctx context.Context, id uint) (*domain.ProductTag, error)
	Create(ctx context.Context, tag *domain.ProductTag) error
	Update(ctx context.Context, tag *domain.ProductTag) (*domain.ProductTag, error)
	Delete(ctx context.Context, id uint) (*domain.ProductTag, error)
}

type GormProductTagRepository struct {
	db *gorm.DB
}

func NewGormProductTagRepository(db *gorm.DB) *GormProductTagRepository {
	return &GormProductTagRepository{db: db}
}

func (r *GormProductTagRepository) List(ctx context.Context) ([]domain.ProductTag, error) {
	var tags []domain.ProductTag
	if err := r.db.WithContext(ctx).Find(&tags).Error; err != nil {
		return nil, translate(err)
	}
	return tags, nil
}

func (r *GormProductTagRepository) Get(ctx context.Context, id uint) (*domain.ProductTag, error) {
	var tag domain.ProductTag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}

func (r *GormProductTagRepository) Create(ctx context.Context, tag *domain.ProductTag) error {
	return translate(r.db.WithContext(ctx).Create(tag).Error)
}

func (r *GormProductTagRepository) Update(ctx context.Context, tag *domain.ProductTag) (*domain.ProductTag, error) {
	var existing domain.ProductTag
	if err := r.db.WithContext(ctx).First(&existing, tag.ID).Error; err != nil {
		return nil, translate(err)
	}
	existing.Name = tag.Name
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

func (r *GormProductTagRepository) Delete(ctx context.Context, id uint) (*domain.ProductTag, error) {
	var tag domain.ProductTag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Delete(&tag).Error; err != nil {
		return nil, translate(err)
	}
	return &tag, nil
}
