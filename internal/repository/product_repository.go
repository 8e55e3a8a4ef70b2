package repository

import (
	"context"

	"marketplace_api/internal/domain"

	"gorm.io/gorm"
)

// ProductRepository exposes the CRUD contract for products.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id uint) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id uint) (*domain.Product, error)
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (r *GormProductRepository) Get(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *domain.Product) error {
	return translate(r.db.WithContext(ctx).Create(product).Error)
}

func (r *GormProductRepository) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var existing domain.Product
	if err := r.db.WithContext(ctx).First(&existing, product.ID).Error; err != nil {
		return nil, translate(err)
	}
	existing.Name = product.Name
	existing.Price = product.Price
	existing.ProductTagID = product.ProductTagID
	existing.CompanyID = product.CompanyID
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Delete(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}
