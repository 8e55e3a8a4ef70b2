package repository

import (
	"context"

	"marketplace_api/internal/domain"

	"gorm.io/gorm"
)

// CompanyRepository exposes the CRUD contract for companies.
type CompanyRepository interface {
	List(ctx context.Context) ([]domain.Company, error)
	Get(ctx context.Context, id uint) (*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id uint) (*domain.Company, error)
}

type GormCompanyRepository struct {
	db *gorm.DB
}

func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

func (r *GormCompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	if err := r.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, translate(err)
	}
	return companies, nil
}

func (r *GormCompanyRepository) Get(ctx context.Context, id uint) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (r *GormCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	return translate(r.db.WithContext(ctx).Create(company).Error)
}

func (r *GormCompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	var existing domain.Company
	if err := r.db.WithContext(ctx).First(&existing, company.ID).Error; err != nil {
		return nil, translate(err)
	}
	existing.Name = company.Name
	existing.Address = company.Address
	existing.Phone = company.Phone
	existing.UserID = company.UserID
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

func (r *GormCompanyRepository) Delete(ctx context.Context, id uint) (*domain.Company, error) {
	var company domain.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Delete(&company).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}
