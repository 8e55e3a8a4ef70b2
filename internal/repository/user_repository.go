package repository

import (
	"context"
	"time"

	"marketplace_api/internal/domain"

	"gorm.io/gorm"
)

// UserRepository exposes the CRUD contract for users plus the lookups the
// authentication flow needs.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id uint) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uint) error
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *GormUserRepository) Get(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormUserRepository) Create(ctx context.Context, user *domain.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// Update replaces every mutable field of the existing row; ID and CreatedAt
// are preserved and UpdatedAt is restamped by GORM on save.
func (r *GormUserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	var existing domain.User
	if err := r.db.WithContext(ctx).First(&existing, user.ID).Error; err != nil {
		return nil, translate(err)
	}
	existing.Username = user.Username
	existing.Password = user.Password
	existing.Email = user.Email
	existing.Phone = user.Phone
	existing.IdentityCode = user.IdentityCode
	existing.Address = user.Address
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

// Delete removes the row permanently and returns its prior state.
func (r *GormUserRepository) Delete(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Delete(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// TouchLastLogin stamps last_login without touching UpdatedAt.
func (r *GormUserRepository) TouchLastLogin(ctx context.Context, id uint) error {
	now := time.Now()
	return translate(r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).
		UpdateColumn("last_login", &now).Error)
}
