package repository

import (
	"context"

	"marketplace_api/internal/domain"

	"gorm.io/gorm"
)

// BankAccountRepository exposes the CRUD contract for bank accounts.
type BankAccountRepository interface {
	List(ctx context.Context) ([]domain.BankAccount, error)
	Get(ctx context.Context, id uint) (*domain.BankAccount, error)
	FindByUserID(ctx context.Context, userID uint) (*domain.BankAccount, error)
	Create(ctx context.Context, account *domain.BankAccount) error
	Update(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error)
	Delete(ctx context.Context, id uint) (*domain.BankAccount, error)
}

type GormBankAccountRepository struct {
	db *gorm.DB
}

func NewGormBankAccountRepository(db *gorm.DB) *GormBankAccountRepository {
	return &GormBankAccountRepository{db: db}
}

func (r *GormBankAccountRepository) List(ctx context.Context) ([]domain.BankAccount, error) {
	var accounts []domain.BankAccount
	if err := r.db.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, translate(err)
	}
	return accounts, nil
}

func (r *GormBankAccountRepository) Get(ctx context.Context, id uint) (*domain.BankAccount, error) {
	var account domain.BankAccount
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *GormBankAccountRepository) FindByUserID(ctx context.Context, userID uint) (*domain.BankAccount, error) {
	var account domain.BankAccount
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (r *GormBankAccountRepository) Create(ctx context.Context, account *domain.BankAccount) error {
	return translate(r.db.WithContext(ctx).Create(account).Error)
}

func (r *GormBankAccountRepository) Update(ctx context.Context, account *domain.BankAccount) (*domain.BankAccount, error) {
	var existing domain.BankAccount
	if err := r.db.WithContext(ctx).First(&existing, account.ID).Error; err != nil {
		return nil, translate(err)
	}
	existing.BankName = account.BankName
	existing.AccountNo = account.AccountNo
	existing.Phone = account.Phone
	existing.Address = account.Address
	existing.City = account.City
	existing.Province = account.Province
	existing.CardNo = account.CardNo
	existing.UserID = account.UserID
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

func (r *GormBankAccountRepository) Delete(ctx context.Context, id uint) (*domain.BankAccount, error) {
	var account domain.BankAccount
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Delete(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}
