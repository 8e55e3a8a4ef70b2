package repository

import (
	"context"
	"time"

	"marketplace_api/internal/domain"

	"gorm.io/gorm"
)

// InvoiceRepository exposes the CRUD contract for invoices.
type InvoiceRepository interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	Get(ctx context.Context, id uint) (*domain.Invoice, error)
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	Delete(ctx context.Context, id uint) (*domain.Invoice, error)
}

type GormInvoiceRepository struct {
	db *gorm.DB
}

func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func (r *GormInvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := r.db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, translate(err)
	}
	return invoices, nil
}

func (r *GormInvoiceRepository) Get(ctx context.Context, id uint) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, id).Error; err != nil {
		return nil, translate(err)
	}
	return &invoice, nil
}

func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	stampDelivered(invoice)
	return translate(r.db.WithContext(ctx).Create(invoice).Error)
}

func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	var existing domain.Invoice
	if err := r.db.WithContext(ctx).First(&existing, invoice.ID).Error; err != nil {
		return nil, translate(err)
	}
	existing.ProductID = invoice.ProductID
	existing.UserID = invoice.UserID
	existing.CompanyID = invoice.CompanyID
	existing.Status = invoice.Status
	stampDelivered(&existing)
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, translate(err)
	}
	return &existing, nil
}

func (r *GormInvoiceRepository) Delete(ctx context.Context, id uint) (*domain.Invoice, error) {
	var invoice domain.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, id).Error; err != nil {
		return nil, translate(err)
	}
	if err := r.db.WithContext(ctx).Delete(&invoice).Error; err != nil {
		return nil, translate(err)
	}
	return &invoice, nil
}

// stampDelivered records the first time an invoice reaches delivered status.
func stampDelivered(invoice *domain.Invoice) {
	if invoice.Status == domain.InvoiceStatusDelivered && invoice.DeliveredAt == nil {
		now := time.Now()
		invoice.DeliveredAt = &now
	}
}
