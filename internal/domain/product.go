package domain

import "time"

// Product Model
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`        // Primary key
	Name         string    `gorm:"not null" json:"name"`        // Product name
	Price        float64   `gorm:"not null" json:"price"`       // Unit price
	ProductTagID uint      `gorm:"index" json:"product_tag_id"` // Foreign key to ProductTag
	CompanyID    uint      `gorm:"index" json:"company_id"`     // Foreign key to the selling Company
	CreatedAt    time.Time `json:"created_at"`                  // Timestamp of creation
	UpdatedAt    time.Time `json:"updated_at"`                  // Restamped on every update

	ProductTag *ProductTag `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to product_tags
	Company    *Company    `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to companies
}
