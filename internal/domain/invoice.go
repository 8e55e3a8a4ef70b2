package domain

import "time"

// Invoice status values. Any authorized caller may set any of them; there is
// no transition state machine.
const (
	InvoiceStatusApproved  = "approved"
	InvoiceStatusShipped   = "shipped"
	InvoiceStatusDelivered = "delivered"
)

// Invoice Model
type Invoice struct {
	ID          uint       `gorm:"primaryKey" json:"id"`                             // Primary key
	ProductID   uint       `gorm:"index" json:"product_id"`                          // Invoiced product
	UserID      uint       `gorm:"index" json:"user_id"`                             // Buying user
	CompanyID   uint       `gorm:"index" json:"company_id"`                          // Selling company
	Status      string     `gorm:"not null;default:approved" json:"status"`          // approved, shipped or delivered
	DeliveredAt *time.Time `json:"delivered_at"`                                     // Stamped when status first becomes delivered
	CreatedAt   time.Time  `json:"created_at"`                                       // Timestamp of creation
	UpdatedAt   time.Time  `json:"updated_at"`                                       // Restamped on every update

	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to products
	User    *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to users
	Company *Company `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to companies
}
