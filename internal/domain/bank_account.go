package domain

import "time"

// BankAccount Model
//
// The uniqueIndex on UserID enforces at most one account per user.
type BankAccount struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                   // Primary key
	BankName  string    `gorm:"not null" json:"bank_name"`              // Name of the bank
	AccountNo string    `gorm:"uniqueIndex;not null" json:"account_no"` // Unique account number
	Phone     string    `json:"phone"`                                  // Branch phone number
	Address   string    `json:"address"`                                // Branch address
	City      string    `json:"city"`                                   // Branch city
	Province  string    `json:"province"`                               // Branch province
	CardNo    string    `json:"card_no"`                                // Card number
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`             // Owning user, one account each
	CreatedAt time.Time `json:"created_at"`                             // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                             // Restamped on every update

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to users
}
