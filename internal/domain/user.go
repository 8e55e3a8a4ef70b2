package domain

import "time"

// User Model
//
// A user may be an individual or a company-affiliated account; the optional
// references below are stamped when the related records are created.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`                 // Primary key
	Username      string     `gorm:"uniqueIndex;not null" json:"username"` // Unique login name
	Password      string     `gorm:"not null" json:"-"`                    // Bcrypt hash, never serialized
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`    // Unique email
	Phone         string     `gorm:"uniqueIndex" json:"phone"`             // Unique phone number
	IdentityCode  string     `gorm:"uniqueIndex" json:"identity_code"`     // Unique national identity code
	Address       string     `gorm:"uniqueIndex" json:"address"`           // Unique address
	LastLogin     *time.Time `json:"last_login"`                           // Stamped on successful token issuance
	BookmarkID    *uint      `json:"bookmark_id"`                          // Optional link to a bookmark collection
	BankAccountID *uint      `json:"bank_account_id"`                      // Optional link to the user's bank account
	CompanyID     *uint      `json:"company_id"`                           // Optional link to an owning company
	CreatedAt     time.Time  `json:"created_at"`                           // Timestamp of creation
	UpdatedAt     time.Time  `json:"updated_at"`                           // Restamped on every update
}
