package domain

import "time"

// Company Model
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`             // Primary key
	Name      string    `gorm:"uniqueIndex;not null" json:"name"` // Unique company name
	Address   string    `json:"address"`                          // Company address
	Phone     string    `json:"phone"`                            // Company phone number
	UserID    uint      `gorm:"index" json:"user_id"`             // Foreign key to the owning User
	CreatedAt time.Time `json:"created_at"`                       // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                       // Restamped on every update

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to users
}
