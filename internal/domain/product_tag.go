package domain

import "time"

// ProductTag Model
type ProductTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`             // Primary key
	Name      string    `gorm:"uniqueIndex;not null" json:"name"` // Unique tag name
	CreatedAt time.Time `json:"created_at"`                       // Timestamp of creation
	UpdatedAt time.Time `json:"updated_at"`                       // Restamped on every update
}
