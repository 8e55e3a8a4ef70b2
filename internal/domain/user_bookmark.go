package domain

import "time"

// UserBookmark Model
//
// The composite unique index keeps a (user, product) pair from being
// bookmarked twice.
type UserBookmark struct {
	ID         uint      `gorm:"primaryKey" json:"id"`                        // Primary key
	UserID     uint      `gorm:"uniqueIndex:idx_user_product" json:"user_id"` // Bookmarking user
	ProductID  uint      `gorm:"uniqueIndex:idx_user_product" json:"product_id"` // Bookmarked product
	IsFavorite bool      `json:"is_favorite"`                                 // Favorite flag
	CreatedAt  time.Time `json:"created_at"`                                  // Timestamp of creation

	User    *User    `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to users
	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"-"` // FK constraint to products
}
