package db

import (
	"marketplace_api/internal/domain"

	"github.com/sirupsen/logrus"

	"gorm.io/gorm"
)

// Migrate creates tables, foreign keys, unique indexes and columns for every
// entity. Uniqueness rules live here as storage constraints so concurrent
// creates cannot race past a service-level pre-check.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&domain.User{},
		&domain.ProductTag{},
		&domain.Company{},
		&domain.Product{},
		&domain.BankAccount{},
		&domain.UserBookmark{},
		&domain.Invoice{},
	)
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
