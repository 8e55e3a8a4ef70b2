package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"marketplace_api/internal/db"
	"marketplace_api/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite database with foreign keys
// enforced and the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.Migrate(conn)
	return conn
}

// seedUser inserts a user with unique-enough fields derived from the suffix.
func seedUser(t *testing.T, conn *gorm.DB, suffix string) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     "user_" + suffix,
		Password:     "hashed",
		Email:        suffix + "@example.com",
		Phone:        "phone_" + suffix,
		IdentityCode: "id_" + suffix,
		Address:      "addr_" + suffix,
	}
	require.NoError(t, NewGormUserRepository(conn).Create(context.Background(), user))
	return user
}

// seedProduct inserts a user, company, tag, and product so foreign keys hold.
func seedProduct(t *testing.T, conn *gorm.DB, suffix string) *domain.Product {
	t.Helper()
	ctx := context.Background()
	owner := seedUser(t, conn, "owner_"+suffix)
	company := &domain.Company{Name: "co_" + suffix, Address: "a", Phone: "p", UserID: owner.ID}
	require.NoError(t, NewGormCompanyRepository(conn).Create(ctx, company))
	tag := &domain.ProductTag{Name: "tag_" + suffix}
	require.NoError(t, NewGormProductTagRepository(conn).Create(ctx, tag))
	product := &domain.Product{Name: "prod_" + suffix, Price: 9.99, ProductTagID: tag.ID, CompanyID: company.ID}
	require.NoError(t, NewGormProductRepository(conn).Create(ctx, product))
	return product
}

func TestUserRepository_CreateGetRoundTrip(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormUserRepository(conn)
	ctx := context.Background()

	created := seedUser(t, conn, "alice")
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Email, got.Email)
	require.Equal(t, created.Username, got.Username)
	require.Equal(t, created.IdentityCode, got.IdentityCode)
}

func TestUserRepository_DuplicateEmailConflict(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormUserRepository(conn)
	ctx := context.Background()

	seedUser(t, conn, "alice")
	dup := &domain.User{
		Username:     "someone_else",
		Password:     "hashed",
		Email:        "alice@example.com", // same email
		Phone:        "other_phone",
		IdentityCode: "other_id",
		Address:      "other_addr",
	}
	err := repo.Create(ctx, dup)
	require.ErrorIs(t, err, ErrConflict)
}

func TestUserRepository_UpdatePreservesIDAndCreatedAt(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormUserRepository(conn)
	ctx := context.Background()

	created := seedUser(t, conn, "alice")

	updated, err := repo.Update(ctx, &domain.User{
		ID:           created.ID,
		Username:     "alice2",
		Password:     "rehashed",
		Email:        "alice2@example.com",
		Phone:        "new_phone",
		IdentityCode: "new_id",
		Address:      "new_addr",
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	require.Equal(t, "alice2@example.com", updated.Email)
}

func TestUserRepository_UpdateMissingUser(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormUserRepository(conn)

	_, err := repo.Update(context.Background(), &domain.User{ID: 999, Username: "ghost"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_DeleteThenGet(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormUserRepository(conn)
	ctx := context.Background()

	created := seedUser(t, conn, "alice")

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, deleted.Email)

	_, err = repo.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormUserRepository(conn)
	ctx := context.Background()

	created := seedUser(t, conn, "alice")
	require.Nil(t, created.LastLogin)

	require.NoError(t, repo.TouchLastLogin(ctx, created.ID))

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
}

func TestProductTagRepository_DuplicateNameConflict(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormProductTagRepository(conn)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.ProductTag{Name: "electronics"}))
	err := repo.Create(ctx, &domain.ProductTag{Name: "electronics"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestProductRepository_MissingCompanyIsStorageError(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()

	tag := &domain.ProductTag{Name: "electronics"}
	require.NoError(t, NewGormProductTagRepository(conn).Create(ctx, tag))

	// Referential integrity violation: neither not-found nor conflict.
	err := NewGormProductRepository(conn).Create(ctx, &domain.Product{
		Name:         "widget",
		Price:        1.50,
		ProductTagID: tag.ID,
		CompanyID:    12345,
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrConflict)
}

func TestCompanyRepository_DuplicateNameConflict(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormCompanyRepository(conn)
	ctx := context.Background()

	owner := seedUser(t, conn, "owner")
	require.NoError(t, repo.Create(ctx, &domain.Company{Name: "acme", Address: "a", Phone: "p", UserID: owner.ID}))
	err := repo.Create(ctx, &domain.Company{Name: "acme", Address: "b", Phone: "q", UserID: owner.ID})
	require.ErrorIs(t, err, ErrConflict)
}

func TestBankAccountRepository_Uniqueness(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormBankAccountRepository(conn)
	ctx := context.Background()

	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")

	require.NoError(t, repo.Create(ctx, &domain.BankAccount{BankName: "First", AccountNo: "111", UserID: alice.ID}))

	// Same account number for another user.
	err := repo.Create(ctx, &domain.BankAccount{BankName: "First", AccountNo: "111", UserID: bob.ID})
	require.ErrorIs(t, err, ErrConflict)

	// Second account for the same user.
	err = repo.Create(ctx, &domain.BankAccount{BankName: "Second", AccountNo: "222", UserID: alice.ID})
	require.ErrorIs(t, err, ErrConflict)

	found, err := repo.FindByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "111", found.AccountNo)
}

func TestUserBookmarkRepository_DuplicatePairConflict(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormUserBookmarkRepository(conn)
	ctx := context.Background()

	product := seedProduct(t, conn, "p1")
	reader := seedUser(t, conn, "reader")

	first := &domain.UserBookmark{UserID: reader.ID, ProductID: product.ID, IsFavorite: true}
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, &domain.UserBookmark{UserID: reader.ID, ProductID: product.ID})
	require.ErrorIs(t, err, ErrConflict)

	mine, err := repo.ListByUserID(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.True(t, mine[0].IsFavorite)
}

func TestInvoiceRepository_DeliveredStamp(t *testing.T) {
	conn := newTestDB(t)
	repo := NewGormInvoiceRepository(conn)
	ctx := context.Background()

	product := seedProduct(t, conn, "p1")
	buyer := seedUser(t, conn, "buyer")

	invoice := &domain.Invoice{
		ProductID: product.ID,
		UserID:    buyer.ID,
		CompanyID: product.CompanyID,
		Status:    domain.InvoiceStatusApproved,
	}
	require.NoError(t, repo.Create(ctx, invoice))
	require.Nil(t, invoice.DeliveredAt)

	invoice.Status = domain.InvoiceStatusDelivered
	updated, err := repo.Update(ctx, invoice)
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredAt)
}
