package api

import (
	"marketplace_api/internal/config"
	"marketplace_api/internal/middleware"
	"marketplace_api/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Repositories bundles the per-entity repositories the router dispatches to.
type Repositories struct {
	Users        repository.UserRepository
	ProductTags  repository.ProductTagRepository
	Products     repository.ProductRepository
	Companies    repository.CompanyRepository
	BankAccounts repository.BankAccountRepository
	Bookmarks    repository.UserBookmarkRepository
	Invoices     repository.InvoiceRepository
}

// NewRepositories wires the GORM implementations over a single DB handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:        repository.NewGormUserRepository(db),
		ProductTags:  repository.NewGormProductTagRepository(db),
		Products:     repository.NewGormProductRepository(db),
		Companies:    repository.NewGormCompanyRepository(db),
		BankAccounts: repository.NewGormBankAccountRepository(db),
		Bookmarks:    repository.NewGormUserBookmarkRepository(db),
		Invoices:     repository.NewGormInvoiceRepository(db),
	}
}

// RegisterRoutes mounts the token endpoint and the five-verb CRUD surface for
// every resource. Everything except POST /token sits behind the bearer-token
// middleware.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, repos *Repositories) {
	r.POST("/token", TokenHandler(repos.Users, cfg))

	auth := r.Group("")
	auth.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, repos.Users))

	auth.GET("/users", ListUsersHandler(repos.Users))
	auth.GET("/users/:id", GetUserHandler(repos.Users))
	auth.POST("/users/create", CreateUserHandler(repos.Users))
	auth.PUT("/users/update", UpdateUserHandler(repos.Users))
	auth.DELETE("/users/remove/:id", DeleteUserHandler(repos.Users))

	auth.GET("/product_tags", ListProductTagsHandler(repos.ProductTags))
	auth.GET("/product_tags/:id", GetProductTagHandler(repos.ProductTags))
	auth.POST("/product_tags/create", CreateProductTagHandler(repos.ProductTags))
	auth.PUT("/product_tags/update", UpdateProductTagHandler(repos.ProductTags))
	auth.DELETE("/product_tags/remove/:id", DeleteProductTagHandler(repos.ProductTags))

	auth.GET("/products", ListProductsHandler(repos.Products))
	auth.GET("/products/:id", GetProductHandler(repos.Products))
	auth.POST("/products/create", CreateProductHandler(repos.Products))
	auth.PUT("/products/update", UpdateProductHandler(repos.Products))
	auth.DELETE("/products/remove/:id", DeleteProductHandler(repos.Products))

	auth.GET("/companies", ListCompaniesHandler(repos.Companies))
	auth.GET("/companies/:id", GetCompanyHandler(repos.Companies))
	auth.POST("/companies/create", CreateCompanyHandler(repos.Companies))
	auth.PUT("/companies/update", UpdateCompanyHandler(repos.Companies))
	auth.DELETE("/companies/remove/:id", DeleteCompanyHandler(repos.Companies))

	auth.GET("/bank_accounts", ListBankAccountsHandler(repos.BankAccounts))
	auth.GET("/bank_accounts/:id", GetBankAccountHandler(repos.BankAccounts))
	auth.POST("/bank_accounts/create", CreateBankAccountHandler(repos.BankAccounts))
	auth.PUT("/bank_accounts/update", UpdateBankAccountHandler(repos.BankAccounts))
	auth.DELETE("/bank_accounts/remove/:id", DeleteBankAccountHandler(repos.BankAccounts))

	auth.GET("/user_bookmarks", ListUserBookmarksHandler(repos.Bookmarks))
	auth.GET("/user_bookmarks/:id", GetUserBookmarkHandler(repos.Bookmarks))
	auth.POST("/user_bookmarks/create", CreateUserBookmarkHandler(repos.Bookmarks))
	auth.PUT("/user_bookmarks/update", UpdateUserBookmarkHandler(repos.Bookmarks))
	auth.DELETE("/user_bookmarks/remove/:id", DeleteUserBookmarkHandler(repos.Bookmarks))

	auth.GET("/invoices", ListInvoicesHandler(repos.Invoices))
	auth.GET("/invoices/:id", GetInvoiceHandler(repos.Invoices))
	auth.POST("/invoices/create", CreateInvoiceHandler(repos.Invoices))
	auth.PUT("/invoices/update", UpdateInvoiceHandler(repos.Invoices))
	auth.DELETE("/invoices/remove/:id", DeleteInvoiceHandler(repos.Invoices))
}
