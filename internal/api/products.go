package api

import (
	"fmt"
	"net/http"

	"marketplace_api/internal/domain"
	"marketplace_api/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	ProductTagID uint    `json:"product_tag_id" binding:"required"`
	CompanyID    uint    `json:"company_id" binding:"required"`
}

type UpdateProductRequest struct {
	ID           uint    `json:"id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	ProductTagID uint    `json:"product_tag_id" binding:"required"`
	CompanyID    uint    `json:"company_id" binding:"required"`
}

func ListProductsHandler(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetProductHandler(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		product, err := products.Get(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Product with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// CreateProductHandler persists a new product. The tag and company references
// are checked by the storage foreign keys.
func CreateProductHandler(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product := domain.Product{
			Name:         req.Name,
			Price:        req.Price,
			ProductTagID: req.ProductTagID,
			CompanyID:    req.CompanyID,
		}
		if err := products.Create(c.Request.Context(), &product); err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProductHandler(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		product := domain.Product{
			ID:           req.ID,
			Name:         req.Name,
			Price:        req.Price,
			ProductTagID: req.ProductTagID,
			CompanyID:    req.CompanyID,
		}
		updated, err := products.Update(c.Request.Context(), &product)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Product with id %d not found", req.ID), "")
			return
		}
		c.JSON(http.StatusCreated, updated)
	}
}

func DeleteProductHandler(products repository.ProductRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		deleted, err := products.Delete(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Product with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusNoContent, deleted)
	}
}
