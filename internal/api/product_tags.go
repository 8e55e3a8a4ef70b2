package api

import (
	"fmt"
	"net/http"

	"marketplace_api/internal/domain"
	"marketplace_api/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateProductTagRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateProductTagRequest struct {
	ID   uint   `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func ListProductTagsHandler(tags repository.ProductTagRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := tags.List(c.Request.Context())
		if err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetProductTagHandler(tags repository.ProductTagRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		tag, err := tags.Get(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Product tag with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusOK, tag)
	}
}

func CreateProductTagHandler(tags repository.ProductTagRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductTagRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tag := domain.ProductTag{Name: req.Name}
		if err := tags.Create(c.Request.Context(), &tag); err != nil {
			respondRepoError(c, err, "",
				fmt.Sprintf("Product tag with name %s already exists", req.Name))
			return
		}
		c.JSON(http.StatusCreated, tag)
	}
}

func UpdateProductTagHandler(tags repository.ProductTagRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductTagRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tag := domain.ProductTag{ID: req.ID, Name: req.Name}
		updated, err := tags.Update(c.Request.Context(), &tag)
		if err != nil {
			respondRepoError(c, err,
				fmt.Sprintf("Product tag with id %d not found", req.ID),
				fmt.Sprintf("Product tag with name %s already exists", req.Name))
			return
		}
		c.JSON(http.StatusCreated, updated)
	}
}

func DeleteProductTagHandler(tags repository.ProductTagRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		deleted, err := tags.Delete(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Product tag with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusNoContent, deleted)
	}
}
