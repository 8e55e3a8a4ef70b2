package api

import (
	"fmt"
	"net/http"

	"marketplace_api/internal/domain"
	"marketplace_api/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	UserID  uint   `json:"user_id" binding:"required"`
}

type UpdateCompanyRequest struct {
	ID      uint   `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	UserID  uint   `json:"user_id" binding:"required"`
}

func ListCompaniesHandler(companies repository.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := companies.List(c.Request.Context())
		if err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetCompanyHandler(companies repository.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		company, err := companies.Get(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Company with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusOK, company)
	}
}

func CreateCompanyHandler(companies repository.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		company := domain.Company{
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
			UserID:  req.UserID,
		}
		if err := companies.Create(c.Request.Context(), &company); err != nil {
			respondRepoError(c, err, "",
				fmt.Sprintf("Company with name %s already exists", req.Name))
			return
		}
		c.JSON(http.StatusCreated, company)
	}
}

func UpdateCompanyHandler(companies repository.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCompanyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		company := domain.Company{
			ID:      req.ID,
			Name:    req.Name,
			Address: req.Address,
			Phone:   req.Phone,
			UserID:  req.UserID,
		}
		updated, err := companies.Update(c.Request.Context(), &company)
		if err != nil {
			respondRepoError(c, err,
				fmt.Sprintf("Company with id %d not found", req.ID),
				fmt.Sprintf("Company with name %s already exists", req.Name))
			return
		}
		c.JSON(http.StatusCreated, updated)
	}
}

func DeleteCompanyHandler(companies repository.CompanyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		deleted, err := companies.Delete(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Company with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusNoContent, deleted)
	}
}
