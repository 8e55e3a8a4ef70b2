package api

import (
	"fmt"
	"net/http"

	"marketplace_api/internal/domain"
	"marketplace_api/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateInvoiceRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	CompanyID uint   `json:"company_id" binding:"required"`
	Status    string `json:"status" binding:"omitempty,oneof=approved shipped delivered"`
}

type UpdateInvoiceRequest struct {
	ID        uint   `json:"id" binding:"required"`
	ProductID uint   `json:"product_id" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	CompanyID uint   `json:"company_id" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=approved shipped delivered"`
}

func ListInvoicesHandler(invoices repository.InvoiceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := invoices.List(c.Request.Context())
		if err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetInvoiceHandler(invoices repository.InvoiceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		invoice, err := invoices.Get(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Invoice with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusOK, invoice)
	}
}

// CreateInvoiceHandler persists a new invoice; status defaults to approved.
func CreateInvoiceHandler(invoices repository.InvoiceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Status == "" {
			req.Status = domain.InvoiceStatusApproved
		}
		invoice := domain.Invoice{
			ProductID: req.ProductID,
			UserID:    req.UserID,
			CompanyID: req.CompanyID,
			Status:    req.Status,
		}
		if err := invoices.Create(c.Request.Context(), &invoice); err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusCreated, invoice)
	}
}

func UpdateInvoiceHandler(invoices repository.InvoiceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		invoice := domain.Invoice{
			ID:        req.ID,
			ProductID: req.ProductID,
			UserID:    req.UserID,
			CompanyID: req.CompanyID,
			Status:    req.Status,
		}
		updated, err := invoices.Update(c.Request.Context(), &invoice)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Invoice with id %d not found", req.ID), "")
			return
		}
		c.JSON(http.StatusCreated, updated)
	}
}

func DeleteInvoiceHandler(invoices repository.InvoiceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		deleted, err := invoices.Delete(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Invoice with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusNoContent, deleted)
	}
}
