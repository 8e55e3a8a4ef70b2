package api

import (
	"fmt"
	"net/http"

	"marketplace_api/internal/domain"
	"marketplace_api/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateBankAccountRequest struct {
	BankName  string `json:"bank_name" binding:"required"`
	AccountNo string `json:"account_no" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Province  string `json:"province"`
	CardNo    string `json:"card_no"`
	UserID    uint   `json:"user_id" binding:"required"`
}

type UpdateBankAccountRequest struct {
	ID        uint   `json:"id" binding:"required"`
	BankName  string `json:"bank_name" binding:"required"`
	AccountNo string `json:"account_no" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Province  string `json:"province"`
	CardNo    string `json:"card_no"`
	UserID    uint   `json:"user_id" binding:"required"`
}

func ListBankAccountsHandler(accounts repository.BankAccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := accounts.List(c.Request.Context())
		if err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetBankAccountHandler(accounts repository.BankAccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		account, err := accounts.Get(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Bank account with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusOK, account)
	}
}

// CreateBankAccountHandler persists a new bank account. The unique indexes on
// account number and owning user make a duplicate of either a conflict.
func CreateBankAccountHandler(accounts repository.BankAccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBankAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		account := domain.BankAccount{
			BankName:  req.BankName,
			AccountNo: req.AccountNo,
			Phone:     req.Phone,
			Address:   req.Address,
			City:      req.City,
			Province:  req.Province,
			CardNo:    req.CardNo,
			UserID:    req.UserID,
		}
		if err := accounts.Create(c.Request.Context(), &account); err != nil {
			respondRepoError(c, err, "",
				fmt.Sprintf("Bank account with account number %s already exists", req.AccountNo))
			return
		}
		c.JSON(http.StatusCreated, account)
	}
}

func UpdateBankAccountHandler(accounts repository.BankAccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateBankAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		account := domain.BankAccount{
			ID:        req.ID,
			BankName:  req.BankName,
			AccountNo: req.AccountNo,
			Phone:     req.Phone,
			Address:   req.Address,
			City:      req.City,
			Province:  req.Province,
			CardNo:    req.CardNo,
			UserID:    req.UserID,
		}
		updated, err := accounts.Update(c.Request.Context(), &account)
		if err != nil {
			respondRepoError(c, err,
				fmt.Sprintf("Bank account with id %d not found", req.ID),
				fmt.Sprintf("Bank account with account number %s already exists", req.AccountNo))
			return
		}
		c.JSON(http.StatusCreated, updated)
	}
}

func DeleteBankAccountHandler(accounts repository.BankAccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		deleted, err := accounts.Delete(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("Bank account with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusNoContent, deleted)
	}
}
