package api

import (
	"fmt"
	"net/http"

	"marketplace_api/internal/domain"
	"marketplace_api/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateUserRequest carries every creatable user field. The plaintext
// password is hashed before it reaches the repository.
type CreateUserRequest struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	IdentityCode string `json:"identity_code" binding:"required"`
	Address      string `json:"address" binding:"required"`
}

// UpdateUserRequest fully replaces the mutable user fields.
type UpdateUserRequest struct {
	ID              uint   `json:"id" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	IdentityCode    string `json:"identity_code" binding:"required"`
	Address         string `json:"address" binding:"required"`
}

// ListUsersHandler returns every user.
func ListUsersHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := users.List(c.Request.Context())
		if err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

// GetUserHandler returns a single user by id.
func GetUserHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		user, err := users.Get(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("User with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// CreateUserHandler registers a new user. A duplicate email (or any other
// unique user field) is a conflict, not a validation failure.
func CreateUserHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			Username:     req.Username,
			Password:     string(hash),
			Email:        req.Email,
			Phone:        req.Phone,
			IdentityCode: req.IdentityCode,
			Address:      req.Address,
		}
		if err := users.Create(c.Request.Context(), &user); err != nil {
			respondRepoError(c, err, "",
				fmt.Sprintf("User with email %s already exists", req.Email))
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// UpdateUserHandler fully replaces the mutable fields of an existing user.
func UpdateUserHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if req.Password != req.ConfirmPassword {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			ID:           req.ID,
			Username:     req.Username,
			Password:     string(hash),
			Email:        req.Email,
			Phone:        req.Phone,
			IdentityCode: req.IdentityCode,
			Address:      req.Address,
		}
		updated, err := users.Update(c.Request.Context(), &user)
		if err != nil {
			respondRepoError(c, err,
				fmt.Sprintf("User with id %d not found", req.ID),
				fmt.Sprintf("User with email %s already exists", req.Email))
			return
		}
		c.JSON(http.StatusCreated, updated)
	}
}

// DeleteUserHandler removes a user and returns its prior state.
func DeleteUserHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		deleted, err := users.Delete(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("User with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusNoContent, deleted)
	}
}
