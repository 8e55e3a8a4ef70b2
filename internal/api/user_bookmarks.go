package api

import (
	"fmt"
	"net/http"

	"marketplace_api/internal/domain"
	"marketplace_api/internal/repository"

	"github.com/gin-gonic/gin"
)

type CreateUserBookmarkRequest struct {
	UserID     uint `json:"user_id" binding:"required"`
	ProductID  uint `json:"product_id" binding:"required"`
	IsFavorite bool `json:"is_favorite"`
}

type UpdateUserBookmarkRequest struct {
	ID         uint `json:"id" binding:"required"`
	UserID     uint `json:"user_id" binding:"required"`
	ProductID  uint `json:"product_id" binding:"required"`
	IsFavorite bool `json:"is_favorite"`
}

func ListUserBookmarksHandler(bookmarks repository.UserBookmarkRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := bookmarks.List(c.Request.Context())
		if err != nil {
			respondRepoError(c, err, "", "")
			return
		}
		c.JSON(http.StatusOK, all)
	}
}

func GetUserBookmarkHandler(bookmarks repository.UserBookmarkRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		bookmark, err := bookmarks.Get(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("User bookmark with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusOK, bookmark)
	}
}

// CreateUserBookmarkHandler persists a new bookmark. The composite unique
// index makes bookmarking the same product twice a conflict.
func CreateUserBookmarkHandler(bookmarks repository.UserBookmarkRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserBookmarkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		bookmark := domain.UserBookmark{
			UserID:     req.UserID,
			ProductID:  req.ProductID,
			IsFavorite: req.IsFavorite,
		}
		if err := bookmarks.Create(c.Request.Context(), &bookmark); err != nil {
			respondRepoError(c, err, "",
				fmt.Sprintf("Bookmark with product id %d for user with id %d already exists", req.ProductID, req.UserID))
			return
		}
		c.JSON(http.StatusCreated, bookmark)
	}
}

func UpdateUserBookmarkHandler(bookmarks repository.UserBookmarkRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserBookmarkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		bookmark := domain.UserBookmark{
			ID:         req.ID,
			UserID:     req.UserID,
			ProductID:  req.ProductID,
			IsFavorite: req.IsFavorite,
		}
		updated, err := bookmarks.Update(c.Request.Context(), &bookmark)
		if err != nil {
			respondRepoError(c, err,
				fmt.Sprintf("User bookmark with id %d not found", req.ID),
				fmt.Sprintf("Bookmark with product id %d for user with id %d already exists", req.ProductID, req.UserID))
			return
		}
		c.JSON(http.StatusCreated, updated)
	}
}

func DeleteUserBookmarkHandler(bookmarks repository.UserBookmarkRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		deleted, err := bookmarks.Delete(c.Request.Context(), id)
		if err != nil {
			respondRepoError(c, err, fmt.Sprintf("User bookmark with id %d not found", id), "")
			return
		}
		c.JSON(http.StatusNoContent, deleted)
	}
}
