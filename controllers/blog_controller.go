package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samudra-tours/samudra-tours-api/config"
	"github.com/samudra-tours/samudra-tours-api/models"
	"github.com/samudra-tours/samudra-tours-api/services"
	"github.com/samudra-tours/samudra-tours-api/validation"
)

// ListBlogPosts handles GET /api/v1/blog - newest articles first.
func ListBlogPosts(c *gin.Context) {
	var posts []models.BlogPost
	if err := config.GetDB().Order("published_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to load blog posts"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    posts,
	})
}

// GetBlogPost handles GET /api/v1/blog/:slug
func GetBlogPost(c *gin.Context) {
	var post models.BlogPost
	if err := config.GetDB().Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("POST_NOT_FOUND", "Blog post not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

// UpsertBlogPost handles POST /api/v1/admin/blog - creates when no id is
// given, updates otherwise. A replaced cover image is deleted from the CDN.
func UpsertBlogPost(c *gin.Context) {
	var req validation.UpsertBlogPostRequest
	if err := validation.BindAndValidate(c, &req); err != nil {
		return
	}

	db := config.GetDB()

	post := models.BlogPost{
		ID:          req.ID,
		Slug:        req.Slug,
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		ImageKey:    req.ImageKey,
		Category:    req.Category,
		Author:      req.Author,
		PublishedAt: time.Now(),
		Content:     req.Content,
	}

	var orphanedKey string
	status := http.StatusCreated

	if req.ID > 0 {
		var existing models.BlogPost
		if err := db.First(&existing, req.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, errorResponse("POST_NOT_FOUND", "Blog post not found"))
			return
		}
		if existing.ImageKey != "" && existing.ImageKey != req.ImageKey {
			orphanedKey = existing.ImageKey
		}
		post.CreatedAt = existing.CreatedAt
		post.PublishedAt = existing.PublishedAt
		status = http.StatusOK
	}

	if err := db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to save blog post"))
		return
	}

	if imageService := services.GetImageService(); imageService != nil && orphanedKey != "" {
		services.DeleteImages(imageService, []string{orphanedKey})
	}

	c.JSON(status, gin.H{
		"success": true,
		"data":    post,
	})
}

// DeleteBlogPost handles DELETE /api/v1/admin/blog/:id
func DeleteBlogPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("INVALID_POST_ID", "Blog post id must be a number"))
		return
	}

	db := config.GetDB()
	var post models.BlogPost
	if err := db.First(&post, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, errorResponse("POST_NOT_FOUND", "Blog post not found"))
		return
	}

	if err := db.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse("DATABASE_ERROR", "Failed to delete blog post"))
		return
	}

	if imageService := services.GetImageService(); imageService != nil && post.ImageKey != "" {
		services.DeleteImages(imageService, []string{post.ImageKey})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}
